// Package cpufeature reports which constant-time-friendly instruction
// extensions are available on the running CPU. bigint.CMov and the
// add-with-carry chain already behave correctly everywhere via their
// portable bitmask fallback; a production build would additionally pin
// those routines to ADCX/ADOX/MULX assembly when the hardware supports it,
// for speed rather than correctness. This package is the detection step
// that decision would branch on. No assembly fast path is implemented here.
package cpufeature

import "github.com/klauspost/cpuid/v2"

// HasADX reports whether the CPU supports the ADX extension (ADCX/ADOX),
// used for carry-chain addition without flag-register round trips.
func HasADX() bool { return cpuid.CPU.Has(cpuid.ADX) }

// HasBMI2 reports whether the CPU supports BMI2, which provides MULX for
// flag-free 64x64->128 multiplication.
func HasBMI2() bool { return cpuid.CPU.Has(cpuid.BMI2) }

// HasFastCarryChain reports whether both ADX and BMI2 are available, the
// pair a hand-written Montgomery multiplication assembly stub would
// require.
func HasFastCarryChain() bool { return HasADX() && HasBMI2() }
