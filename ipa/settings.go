package ipa

import (
	"math/big"

	"github.com/mratsim/constantine-go/curves/banderwagon"
)

// IPASettings is the common reference string and precomputed tables
// shared by every IPA proof and verification over the fixed Domain-wide
// Lagrange basis: a CRS of Domain Banderwagon points with unknown
// relative discrete logs (see banderwagon.GenerateCRS), the domain
// itself, and the barycentric weight tables.
type IPASettings struct {
	CRS       []banderwagon.Point
	Weights   *PrecomputedWeights
	NumRounds int
}

// NewIPASettings builds the settings for the standard 256-wide Verkle
// domain: CRS generators seeded from VerkleSeed, plus the precomputed
// barycentric weight tables.
func NewIPASettings() *IPASettings {
	return &IPASettings{
		CRS:       banderwagon.GenerateCRS(Domain),
		Weights:   NewPrecomputedWeights(),
		NumRounds: NumRounds,
	}
}

// Commit computes the Pedersen vector commitment Sum(f[i] * CRS[i]).
func (s *IPASettings) Commit(f []*big.Int) banderwagon.Point {
	return banderwagon.MSM(s.CRS, f)
}
