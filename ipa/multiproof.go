package ipa

import (
	"errors"
	"math/big"

	"github.com/mratsim/constantine-go/curves/banderwagon"
	"github.com/mratsim/constantine-go/transcript"
)

var ErrMultiProofInputMismatch = errors.New("ipa: multiproof commitments/polys/points length mismatch")

// MultiProof opens many (commitment, polynomial, evaluation-point)
// triples at once: one grouping commitment D plus a single IPAProof.
type MultiProof struct {
	D     banderwagon.Point
	Proof *IPAProof
}

// CreateMultiProof proves {(commitments[i], zs[i], polys[i][zs[i]])}_i
// with one combined proof. zs are domain indices: a Verkle tree node
// proves evaluations at its own children's indices, which are always
// points of the {0,...,Domain-1} Lagrange domain itself, not arbitrary
// field elements.
func CreateMultiProof(settings *IPASettings, tr *transcript.Transcript, commitments []banderwagon.Point, polys [][]*big.Int, zs []int) (*MultiProof, error) {
	n := len(commitments)
	if n == 0 || len(polys) != n || len(zs) != n {
		return nil, ErrMultiProofInputMismatch
	}
	for _, p := range polys {
		if len(p) != Domain {
			return nil, ErrVectorLength
		}
	}

	ys := make([]*big.Int, n)
	for i := range commitments {
		ys[i] = polys[i][zs[i]]
		tr.AbsorbPoint("mp-C", commitments[i])
		tr.AbsorbScalar("mp-z", big.NewInt(int64(zs[i])))
		tr.AbsorbScalar("mp-y", ys[i])
	}
	r := tr.Squeeze("mp-r")

	groupedF := make(map[int][]*big.Int)
	rPow := big.NewInt(1)
	for i := 0; i < n; i++ {
		z := zs[i]
		acc, ok := groupedF[z]
		if !ok {
			acc = make([]*big.Int, Domain)
			for k := range acc {
				acc[k] = new(big.Int)
			}
			groupedF[z] = acc
		}
		for k := 0; k < Domain; k++ {
			acc[k] = scalarAdd(acc[k], scalarMul(rPow, polys[i][k]))
		}
		rPow = scalarMul(rPow, r)
	}

	g := make([]*big.Int, Domain)
	for k := range g {
		g[k] = new(big.Int)
	}
	usedZs := make([]int, 0, len(groupedF))
	for z, fz := range groupedF {
		usedZs = append(usedZs, z)
		q := settings.Weights.DivisionOnDomain(z, fz)
		for k := 0; k < Domain; k++ {
			g[k] = scalarAdd(g[k], q[k])
		}
	}

	D := settings.Commit(g)
	tr.AbsorbPoint("mp-D", D)
	t := tr.Squeeze("mp-t")

	denoms := make([]*big.Int, len(usedZs))
	for i, z := range usedZs {
		denoms[i] = scalarSub(t, domainPoint(z))
	}
	invDenoms := scalarBatchInvert(denoms)

	h := make([]*big.Int, Domain)
	for k := range h {
		h[k] = new(big.Int)
	}
	for i, z := range usedZs {
		fz := groupedF[z]
		scale := invDenoms[i]
		for k := 0; k < Domain; k++ {
			h[k] = scalarAdd(h[k], scalarMul(scale, fz[k]))
		}
	}

	E := settings.Commit(h)
	hMinusG := make([]*big.Int, Domain)
	for k := range hMinusG {
		hMinusG[k] = scalarSub(h[k], g[k])
	}

	commitmentForIPA := E.Add(D.Neg())
	proof, _, err := IPAProve(settings, tr, commitmentForIPA, t, hMinusG)
	if err != nil {
		return nil, err
	}
	return &MultiProof{D: D, Proof: proof}, nil
}

// VerifyMultiProof mirrors CreateMultiProof's transcript schedule
// without ever reconstructing the witness polynomials: the grouping
// commitments and claimed values are folded directly from the public
// (commitment, z, y) triples using the same r^i weights the prover used,
// since Pedersen commitment is linear in its input vector.
func VerifyMultiProof(settings *IPASettings, tr *transcript.Transcript, commitments []banderwagon.Point, zs []int, ys []*big.Int, proof *MultiProof) (bool, error) {
	n := len(commitments)
	if n == 0 || len(zs) != n || len(ys) != n {
		return false, ErrMultiProofInputMismatch
	}

	for i := range commitments {
		tr.AbsorbPoint("mp-C", commitments[i])
		tr.AbsorbScalar("mp-z", big.NewInt(int64(zs[i])))
		tr.AbsorbScalar("mp-y", ys[i])
	}
	r := tr.Squeeze("mp-r")

	groupedC := make(map[int]banderwagon.Point)
	groupedY := make(map[int]*big.Int)
	rPow := big.NewInt(1)
	for i := 0; i < n; i++ {
		z := zs[i]
		contribC := commitments[i].ScalarMulVartime(rPow)
		contribY := scalarMul(rPow, ys[i])
		if cur, ok := groupedC[z]; ok {
			groupedC[z] = cur.Add(contribC)
			groupedY[z] = scalarAdd(groupedY[z], contribY)
		} else {
			groupedC[z] = contribC
			groupedY[z] = contribY
		}
		rPow = scalarMul(rPow, r)
	}

	tr.AbsorbPoint("mp-D", proof.D)
	t := tr.Squeeze("mp-t")

	usedZs := make([]int, 0, len(groupedC))
	for z := range groupedC {
		usedZs = append(usedZs, z)
	}
	denoms := make([]*big.Int, len(usedZs))
	for i, z := range usedZs {
		denoms[i] = scalarSub(t, domainPoint(z))
	}
	invDenoms := scalarBatchInvert(denoms)

	E := banderwagon.Identity()
	yCombined := new(big.Int)
	for i, z := range usedZs {
		E = E.Add(groupedC[z].ScalarMulVartime(invDenoms[i]))
		yCombined = scalarAdd(yCombined, scalarMul(invDenoms[i], groupedY[z]))
	}

	commitmentForIPA := E.Add(proof.D.Neg())
	return IPAVerify(settings, tr, commitmentForIPA, t, yCombined, proof.Proof)
}
