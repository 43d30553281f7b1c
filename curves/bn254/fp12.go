package bn254

import "math/big"

// Fp12 = Fp6[w]/(w^2-v), held as c0 + c1*w. Gt, the pairing's target
// group, is the order-R subgroup of this field's unit group.
type Fp12 struct {
	c0, c1 Fp6
}

func Fp12Zero() Fp12 { return Fp12{c0: Fp6Zero(), c1: Fp6Zero()} }
func Fp12One() Fp12  { return Fp12{c0: Fp6One(), c1: Fp6Zero()} }

func (a Fp12) Equal(b Fp12) bool { return a.c0.Equal(b.c0) && a.c1.Equal(b.c1) }
func (a Fp12) IsOne() bool       { return a.Equal(Fp12One()) }

// Mul computes (a+b w)(c+d w) = (ac+bd v) + (ad+bc) w via Karatsuba; bd*v
// is folded in through MulByV since w^2 = v.
func (a Fp12) Mul(b Fp12) Fp12 {
	t1 := a.c0.Mul(b.c0)
	t2 := a.c1.Mul(b.c1)

	c0 := t1.Add(t2.MulByV())
	c1 := a.c0.Add(a.c1).Mul(b.c0.Add(b.c1)).Sub(t1).Sub(t2)

	return Fp12{c0: c0, c1: c1}
}

func (a Fp12) Square() Fp12 {
	ab := a.c0.Mul(a.c1)
	t := a.c0.Add(a.c1)
	u := a.c0.Add(a.c1.MulByV())
	c0 := t.Mul(u).Sub(ab).Sub(ab.MulByV())
	c1 := ab.Add(ab)
	return Fp12{c0: c0, c1: c1}
}

// Inv computes (a+b w)^-1 = (a-b w)/(a^2 - b^2 v).
func (a Fp12) Inv() Fp12 {
	t := a.c0.Square().Sub(a.c1.Square().MulByV())
	tInv := t.Inv()
	return Fp12{c0: a.c0.Mul(tInv), c1: a.c1.Neg().Mul(tInv)}
}

// Conj returns c0 - c1*w; for unitary elements (norm 1) this equals Inv.
func (a Fp12) Conj() Fp12 { return Fp12{c0: a.c0, c1: a.c1.Neg()} }

func (a Fp12) Exp(k *big.Int) Fp12 {
	if k.Sign() == 0 {
		return Fp12One()
	}
	r := Fp12One()
	for i := k.BitLen() - 1; i >= 0; i-- {
		r = r.Square()
		if k.Bit(i) == 1 {
			r = r.Mul(a)
		}
	}
	return r
}

// mulLine multiplies ret by the sparse line element c + (a*v + b*v^2)*w
// produced by lineAdd/lineDouble, exploiting its sparsity instead of a
// full Fp12 multiplication.
func mulLine(ret Fp12, a, b, c Fp2) Fp12 {
	lineC1 := Fp6{c0: Fp2Zero(), c1: a, c2: b}
	lineSum := Fp6{c0: c, c1: a, c2: b}

	a2 := lineC1.Mul(ret.c1)
	t3 := ret.c0.MulByFp2(c)

	retSum := ret.c1.Add(ret.c0)
	newC1 := retSum.Mul(lineSum).Sub(a2).Sub(t3)
	newC0 := a2.MulByV().Add(t3)

	return Fp12{c0: newC0, c1: newC1}
}

// Frobenius constants: xi^(k*(p-1)/6) for k=1..5, used to compute f^p on
// the tower without a full exponentiation by p.
var (
	frobC1_1 = NewFp2(bigFromStr("8376118865763821496583973867626364092589906065868298776909617916018768340080"), bigFromStr("16469823323077808223889137241176536799009286646108169935659301613961712198316"))
	frobC1_2 = NewFp2(bigFromStr("21575463638280843010398324269430826099269044274347216827212613867836435027261"), bigFromStr("10307601595873709700152284273816112264069230130616436755625194854815875713954"))
	frobC1_3 = NewFp2(bigFromStr("2821565182194536844548159561693502659359617185244120367078079554186484126554"), bigFromStr("3505843767911556378687030309984248845540243509899259641013678093033130930403"))
	frobC1_4 = NewFp2(bigFromStr("2581911344467009335267311115468803099551665605076196740867805258568234346338"), bigFromStr("19937756971775647987995932169929341994314640652964949448313374472400716661030"))
	frobC1_5 = NewFp2(bigFromStr("685108087231508774477564247770172212460312782337200605669322048753928464687"), bigFromStr("8447204650696766136447902020341177575205426561248465145919723016860428151883"))

	frobC2_1 = NewFp2(bigFromStr("21888242871839275220042445260109153167277707414472061641714758635765020556617"), big.NewInt(0))
	frobC2_2 = NewFp2(bigFromStr("21888242871839275220042445260109153167277707414472061641714758635765020556616"), big.NewInt(0))
	frobC2_3 = NewFp2(bigFromStr("21888242871839275222246405745257275088696311157297823662689037894645226208582"), big.NewInt(0))
	frobC2_4 = NewFp2(bigFromStr("2203960485148121921418603742825762020974279258880205651966"), big.NewInt(0))
	frobC2_5 = NewFp2(bigFromStr("2203960485148121921418603742825762020974279258880205651967"), big.NewInt(0))

	frobC3_1 = NewFp2(bigFromStr("11697423496358154304825782922584725312912383441159505038794027105778954184319"), bigFromStr("303847389135065887422783454877609941456349188919719272345083954437860409601"))
	frobC3_2 = NewFp2(bigFromStr("3772000881919853776433695186713858239009073593817195771773381919316419345261"), bigFromStr("2236595495967245188281701248203181795121068902605861227855261137820944008926"))
	frobC3_3 = NewFp2(bigFromStr("19066677689644738377698246183563772429336693972053703295610958340458742082029"), bigFromStr("18382399103927718843559375435273026243156067647398564021675359801612095278180"))
	frobC3_4 = NewFp2(bigFromStr("5324479202449903542726783395506214481928257762400643279780343368557297135718"), bigFromStr("16208900380737693084919495127334387981393726419856888799917914180988844123039"))
	frobC3_5 = NewFp2(bigFromStr("8941241848238582420466759817324047081148088512956452953208002715982955420483"), bigFromStr("10338197737521362862238855242243140895517409139741313354160881284257516364953"))
)

func bigFromStr(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bn254: invalid big.Int literal: " + s)
	}
	return v
}

// frob computes f^p via conjugation plus the precomputed c1 constants.
func (a Fp12) frob() Fp12 {
	return Fp12{
		c0: Fp6{c0: a.c0.c0.Conj(), c1: a.c0.c1.Conj().Mul(frobC1_2), c2: a.c0.c2.Conj().Mul(frobC1_4)},
		c1: Fp6{c0: a.c1.c0.Conj().Mul(frobC1_1), c1: a.c1.c1.Conj().Mul(frobC1_3), c2: a.c1.c2.Conj().Mul(frobC1_5)},
	}
}

// frobSq computes f^(p^2); conjugation squared is the identity on Fp2.
func (a Fp12) frobSq() Fp12 {
	return Fp12{
		c0: Fp6{c0: a.c0.c0, c1: a.c0.c1.Mul(frobC2_2), c2: a.c0.c2.Mul(frobC2_4)},
		c1: Fp6{c0: a.c1.c0.Mul(frobC2_1), c1: a.c1.c1.Mul(frobC2_3), c2: a.c1.c2.Mul(frobC2_5)},
	}
}

// frobCube computes f^(p^3); conjugation cubed equals conjugation.
func (a Fp12) frobCube() Fp12 {
	return Fp12{
		c0: Fp6{c0: a.c0.c0.Conj(), c1: a.c0.c1.Conj().Mul(frobC3_2), c2: a.c0.c2.Conj().Mul(frobC3_4)},
		c1: Fp6{c0: a.c1.c0.Conj().Mul(frobC3_1), c1: a.c1.c1.Conj().Mul(frobC3_3), c2: a.c1.c2.Conj().Mul(frobC3_5)},
	}
}
