package pairing

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"

	"github.com/okx/bn254pairing/internal/plog"
)

var (
	bn254FieldModulus = fp.Modulus()

	bn254SubgroupOrder, _ = new(big.Int).SetString(
		"21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)

	bn254Lambda, _ = new(big.Int).SetString(
		"10486551571378427818905133077457505975146652579011797175399169355881771981095211883813744499745558409789005132135496770941292989421431235276221147148858384772096778432243207188878598198850276842458913349817007302752534892127325269", 10)
)

const residueWitnessCubicExp uint32 = 3

// ComputeCWi derives the residue witness pair (c, wi) that lets a
// verifier assert f*wi = c^lambda instead of computing a full final
// exponentiation: Algorithm 5 of "On Proving Pairings"
// (https://eprint.iacr.org/2024/640.pdf). f must already be an r-th
// residue (f^h = 1, e.g. the Miller loop value of a pairing product that
// equals 1); any other f panics. The search for a cubic non-residue
// witness w is randomized and variable-time.
func ComputeCWi(f GT) (GT, GT) {
	p := bn254FieldModulus
	r := bn254SubgroupOrder
	lambda := bn254Lambda
	s := residueWitnessCubicExp

	exp := new(big.Int).Sub(new(big.Int).Exp(p, big.NewInt(12), nil), big.NewInt(1))
	h := new(big.Int).Div(exp, r)
	threeToS := new(big.Int).Exp(big.NewInt(3), big.NewInt(int64(s)), nil)
	t := new(big.Int).Div(exp, threeToS)
	k := new(big.Int).Div(new(big.Int).Add(t, big.NewInt(1)), big.NewInt(3))
	m := new(big.Int).Div(lambda, r)
	d := big.NewInt(3)
	mm := new(big.Int).Div(m, d)

	cofactorCubic := new(big.Int).Mul(
		new(big.Int).Exp(big.NewInt(3), big.NewInt(int64(s-1)), nil), t)

	if !gtExp(f.GT, h).IsOne() {
		panic("compute_c_wi: f is not an r-th residue")
	}

	w := findCubicNonResidueWitness(t, cofactorCubic)
	if !gtExp(w.GT, h).IsOne() {
		panic("compute_c_wi: sampled witness w is not an r-th residue")
	}
	if gtExp(w.GT, cofactorCubic).IsOne() {
		panic("compute_c_wi: sampled witness w is a cubic residue")
	}

	var wi GT
	if gtExp(f.GT, cofactorCubic).IsOne() {
		wi = GT{}
		wi.GT.SetOne()
	} else {
		var fw bn254.GT
		fw.Mul(&f.GT, &w.GT)
		if !gtExp(fw, cofactorCubic).IsOne() {
			var fw2 bn254.GT
			fw2.Mul(&fw, &w.GT)
			if !gtExp(fw2, cofactorCubic).IsOne() {
				panic("compute_c_wi: neither w nor w^2 yields a cubic residue witness")
			}
			wi.GT.Mul(&w.GT, &w.GT)
		} else {
			wi.GT = w.GT
		}
	}

	var f1 bn254.GT
	f1.Mul(&f.GT, &wi.GT)

	rInv := new(big.Int).ModInverse(r, h)
	if rInv == nil {
		panic("compute_c_wi: r has no inverse mod h")
	}
	f2 := gtExp(f1, rInv)
	if f2.IsOne() {
		panic("compute_c_wi: r-th root collapsed to identity")
	}

	rh := new(big.Int).Mul(r, h)
	mmInv := new(big.Int).ModInverse(mm, rh)
	if mmInv == nil {
		panic("compute_c_wi: m' has no inverse mod r*h")
	}
	f3 := gtExp(f2, mmInv)
	if !gtExp(f3, cofactorCubic).IsOne() {
		panic("compute_c_wi: f3 is not a cubic residue witness")
	}

	c := TonelliShanksCubic(GT{f3}, w, s, t, k)

	lhs := gtExp(c.GT, lambda)
	if !lhs.Equal(&f1) {
		panic("compute_c_wi: c^lambda != f*wi")
	}

	return c, wi
}

// findCubicNonResidueWitness samples a random z that is itself a cubic
// non-residue (via its Legendre-style cofactor exponent), then lifts it
// to w = z^t, retrying until w is not the identity.
func findCubicNonResidueWitness(t, cofactorCubic *big.Int) GT {
	log := plog.Logger().With().Str("component", "residue_witness").Logger()

	var w bn254.GT
	w.SetOne()
	rounds := 0
	for w.IsOne() {
		var z bn254.GT
		legendre := new(bn254.GT)
		legendre.SetOne()
		candidates := 0
		for legendre.IsOne() {
			var err error
			z, err = randomGT()
			if err != nil {
				panic(err)
			}
			*legendre = gtExp(z, cofactorCubic)
			candidates++
		}
		w = gtExp(z, t)
		rounds++
		log.Debug().Int("round", rounds).Int("candidates", candidates).Msg("sampled cubic non-residue candidate")
	}
	return GT{w}
}

func randomGT() (bn254.GT, error) {
	var g GT
	_, err := g.Random()
	if err != nil {
		return bn254.GT{}, err
	}
	return g.GT, nil
}
