package pairing

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"

	"github.com/okx/bn254pairing/internal/plog"
)

// TonelliShanksCubic recovers a cubic root of a in GT given c, a known
// cubic non-residue, and the factorization p^12-1 = 3^s * t (table 3 of
// https://eprint.iacr.org/2009/457.pdf). It is part of Algorithm 5's
// residue-witness construction and is explicitly variable-time: every
// exponent here depends on the witness being recovered, not on secret
// data.
func TonelliShanksCubic(a, c GT, s uint32, t, k *big.Int) GT {
	r := gtExp(a.GT, t)

	e := new(big.Int).Exp(big.NewInt(3), big.NewInt(int64(s-1)), nil)
	exp := new(big.Int).Mul(new(big.Int).Exp(big.NewInt(3), big.NewInt(int64(s)), nil), t)

	var h bn254.GT
	h.SetOne()
	cc := gtExp(c.GT, e)
	var cInv bn254.GT
	cInv.Inverse(&c.GT)
	cur := cInv

	log := plog.Logger().With().Str("component", "tonelli_shanks_cubic").Logger()

	for i := int32(1); i < int32(s); i++ {
		log.Trace().Int("round", int(i)).Msg("recovering next bit of cubic root")
		delta := int32(s) - i - 1
		var d bn254.GT
		if delta < 0 {
			div := new(big.Int).Exp(big.NewInt(3), big.NewInt(int64(-delta)), nil)
			e2 := new(big.Int).Div(exp, div)
			d = gtExp(r, e2)
		} else {
			e2 := new(big.Int).Exp(big.NewInt(3), big.NewInt(int64(delta)), nil)
			d = gtExp(r, e2)
		}

		var ccSq bn254.GT
		ccSq.Mul(&cc, &cc)

		curCubed := gtExp(cur, big.NewInt(3))

		switch {
		case d.Equal(&cc):
			h.Mul(&h, &cur)
			r.Mul(&r, &curCubed)
		case d.Equal(&ccSq):
			var curSq bn254.GT
			curSq.Mul(&cur, &cur)
			h.Mul(&h, &curSq)
			var curCubedSq bn254.GT
			curCubedSq.Mul(&curCubed, &curCubed)
			r.Mul(&r, &curCubedSq)
		}

		cur = gtExp(cur, big.NewInt(3))
	}

	out := gtExp(a.GT, k)
	out.Mul(&out, &h)

	check := new(big.Int).Add(new(big.Int).Mul(big.NewInt(3), k), big.NewInt(1))
	if t.Cmp(check) == 0 {
		out.Inverse(&out)
	}

	cubed := gtExp(out, big.NewInt(3))
	if !cubed.Equal(&a.GT) {
		panic("tonelli_shanks_cubic: recovered value is not a cube root of a")
	}
	return GT{out}
}

func gtExp(x bn254.GT, k *big.Int) bn254.GT {
	var z bn254.GT
	z.Exp(x, k)
	return z
}
