package pairing

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// OnProveMillerTerm pairs a G1 point with the affine-path precomputation
// of its partner G2 point, consumed by the on-prove-pairing Miller loop
// variants.
type OnProveMillerTerm struct {
	P bn254.G1Affine
	Q G2OnProvePrepared
}

type activeOnProveTerm struct {
	p      *bn254.G1Affine
	coeffs []OnProveCoeff
	idx    int
}

func (a *activeOnProveTerm) next() *OnProveCoeff {
	c := &a.coeffs[a.idx]
	a.idx++
	return c
}

func buildActiveOnProveTerms(terms []OnProveMillerTerm) []*activeOnProveTerm {
	actives := make([]*activeOnProveTerm, 0, len(terms))
	for i := range terms {
		t := &terms[i]
		if t.P.IsInfinity() || t.Q.IsInfinity {
			continue
		}
		coeffs := t.Q.Coeffs()
		if len(coeffs) != expectedG2PreparedCoeffLen {
			panic("G2OnProvePrepared coefficient list has unexpected length")
		}
		actives = append(actives, &activeOnProveTerm{p: &t.P, coeffs: coeffs})
	}
	return actives
}

func assertOnProveTermsExhausted(actives []*activeOnProveTerm) {
	for _, a := range actives {
		if a.idx != len(a.coeffs) {
			panic("G2OnProvePrepared coefficients were not fully consumed")
		}
	}
}

// ellOnProve folds one affine-path (slope, bias) line coefficient into
// the Miller loop accumulator. Its sparse-coordinate shape differs from
// ellJac's, so the two paths' intermediate Fq12 values are not
// comparable; only their final-exponentiated results agree.
func ellOnProve(f *bn254.GT, coeff *OnProveCoeff, p *bn254.G1Affine) {
	var c0, c1 bn254.E2
	c0.A0.Neg(&p.Y)
	c0.A1.SetZero()
	c1.MulByElement(&coeff.Alpha, &p.X)
	f.MulBy034(&c0, &c1, &coeff.Bias)
}

// MultiMillerLoopOnProvePairingPrepare evaluates the affine-path Miller
// loop, the one a verifier circuit replays line-by-line against the
// (slope, bias) identities in G2OnProvePrepared.
func MultiMillerLoopOnProvePairingPrepare(terms []OnProveMillerTerm) GT {
	actives := buildActiveOnProveTerms(terms)

	var f bn254.GT
	f.SetOne()

	for i := len(sixUPlus2NAF) - 1; i >= 1; i-- {
		if i != len(sixUPlus2NAF)-1 {
			f.Square(&f)
		}
		for _, a := range actives {
			ellOnProve(&f, a.next(), a.p)
		}
		switch sixUPlus2NAF[i-1] {
		case 1, -1:
			for _, a := range actives {
				ellOnProve(&f, a.next(), a.p)
			}
		}
	}

	for _, a := range actives {
		ellOnProve(&f, a.next(), a.p)
	}
	for _, a := range actives {
		ellOnProve(&f, a.next(), a.p)
	}

	assertOnProveTermsExhausted(actives)
	return GT{f}
}
