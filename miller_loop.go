package pairing

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// expectedG2PreparedCoeffLen is the exact number of line-coefficient
// entries every G2Prepared/G2OnProvePrepared must carry: one doubling
// step per digit of sixUPlus2NAF below the leading one, one extra addition step per nonzero
// digit (excluding the implicit leading one), and two final addition
// steps folding in the Frobenius twist. Computed once so every Miller
// loop variant can validate a term's coefficient list length on entry
// instead of discovering a mismatch only when the iterator runs dry.
var expectedG2PreparedCoeffLen = func() int {
	n := len(sixUPlus2NAF) - 1
	for i := 0; i < len(sixUPlus2NAF)-1; i++ {
		if sixUPlus2NAF[i] != 0 {
			n++
		}
	}
	return n + 2
}()

// MillerTerm pairs a G1 point with the Jacobian-path precomputation of
// its partner G2 point, the unit multi_miller_loop consumes.
type MillerTerm struct {
	P bn254.G1Affine
	Q G2Prepared
}

type activeJacTerm struct {
	p      *bn254.G1Affine
	coeffs []lineCoeffs
	idx    int
}

func (a *activeJacTerm) next() *lineCoeffs {
	c := &a.coeffs[a.idx]
	a.idx++
	return c
}

// buildActiveJacTerms drops identity G1 points and zero G2Prepared values,
// which contribute nothing to the accumulator, and validates every
// surviving term's coefficient count up front.
func buildActiveJacTerms(terms []MillerTerm) []*activeJacTerm {
	actives := make([]*activeJacTerm, 0, len(terms))
	for i := range terms {
		t := &terms[i]
		if t.P.IsInfinity() || t.Q.IsInfinity {
			continue
		}
		if len(t.Q.Coeffs) != expectedG2PreparedCoeffLen {
			panic("G2Prepared coefficient list has unexpected length")
		}
		actives = append(actives, &activeJacTerm{p: &t.P, coeffs: t.Q.Coeffs})
	}
	return actives
}

func assertJacTermsExhausted(actives []*activeJacTerm) {
	for _, a := range actives {
		if a.idx != len(a.coeffs) {
			panic("G2Prepared coefficients were not fully consumed")
		}
	}
}

// ellJac folds one Jacobian-path line coefficient into the Miller loop
// accumulator via the 034-sparse Fq12 multiplication.
func ellJac(f *bn254.GT, lc *lineCoeffs, p *bn254.G1Affine) {
	var c0, c1 bn254.E2
	c0.MulByElement(&lc.r0, &p.Y)
	c1.MulByElement(&lc.r1, &p.X)
	f.MulBy034(&c0, &c1, &lc.r2)
}

// MultiMillerLoop evaluates the Jacobian-path Miller loop over terms,
// accumulating the sparse line-function product across every pair before
// a single shared final exponentiation. It does not call
// FinalExponentiation: the result is the raw, unexponentiated Miller loop
// value, so callers can batch many pairs through one exponentiation.
func MultiMillerLoop(terms []MillerTerm) GT {
	actives := buildActiveJacTerms(terms)

	var f bn254.GT
	f.SetOne()

	for i := len(sixUPlus2NAF) - 1; i >= 1; i-- {
		if i != len(sixUPlus2NAF)-1 {
			f.Square(&f)
		}
		for _, a := range actives {
			ellJac(&f, a.next(), a.p)
		}
		switch sixUPlus2NAF[i-1] {
		case 1, -1:
			for _, a := range actives {
				ellJac(&f, a.next(), a.p)
			}
		}
	}

	for _, a := range actives {
		ellJac(&f, a.next(), a.p)
	}
	for _, a := range actives {
		ellJac(&f, a.next(), a.p)
	}

	assertJacTermsExhausted(actives)
	return GT{f}
}
