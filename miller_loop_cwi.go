package pairing

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// MultiMillerLoopCWi evaluates the Jacobian-path Miller loop with the
// residue witness (c, wi) folded in, so the result must equal the group
// identity: f*wi is, by construction, an r-th residue whose Miller loop
// value is exactly 1 once c cancels the non-residue part of the
// accumulator ("On Proving Pairings", eprint 2024/640, Algorithm 5). A
// result other than 1 is a mathematical impossibility, not a recoverable
// condition, so it panics rather than returning a boolean.
func MultiMillerLoopCWi(c, wi GT, terms []MillerTerm) GT {
	actives := buildActiveJacTerms(terms)

	cRaw := c.GT
	var cInv bn254.GT
	cInv.Inverse(&cRaw)
	f := cInv

	for i := len(sixUPlus2NAF) - 1; i >= 1; i-- {
		x := sixUPlus2NAF[i-1]
		f.Square(&f)
		switch x {
		case 1:
			f.Mul(&f, &cInv)
		case -1:
			f.Mul(&f, &cRaw)
		}

		for _, a := range actives {
			ellJac(&f, a.next(), a.p)
		}

		switch x {
		case 1, -1:
			for _, a := range actives {
				ellJac(&f, a.next(), a.p)
			}
		}
	}

	var cInvP bn254.GT
	cInvP.Frobenius(&cInv)
	f.Mul(&f, &cInvP)

	var cP2 bn254.GT
	cP2.FrobeniusSquare(&cRaw)
	f.Mul(&f, &cP2)

	var cInvP3 bn254.GT
	cInvP3.FrobeniusCube(&cInv)
	f.Mul(&f, &cInvP3)

	f.Mul(&f, &wi.GT)

	for _, a := range actives {
		ellJac(&f, a.next(), a.p)
	}
	for _, a := range actives {
		ellJac(&f, a.next(), a.p)
	}

	assertJacTermsExhausted(actives)
	if !f.IsOne() {
		panic("multi_miller_loop_c_wi: residue witness check failed, f != 1")
	}
	return GT{f}
}

// negatedG2Affine returns -q (y negated), used to walk the -1 NAF digits
// of the on-prove variant's evaluation-time re-verification.
func negatedG2Affine(q *bn254.G2Affine) bn254.G2Affine {
	var neg bn254.G2Affine
	neg.X.Set(&q.X)
	neg.Y.Neg(&q.Y)
	return neg
}

// MultiMillerLoopOnProvePairing is the affine-path counterpart of
// MultiMillerLoopCWi: it replays the same (slope, bias) identity checks
// G2OnProvePrepared already verified at construction time, this time
// against a freshly tracked affine accumulator per term, folds in the
// residue witness, and asserts the result is 1.
func MultiMillerLoopOnProvePairing(c, wi GT, terms []OnProveMillerTerm) GT {
	type frobeniusPair struct {
		q1, minusQ2 bn254.G2Affine
	}
	type active struct {
		p      *bn254.G1Affine
		coeffs []OnProveCoeff
		idx    int
		q      bn254.G2Affine
		initQ  bn254.G2Affine
		frob   frobeniusPair
	}

	actives := make([]*active, 0, len(terms))
	for i := range terms {
		t := &terms[i]
		if t.P.IsInfinity() || t.Q.IsInfinity {
			continue
		}
		coeffs := t.Q.Coeffs()
		if len(coeffs) != expectedG2PreparedCoeffLen {
			panic("G2OnProvePrepared coefficient list has unexpected length")
		}
		initQ := t.Q.InitQ()
		actives = append(actives, &active{
			p:      &t.P,
			coeffs: coeffs,
			q:      initQ,
			initQ:  initQ,
			frob: frobeniusPair{
				q1:      frobeniusTwistQ1(&initQ),
				minusQ2: frobeniusTwistMinusQ2(&initQ),
			},
		})
	}
	next := func(a *active) *OnProveCoeff {
		c := &a.coeffs[a.idx]
		a.idx++
		return c
	}

	cRaw := c.GT
	var cInv bn254.GT
	cInv.Inverse(&cRaw)
	f := cInv

	for i := len(sixUPlus2NAF) - 1; i >= 1; i-- {
		x := sixUPlus2NAF[i-1]
		f.Square(&f)
		switch x {
		case 1:
			f.Mul(&f, &cInv)
		case -1:
			f.Mul(&f, &cRaw)
		}

		for _, a := range actives {
			coeff := next(a)
			onProveDoubleVerifyMutate(&coeff.Alpha, &coeff.Bias, &a.q)
			ellOnProve(&f, coeff, a.p)
		}

		switch x {
		case 1:
			for _, a := range actives {
				coeff := next(a)
				onProveAdditionVerifyMutate(&coeff.Alpha, &coeff.Bias, &a.q, &a.initQ)
				ellOnProve(&f, coeff, a.p)
			}
		case -1:
			for _, a := range actives {
				neg := negatedG2Affine(&a.initQ)
				coeff := next(a)
				onProveAdditionVerifyMutate(&coeff.Alpha, &coeff.Bias, &a.q, &neg)
				ellOnProve(&f, coeff, a.p)
			}
		}
	}

	var cInvP bn254.GT
	cInvP.Frobenius(&cInv)
	f.Mul(&f, &cInvP)

	var cP2 bn254.GT
	cP2.FrobeniusSquare(&cRaw)
	f.Mul(&f, &cP2)

	var cInvP3 bn254.GT
	cInvP3.FrobeniusCube(&cInv)
	f.Mul(&f, &cInvP3)

	f.Mul(&f, &wi.GT)

	for _, a := range actives {
		coeff := next(a)
		onProveAdditionVerifyMutate(&coeff.Alpha, &coeff.Bias, &a.q, &a.frob.q1)
		ellOnProve(&f, coeff, a.p)
	}
	for _, a := range actives {
		coeff := next(a)
		onProveAdditionVerifyMutate(&coeff.Alpha, &coeff.Bias, &a.q, &a.frob.minusQ2)
		ellOnProve(&f, coeff, a.p)
	}

	for _, a := range actives {
		if a.idx != len(a.coeffs) {
			panic("G2OnProvePrepared coefficients were not fully consumed")
		}
	}
	if !f.IsOne() {
		panic("multi_miller_loop_on_prove_pairing: residue witness check failed, f != 1")
	}
	return GT{f}
}

// onProveDoubleVerifyMutate checks (alpha, bias) is a valid tangent line
// at r and advances r in place to the doubled point it implies.
func onProveDoubleVerifyMutate(alpha, bias *bn254.E2, r *bn254.G2Affine) {
	two, three := fq2Two(), fq2Three()

	var lhs bn254.E2
	lhs.Mul(alpha, &r.X)
	lhs.Add(&lhs, bias)
	lhs.Sub(&r.Y, &lhs)
	if !lhs.IsZero() {
		panic("on-prove doubling re-check: point does not lie on its own tangent line")
	}

	var tangent, xSq3 bn254.E2
	tangent.Mul(&r.Y, &two)
	tangent.Mul(&tangent, alpha)
	xSq3.Square(&r.X)
	xSq3.Mul(&xSq3, &three)
	tangent.Sub(&tangent, &xSq3)
	if !tangent.IsZero() {
		panic("on-prove doubling re-check: slope does not satisfy 2y*alpha = 3x^2")
	}

	var x3, y3, twoX bn254.E2
	x3.Square(alpha)
	twoX.Mul(&r.X, &two)
	x3.Sub(&x3, &twoX)

	y3.Mul(alpha, &x3)
	y3.Add(&y3, bias)
	y3.Neg(&y3)

	r.X, r.Y = x3, y3
}

// onProveAdditionVerifyMutate checks (alpha, bias) is a valid secant line
// through r and p, and advances r in place to the sum it implies.
func onProveAdditionVerifyMutate(alpha, bias *bn254.E2, r *bn254.G2Affine, p *bn254.G2Affine) {
	checkOnLine := func(x, y *bn254.E2, what string) {
		var lhs bn254.E2
		lhs.Mul(alpha, x)
		lhs.Add(&lhs, bias)
		lhs.Sub(y, &lhs)
		if !lhs.IsZero() {
			panic("on-prove addition re-check: " + what + " does not lie on the claimed secant line")
		}
	}
	checkOnLine(&r.X, &r.Y, "accumulator point")
	checkOnLine(&p.X, &p.Y, "addend point")

	var x3, y3 bn254.E2
	x3.Square(alpha)
	x3.Sub(&x3, &r.X)
	x3.Sub(&x3, &p.X)

	y3.Mul(alpha, &x3)
	y3.Add(&y3, bias)
	y3.Neg(&y3)

	r.X, r.Y = x3, y3
}
