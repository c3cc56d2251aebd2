package pairing

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// lineCoeffs is the sparse Fq12 line-function coefficient triple produced
// by one doubling or addition step of the Jacobian Miller loop precompute.
// Only three of the twelve Fq12 coordinates are nonzero, which is what
// lets multi_miller_loop use the 034-sparse multiplication instead of a
// dense Fq12 product.
type lineCoeffs struct {
	r0, r1, r2 bn254.E2
}

// G2Prepared is the Jacobian-path precomputation of a G2 point: the
// sequence of line coefficients the Miller loop needs, computed once per
// point and reused across every pairing that point participates in.
type G2Prepared struct {
	Coeffs     []lineCoeffs
	IsInfinity bool
}

// NewG2Prepared builds the Jacobian line-coefficient sequence for q via
// Algorithms 26 and 27 of https://eprint.iacr.org/2010/354.pdf, walking
// sixUPlus2NAF from its most significant digit down. Constant-time:
// every digit of sixUPlus2NAF takes the same doubling/(no-op or addition)
// path regardless of q.
func NewG2Prepared(q bn254.G2Affine) G2Prepared {
	if q.IsInfinity() {
		return G2Prepared{IsInfinity: true}
	}

	var r bn254.G2Jac
	r.X.Set(&q.X)
	r.Y.Set(&q.Y)
	r.Z.SetOne()

	var negQ bn254.G2Affine
	negQ.X.Set(&q.X)
	negQ.Y.Neg(&q.Y)

	coeffs := make([]lineCoeffs, 0, len(sixUPlus2NAF)+1)

	for i := len(sixUPlus2NAF) - 1; i >= 1; i-- {
		coeffs = append(coeffs, doublingStepJac(&r))
		switch sixUPlus2NAF[i-1] {
		case 1:
			coeffs = append(coeffs, additionStepJac(&r, &q))
		case -1:
			coeffs = append(coeffs, additionStepJac(&r, &negQ))
		}
	}

	q1 := frobeniusTwistQ1(&q)
	coeffs = append(coeffs, additionStepJac(&r, &q1))

	minusQ2 := frobeniusTwistMinusQ2(&q)
	coeffs = append(coeffs, additionStepJac(&r, &minusQ2))

	return G2Prepared{Coeffs: coeffs}
}

// frobeniusTwistQ1 computes q^q, the image of q under the q-power
// Frobenius twisted back into G2 coordinates.
func frobeniusTwistQ1(q *bn254.G2Affine) bn254.G2Affine {
	var q1 bn254.G2Affine
	q1.X.A0.Set(&q.X.A0)
	q1.X.A1.Neg(&q.X.A1)
	q1.X.Mul(&q1.X, &frobeniusCoeffFq6C1_1)

	q1.Y.A0.Set(&q.Y.A0)
	q1.Y.A1.Neg(&q.Y.A1)
	q1.Y.Mul(&q1.Y, &xiToQMinus1Over2)
	return q1
}

// frobeniusTwistMinusQ2 computes -q^{q²} twisted back into G2 coordinates.
func frobeniusTwistMinusQ2(q *bn254.G2Affine) bn254.G2Affine {
	var minusQ2 bn254.G2Affine
	minusQ2.X.Mul(&q.X, &frobeniusCoeffFq6C1_2)
	minusQ2.Y.Set(&q.Y)
	return minusQ2
}

// doublingStepJac is Algorithm 26: it doubles r in place and returns the
// line-function coefficients for that step.
func doublingStepJac(r *bn254.G2Jac) lineCoeffs {
	var tmp0, tmp1, tmp2, tmp3, tmp4, tmp5, tmp6, zsquared bn254.E2

	tmp0.Square(&r.X)
	tmp1.Square(&r.Y)
	tmp2.Square(&tmp1)

	tmp3.Add(&tmp1, &r.X)
	tmp3.Square(&tmp3)
	tmp3.Sub(&tmp3, &tmp0)
	tmp3.Sub(&tmp3, &tmp2)
	tmp3.Double(&tmp3)

	tmp4.Double(&tmp0)
	tmp4.Add(&tmp4, &tmp0)

	tmp6.Add(&r.X, &tmp4)

	tmp5.Square(&tmp4)

	zsquared.Square(&r.Z)

	r.X.Sub(&tmp5, &tmp3)
	r.X.Sub(&r.X, &tmp3)

	r.Z.Add(&r.Z, &r.Y)
	r.Z.Square(&r.Z)
	r.Z.Sub(&r.Z, &tmp1)
	r.Z.Sub(&r.Z, &zsquared)

	r.Y.Sub(&tmp3, &r.X)
	r.Y.Mul(&r.Y, &tmp4)

	tmp2.Double(&tmp2)
	tmp2.Double(&tmp2)
	tmp2.Double(&tmp2)

	r.Y.Sub(&r.Y, &tmp2)

	// line 12 (first part), reusing tmp3 now that r.x has been finalized
	tmp3.Mul(&tmp4, &zsquared)
	tmp3.Double(&tmp3)
	tmp3.Neg(&tmp3)

	// line 14
	tmp6.Square(&tmp6)
	tmp6.Sub(&tmp6, &tmp0)
	tmp6.Sub(&tmp6, &tmp5)

	tmp1.Double(&tmp1)
	tmp1.Double(&tmp1)
	tmp6.Sub(&tmp6, &tmp1)

	// line 16 (first part); r.z here is the already-updated Z of 2r
	tmp0.Mul(&r.Z, &zsquared)
	tmp0.Double(&tmp0)

	return lineCoeffs{r0: tmp0, r1: tmp3, r2: tmp6}
}

// additionStepJac is Algorithm 27: it adds affine q into Jacobian r in
// place and returns the line-function coefficients for that step.
func additionStepJac(r *bn254.G2Jac, q *bn254.G2Affine) lineCoeffs {
	var zsquared, ysquared, t0, t1, t2, t3, t4, t5, t6, t7, t8, t9, t10, ztsquared bn254.E2

	zsquared.Square(&r.Z)
	ysquared.Square(&q.Y)

	t0.Mul(&zsquared, &q.X)

	t1.Add(&q.Y, &r.Z)
	t1.Square(&t1)
	t1.Sub(&t1, &ysquared)
	t1.Sub(&t1, &zsquared)
	t1.Mul(&t1, &zsquared)

	t2.Sub(&t0, &r.X)

	t3.Square(&t2)

	t4.Double(&t3)
	t4.Double(&t4)

	t5.Mul(&t4, &t2)

	t6.Sub(&t1, &r.Y)
	t6.Sub(&t6, &r.Y)

	t9.Mul(&t6, &q.X)

	t7.Mul(&t4, &r.X)

	r.X.Square(&t6)
	r.X.Sub(&r.X, &t5)
	r.X.Sub(&r.X, &t7)
	r.X.Sub(&r.X, &t7)

	r.Z.Add(&r.Z, &t2)
	r.Z.Square(&r.Z)
	r.Z.Sub(&r.Z, &zsquared)
	r.Z.Sub(&r.Z, &t3)

	t10.Add(&q.Y, &r.Z)

	t8.Sub(&t7, &r.X)
	t8.Mul(&t8, &t6)

	t0.Mul(&r.Y, &t5)
	t0.Double(&t0)

	r.Y.Sub(&t8, &t0)

	t10.Square(&t10)
	t10.Sub(&t10, &ysquared)

	ztsquared.Square(&r.Z)
	t10.Sub(&t10, &ztsquared)

	t9.Double(&t9)
	t9.Sub(&t9, &t10)

	t10.Double(&r.Z)

	t6.Neg(&t6)
	t1.Double(&t6)

	return lineCoeffs{r0: t10, r1: t1, r2: t9}
}
