package classical

import (
	"math/big"

	"github.com/caballa/wrapped-intervals/lattice"
)

// Add computes e1 + e2 by summing the matching bounds: the lowest
// achievable sum from the two lows, the highest from the two highs.
func (e1 Interval) Add(e2 Interval) Interval {
	checkMatch(e1, e2)
	if e1.IsBot() || e2.IsBot() {
		return Bot(e1.w, e1.signed)
	}
	return FromBounds(e1.w, e1.signed, e1.low.Plus(e2.low), e1.high.Plus(e2.high))
}

// Sub computes e1 - e2. Subtracting an interval negates which of its
// bounds contributes to each side: the smallest result comes from e1's
// low paired with e2's high, the largest from e1's high paired with e2's
// low.
func (e1 Interval) Sub(e2 Interval) Interval {
	checkMatch(e1, e2)
	if e1.IsBot() || e2.IsBot() {
		return Bot(e1.w, e1.signed)
	}
	return FromBounds(e1.w, e1.signed, e1.low.Minus(e2.high), e1.high.Minus(e2.low))
}

// Mul computes e1 * e2 via the standard four-corner formula: the product
// is monotone in neither operand alone once signs can vary, so the result
// is the min/max of all four corner products rather than a 2-corner
// monotonic shortcut. boundMul treats zero times either infinity as zero,
// the usual interval-arithmetic convention and the one place this domain
// diverges from the teacher's IntervalBound.Mult, which panics on that
// combination — a case the teacher's own Mult method never actually has
// to face since nothing in the teacher calls it on Interval-shaped data.
func (e1 Interval) Mul(e2 Interval) Interval {
	checkMatch(e1, e2)
	if e1.IsBot() || e2.IsBot() {
		return Bot(e1.w, e1.signed)
	}
	corners := [4]Bound{
		boundMul(e1.low, e2.low), boundMul(e1.low, e2.high),
		boundMul(e1.high, e2.low), boundMul(e1.high, e2.high),
	}
	low, high := corners[0], corners[0]
	for _, c := range corners[1:] {
		low = low.Min(c)
		high = high.Max(c)
	}
	return FromBounds(e1.w, e1.signed, low, high)
}

func boundMul(a, b Bound) Bound {
	if a.kind == finiteBound && a.val.Sign() == 0 {
		return FiniteInt(0)
	}
	if b.kind == finiteBound && b.val.Sign() == 0 {
		return FiniteInt(0)
	}
	if a.kind == finiteBound && b.kind == finiteBound {
		return Finite(new(big.Int).Mul(a.val, b.val))
	}
	negA := a.kind == minusInfBound || (a.kind == finiteBound && a.val.Sign() < 0)
	negB := b.kind == minusInfBound || (b.kind == finiteBound && b.val.Sign() < 0)
	if negA != negB {
		return MinusInf()
	}
	return PlusInf()
}

// Div computes e1 / e2. A divisor interval containing zero is a
// precondition violation, mirroring ops.ArithBinOp's own
// lattice.ErrDivisionByZero discipline. Within a sign-uniform divisor the
// quotient is monotone in the numerator (increasing for a positive
// divisor, decreasing for a negative one), so each result bound comes
// from a single numerator bound, divided by whichever divisor bound gives
// the more extreme quotient. An infinite numerator over an infinite
// divisor bound is taken as the signed infinity boundDiv gives it.
func (e1 Interval) Div(e2 Interval) Interval {
	checkMatch(e1, e2)
	if e1.IsBot() || e2.IsBot() {
		return Bot(e1.w, e1.signed)
	}
	if !e2.low.Gt(FiniteInt(0)) && !e2.high.Lt(FiniteInt(0)) {
		panic(lattice.ErrDivisionByZero)
	}
	var low, high Bound
	if e2.low.Gt(FiniteInt(0)) {
		low = boundDiv(e1.low, e2.low).Min(boundDiv(e1.low, e2.high))
		high = boundDiv(e1.high, e2.low).Max(boundDiv(e1.high, e2.high))
	} else {
		low = boundDiv(e1.high, e2.low).Min(boundDiv(e1.high, e2.high))
		high = boundDiv(e1.low, e2.low).Max(boundDiv(e1.low, e2.high))
	}
	return FromBounds(e1.w, e1.signed, low, high)
}

// boundDiv divides a by b where b is known (by Div's caller) to come from
// a sign-uniform, never-zero divisor side. A finite numerator over an
// infinite denominator is zero; an infinite numerator's sign combines with
// the denominator's sign by the usual rule (also when the denominator is
// infinite), which is sound here because the divisor interval always
// carries a finite bound of the same sign bounding it away from zero.
func boundDiv(a, b Bound) Bound {
	if a.kind == finiteBound && b.kind == finiteBound {
		return Finite(new(big.Int).Quo(a.val, b.val))
	}
	if a.kind == finiteBound {
		return FiniteInt(0)
	}
	negA := a.kind == minusInfBound
	negB := b.kind == minusInfBound || (b.kind == finiteBound && b.val.Sign() < 0)
	if negA != negB {
		return MinusInf()
	}
	return PlusInf()
}

// Neg computes -e1.
func (e1 Interval) Neg() Interval {
	if e1.IsBot() {
		return e1
	}
	return FromBounds(e1.w, e1.signed, e1.high.Neg(), e1.low.Neg())
}
