package ops

import (
	"math/big"

	"github.com/caballa/wrapped-intervals/lattice"
)

// ArithBinOp evaluates one of {add,sub,mul,sdiv,udiv,srem,urem} over two
// wrapped interval operands of the same width. Bottom propagates through
// every arithmetic operator; Top propagates through every one of them too,
// since none of these operators can tighten a fully unconstrained operand
// the way the bitwise operators sometimes can.
func ArithBinOp(op ArithOp, a, b lattice.Wrapped) lattice.Wrapped {
	w := lattice.MustSameWidth(a, b)
	if a.IsBot() || b.IsBot() {
		return lattice.Bot(w)
	}
	if a.IsTop() || b.IsTop() {
		return lattice.Top(w)
	}
	switch op {
	case Add:
		return addSub(w, a, b, false)
	case Sub:
		return addSub(w, a, b, true)
	case Mul:
		return mul(w, a, b)
	case SDiv:
		return divRem(op, w, a, b, true, false)
	case UDiv:
		return divRem(op, w, a, b, false, false)
	case SRem:
		return divRem(op, w, a, b, true, true)
	case URem:
		return divRem(op, w, a, b, false, true)
	}
	panic("ops: unreachable arith op")
}

func twoToW(w lattice.Width) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(w))
}

// addSub implements Add/Sub of §4.6: the sum of cardinalities is checked
// first against 2^w, since if the combined spread exceeds the circle the
// result would have to be the whole circle, i.e. Top. Otherwise addition
// shifts both bounds by the other operand's matching bound and
// subtraction shifts by the other operand's opposite bound, both modular.
func addSub(w lattice.Width, a, b lattice.Wrapped, sub bool) lattice.Wrapped {
	sum := new(big.Int).Add(a.Cardinality(), b.Cardinality())
	if sum.Cmp(twoToW(w)) > 0 {
		lattice.NotifyOverflow()
		return lattice.Top(w)
	}
	if !sub {
		return lattice.FromBounds(w, w.Add(a.Lb(), b.Lb()), w.Add(a.Ub(), b.Ub()))
	}
	return lattice.FromBounds(w, w.Sub(a.Lb(), b.Ub()), w.Sub(a.Ub(), b.Lb()))
}

// mul applies psplit to both operands; on each of the up to sixteen pairs
// whose signs are now uniform, it computes the corner product that
// matches the pair's sign combination, signals Top on that pair's own
// overflow, and folds every pair's result with GeneralizedJoin so the
// outer combination does not compound associativity error the way a
// sequence of binary joins would.
func mul(w lattice.Width, a, b lattice.Wrapped) lattice.Wrapped {
	as, bs := lattice.PSplit(a), lattice.PSplit(b)
	parts := make([]lattice.Wrapped, 0, len(as)*len(bs))
	for _, pa := range as {
		for _, pb := range bs {
			parts = append(parts, mulPair(w, pa, pb))
		}
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return lattice.GeneralizedJoin(parts)
}

func mulPair(w lattice.Width, a, b lattice.Wrapped) lattice.Wrapped {
	aNeg := w.ToSigned(a.Lb()) < 0 && w.ToSigned(a.Ub()) < 0
	aPos := w.ToSigned(a.Lb()) >= 0 && w.ToSigned(a.Ub()) >= 0
	bNeg := w.ToSigned(b.Lb()) < 0 && w.ToSigned(b.Ub()) < 0
	bPos := w.ToSigned(b.Lb()) >= 0 && w.ToSigned(b.Ub()) >= 0

	var lb, ub lattice.MachineInt
	switch {
	case aPos && bPos:
		lb, ub = w.Mul(a.Lb(), b.Lb()), w.Mul(a.Ub(), b.Ub())
	case aNeg && bNeg:
		lb, ub = w.Mul(a.Ub(), b.Ub()), w.Mul(a.Lb(), b.Lb())
	case aNeg && bPos:
		lb, ub = w.Mul(a.Lb(), b.Ub()), w.Mul(a.Ub(), b.Lb())
	case aPos && bNeg:
		lb, ub = w.Mul(a.Ub(), b.Lb()), w.Mul(a.Lb(), b.Ub())
	default:
		// psplit guarantees every piece is sign-uniform, so one of the
		// four cases above always matches and this default is not reached.
		lb, ub = w.Mul(a.Lb(), b.Lb()), w.Mul(a.Ub(), b.Ub())
	}

	if mulOverflows(w, a, b) {
		lattice.NotifyOverflow()
		return lattice.Top(w)
	}
	return lattice.FromBounds(w, lb, ub)
}

// mulOverflows reports whether the exact mathematical product range of a
// and b, computed with arbitrary precision over each bound's signed
// reading, exceeds the span a single non-wrapping box at width w can hold.
func mulOverflows(w lattice.Width, a, b lattice.Wrapped) bool {
	corners := []*big.Int{
		new(big.Int).Mul(signedBig(w, a.Lb()), signedBig(w, b.Lb())),
		new(big.Int).Mul(signedBig(w, a.Lb()), signedBig(w, b.Ub())),
		new(big.Int).Mul(signedBig(w, a.Ub()), signedBig(w, b.Lb())),
		new(big.Int).Mul(signedBig(w, a.Ub()), signedBig(w, b.Ub())),
	}
	min, max := new(big.Int).Set(corners[0]), new(big.Int).Set(corners[0])
	for _, c := range corners[1:] {
		if c.Cmp(min) < 0 {
			min = c
		}
		if c.Cmp(max) > 0 {
			max = c
		}
	}
	span := new(big.Int).Sub(max, min)
	return span.Cmp(new(big.Int).Sub(twoToW(w), big.NewInt(1))) > 0
}

func signedBig(w lattice.Width, m lattice.MachineInt) *big.Int {
	return big.NewInt(w.ToSigned(m))
}

// divRem implements Div/Rem of §4.6. Division by an interval that contains
// zero is a precondition violation the caller must have already excluded.
// Signed division nsplits both operands (quotient is monotone within a
// sign-uniform quadrant); unsigned division ssplits both operands. Per the
// design decision recorded in DESIGN.md, remainder does not use the
// classical four-corner formula — it is not monotone in its operands the
// way quotient is — it psplits both operands, so every dividend piece has
// a single sign, and each split pair is resolved exactly when both pieces
// are constants, and conservatively bounded otherwise.
func divRem(op ArithOp, w lattice.Width, a, b lattice.Wrapped, signed, rem bool) lattice.Wrapped {
	if b.Contains(0) {
		panic(lattice.ErrDivByZero(op.String()))
	}
	var as, bs []lattice.Wrapped
	switch {
	case rem:
		as, bs = lattice.PSplit(a), lattice.PSplit(b)
	case signed:
		as, bs = lattice.NSplit(a), lattice.NSplit(b)
	default:
		as, bs = lattice.SSplit(a), lattice.SSplit(b)
	}
	parts := make([]lattice.Wrapped, 0, len(as)*len(bs))
	for _, pa := range as {
		for _, pb := range bs {
			if rem {
				parts = append(parts, remPair(w, pa, pb, signed))
			} else {
				parts = append(parts, divPair(w, pa, pb, signed))
			}
		}
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return lattice.GeneralizedJoin(parts)
}

func divPair(w lattice.Width, a, b lattice.Wrapped, signed bool) lattice.Wrapped {
	divide := w.UDiv
	less, greater := w.ULt, w.UGt
	if signed {
		divide = w.SDiv
		less, greater = w.SLt, w.SGt
	}
	divisorBound := func(x lattice.MachineInt) lattice.MachineInt {
		if x == 0 {
			return 1
		}
		return x
	}
	bl, bu := divisorBound(b.Lb()), divisorBound(b.Ub())
	corners := [4]lattice.MachineInt{
		divide(a.Lb(), bl), divide(a.Lb(), bu), divide(a.Ub(), bl), divide(a.Ub(), bu),
	}
	lb, ub := corners[0], corners[0]
	for _, c := range corners[1:] {
		if less(c, lb) {
			lb = c
		}
		if greater(c, ub) {
			ub = c
		}
	}
	return lattice.FromBounds(w, lb, ub)
}

// remPair resolves one split pair's remainder exactly when the pair
// denotes a single divisor magnitude (the divisor piece is a constant),
// and conservatively bounds it to [0, max(|divisor|)-1], mirrored onto the
// dividend's sign, otherwise.
func remPair(w lattice.Width, a, b lattice.Wrapped, signed bool) lattice.Wrapped {
	if a.IsConstant() && b.IsConstant() {
		if signed {
			return lattice.Singleton(w, w.SRem(a.Lb(), b.Lb()))
		}
		return lattice.Singleton(w, w.URem(a.Lb(), b.Lb()))
	}
	maxMagnitude := remBoundMagnitude(w, b, signed)
	if maxMagnitude == 0 {
		return lattice.Singleton(w, 0)
	}
	bound := w.Sub(maxMagnitude, 1)
	if !signed {
		return lattice.FromBounds(w, 0, bound)
	}
	if w.SLe(a.Lb(), 0) && w.SLe(a.Ub(), 0) {
		return lattice.FromBounds(w, w.Neg(bound), 0)
	}
	return lattice.FromBounds(w, 0, bound)
}

func remBoundMagnitude(w lattice.Width, b lattice.Wrapped, signed bool) lattice.MachineInt {
	if signed {
		mag := func(x lattice.MachineInt) lattice.MachineInt {
			if w.ToSigned(x) < 0 {
				return w.Neg(x)
			}
			return x
		}
		la, lb := mag(b.Lb()), mag(b.Ub())
		if w.UGt(la, lb) {
			return la
		}
		return lb
	}
	if w.UGt(b.Lb(), b.Ub()) {
		return b.Lb()
	}
	return b.Ub()
}
