package ops

import "github.com/caballa/wrapped-intervals/lattice"

// Compare evaluates pred over a, b and returns a three-valued answer. It
// checks feasibility of pred and of its negation independently: if only
// one is feasible the answer is definite, if both are feasible the
// concrete operands could go either way so the answer is Maybe.
func Compare(pred Predicate, a, b lattice.Wrapped) lattice.TriState {
	lattice.MustSameWidth(a, b)
	if a.IsBot() || b.IsBot() {
		return lattice.False
	}
	pTrue := feasible(pred, a, b)
	pFalse := feasible(pred.Negate(), a, b)
	switch {
	case pTrue && !pFalse:
		return lattice.True
	case !pTrue && pFalse:
		return lattice.False
	default:
		return lattice.Maybe
	}
}

// feasible reports whether pred can hold for some concrete pair drawn
// from a and b. EQ/NE are answered directly via Meet/constant comparison;
// the ordering predicates pole-split both operands (ssplit for the
// unsigned forms, nsplit for the signed ones, since an ordering predicate
// is only a simple bound check within a single non-wrapping/sign-uniform
// piece) and ask whether any split pair's corner check admits pred.
func feasible(pred Predicate, a, b lattice.Wrapped) bool {
	switch pred {
	case EQ:
		return !lattice.Meet(a, b).IsBot()
	case NE:
		return !(a.IsConstant() && b.IsConstant() && a.Lb() == b.Lb())
	}
	split := lattice.SSplit
	if pred.IsSigned() {
		split = lattice.NSplit
	}
	for _, pa := range split(a) {
		for _, pb := range split(b) {
			if cornerFeasible(pred, pa, pb) {
				return true
			}
		}
	}
	return false
}

func cornerFeasible(pred Predicate, s, t lattice.Wrapped) bool {
	w := s.Width()
	switch pred {
	case ULT:
		return w.ULt(s.Lb(), t.Ub())
	case ULE:
		return w.ULe(s.Lb(), t.Ub())
	case UGT:
		return w.UGt(s.Ub(), t.Lb())
	case UGE:
		return w.UGe(s.Ub(), t.Lb())
	case SLT:
		return w.SLt(s.Lb(), t.Ub())
	case SLE:
		return w.SLe(s.Lb(), t.Ub())
	case SGT:
		return w.SGt(s.Ub(), t.Lb())
	case SGE:
		return w.SGe(s.Ub(), t.Lb())
	}
	return false
}
