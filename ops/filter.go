package ops

import "github.com/caballa/wrapped-intervals/lattice"

// FilterSigma narrows self to the subset of its values consistent with
// pred(self, other) having held, i.e. self ∩ {x : ∃y∈other, x pred y}.
// Ordering predicates pole-split self the same way Compare does (ssplit
// for unsigned, nsplit for signed, since within one such piece the
// predicate degenerates to a plain half-line test), split other the same
// way, and meet each self piece against the half-line implied by each
// piece of other, discarding pairs that become infeasible and joining
// what remains. EQ/NE do not need a split: EQ
// narrows directly to the meet with other, and NE can only be expressed
// exactly in this domain when it collapses a self/other pair of equal
// singletons to bottom.
func FilterSigma(pred Predicate, self, other lattice.Wrapped) lattice.Wrapped {
	w := lattice.MustSameWidth(self, other)
	if self.IsBot() || other.IsBot() {
		return lattice.Bot(w)
	}
	switch pred {
	case EQ:
		return lattice.Meet(self, other)
	case NE:
		if self.IsConstant() && other.IsConstant() && self.Eq(other) {
			return lattice.Bot(w)
		}
		return self
	}

	split := lattice.SSplit
	if pred.IsSigned() {
		split = lattice.NSplit
	}
	pieces, others := split(self), split(other)
	parts := make([]lattice.Wrapped, 0, len(pieces)*len(others))
	for _, p := range pieces {
		for _, q := range others {
			if q.IsTop() {
				parts = append(parts, p)
				continue
			}
			refined := lattice.Meet(p, halfLine(pred, w, q))
			if !refined.IsBot() {
				parts = append(parts, refined)
			}
		}
	}
	if len(parts) == 0 {
		return lattice.Bot(w)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return lattice.GeneralizedJoin(parts)
}

// halfLine is the set of values that could satisfy pred against some
// concrete value drawn from other: an interval anchored at one extreme of
// the representable range (or of the sign-uniform hemisphere, for the
// signed predicates) and bounded by other's matching corner. The strict
// variants guard against decrementing/incrementing past the extreme,
// since e.g. "< other.Ub()" when other.Ub() is already the minimum
// representable value admits nothing at all, not the whole circle that a
// naive decrement-and-wrap would produce.
func halfLine(pred Predicate, w lattice.Width, other lattice.Wrapped) lattice.Wrapped {
	switch pred {
	case ULT:
		if other.Ub() == w.MinU() {
			return lattice.Bot(w)
		}
		return lattice.FromBounds(w, w.MinU(), w.Sub(other.Ub(), 1))
	case ULE:
		return lattice.FromBounds(w, w.MinU(), other.Ub())
	case UGT:
		if other.Lb() == w.MaxU() {
			return lattice.Bot(w)
		}
		return lattice.FromBounds(w, w.Add(other.Lb(), 1), w.MaxU())
	case UGE:
		return lattice.FromBounds(w, other.Lb(), w.MaxU())
	case SLT:
		if other.Ub() == w.MinS() {
			return lattice.Bot(w)
		}
		return lattice.FromBounds(w, w.MinS(), w.Sub(other.Ub(), 1))
	case SLE:
		return lattice.FromBounds(w, w.MinS(), other.Ub())
	case SGT:
		if other.Lb() == w.MaxS() {
			return lattice.Bot(w)
		}
		return lattice.FromBounds(w, w.Add(other.Lb(), 1), w.MaxS())
	case SGE:
		return lattice.FromBounds(w, other.Lb(), w.MaxS())
	}
	return lattice.Top(w)
}
