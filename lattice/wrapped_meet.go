package lattice

// binaryMeet mirrors binaryJoin's case analysis: containment picks the
// smaller operand, one-covers-the-other picks whichever side has the
// smaller cardinality instead of jumping to Top, overlap picks the shared
// arc instead of the union, and disjoint arcs meet to Bot rather than
// picking a candidate by cardinality.
func binaryMeet(s, t Wrapped) Wrapped {
	checkWidthMatch(s.w, t.w)
	if s.IsBot() || t.IsBot() {
		return Bot(s.w)
	}
	if s.IsTop() {
		return t
	}
	if t.IsTop() {
		return s
	}
	if s.Leq(t) {
		return s
	}
	if t.Leq(s) {
		return t
	}
	aInT, bInT := t.Contains(s.lb), t.Contains(s.ub)
	cInS, dInS := s.Contains(t.lb), s.Contains(t.ub)
	switch {
	case aInT && bInT && cInS && dInS:
		if s.Cardinality().Cmp(t.Cardinality()) <= 0 {
			return s
		}
		return t
	case bInT && cInS && !aInT && !dInS:
		return FromBounds(s.w, t.lb, s.ub)
	case aInT && dInS && !bInT && !cInS:
		return FromBounds(s.w, s.lb, t.ub)
	default:
		return Bot(s.w)
	}
}

// Meet ssplits both operands at the south pole, meets every pair of the
// resulting pieces, and folds the non-bottom results with GeneralizedJoin
// so the outer combination stays as tight as the join side of the domain.
func Meet(s, t Wrapped) Wrapped {
	checkWidthMatch(s.w, t.w)
	ss, ts := SSplit(s), SSplit(t)
	var kept []Wrapped
	for _, a := range ss {
		for _, b := range ts {
			if m := binaryMeet(a, b); !m.IsBot() {
				kept = append(kept, m)
			}
		}
	}
	if len(kept) == 0 {
		return Bot(s.w)
	}
	if len(kept) == 1 {
		return kept[0]
	}
	return GeneralizedJoin(kept)
}
