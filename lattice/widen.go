package lattice

import "math/big"

// WideningStrategy selects how Widen accelerates an ascending chain.
type WideningStrategy uint8

const (
	// None performs no acceleration: Widen degrades to Join, leaving
	// termination to whatever drives the fixpoint computation.
	None WideningStrategy = iota
	// Classical snaps an unstable bound straight to Top, mirroring
	// Cousot's 1976 rule of pushing an unstable bound to infinity, which
	// in a domain with no infinities means jumping to the top element.
	Classical
	// JumpSetStrategy snaps each bound of curr outward to the nearest
	// landmark in the supplied JumpSet, per §4.5; where no landmark lies
	// beyond a bound, that bound falls back to the one obtained by
	// doubling prev's cardinality.
	JumpSetStrategy
)

var halfRangeOverflow = func(w Width) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(w)-1)
}

// Widen computes a post-widening value pointwise ≥ curr given the previous
// iterate prev, following the strategy selected by the caller. The
// strategy is always an explicit parameter, never a package global, so
// concurrent callers can run different widening policies over the same
// core without synchronizing on shared mutable state.
func Widen(prev, curr Wrapped, jumps JumpSet, strategy WideningStrategy) Wrapped {
	checkWidthMatch(prev.w, curr.w)
	if strategy == None {
		return Join(prev, curr)
	}
	if prev.IsBot() {
		return curr
	}
	if curr.IsBot() {
		return prev
	}
	if prev.IsTop() || curr.IsTop() {
		return Top(prev.w)
	}
	if curr.Leq(prev) {
		return prev
	}

	w := prev.w
	u, v := prev.lb, prev.ub
	x, y := curr.lb, curr.ub
	m := Join(prev, curr)

	unstable, overflowed, lb1, ub1 := widenCase(w, u, v, x, y, m, prev)
	if !unstable {
		return prev
	}
	if strategy == Classical || overflowed {
		return Top(w)
	}

	lb, okLb := jumps.LargestBelowOrEqual(x)
	if !okLb {
		lb = lb1
	}
	ub, okUb := jumps.SmallestAboveOrEqual(y)
	if !okUb {
		ub = ub1
	}
	result := FromBounds(w, lb, ub)
	if result.IsTop() {
		countOverflow()
	}
	return result
}

// widenCase implements the three geometric cases of §4.5, each producing a
// tentative [lb1, ub1] by doubling prev's cardinality, and reports whether
// curr was unstable with respect to prev at all (case 4 is "no": return
// prev unchanged).
func widenCase(w Width, u, v, x, y MachineInt, m, prev Wrapped) (unstable, overflowed bool, lb1, ub1 MachineInt) {
	card := prev.Cardinality()
	overflowed = card.Cmp(halfRangeOverflow(w)) >= 0
	var doubled MachineInt
	if !overflowed {
		doubled = w.Mod(MachineInt(2) * MachineInt(card.Uint64()))
	}

	curr := FromBounds(w, x, y)
	switch {
	case prev.Leq(curr) && !prev.Contains(x) && !prev.Contains(y):
		return true, overflowed, x, maxU(w.Add(x, doubled), y, w)
	case !m.IsTop() && m.lb == u && m.ub == y:
		return true, overflowed, u, maxU(w.Add(u, doubled), y, w)
	case !m.IsTop() && m.lb == x && m.ub == v:
		return true, overflowed, minU(w.Sub(u, doubled), x, w), v
	default:
		return false, false, 0, 0
	}
}

func maxU(a, b MachineInt, w Width) MachineInt {
	if w.UGe(a, b) {
		return a
	}
	return b
}

func minU(a, b MachineInt, w Width) MachineInt {
	if w.ULe(a, b) {
		return a
	}
	return b
}
