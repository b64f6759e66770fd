package lattice

// Leq is the domain order s ⊑ t. It holds when s is Bot, t is Top, or
// every bound of s lies in t and either s equals t or some bound of t does
// not lie in s — the second clause rules out the degenerate case of two
// arcs that mutually contain each other's endpoints but cover different
// extents of the circle. Leq is not antisymmetric on this domain: Leq(s,t)
// and Leq(t,s) do not together imply s.Eq(t).
func (v Wrapped) Leq(other Wrapped) bool {
	checkWidthMatch(v.w, other.w)
	if v.IsBot() {
		return true
	}
	if other.IsTop() {
		return true
	}
	if v.IsTop() {
		return false
	}
	if other.IsBot() {
		return false
	}
	if !other.Contains(v.lb) || !other.Contains(v.ub) {
		return false
	}
	if v.Eq(other) {
		return true
	}
	return !v.Contains(other.lb) || !v.Contains(other.ub)
}
