package ops

import "github.com/caballa/wrapped-intervals/lattice"

// Cast evaluates one of {trunc,sext,zext,bitcast}. A Bot input produces
// Top rather than propagating, per §4.6's note that casts are the one
// place a conservative re-widening happens during narrowing of a
// previously-bottom value.
func Cast(op CastOp, v lattice.Wrapped, target lattice.Width) lattice.Wrapped {
	if v.IsBot() {
		return lattice.Top(target)
	}
	switch op {
	case Trunc:
		return trunc(v, target)
	case SExt:
		return extend(v, target, lattice.NSplit, v.Width().Sext)
	case ZExt:
		return extend(v, target, lattice.SSplit, v.Width().Zext)
	case BitCast:
		if v.Width() != target {
			panic(lattice.ErrWidthMismatch)
		}
		return v
	}
	panic("ops: unreachable cast op")
}

// trunc narrows v from its width down to target. If v's cardinality
// exceeds 2^target the truncated image necessarily covers the whole
// target circle, so the result is Top; otherwise each bound is reduced
// modulo 2^target.
func trunc(v lattice.Wrapped, target lattice.Width) lattice.Wrapped {
	if target >= v.Width() {
		panic(lattice.ErrTruncTooWide(v.Width(), target))
	}
	if v.IsTop() {
		return lattice.Top(target)
	}
	if v.Cardinality().Cmp(twoToW(target)) > 0 {
		lattice.NotifyOverflow()
		return lattice.Top(target)
	}
	return lattice.FromBounds(target, v.Width().Trunc(v.Lb(), target), v.Width().Trunc(v.Ub(), target))
}

// extend widens v from its width up to target, splitting at the pole the
// chosen extension discipline cares about (north pole for sign-extension,
// south pole for zero-extension) and joining each piece's extended bounds,
// since extending only one endpoint at a time is only sound within a
// single hemisphere/rotation.
func extend(v lattice.Wrapped, target lattice.Width, split func(lattice.Wrapped) []lattice.Wrapped, extendBound func(lattice.MachineInt, lattice.Width) lattice.MachineInt) lattice.Wrapped {
	if target <= v.Width() {
		panic(lattice.ErrExtendNarrow(v.Width(), target))
	}
	if v.IsTop() {
		// Top has no Lb/Ub to feed split+extendBound directly, so extend
		// each hemisphere's extreme explicitly instead: the positive
		// hemisphere [0, MaxS] and the negative one [MinS, MaxU]. For
		// zext, extendBound is value-preserving and the two extended
		// hemispheres rejoin into the same [0, MaxU] zext already gets for
		// a concrete range; for sext this is the precise two-piece image
		// that keeps negative source values negative at the wider width.
		w := v.Width()
		parts := []lattice.Wrapped{
			lattice.FromBounds(target, extendBound(0, target), extendBound(w.MaxS(), target)),
			lattice.FromBounds(target, extendBound(w.MinS(), target), extendBound(w.MaxU(), target)),
		}
		return lattice.GeneralizedJoin(parts)
	}
	pieces := split(v)
	parts := make([]lattice.Wrapped, 0, len(pieces))
	for _, p := range pieces {
		parts = append(parts, lattice.FromBounds(target, extendBound(p.Lb(), target), extendBound(p.Ub(), target)))
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return lattice.GeneralizedJoin(parts)
}
