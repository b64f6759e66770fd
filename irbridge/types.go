// Package irbridge maps real Go IR (go/types, go/token) onto the wrapped
// interval domain's own closed vocabulary (lattice.Width, ops.ArithOp,
// ops.BitOp, ops.Predicate). It is a convenience for a caller that already
// walks go/ssa the way the teacher's analysis/absint package does; nothing
// in lattice or ops imports this package, and nothing here imports
// go/ssa — only go/types and go/token, the two IR-adjacent packages whose
// values this module's closed enumerations need to be driven from.
package irbridge

import (
	"go/types"

	"github.com/caballa/wrapped-intervals/lattice"
)

// WidthOf maps a go/types.Basic integer kind onto its (Width, signed)
// pair; bool maps to (W1, unsigned). ok is false for any other
// non-integer Basic kind (float, string, ...), which this domain has
// nothing to say about.
func WidthOf(b *types.Basic) (w lattice.Width, signed bool, ok bool) {
	switch b.Kind() {
	case types.Int8:
		return lattice.W8, true, true
	case types.Uint8:
		return lattice.W8, false, true
	case types.Int16:
		return lattice.W16, true, true
	case types.Uint16:
		return lattice.W16, false, true
	case types.Int32:
		return lattice.W32, true, true
	case types.Uint32:
		return lattice.W32, false, true
	case types.Int64, types.Int:
		return lattice.W64, true, true
	case types.Uint64, types.Uint, types.Uintptr:
		return lattice.W64, false, true
	case types.Bool:
		return lattice.W1, false, true
	default:
		return 0, false, false
	}
}

// IsIntegral reports whether b denotes an integer (or bool, lifted to the
// 1-bit domain) kind WidthOf can map.
func IsIntegral(b *types.Basic) bool {
	_, _, ok := WidthOf(b)
	return ok
}
