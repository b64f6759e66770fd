package ops

import "github.com/caballa/wrapped-intervals/lattice"

// BitBinOp evaluates one of {and,or,xor,shl,lshr,ashr} over two wrapped
// interval operands. Unlike the arithmetic operators, a Top operand here
// is first widened to the full unsigned range [0, 2^w-1], taken as its two
// non-wrapping halves [0, MaxS] and [MinS, MaxU],
// since bitwise operators are able to tighten a fully unconstrained
// operand — and with a small-range mask, which is the common case this
// special handling exists for (x & 0xff).
func BitBinOp(op BitOp, a, b lattice.Wrapped) lattice.Wrapped {
	w := lattice.MustSameWidth(a, b)
	switch op {
	case Shl, LShr, AShr:
		return shiftOp(op, w, a, b)
	}
	if a.IsBot() || b.IsBot() {
		return lattice.Bot(w)
	}
	as, bs := liftTop(w, a), liftTop(w, b)
	parts := make([]lattice.Wrapped, 0, len(as)*len(bs))
	for _, pa := range as {
		for _, pb := range bs {
			parts = append(parts, logicalPair(op, w, pa, pb))
		}
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return lattice.GeneralizedJoin(parts)
}

func liftTop(w lattice.Width, v lattice.Wrapped) []lattice.Wrapped {
	if v.IsTop() {
		return []lattice.Wrapped{
			lattice.FromBounds(w, w.MinU(), w.MaxS()),
			lattice.FromBounds(w, w.MinS(), w.MaxU()),
		}
	}
	return lattice.SSplit(v)
}

func logicalPair(op BitOp, w lattice.Width, a, b lattice.Wrapped) lattice.Wrapped {
	aZero := a.IsConstant() && a.Lb() == 0
	bZero := b.IsConstant() && b.Lb() == 0
	switch op {
	case And:
		if aZero || bZero {
			return lattice.Singleton(w, 0)
		}
		return unsignedAnd(w, a, b)
	case Or:
		if aZero {
			return b
		}
		if bZero {
			return a
		}
		return unsignedOr(w, a, b)
	case Xor:
		return unsignedXor(w, a, b)
	}
	panic("ops: unreachable bitwise op")
}

func unsignedAnd(w lattice.Width, a, b lattice.Wrapped) lattice.Wrapped {
	lo := minAnd(w, a.Lb(), a.Ub(), b.Lb(), b.Ub())
	hi := maxAnd(w, a.Lb(), a.Ub(), b.Lb(), b.Ub())
	return lattice.FromBounds(w, lo, hi)
}

func unsignedOr(w lattice.Width, a, b lattice.Wrapped) lattice.Wrapped {
	lo := minOr(w, a.Lb(), a.Ub(), b.Lb(), b.Ub())
	hi := maxOr(w, a.Lb(), a.Ub(), b.Lb(), b.Ub())
	return lattice.FromBounds(w, lo, hi)
}

func unsignedXor(w lattice.Width, a, b lattice.Wrapped) lattice.Wrapped {
	al, au, bl, bu := a.Lb(), a.Ub(), b.Lb(), b.Ub()
	lo := minAnd(w, al, au, ^bu&uint64Mask(w), ^bl&uint64Mask(w))
	lo2 := minAnd(w, ^au&uint64Mask(w), ^al&uint64Mask(w), bl, bu)
	if w.ULt(lo2, lo) {
		lo = lo2
	}
	hi := maxOr(w, 0, maxAnd(w, al, au, ^bu&uint64Mask(w), ^bl&uint64Mask(w)),
		0, maxAnd(w, ^au&uint64Mask(w), ^al&uint64Mask(w), bl, bu))
	return lattice.FromBounds(w, lo, hi)
}

func uint64Mask(w lattice.Width) lattice.MachineInt { return w.MaxU() }

// minAnd, maxAnd, minOr, maxOr are Warren's bit-scanning algorithms for
// the tightest bound of AND/OR over [a,b] & [c,d], operating from the
// most significant bit down, looking for the first place the two ranges
// can be pushed apart (maxAnd and a..b pair) or brought together.
func minAnd(w lattice.Width, a, b, c, d lattice.MachineInt) lattice.MachineInt {
loop:
	for m := w.SignBit(); m != 0; m >>= 1 {
		if (^a)&(^c)&m != 0 {
			if t := (a | m) &^ (m - 1); w.ULe(t, b) {
				a = t
				break loop
			}
			if t := (c | m) &^ (m - 1); w.ULe(t, d) {
				c = t
				break loop
			}
		}
	}
	return a & c
}

func maxAnd(w lattice.Width, a, b, c, d lattice.MachineInt) lattice.MachineInt {
loop:
	for m := w.SignBit(); m != 0; m >>= 1 {
		if b&^d&m != 0 {
			if t := (b &^ m) | (m - 1); w.UGe(t, a) {
				b = t
				break loop
			}
		} else if ^b&d&m != 0 {
			if t := (d &^ m) | (m - 1); w.UGe(t, c) {
				d = t
				break loop
			}
		}
	}
	return b & d
}

func minOr(w lattice.Width, a, b, c, d lattice.MachineInt) lattice.MachineInt {
loop:
	for m := w.SignBit(); m != 0; m >>= 1 {
		if (^a)&c&m != 0 {
			if t := (a | m) &^ (m - 1); w.ULe(t, b) {
				a = t
				break loop
			}
		} else if a&(^c)&m != 0 {
			if t := (c | m) &^ (m - 1); w.ULe(t, d) {
				c = t
				break loop
			}
		}
	}
	return a | c
}

func maxOr(w lattice.Width, a, b, c, d lattice.MachineInt) lattice.MachineInt {
loop:
	for m := w.SignBit(); m != 0; m >>= 1 {
		if b&d&m != 0 {
			if t := (b - m) | (m - 1); w.UGe(t, a) {
				b = t
				break loop
			}
			if t := (d - m) | (m - 1); w.UGe(t, c) {
				d = t
				break loop
			}
		}
	}
	return b | d
}

func shiftOp(op BitOp, w lattice.Width, a, b lattice.Wrapped) lattice.Wrapped {
	if a.IsBot() || b.IsBot() {
		return lattice.Bot(w)
	}
	if !b.IsConstant() {
		return lattice.Top(w)
	}
	shiftVal := b.Lb()
	if w.UGe(shiftVal, lattice.MachineInt(uint8(w))) {
		panic(lattice.ErrInvalidShift(shiftVal, w))
	}
	k := uint(shiftVal)
	switch op {
	case Shl:
		return shl(w, a, k)
	case LShr:
		return lshr(w, a, k)
	case AShr:
		return ashr(w, a, k)
	}
	panic("ops: unreachable shift op")
}

// maskBits is the k-bit all-ones pattern, for k in [0,64]; unlike
// Width.Mask it is not restricted to the five supported operand widths,
// since it is also used to mask partial bit-fields within a width (e.g.
// the low w-k bits a shift by k leaves untouched).
func maskBits(k uint) lattice.MachineInt {
	if k == 0 {
		return 0
	}
	if k >= 64 {
		return lattice.MachineInt(^uint64(0))
	}
	return lattice.MachineInt((uint64(1) << k) - 1)
}

func shl(w lattice.Width, a lattice.Wrapped, k uint) lattice.Wrapped {
	if a.IsTop() {
		return allMultiplesOf2k(w, k)
	}
	lo, hi := a.Lb(), a.Ub()
	// no bits lost iff neither bound has a set bit among the top k bits
	// that shifting by k would push out of the width.
	highMask := w.Mask() &^ maskBits(uint(w)-k)
	if lo&highMask == 0 && hi&highMask == 0 {
		return lattice.FromBounds(w, w.Shl(lo, k), w.Shl(hi, k))
	}
	return allMultiplesOf2k(w, k)
}

// allMultiplesOf2k is the fallback Shl result when bits are lost: every
// multiple of 2^k representable at width w.
func allMultiplesOf2k(w lattice.Width, k uint) lattice.Wrapped {
	if k == 0 {
		return lattice.Top(w)
	}
	return lattice.FromBounds(w, 0, w.Mask()&^maskBits(k))
}

func lshr(w lattice.Width, a lattice.Wrapped, k uint) lattice.Wrapped {
	if a.IsTop() || crossesSouthPole(a) {
		return lattice.FromBounds(w, 0, maskBits(uint(w)-k))
	}
	return lattice.FromBounds(w, w.Lshr(a.Lb(), k), w.Lshr(a.Ub(), k))
}

func ashr(w lattice.Width, a lattice.Wrapped, k uint) lattice.Wrapped {
	if a.IsTop() || crossesNorthPole(w, a) {
		lo := w.Mod(maskBits(k) << (uint(w) - k))
		hi := maskBits(uint(w) - k)
		return lattice.FromBounds(w, lo, hi)
	}
	return lattice.FromBounds(w, w.Ashr(a.Lb(), k), w.Ashr(a.Ub(), k))
}

func crossesSouthPole(a lattice.Wrapped) bool {
	return uint64(a.Lb()) > uint64(a.Ub())
}

func crossesNorthPole(w lattice.Width, a lattice.Wrapped) bool {
	return !w.SLe(a.Lb(), a.Ub())
}
