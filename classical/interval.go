// Package classical implements the non-wrapping signed/unsigned interval
// domain used as a precision baseline: the same fixed machine widths as
// package lattice, but with ordinary ±∞-bounded intervals instead of a
// clockwise-walking circle. It exists so a driver can run both domains
// side by side over the same program and report how much precision the
// wrapped domain buys over the classical one.
package classical

import (
	"fmt"
	"math/big"

	"github.com/caballa/wrapped-intervals/internal/style"
	"github.com/caballa/wrapped-intervals/lattice"
)

// Signedness selects which of the two representable ranges an Interval is
// clamped to: [0, 2^w-1] for Unsigned or [-2^(w-1), 2^(w-1)-1] for Signed.
type Signedness uint8

const (
	Signed Signedness = iota
	Unsigned
)

func (s Signedness) String() string {
	if s == Signed {
		return "signed"
	}
	return "unsigned"
}

func (s Signedness) rangeBounds(w lattice.Width) (lo, hi *big.Int) {
	if s == Unsigned {
		return big.NewInt(0), new(big.Int).SetUint64(uint64(w.MaxU()))
	}
	return big.NewInt(w.ToSigned(w.MinS())), big.NewInt(w.ToSigned(w.MaxS()))
}

type boundKind uint8

const (
	finiteBound boundKind = iota
	plusInfBound
	minusInfBound
)

// Bound is one endpoint of a classical interval: a finite arbitrary
// precision integer, or one of the two infinities. It mirrors the
// teacher's FiniteBound/PlusInfinity/MinusInfinity truth tables as methods
// on one closed type instead of three interface implementations, since
// this domain never needs a caller-extensible bound kind.
type Bound struct {
	kind boundKind
	val  *big.Int
}

// Finite builds a bound holding the exact integer n.
func Finite(n *big.Int) Bound { return Bound{kind: finiteBound, val: n} }

// FiniteInt is Finite for a plain Go int, for convenience at call sites
// that already have a small literal.
func FiniteInt(n int64) Bound { return Finite(big.NewInt(n)) }

// PlusInf is the bound +∞.
func PlusInf() Bound { return Bound{kind: plusInfBound} }

// MinusInf is the bound -∞.
func MinusInf() Bound { return Bound{kind: minusInfBound} }

// IsInfinite reports whether b is one of the two infinities.
func (b Bound) IsInfinite() bool { return b.kind != finiteBound }

func (b Bound) String() string {
	switch b.kind {
	case plusInfBound:
		return style.Colorize.Bound("+oo")
	case minusInfBound:
		return style.Colorize.Bound("-oo")
	default:
		return style.Colorize.Bound(b.val.String())
	}
}

// Eq reports bound equality.
func (b Bound) Eq(o Bound) bool {
	if b.kind != o.kind {
		return false
	}
	if b.kind != finiteBound {
		return true
	}
	return b.val.Cmp(o.val) == 0
}

// Leq computes b <= o under -∞ <= n <= +∞.
func (b Bound) Leq(o Bound) bool {
	switch {
	case b.kind == minusInfBound || o.kind == plusInfBound:
		return true
	case b.kind == plusInfBound || o.kind == minusInfBound:
		return false
	default:
		return b.val.Cmp(o.val) <= 0
	}
}

// Geq computes b >= o.
func (b Bound) Geq(o Bound) bool { return o.Leq(b) }

// Lt computes b < o.
func (b Bound) Lt(o Bound) bool { return b.Leq(o) && !b.Eq(o) }

// Gt computes b > o.
func (b Bound) Gt(o Bound) bool { return o.Lt(b) }

// Max returns whichever of b, o is greater.
func (b Bound) Max(o Bound) Bound {
	if b.Geq(o) {
		return b
	}
	return o
}

// Min returns whichever of b, o is smaller.
func (b Bound) Min(o Bound) Bound {
	if b.Leq(o) {
		return b
	}
	return o
}

// Neg negates b, swapping the two infinities.
func (b Bound) Neg() Bound {
	switch b.kind {
	case plusInfBound:
		return MinusInf()
	case minusInfBound:
		return PlusInf()
	default:
		return Finite(new(big.Int).Neg(b.val))
	}
}

// Plus computes b + o. b1 ∈ ℤ combines with ±∞ by absorption; two opposite
// infinities are the one combination with no sound value, mirroring the
// teacher's Plus/Minus truth table panic on ∞ + -∞ — a combination that
// never arises from a well-formed (non-Bot) interval's own bound pair.
func (b Bound) Plus(o Bound) Bound {
	switch {
	case b.kind == finiteBound && o.kind == finiteBound:
		return Finite(new(big.Int).Add(b.val, o.val))
	case (b.kind == plusInfBound && o.kind == minusInfBound) || (b.kind == minusInfBound && o.kind == plusInfBound):
		panic("classical: ∞ + -∞ is undefined")
	case b.kind == plusInfBound || o.kind == plusInfBound:
		return PlusInf()
	default:
		return MinusInf()
	}
}

// Minus computes b - o via Plus(o.Neg()).
func (b Bound) Minus(o Bound) Bound { return b.Plus(o.Neg()) }

// Interval is a value of the classical domain: ⊥, ⊤, or a proper [low,
// high] range (with possibly infinite endpoints) at a fixed width and
// signedness. A finite interval's endpoints always lie within the
// representable range for (w, signed); arithmetic that would leave that
// range produces ⊤ rather than a half-clamped approximation.
type Interval struct {
	w      lattice.Width
	signed Signedness
	low    Bound
	high   Bound
}

// Bot is ⊥ = [+∞, -∞]: the empty interval, no concrete integer described.
func Bot(w lattice.Width, signed Signedness) Interval {
	return Interval{w: w, signed: signed, low: PlusInf(), high: MinusInf()}
}

// Top is ⊤ = [-∞, +∞]: every representable integer is possible.
func Top(w lattice.Width, signed Signedness) Interval {
	return Interval{w: w, signed: signed, low: MinusInf(), high: PlusInf()}
}

// FromBounds builds [low, high] at width w for the given signedness. A
// finite pair that falls outside the representable range, or with
// low > high, canonicalizes to Bot or Top as appropriate via clamp.
func FromBounds(w lattice.Width, signed Signedness, low, high Bound) Interval {
	return Interval{w: w, signed: signed, low: low, high: high}.clamp()
}

// FromMachineInt builds the singleton interval containing the concrete
// value m, read under the chosen signedness.
func FromMachineInt(w lattice.Width, signed Signedness, m lattice.MachineInt) Interval {
	b := Finite(toBig(w, signed, m))
	return FromBounds(w, signed, b, b)
}

func toBig(w lattice.Width, signed Signedness, m lattice.MachineInt) *big.Int {
	if signed == Signed {
		return big.NewInt(w.ToSigned(m))
	}
	return new(big.Int).SetUint64(uint64(m))
}

// clamp enforces the representable-range invariant: a low/high pair
// outside [min,max] for (w,signed) becomes Top, and low > high becomes
// Bot, since a classical interval has no wrapped-domain notion of walking
// past the end of the range.
func (e Interval) clamp() Interval {
	if e.low.kind == finiteBound && e.high.kind == finiteBound && e.low.val.Cmp(e.high.val) > 0 {
		return Bot(e.w, e.signed)
	}
	if e.low.IsInfinite() && e.high.IsInfinite() {
		return e
	}
	min, max := e.signed.rangeBounds(e.w)
	if e.low.kind == finiteBound && e.low.val.Cmp(min) < 0 {
		return Top(e.w, e.signed)
	}
	if e.high.kind == finiteBound && e.high.val.Cmp(max) > 0 {
		return Top(e.w, e.signed)
	}
	return e
}

// Width is the bit width e was built at.
func (e Interval) Width() lattice.Width { return e.w }

// Signedness is the signedness tag e was built with.
func (e Interval) Signedness() Signedness { return e.signed }

// IsBot reports whether e is the empty interval.
func (e Interval) IsBot() bool {
	return e.low.kind == plusInfBound && e.high.kind == minusInfBound
}

// IsTop reports whether e is the fully unconstrained interval.
func (e Interval) IsTop() bool {
	return e.low.kind == minusInfBound && e.high.kind == plusInfBound
}

// Low is the lower bound.
func (e Interval) Low() Bound { return e.low }

// High is the upper bound.
func (e Interval) High() Bound { return e.high }

func (e Interval) String() string {
	if e.IsBot() {
		return style.Colorize.Bot("bottom")
	}
	return fmt.Sprintf("[%s,%s]", e.low, e.high)
}

func checkMatch(a, b Interval) {
	if a.w != b.w {
		panic(lattice.ErrWidthMismatch)
	}
	if a.signed != b.signed {
		panic(fmt.Sprintf("classical: signedness mismatch %s vs %s", a.signed, b.signed))
	}
}

// Leq computes e1 ⊑ e2: e1 describes a subset of e2's values.
func (e1 Interval) Leq(e2 Interval) bool {
	checkMatch(e1, e2)
	if e1.IsBot() {
		return true
	}
	if e2.IsBot() {
		return false
	}
	return e1.low.Geq(e2.low) && e1.high.Leq(e2.high)
}

// Eq computes e1 = e2.
func (e1 Interval) Eq(e2 Interval) bool {
	checkMatch(e1, e2)
	return e1.Leq(e2) && e2.Leq(e1)
}

// Join computes e1 ⊔ e2: the smallest interval containing both, i.e. the
// lowest of the two low bounds and the highest of the two high bounds.
func (e1 Interval) Join(e2 Interval) Interval {
	checkMatch(e1, e2)
	if e1.IsBot() {
		return e2
	}
	if e2.IsBot() {
		return e1
	}
	return FromBounds(e1.w, e1.signed, e1.low.Min(e2.low), e1.high.Max(e2.high))
}

// Meet computes e1 ⊓ e2: the overlap of the two ranges, or Bot if they are
// disjoint.
func (e1 Interval) Meet(e2 Interval) Interval {
	checkMatch(e1, e2)
	if e1.IsBot() || e2.IsBot() {
		return Bot(e1.w, e1.signed)
	}
	if e1.high.Lt(e2.low) || e2.high.Lt(e1.low) {
		return Bot(e1.w, e1.signed)
	}
	return FromBounds(e1.w, e1.signed, e1.low.Max(e2.low), e1.high.Min(e2.high))
}

// Widen is the classical widening operator: once curr has grown past prev
// on either side, that side snaps straight to infinity rather than
// iterating bound by bound, the standard non-jump-set widening the
// wrapped domain's JumpSet strategy is compared against.
func (prev Interval) Widen(curr Interval) Interval {
	checkMatch(prev, curr)
	if prev.IsBot() {
		return curr
	}
	if curr.IsBot() {
		return prev
	}
	low := curr.low
	if curr.low.Lt(prev.low) {
		low = MinusInf()
	}
	high := curr.high
	if curr.high.Gt(prev.high) {
		high = PlusInf()
	}
	return FromBounds(prev.w, prev.signed, low, high)
}
