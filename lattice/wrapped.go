// Package lattice implements the wrapped (signedness-agnostic) interval
// abstract domain over fixed-width machine integers described by the
// module's design notes, plus the shared machine-integer primitive and
// pole-splitting algebra the domain and its transfer functions build on.
package lattice

import (
	"fmt"
	"math/big"

	"github.com/caballa/wrapped-intervals/internal/style"
)

type widKind uint8

const (
	botKind widKind = iota
	topKind
	rangeKind
)

// Wrapped is a value of the wrapped interval domain at a fixed width: the
// bottom element, the top element, or a proper range [lb, ub] walked
// clockwise from lb to ub on Z/2^w. There is no exported way to construct
// an invalid combination of kind/lb/ub; every constructor and every
// operation's return path runs through canon.
type Wrapped struct {
	kind widKind
	w    Width
	lb   MachineInt
	ub   MachineInt
}

// Bot is the bottom element at width w: no concrete integer is described.
func Bot(w Width) Wrapped {
	w.check()
	return Wrapped{kind: botKind, w: w}
}

// Top is the top element at width w: every concrete integer is possible.
func Top(w Width) Wrapped {
	w.check()
	return Wrapped{kind: topKind, w: w}
}

// Singleton is the one-point interval {n} at width w.
func Singleton(w Width, n MachineInt) Wrapped {
	return FromBounds(w, n, n)
}

// FromBounds builds the wrapped interval [lb, ub] at width w, walking
// clockwise from lb to ub. A pair that describes the full circle
// canonicalizes to Top per invariant 2.
func FromBounds(w Width, lb, ub MachineInt) Wrapped {
	w.check()
	v := Wrapped{kind: rangeKind, w: w, lb: w.Mod(lb), ub: w.Mod(ub)}
	return v.canon()
}

// FromBool lifts a TriState into the 1-bit wrapped domain: True is {1},
// False is {0}, Maybe is the full range [0,1] which canonicalizes to Top.
func FromBool(t TriState) Wrapped {
	switch t {
	case True:
		return Singleton(W1, 1)
	case False:
		return Singleton(W1, 0)
	default:
		return Top(W1)
	}
}

func (v Wrapped) canon() Wrapped {
	if v.kind != rangeKind {
		return v
	}
	if v.w.Mod(v.lb-1) == v.ub {
		return Top(v.w)
	}
	return v
}

// Width is the bit width v was built at.
func (v Wrapped) Width() Width { return v.w }

// IsBot reports whether v is the bottom element.
func (v Wrapped) IsBot() bool { return v.kind == botKind }

// IsTop reports whether v is the top element.
func (v Wrapped) IsTop() bool { return v.kind == topKind }

// IsConstant reports whether v denotes exactly one concrete integer.
func (v Wrapped) IsConstant() bool { return v.kind == rangeKind && v.lb == v.ub }

// IsZero reports whether v is the singleton {0}.
func (v Wrapped) IsZero() bool { return v.IsConstant() && v.lb == 0 }

// Cardinality is the number of concrete integers v describes: 0 for Bot,
// 2^w for Top, and the clockwise distance from lb to ub inclusive for a
// range. 2^64 does not fit in a uint64, so this returns an arbitrary
// precision integer rather than silently truncating.
func (v Wrapped) Cardinality() *big.Int {
	switch v.kind {
	case botKind:
		return big.NewInt(0)
	case topKind:
		return new(big.Int).Lsh(big.NewInt(1), uint(v.w))
	default:
		card := v.w.Mod(v.ub-v.lb) + 1
		return new(big.Int).SetUint64(uint64(card))
	}
}

// Lb is the lower bound of a proper range. It panics on Bot or Top, which
// have no single well-defined bound pair.
func (v Wrapped) Lb() MachineInt {
	v.mustRange("Lb")
	return v.lb
}

// Ub is the upper bound of a proper range. It panics on Bot or Top.
func (v Wrapped) Ub() MachineInt {
	v.mustRange("Ub")
	return v.ub
}

func (v Wrapped) mustRange(op string) {
	if v.kind != rangeKind {
		fatal(fmt.Errorf("lattice: %s called on non-range value %s", op, v))
	}
}

// Contains is the membership predicate of invariant 3: e is described by v
// iff walking clockwise from lb reaches e no later than ub.
func (v Wrapped) Contains(e MachineInt) bool {
	switch v.kind {
	case botKind:
		return false
	case topKind:
		return true
	default:
		e = v.w.Mod(e)
		return v.w.Mod(e-v.lb) <= v.w.Mod(v.ub-v.lb)
	}
}

// Complement is the set-complement of v within Z/2^w: swapping which arc
// of the circle is described.
func (v Wrapped) Complement() Wrapped {
	switch v.kind {
	case botKind:
		return Top(v.w)
	case topKind:
		return Bot(v.w)
	default:
		return FromBounds(v.w, v.ub+1, v.lb-1)
	}
}

// String renders v in the fixed textual form: "bottom" for the bottom
// element, "[-oo,+oo]" for the top element, and "[lb,ub]" for a proper
// range with each bound shown as "unsigned|signed".
func (v Wrapped) String() string {
	switch v.kind {
	case botKind:
		return style.Colorize.Bot("bottom")
	case topKind:
		return style.Colorize.Top("[-oo,+oo]")
	default:
		return fmt.Sprintf("[%s,%s]", v.boundString(v.lb), v.boundString(v.ub))
	}
}

func (v Wrapped) boundString(b MachineInt) string {
	return style.Colorize.Bound(fmt.Sprintf("%d|%d", uint64(b), v.w.ToSigned(b)))
}

// Eq is the strict lattice equality: same width, same kind, and (for a
// proper range) the same bound pair. It is not a semantic Eq on the sets
// two differently-shaped ranges might happen to describe, matching the
// non-canonical-representation-is-a-bug discipline of invariant 2.
func (v Wrapped) Eq(other Wrapped) bool {
	checkWidthMatch(v.w, other.w)
	if v.kind != other.kind {
		return false
	}
	if v.kind != rangeKind {
		return true
	}
	return v.lb == other.lb && v.ub == other.ub
}
