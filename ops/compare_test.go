package ops

import (
	"testing"

	"github.com/caballa/wrapped-intervals/lattice"
)

func rng(lb, ub lattice.MachineInt) lattice.Wrapped {
	return lattice.FromBounds(lattice.W8, lb, ub)
}

func TestCompareDefiniteTrue(t *testing.T) {
	a := rng(0, 5)
	b := rng(10, 20)
	if got := Compare(ULT, a, b); got != lattice.True {
		t.Fatalf("[0,5] ult [10,20]: got %v, want True", got)
	}
}

func TestCompareDefiniteFalse(t *testing.T) {
	a := rng(10, 20)
	b := rng(0, 5)
	if got := Compare(ULT, a, b); got != lattice.False {
		t.Fatalf("[10,20] ult [0,5]: got %v, want False", got)
	}
}

func TestCompareMaybeOnOverlap(t *testing.T) {
	a := rng(0, 10)
	b := rng(5, 15)
	if got := Compare(ULT, a, b); got != lattice.Maybe {
		t.Fatalf("overlapping ranges: got %v, want Maybe", got)
	}
}

func TestCompareBotIsFalse(t *testing.T) {
	if got := Compare(EQ, lattice.Bot(lattice.W8), rng(0, 5)); got != lattice.False {
		t.Fatalf("bot compared against anything: got %v, want False", got)
	}
}

func TestCompareEqOnSingletons(t *testing.T) {
	a := lattice.Singleton(lattice.W8, 7)
	b := lattice.Singleton(lattice.W8, 7)
	if got := Compare(EQ, a, b); got != lattice.True {
		t.Fatalf("equal singletons: got %v, want True", got)
	}
	if got := Compare(NE, a, b); got != lattice.False {
		t.Fatalf("equal singletons NE: got %v, want False", got)
	}
}

func TestCompareSignedVsUnsigned(t *testing.T) {
	// 0xFF at width 8 is -1 signed, 255 unsigned.
	a := lattice.Singleton(lattice.W8, 0xFF)
	b := lattice.Singleton(lattice.W8, 1)
	if got := Compare(SLT, a, b); got != lattice.True {
		t.Fatalf("-1 slt 1: got %v, want True", got)
	}
	if got := Compare(ULT, a, b); got != lattice.False {
		t.Fatalf("255 ult 1: got %v, want False", got)
	}
}

func TestFilterSigmaNarrowsToHalfLine(t *testing.T) {
	self := rng(0, 255)
	other := lattice.Singleton(lattice.W8, 100)
	got := FilterSigma(ULT, self, other)
	want := rng(0, 99)
	if !got.Eq(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestFilterSigmaEqNarrowsToMeet(t *testing.T) {
	self := rng(0, 255)
	other := rng(50, 60)
	got := FilterSigma(EQ, self, other)
	if !got.Eq(other) {
		t.Fatalf("got %s, want %s", got, other)
	}
}

func TestFilterSigmaNeCollapsesEqualSingletons(t *testing.T) {
	self := lattice.Singleton(lattice.W8, 42)
	other := lattice.Singleton(lattice.W8, 42)
	got := FilterSigma(NE, self, other)
	if !got.IsBot() {
		t.Fatalf("self == other, NE should collapse to Bot, got %s", got)
	}
}

func TestFilterSigmaStrictAtExtremeIsBot(t *testing.T) {
	self := rng(0, 255)
	other := lattice.Singleton(lattice.W8, 0)
	got := FilterSigma(ULT, self, other)
	if !got.IsBot() {
		t.Fatalf("nothing is ult 0 unsigned, got %s", got)
	}
}

func TestFilterSigmaBotPropagates(t *testing.T) {
	got := FilterSigma(ULT, lattice.Bot(lattice.W8), rng(0, 5))
	if !got.IsBot() {
		t.Fatalf("bot self should stay Bot, got %s", got)
	}
}
