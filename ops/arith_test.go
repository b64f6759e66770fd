package ops

import (
	"testing"

	"github.com/caballa/wrapped-intervals/lattice"
)

func TestArithAdd(t *testing.T) {
	got := ArithBinOp(Add, rng(1, 2), rng(3, 4))
	want := rng(4, 6)
	if !got.Eq(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestArithAddOverflowsToTop(t *testing.T) {
	a := rng(200, 255)
	b := rng(0, 200)
	got := ArithBinOp(Add, a, b)
	if !got.IsTop() {
		t.Fatalf("combined cardinality exceeds 2^8, expected Top, got %s", got)
	}
}

func TestArithMulPositivePositive(t *testing.T) {
	got := ArithBinOp(Mul, rng(2, 3), rng(4, 5))
	want := rng(8, 15)
	if !got.Eq(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestArithUDiv(t *testing.T) {
	got := ArithBinOp(UDiv, rng(10, 20), rng(2, 5))
	want := rng(2, 10)
	if !got.Eq(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestArithDivByZeroContainingIntervalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic dividing by an interval containing zero")
		}
	}()
	ArithBinOp(UDiv, rng(1, 10), rng(0, 2))
}

func TestArithBotPropagates(t *testing.T) {
	if got := ArithBinOp(Add, lattice.Bot(lattice.W8), rng(1, 2)); !got.IsBot() {
		t.Fatalf("bot operand should propagate, got %s", got)
	}
}

func TestArithTopPropagates(t *testing.T) {
	if got := ArithBinOp(Add, lattice.Top(lattice.W8), rng(1, 2)); !got.IsTop() {
		t.Fatalf("top operand should propagate through arithmetic, got %s", got)
	}
}
