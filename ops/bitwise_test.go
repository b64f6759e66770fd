package ops

import (
	"testing"

	"github.com/caballa/wrapped-intervals/lattice"
)

func TestShlBotPropagates(t *testing.T) {
	got := BitBinOp(Shl, lattice.Bot(lattice.W8), rng(1, 1))
	if !got.IsBot() {
		t.Fatalf("a bottom shift operand should propagate like the other bitwise ops, got %s", got)
	}
}

func TestBitAnd(t *testing.T) {
	got := BitBinOp(And, rng(0x0F, 0x0F), rng(0xF0, 0xF0))
	want := rng(0, 0)
	if !got.Eq(want) {
		t.Fatalf("0x0F & 0xF0: got %s, want %s", got, want)
	}
}

func TestBitAndZeroAbsorbs(t *testing.T) {
	got := BitBinOp(And, rng(0, 0), rng(1, 255))
	if !got.Eq(rng(0, 0)) {
		t.Fatalf("AND with constant 0 should be 0, got %s", got)
	}
}

func TestBitOrIdentity(t *testing.T) {
	got := BitBinOp(Or, rng(0, 0), rng(10, 20))
	if !got.Eq(rng(10, 20)) {
		t.Fatalf("OR with constant 0 should be the identity, got %s", got)
	}
}

func TestShlConstant(t *testing.T) {
	got := BitBinOp(Shl, rng(1, 1), rng(2, 2))
	if !got.Eq(rng(4, 4)) {
		t.Fatalf("1 << 2: got %s, want 4", got)
	}
}

func TestShlNonConstantShiftIsTop(t *testing.T) {
	got := BitBinOp(Shl, rng(1, 1), rng(1, 2))
	if !got.IsTop() {
		t.Fatalf("a non-constant shift amount should produce Top, got %s", got)
	}
}

func TestShlInvalidAmountPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on a shift amount >= width")
		}
	}()
	BitBinOp(Shl, rng(1, 1), rng(8, 8))
}
