package irbridge

import (
	"go/token"
	"go/types"
	"testing"

	"github.com/caballa/wrapped-intervals/lattice"
	"github.com/caballa/wrapped-intervals/ops"
)

func basic(kind types.BasicKind) *types.Basic {
	return types.Typ[kind]
}

func TestWidthOf(t *testing.T) {
	cases := []struct {
		kind   types.BasicKind
		w      lattice.Width
		signed bool
	}{
		{types.Int8, lattice.W8, true},
		{types.Uint8, lattice.W8, false},
		{types.Int32, lattice.W32, true},
		{types.Rune, lattice.W32, true},
		{types.Uint64, lattice.W64, false},
		{types.Uintptr, lattice.W64, false},
		{types.Bool, lattice.W1, false},
	}
	for _, c := range cases {
		w, signed, ok := WidthOf(basic(c.kind))
		if !ok {
			t.Fatalf("%v: expected ok", c.kind)
		}
		if w != c.w || signed != c.signed {
			t.Fatalf("%v: got (%v,%v), want (%v,%v)", c.kind, w, signed, c.w, c.signed)
		}
	}
}

func TestWidthOfRejectsNonIntegral(t *testing.T) {
	if _, _, ok := WidthOf(basic(types.String)); ok {
		t.Fatal("string should not map to a width")
	}
	if IsIntegral(basic(types.Float64)) {
		t.Fatal("float64 should not be integral")
	}
}

func TestArithOpOfDivRemSignedness(t *testing.T) {
	if op, ok := ArithOpOf(token.QUO, true); !ok || op != ops.SDiv {
		t.Fatalf("signed QUO should map to SDiv, got %v, %v", op, ok)
	}
	if op, ok := ArithOpOf(token.QUO, false); !ok || op != ops.UDiv {
		t.Fatalf("unsigned QUO should map to UDiv, got %v, %v", op, ok)
	}
	if op, ok := ArithOpOf(token.REM, true); !ok || op != ops.SRem {
		t.Fatalf("signed REM should map to SRem, got %v, %v", op, ok)
	}
	if _, ok := ArithOpOf(token.AND, true); ok {
		t.Fatal("AND is not an arithmetic token")
	}
}

func TestBitOpOfShiftsAndUnsupported(t *testing.T) {
	if op, ok := BitOpOf(token.SHL); !ok || op != ops.Shl {
		t.Fatalf("SHL should map to Shl, got %v, %v", op, ok)
	}
	if op, ok := BitOpOf(token.SHR); !ok || op != ops.AShr {
		t.Fatalf("SHR should default to AShr, got %v, %v", op, ok)
	}
	if _, ok := BitOpOf(token.AND_NOT); ok {
		t.Fatal("AND_NOT has no dedicated BitOp")
	}
}

func TestPredicateOfSignedness(t *testing.T) {
	if pred, ok := PredicateOf(token.LSS, true); !ok || pred != ops.SLT {
		t.Fatalf("signed LSS should map to SLT, got %v, %v", pred, ok)
	}
	if pred, ok := PredicateOf(token.LSS, false); !ok || pred != ops.ULT {
		t.Fatalf("unsigned LSS should map to ULT, got %v, %v", pred, ok)
	}
	if pred, ok := PredicateOf(token.EQL, true); !ok || pred != ops.EQ {
		t.Fatalf("EQL should map to EQ regardless of signedness, got %v, %v", pred, ok)
	}
}
