package irbridge

import (
	"go/token"

	"github.com/caballa/wrapped-intervals/ops"
)

// ArithOpOf maps a go/token.Token binary operator onto ops.ArithOp. signed
// selects between the SDiv/SRem and UDiv/URem readings of QUO/REM, since
// go/token's vocabulary (like real machine instruction sets) does not
// distinguish signed from unsigned division at the token level — the
// signedness has to come from the operand type, which is why this bridge
// takes it as a parameter instead of inferring it.
func ArithOpOf(tok token.Token, signed bool) (op ops.ArithOp, ok bool) {
	switch tok {
	case token.ADD:
		return ops.Add, true
	case token.SUB:
		return ops.Sub, true
	case token.MUL:
		return ops.Mul, true
	case token.QUO:
		if signed {
			return ops.SDiv, true
		}
		return ops.UDiv, true
	case token.REM:
		if signed {
			return ops.SRem, true
		}
		return ops.URem, true
	}
	return 0, false
}

// BitOpOf maps a go/token.Token bitwise operator onto ops.BitOp. AND_NOT
// (Go's `&^`) has no single BitOp of its own — a caller composes it as
// And(a, Xor(b, allOnes)) the way the teacher's own int64BinOp computes
// `v1 &^ v2` directly in Go rather than through a named bitwise-clear op.
func BitOpOf(tok token.Token) (op ops.BitOp, ok bool) {
	switch tok {
	case token.AND:
		return ops.And, true
	case token.OR:
		return ops.Or, true
	case token.XOR:
		return ops.Xor, true
	case token.SHL:
		return ops.Shl, true
	case token.SHR:
		// go/token does not distinguish arithmetic from logical right
		// shift; the caller (which knows the operand's signedness, same
		// split as ArithOpOf) picks AShr vs LShr itself.
		return ops.AShr, true
	}
	return 0, false
}

// PredicateOf maps a go/token.Token comparison operator onto ops.Predicate
// under the given signedness. EQL/NEQ are signedness-independent.
func PredicateOf(tok token.Token, signed bool) (pred ops.Predicate, ok bool) {
	switch tok {
	case token.EQL:
		return ops.EQ, true
	case token.NEQ:
		return ops.NE, true
	case token.LSS:
		if signed {
			return ops.SLT, true
		}
		return ops.ULT, true
	case token.LEQ:
		if signed {
			return ops.SLE, true
		}
		return ops.ULE, true
	case token.GTR:
		if signed {
			return ops.SGT, true
		}
		return ops.UGT, true
	case token.GEQ:
		if signed {
			return ops.SGE, true
		}
		return ops.UGE, true
	}
	return 0, false
}
