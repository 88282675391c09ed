package ir

import "tclc/internal/types"

// ExprKind discriminates the Expr universe.
type ExprKind uint8

const (
	KindIntImm ExprKind = iota
	KindUIntImm
	KindFloatImm
	KindStringImm
	KindUnary
	KindBinary
	KindCompare
	KindSelect
	KindCall
	KindCast
	KindRamp
	KindVar
	KindDom
	KindIndex
)

func (k ExprKind) String() string {
	switch k {
	case KindIntImm:
		return "IntImm"
	case KindUIntImm:
		return "UIntImm"
	case KindFloatImm:
		return "FloatImm"
	case KindStringImm:
		return "StringImm"
	case KindUnary:
		return "Unary"
	case KindBinary:
		return "Binary"
	case KindCompare:
		return "Compare"
	case KindSelect:
		return "Select"
	case KindCall:
		return "Call"
	case KindCast:
		return "Cast"
	case KindRamp:
		return "Ramp"
	case KindVar:
		return "Var"
	case KindDom:
		return "Dom"
	case KindIndex:
		return "Index"
	default:
		return "Expr(?)"
	}
}

// Expr is any node in the algebraic-expression universe. Every Expr
// carries its result Type. Implementations are value-immutable
// pointer types; a transform that needs to change one constructs a
// fresh node rather than mutating the receiver.
type Expr interface {
	ExprKind() ExprKind
	Type() types.Type
}
