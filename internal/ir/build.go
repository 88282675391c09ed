package ir

import "tclc/internal/types"

// BoolType is the result Type of a Compare/conjunction node. TCL has
// no distinct boolean primitive, so guard conditions use a 1-bit
// unsigned scalar, mirroring how the reference C backend represents
// them (an `if` condition, never stored to a variable).
var BoolType = types.UIntScalar(1)

// NewIndexDom constructs the Dom for a loop index with a literal
// begin (conventionally 0, per §8 invariant 2) and extent.
func NewIndexDom(ty types.Type, begin, extent int64) *Dom {
	return &Dom{
		Begin:  &IntImm{Ty: ty, Val: begin},
		Extent: &IntImm{Ty: ty, Val: extent},
	}
}

// NewCompare builds a Compare node with the conventional boolean Type.
func NewCompare(op CompareOp, a, b Expr) *Compare {
	return &Compare{Ty: BoolType, Op: op, A: a, B: b}
}

// And2 folds a chain of boolean-typed Exprs with left-associative
// Binary/And nodes, as the parser does when building a statement's
// guard conjunction (§4.2). Passing no conjuncts returns nil, which
// callers use to mean "no guard needed".
func And2(conjuncts ...Expr) Expr {
	if len(conjuncts) == 0 {
		return nil
	}
	acc := conjuncts[0]
	for _, c := range conjuncts[1:] {
		acc = &Binary{Ty: BoolType, Op: And, A: acc, B: c}
	}
	return acc
}
