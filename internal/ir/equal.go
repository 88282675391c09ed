package ir

// EqualExpr reports whether a and b are structurally identical —
// same variant, same fields, recursively. It is used by tests that
// check the mutator-identity invariant (§8 invariant 3: applying a
// Mutator that overrides nothing yields a tree structurally equal to
// the input) without relying on pointer identity, since a conforming
// Mutator implementation is free to rebuild unchanged subtrees.
func EqualExpr(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.ExprKind() != b.ExprKind() {
		return false
	}
	switch av := a.(type) {
	case *IntImm:
		bv := b.(*IntImm)
		return av.Ty == bv.Ty && av.Val == bv.Val
	case *UIntImm:
		bv := b.(*UIntImm)
		return av.Ty == bv.Ty && av.Val == bv.Val
	case *FloatImm:
		bv := b.(*FloatImm)
		return av.Ty == bv.Ty && av.Val == bv.Val
	case *StringImm:
		bv := b.(*StringImm)
		return av.Ty == bv.Ty && av.Val == bv.Val
	case *Unary:
		bv := b.(*Unary)
		return av.Ty == bv.Ty && av.Op == bv.Op && EqualExpr(av.A, bv.A)
	case *Binary:
		bv := b.(*Binary)
		return av.Ty == bv.Ty && av.Op == bv.Op && av.Bracketed == bv.Bracketed &&
			EqualExpr(av.A, bv.A) && EqualExpr(av.B, bv.B)
	case *Compare:
		bv := b.(*Compare)
		return av.Ty == bv.Ty && av.Op == bv.Op && EqualExpr(av.A, bv.A) && EqualExpr(av.B, bv.B)
	case *Select:
		bv := b.(*Select)
		return av.Ty == bv.Ty && EqualExpr(av.Cond, bv.Cond) && EqualExpr(av.T, bv.T) && EqualExpr(av.F, bv.F)
	case *Call:
		bv := b.(*Call)
		if av.Ty != bv.Ty || av.Name != bv.Name || av.Kind != bv.Kind || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !EqualExpr(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	case *Cast:
		bv := b.(*Cast)
		return av.NewType == bv.NewType && EqualExpr(av.Val, bv.Val)
	case *Ramp:
		bv := b.(*Ramp)
		return av.Ty == bv.Ty && av.Stride == bv.Stride && av.Lanes == bv.Lanes && EqualExpr(av.Base, bv.Base)
	case *Var:
		bv := b.(*Var)
		if av.Ty != bv.Ty || av.Name != bv.Name || len(av.Args) != len(bv.Args) || len(av.Shape) != len(bv.Shape) {
			return false
		}
		for i := range av.Args {
			if !EqualExpr(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		for i := range av.Shape {
			if av.Shape[i] != bv.Shape[i] {
				return false
			}
		}
		return true
	case *Dom:
		bv := b.(*Dom)
		return EqualExpr(av.Begin, bv.Begin) && EqualExpr(av.Extent, bv.Extent)
	case *Index:
		bv := b.(*Index)
		return av.Ty == bv.Ty && av.Name == bv.Name && av.Kind == bv.Kind && EqualExpr(av.Dom, bv.Dom)
	default:
		return false
	}
}

// EqualStmt is EqualExpr's counterpart over the Stmt universe.
func EqualStmt(a, b Stmt) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.StmtKind() != b.StmtKind() {
		return false
	}
	switch av := a.(type) {
	case *LoopNest:
		bv := b.(*LoopNest)
		if len(av.Indices) != len(bv.Indices) || len(av.Bodies) != len(bv.Bodies) {
			return false
		}
		for i := range av.Indices {
			if !EqualExpr(av.Indices[i], bv.Indices[i]) {
				return false
			}
		}
		for i := range av.Bodies {
			if !EqualStmt(av.Bodies[i], bv.Bodies[i]) {
				return false
			}
		}
		return true
	case *IfThenElse:
		bv := b.(*IfThenElse)
		return EqualExpr(av.Cond, bv.Cond) && EqualStmt(av.T, bv.T) && EqualStmt(av.F, bv.F)
	case *If:
		bv := b.(*If)
		return EqualExpr(av.Cond, bv.Cond) && EqualStmt(av.T, bv.T)
	case *Move:
		bv := b.(*Move)
		return av.Kind == bv.Kind && EqualExpr(av.Dst, bv.Dst) && EqualExpr(av.Src, bv.Src)
	default:
		return false
	}
}

// EqualKernel compares two Kernel groups structurally.
func EqualKernel(a, b *Kernel) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Name != b.Name || a.Target != b.Target || len(a.Stmts) != len(b.Stmts) {
		return false
	}
	if len(a.Inputs) != len(b.Inputs) || len(a.Outputs) != len(b.Outputs) {
		return false
	}
	for i := range a.Inputs {
		if !EqualExpr(a.Inputs[i], b.Inputs[i]) {
			return false
		}
	}
	for i := range a.Outputs {
		if !EqualExpr(a.Outputs[i], b.Outputs[i]) {
			return false
		}
	}
	for i := range a.Stmts {
		if !EqualStmt(a.Stmts[i], b.Stmts[i]) {
			return false
		}
	}
	return true
}
