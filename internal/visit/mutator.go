package visit

import "tclc/internal/ir"

// Mutator rewrites a tree, node by node. A conforming implementation
// that overrides nothing behaves like BaseMutator: recursively mutate
// every child, and only allocate a new node when at least one child
// actually changed — otherwise return the input node unchanged, so
// repeated application of an all-default Mutator is a true identity
// (§8 invariant 3) and untouched subtrees keep their original shared
// pointers (§3.4).
type Mutator interface {
	MutateIntImm(*ir.IntImm) ir.Expr
	MutateUIntImm(*ir.UIntImm) ir.Expr
	MutateFloatImm(*ir.FloatImm) ir.Expr
	MutateStringImm(*ir.StringImm) ir.Expr
	MutateUnary(*ir.Unary) ir.Expr
	MutateBinary(*ir.Binary) ir.Expr
	MutateCompare(*ir.Compare) ir.Expr
	MutateSelect(*ir.Select) ir.Expr
	MutateCall(*ir.Call) ir.Expr
	MutateCast(*ir.Cast) ir.Expr
	MutateRamp(*ir.Ramp) ir.Expr
	MutateVar(*ir.Var) *ir.Var
	MutateDom(*ir.Dom) *ir.Dom
	MutateIndex(*ir.Index) *ir.Index
	MutateLoopNest(*ir.LoopNest) ir.Stmt
	MutateIfThenElse(*ir.IfThenElse) ir.Stmt
	MutateIf(*ir.If) ir.Stmt
	MutateMove(*ir.Move) ir.Stmt
	MutateKernel(*ir.Kernel) *ir.Kernel
}

// MutateExpr dispatches a single Expr node to the matching Mutator
// hook. nil passes through unchanged.
func MutateExpr(m Mutator, e ir.Expr) ir.Expr {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case *ir.IntImm:
		return m.MutateIntImm(n)
	case *ir.UIntImm:
		return m.MutateUIntImm(n)
	case *ir.FloatImm:
		return m.MutateFloatImm(n)
	case *ir.StringImm:
		return m.MutateStringImm(n)
	case *ir.Unary:
		return m.MutateUnary(n)
	case *ir.Binary:
		return m.MutateBinary(n)
	case *ir.Compare:
		return m.MutateCompare(n)
	case *ir.Select:
		return m.MutateSelect(n)
	case *ir.Call:
		return m.MutateCall(n)
	case *ir.Cast:
		return m.MutateCast(n)
	case *ir.Ramp:
		return m.MutateRamp(n)
	case *ir.Var:
		return m.MutateVar(n)
	case *ir.Dom:
		return m.MutateDom(n)
	case *ir.Index:
		return m.MutateIndex(n)
	default:
		panic("visit: unknown Expr variant")
	}
}

// MutateStmt dispatches a single Stmt node to the matching Mutator hook.
func MutateStmt(m Mutator, s ir.Stmt) ir.Stmt {
	if s == nil {
		return nil
	}
	switch n := s.(type) {
	case *ir.LoopNest:
		return m.MutateLoopNest(n)
	case *ir.IfThenElse:
		return m.MutateIfThenElse(n)
	case *ir.If:
		return m.MutateIf(n)
	case *ir.Move:
		return m.MutateMove(n)
	default:
		panic("visit: unknown Stmt variant")
	}
}

// BaseMutator implements the default post-order, rebuild-on-change
// traversal described above. Embed it and set Self to reach
// overridden methods while recursing through BaseMutator's bodies.
type BaseMutator struct {
	Self Mutator
}

func (b *BaseMutator) self() Mutator {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *BaseMutator) MutateIntImm(n *ir.IntImm) ir.Expr       { return n }
func (b *BaseMutator) MutateUIntImm(n *ir.UIntImm) ir.Expr     { return n }
func (b *BaseMutator) MutateFloatImm(n *ir.FloatImm) ir.Expr   { return n }
func (b *BaseMutator) MutateStringImm(n *ir.StringImm) ir.Expr { return n }

func (b *BaseMutator) MutateUnary(n *ir.Unary) ir.Expr {
	a := MutateExpr(b.self(), n.A)
	if a == n.A {
		return n
	}
	return &ir.Unary{Ty: n.Ty, Op: n.Op, A: a}
}

func (b *BaseMutator) MutateBinary(n *ir.Binary) ir.Expr {
	a := MutateExpr(b.self(), n.A)
	c := MutateExpr(b.self(), n.B)
	if a == n.A && c == n.B {
		return n
	}
	return &ir.Binary{Ty: n.Ty, Op: n.Op, A: a, B: c, Bracketed: n.Bracketed}
}

func (b *BaseMutator) MutateCompare(n *ir.Compare) ir.Expr {
	a := MutateExpr(b.self(), n.A)
	c := MutateExpr(b.self(), n.B)
	if a == n.A && c == n.B {
		return n
	}
	return &ir.Compare{Ty: n.Ty, Op: n.Op, A: a, B: c}
}

func (b *BaseMutator) MutateSelect(n *ir.Select) ir.Expr {
	cond := MutateExpr(b.self(), n.Cond)
	t := MutateExpr(b.self(), n.T)
	f := MutateExpr(b.self(), n.F)
	if cond == n.Cond && t == n.T && f == n.F {
		return n
	}
	return &ir.Select{Ty: n.Ty, Cond: cond, T: t, F: f}
}

func (b *BaseMutator) MutateCall(n *ir.Call) ir.Expr {
	changed := false
	args := make([]ir.Expr, len(n.Args))
	for i, a := range n.Args {
		args[i] = MutateExpr(b.self(), a)
		if args[i] != a {
			changed = true
		}
	}
	if !changed {
		return n
	}
	return &ir.Call{Ty: n.Ty, Name: n.Name, Args: args, Kind: n.Kind}
}

func (b *BaseMutator) MutateCast(n *ir.Cast) ir.Expr {
	v := MutateExpr(b.self(), n.Val)
	if v == n.Val {
		return n
	}
	return &ir.Cast{NewType: n.NewType, Val: v}
}

func (b *BaseMutator) MutateRamp(n *ir.Ramp) ir.Expr {
	base := MutateExpr(b.self(), n.Base)
	if base == n.Base {
		return n
	}
	return &ir.Ramp{Ty: n.Ty, Base: base, Stride: n.Stride, Lanes: n.Lanes}
}

func (b *BaseMutator) MutateVar(n *ir.Var) *ir.Var {
	changed := false
	args := make([]ir.Expr, len(n.Args))
	for i, a := range n.Args {
		args[i] = MutateExpr(b.self(), a)
		if args[i] != a {
			changed = true
		}
	}
	if !changed {
		return n
	}
	return &ir.Var{Ty: n.Ty, Name: n.Name, Args: args, Shape: n.Shape}
}

func (b *BaseMutator) MutateDom(n *ir.Dom) *ir.Dom {
	begin := MutateExpr(b.self(), n.Begin)
	extent := MutateExpr(b.self(), n.Extent)
	if begin == n.Begin && extent == n.Extent {
		return n
	}
	return &ir.Dom{Begin: begin, Extent: extent}
}

func (b *BaseMutator) MutateIndex(n *ir.Index) *ir.Index {
	if n.Dom == nil {
		return n
	}
	dom := b.self().MutateDom(n.Dom)
	if dom == n.Dom {
		return n
	}
	return &ir.Index{Ty: n.Ty, Name: n.Name, Dom: dom, Kind: n.Kind}
}

func (b *BaseMutator) MutateLoopNest(n *ir.LoopNest) ir.Stmt {
	changed := false
	indices := make([]*ir.Index, len(n.Indices))
	for i, ix := range n.Indices {
		indices[i] = b.self().MutateIndex(ix)
		if indices[i] != ix {
			changed = true
		}
	}
	bodies := make([]ir.Stmt, len(n.Bodies))
	for i, s := range n.Bodies {
		bodies[i] = MutateStmt(b.self(), s)
		if bodies[i] != s {
			changed = true
		}
	}
	if !changed {
		return n
	}
	return &ir.LoopNest{Indices: indices, Bodies: bodies}
}

func (b *BaseMutator) MutateIfThenElse(n *ir.IfThenElse) ir.Stmt {
	cond := MutateExpr(b.self(), n.Cond)
	t := MutateStmt(b.self(), n.T)
	f := MutateStmt(b.self(), n.F)
	if cond == n.Cond && t == n.T && f == n.F {
		return n
	}
	return &ir.IfThenElse{Cond: cond, T: t, F: f}
}

func (b *BaseMutator) MutateIf(n *ir.If) ir.Stmt {
	cond := MutateExpr(b.self(), n.Cond)
	t := MutateStmt(b.self(), n.T)
	if cond == n.Cond && t == n.T {
		return n
	}
	return &ir.If{Cond: cond, T: t}
}

func (b *BaseMutator) MutateMove(n *ir.Move) ir.Stmt {
	dst := b.self().MutateVar(n.Dst)
	src := MutateExpr(b.self(), n.Src)
	if dst == n.Dst && src == n.Src {
		return n
	}
	return &ir.Move{Dst: dst, Src: src, Kind: n.Kind}
}

func (b *BaseMutator) MutateKernel(n *ir.Kernel) *ir.Kernel {
	changed := false
	inputs := make([]*ir.Var, len(n.Inputs))
	for i, v := range n.Inputs {
		inputs[i] = b.self().MutateVar(v)
		if inputs[i] != v {
			changed = true
		}
	}
	outputs := make([]*ir.Var, len(n.Outputs))
	for i, v := range n.Outputs {
		outputs[i] = b.self().MutateVar(v)
		if outputs[i] != v {
			changed = true
		}
	}
	stmts := make([]ir.Stmt, len(n.Stmts))
	for i, s := range n.Stmts {
		stmts[i] = MutateStmt(b.self(), s)
		if stmts[i] != s {
			changed = true
		}
	}
	if !changed {
		return n
	}
	return &ir.Kernel{Name: n.Name, Inputs: inputs, Outputs: outputs, Stmts: stmts, Target: n.Target}
}
