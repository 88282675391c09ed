// Package visit implements read-only traversal (Visitor) and
// structural rewriting (Mutator) over the ir package's node
// taxonomy. Both are tagged-union dispatchers — a big per-kind type
// switch driving recursion — generalised with an embeddable base and
// a self-reference so that a pass can override only the variants it
// cares about and still have the default implementation recurse
// through the *overridden* methods for everything else.
package visit

import "tclc/internal/ir"

// Visitor is called once per node, pre-order. A conforming
// implementation that overrides nothing behaves like BaseVisitor:
// recurse into every child Expr/Stmt/Group field, in declaration
// order.
type Visitor interface {
	VisitIntImm(*ir.IntImm)
	VisitUIntImm(*ir.UIntImm)
	VisitFloatImm(*ir.FloatImm)
	VisitStringImm(*ir.StringImm)
	VisitUnary(*ir.Unary)
	VisitBinary(*ir.Binary)
	VisitCompare(*ir.Compare)
	VisitSelect(*ir.Select)
	VisitCall(*ir.Call)
	VisitCast(*ir.Cast)
	VisitRamp(*ir.Ramp)
	VisitVar(*ir.Var)
	VisitDom(*ir.Dom)
	VisitIndex(*ir.Index)
	VisitLoopNest(*ir.LoopNest)
	VisitIfThenElse(*ir.IfThenElse)
	VisitIf(*ir.If)
	VisitMove(*ir.Move)
	VisitKernel(*ir.Kernel)
}

// Expr dispatches a single Expr node to the matching Visitor hook.
// nil is a no-op, since several ir fields (e.g. IfThenElse.F) are
// optional.
func Expr(v Visitor, e ir.Expr) {
	if e == nil {
		return
	}
	switch n := e.(type) {
	case *ir.IntImm:
		v.VisitIntImm(n)
	case *ir.UIntImm:
		v.VisitUIntImm(n)
	case *ir.FloatImm:
		v.VisitFloatImm(n)
	case *ir.StringImm:
		v.VisitStringImm(n)
	case *ir.Unary:
		v.VisitUnary(n)
	case *ir.Binary:
		v.VisitBinary(n)
	case *ir.Compare:
		v.VisitCompare(n)
	case *ir.Select:
		v.VisitSelect(n)
	case *ir.Call:
		v.VisitCall(n)
	case *ir.Cast:
		v.VisitCast(n)
	case *ir.Ramp:
		v.VisitRamp(n)
	case *ir.Var:
		v.VisitVar(n)
	case *ir.Dom:
		v.VisitDom(n)
	case *ir.Index:
		v.VisitIndex(n)
	default:
		panic("visit: unknown Expr variant")
	}
}

// Stmt dispatches a single Stmt node to the matching Visitor hook.
func Stmt(v Visitor, s ir.Stmt) {
	if s == nil {
		return
	}
	switch n := s.(type) {
	case *ir.LoopNest:
		v.VisitLoopNest(n)
	case *ir.IfThenElse:
		v.VisitIfThenElse(n)
	case *ir.If:
		v.VisitIf(n)
	case *ir.Move:
		v.VisitMove(n)
	default:
		panic("visit: unknown Stmt variant")
	}
}

// Kernel dispatches the single Group variant.
func Kernel(v Visitor, k *ir.Kernel) {
	if k == nil {
		return
	}
	v.VisitKernel(k)
}

// BaseVisitor recurses into every child, doing nothing at the leaves.
// Embed it and set Self to your own type so overridden methods are
// still reached while walking through BaseVisitor's default bodies —
// without Self set, BaseVisitor walks using its own (non-overridden)
// methods only.
type BaseVisitor struct {
	Self Visitor
}

func (b *BaseVisitor) self() Visitor {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *BaseVisitor) VisitIntImm(*ir.IntImm)       {}
func (b *BaseVisitor) VisitUIntImm(*ir.UIntImm)     {}
func (b *BaseVisitor) VisitFloatImm(*ir.FloatImm)   {}
func (b *BaseVisitor) VisitStringImm(*ir.StringImm) {}

func (b *BaseVisitor) VisitUnary(n *ir.Unary) {
	Expr(b.self(), n.A)
}

func (b *BaseVisitor) VisitBinary(n *ir.Binary) {
	Expr(b.self(), n.A)
	Expr(b.self(), n.B)
}

func (b *BaseVisitor) VisitCompare(n *ir.Compare) {
	Expr(b.self(), n.A)
	Expr(b.self(), n.B)
}

func (b *BaseVisitor) VisitSelect(n *ir.Select) {
	Expr(b.self(), n.Cond)
	Expr(b.self(), n.T)
	Expr(b.self(), n.F)
}

func (b *BaseVisitor) VisitCall(n *ir.Call) {
	for _, a := range n.Args {
		Expr(b.self(), a)
	}
}

func (b *BaseVisitor) VisitCast(n *ir.Cast) {
	Expr(b.self(), n.Val)
}

func (b *BaseVisitor) VisitRamp(n *ir.Ramp) {
	Expr(b.self(), n.Base)
}

func (b *BaseVisitor) VisitVar(n *ir.Var) {
	for _, a := range n.Args {
		Expr(b.self(), a)
	}
}

func (b *BaseVisitor) VisitDom(n *ir.Dom) {
	Expr(b.self(), n.Begin)
	Expr(b.self(), n.Extent)
}

func (b *BaseVisitor) VisitIndex(n *ir.Index) {
	if n.Dom != nil {
		b.self().VisitDom(n.Dom)
	}
}

func (b *BaseVisitor) VisitLoopNest(n *ir.LoopNest) {
	for _, ix := range n.Indices {
		b.self().VisitIndex(ix)
	}
	for _, body := range n.Bodies {
		Stmt(b.self(), body)
	}
}

func (b *BaseVisitor) VisitIfThenElse(n *ir.IfThenElse) {
	Expr(b.self(), n.Cond)
	Stmt(b.self(), n.T)
	Stmt(b.self(), n.F)
}

func (b *BaseVisitor) VisitIf(n *ir.If) {
	Expr(b.self(), n.Cond)
	Stmt(b.self(), n.T)
}

func (b *BaseVisitor) VisitMove(n *ir.Move) {
	b.self().VisitVar(n.Dst)
	Expr(b.self(), n.Src)
}

func (b *BaseVisitor) VisitKernel(n *ir.Kernel) {
	for _, v := range n.Inputs {
		b.self().VisitVar(v)
	}
	for _, v := range n.Outputs {
		b.self().VisitVar(v)
	}
	for _, s := range n.Stmts {
		Stmt(b.self(), s)
	}
}
