package visit

import (
	"testing"

	"tclc/internal/ir"
	"tclc/internal/types"
)

func sampleKernel() *ir.Kernel {
	ty := types.FloatScalar(32)
	iTy := types.IntScalar(32)
	iDom := ir.NewIndexDom(iTy, 0, 4)
	jDom := ir.NewIndexDom(iTy, 0, 16)
	iIdx := &ir.Index{Ty: iTy, Name: "i", Dom: iDom, Kind: ir.Spatial}
	jIdx := &ir.Index{Ty: iTy, Name: "j", Dom: jDom, Kind: ir.Spatial}

	a := &ir.Var{Ty: ty, Name: "A", Args: []ir.Expr{iIdx, jIdx}, Shape: []uint64{4, 16}}
	b := &ir.Var{Ty: ty, Name: "B", Args: []ir.Expr{iIdx, jIdx}, Shape: []uint64{4, 16}}
	c := &ir.Var{Ty: ty, Name: "C", Args: []ir.Expr{iIdx, jIdx}, Shape: []uint64{4, 16}}

	rhs := &ir.Binary{Ty: ty, Op: ir.Mul, A: a, B: b}
	move := &ir.Move{Dst: c, Src: rhs, Kind: ir.MemToMem}
	loop := &ir.LoopNest{Indices: []*ir.Index{iIdx, jIdx}, Bodies: []ir.Stmt{move}}

	return &ir.Kernel{
		Name:    "mul",
		Inputs:  []*ir.Var{a, b},
		Outputs: []*ir.Var{c},
		Stmts:   []ir.Stmt{loop},
		Target:  ir.CPU,
	}
}

func TestIdentityMutatorIsStructurallyTransparent(t *testing.T) {
	k := sampleKernel()
	out := IdentityMutator().MutateKernel(k)
	if out != k {
		t.Fatalf("identity mutator must return the exact same pointer when nothing changes")
	}
	if !ir.EqualKernel(k, out) {
		t.Fatalf("identity mutator changed the tree structurally")
	}
}

func TestConstFoldDoesNotFold(t *testing.T) {
	ty := types.FloatScalar(32)
	sum := &ir.Binary{Ty: ty, Op: ir.Add, A: &ir.Var{Ty: ty, Name: "A", Shape: []uint64{1}}, B: &ir.IntImm{Ty: types.IntScalar(32), Val: 0}}
	out := MutateExpr(NewConstFold(), sum)
	if !ir.EqualExpr(out, sum) {
		t.Fatalf("ConstFold must be a structural no-op per spec fidelity requirement")
	}
}

func TestRenamePassRenamesMatchingIndexOnly(t *testing.T) {
	k := sampleKernel()
	renamed := NewRenamePass("i", "p").MutateKernel(k)

	loop := renamed.Stmts[0].(*ir.LoopNest)
	if loop.Indices[0].Name != "p" {
		t.Fatalf("expected renamed index 'p', got %q", loop.Indices[0].Name)
	}
	if loop.Indices[1].Name != "j" {
		t.Fatalf("unrelated index must be left alone, got %q", loop.Indices[1].Name)
	}
	// Original tree must be untouched (immutability, §3.4).
	origLoop := k.Stmts[0].(*ir.LoopNest)
	if origLoop.Indices[0].Name != "i" {
		t.Fatalf("original kernel must not be mutated in place")
	}
}

type countingVisitor struct {
	BaseVisitor
	vars int
}

func (c *countingVisitor) VisitVar(n *ir.Var) {
	c.vars++
	c.BaseVisitor.VisitVar(n)
}

func TestVisitorCountsEveryVarOccurrence(t *testing.T) {
	k := sampleKernel()
	cv := &countingVisitor{}
	cv.Self = cv
	Kernel(cv, k)
	// A, B counted as kernel inputs, C as kernel output, then again as
	// the Move's Dst (C) and the Binary's operands (A, B): 2+1+1+2=6.
	if cv.vars != 6 {
		t.Fatalf("expected 6 Var visits, got %d", cv.vars)
	}
}
