package ir

import (
	"testing"

	"tclc/internal/types"
)

func TestDomInvariants(t *testing.T) {
	ty := types.IntScalar(32)
	d := NewIndexDom(ty, 0, 16)
	if d.BeginValue() != 0 {
		t.Fatalf("§8 invariant 2: Dom.begin must be 0, got %d", d.BeginValue())
	}
	if d.ExtentValue() <= 0 {
		t.Fatalf("§8 invariant 2: Dom.extent must be > 0, got %d", d.ExtentValue())
	}
	if _, ok := d.Begin.(*IntImm); !ok {
		t.Fatalf("Dom.Begin must be IntImm-typed")
	}
	if _, ok := d.Extent.(*IntImm); !ok {
		t.Fatalf("Dom.Extent must be IntImm-typed")
	}
}

func TestVarShapeArgsInvariant(t *testing.T) {
	ty := types.FloatScalar(32)
	iTy := types.IntScalar(32)
	i := &Index{Ty: iTy, Name: "i", Dom: NewIndexDom(iTy, 0, 4)}
	v := &Var{Ty: ty, Name: "A", Args: []Expr{i}, Shape: []uint64{4}}
	if len(v.Shape) != len(v.Args) {
		t.Fatalf("§3.3: non-scalar Var must have len(Shape) == len(Args)")
	}

	scalar := &Var{Ty: ty, Name: "k", Shape: []uint64{1}}
	if !scalar.IsScalar() {
		t.Fatalf("a Var with no Args must report IsScalar")
	}
}

func TestAnd2FoldsLeftAssociative(t *testing.T) {
	a := NewCompare(LT, &IntImm{Ty: types.IntScalar(32), Val: 1}, &IntImm{Ty: types.IntScalar(32), Val: 2})
	b := NewCompare(LT, &IntImm{Ty: types.IntScalar(32), Val: 3}, &IntImm{Ty: types.IntScalar(32), Val: 4})
	c := NewCompare(LT, &IntImm{Ty: types.IntScalar(32), Val: 5}, &IntImm{Ty: types.IntScalar(32), Val: 6})

	got := And2(a, b, c).(*Binary)
	if got.Op != And {
		t.Fatalf("expected top-level And, got %v", got.Op)
	}
	inner, ok := got.A.(*Binary)
	if !ok || inner.Op != And {
		t.Fatalf("expected left-folded conjunction, got %#v", got.A)
	}
	if inner.A != Expr(a) || inner.B != Expr(b) || got.B != Expr(c) {
		t.Fatalf("conjunction did not preserve operand identity/order")
	}
}

func TestAnd2EmptyIsNil(t *testing.T) {
	if And2() != nil {
		t.Fatalf("And2 with no conjuncts must return nil (no guard)")
	}
}

func TestEqualExprDistinguishesVariants(t *testing.T) {
	a := &IntImm{Ty: types.IntScalar(32), Val: 1}
	b := &UIntImm{Ty: types.UIntScalar(32), Val: 1}
	if EqualExpr(a, b) {
		t.Fatalf("different ExprKinds must not be equal")
	}
	if !EqualExpr(a, &IntImm{Ty: types.IntScalar(32), Val: 1}) {
		t.Fatalf("value-identical IntImms must be equal")
	}
}
