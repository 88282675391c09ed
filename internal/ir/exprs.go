package ir

import "tclc/internal/types"

// IntImm is a compile-time signed integer literal.
type IntImm struct {
	Ty  types.Type
	Val int64
}

func (n *IntImm) ExprKind() ExprKind { return KindIntImm }
func (n *IntImm) Type() types.Type   { return n.Ty }

// UIntImm is a compile-time unsigned integer literal.
type UIntImm struct {
	Ty  types.Type
	Val uint64
}

func (n *UIntImm) ExprKind() ExprKind { return KindUIntImm }
func (n *UIntImm) Type() types.Type   { return n.Ty }

// FloatImm is a compile-time floating point literal.
type FloatImm struct {
	Ty  types.Type
	Val float64
}

func (n *FloatImm) ExprKind() ExprKind { return KindFloatImm }
func (n *FloatImm) Type() types.Type   { return n.Ty }

// StringImm is a compile-time string literal, used for call argument
// names and other non-numeric leaves.
type StringImm struct {
	Ty  types.Type
	Val string
}

func (n *StringImm) ExprKind() ExprKind { return KindStringImm }
func (n *StringImm) Type() types.Type   { return n.Ty }

// Unary applies Op to A.
type Unary struct {
	Ty types.Type
	Op UnaryOp
	A  Expr
}

func (n *Unary) ExprKind() ExprKind { return KindUnary }
func (n *Unary) Type() types.Type   { return n.Ty }

// Binary applies Op to A and B. Bracketed records whether the source
// wrapped this expression in parentheses — it governs the printer's
// grouping independent of operator precedence (§4.5).
type Binary struct {
	Ty        types.Type
	Op        BinaryOp
	A, B      Expr
	Bracketed bool
}

func (n *Binary) ExprKind() ExprKind { return KindBinary }
func (n *Binary) Type() types.Type   { return n.Ty }

// Compare applies a relational Op to A and B; its Type is always a
// boolean-like scalar (UIntScalar(1) by convention, see NewCompare).
type Compare struct {
	Ty   types.Type
	Op   CompareOp
	A, B Expr
}

func (n *Compare) ExprKind() ExprKind { return KindCompare }
func (n *Compare) Type() types.Type   { return n.Ty }

// Select is a ternary conditional expression.
type Select struct {
	Ty         types.Type
	Cond, T, F Expr
}

func (n *Select) ExprKind() ExprKind { return KindSelect }
func (n *Select) Type() types.Type   { return n.Ty }

// Call is a named function application.
type Call struct {
	Ty   types.Type
	Name string
	Args []Expr
	Kind CallKind
}

func (n *Call) ExprKind() ExprKind { return KindCall }
func (n *Call) Type() types.Type   { return n.Ty }

// Cast reinterprets Val as NewType.
type Cast struct {
	NewType types.Type
	Val     Expr
}

func (n *Cast) ExprKind() ExprKind { return KindCast }
func (n *Cast) Type() types.Type   { return n.NewType }

// Ramp describes a lane-indexed affine sequence base, base+stride,
// base+2*stride, … — reserved for the vectorizing transforms the
// spec does not implement (§1); the parser never constructs one.
type Ramp struct {
	Ty     types.Type
	Base   Expr
	Stride uint16
	Lanes  uint16
}

func (n *Ramp) ExprKind() ExprKind { return KindRamp }
func (n *Ramp) Type() types.Type   { return n.Ty }

// Var is a named tensor reference: Name<Shape>[Args]. Shape carries
// the declared extent of each dimension; Args carries the per-
// dimension index expression. A scalar Var has Shape == []uint64{1}
// and an empty Args (§3.3).
type Var struct {
	Ty    types.Type
	Name  string
	Args  []Expr
	Shape []uint64
}

func (n *Var) ExprKind() ExprKind { return KindVar }
func (n *Var) Type() types.Type   { return n.Ty }

// IsScalar reports whether this Var has no index arguments (Args is
// empty); Shape is not consulted.
func (n *Var) IsScalar() bool {
	return len(n.Args) == 0
}

// Dom is the compile-time-constant domain of an Index: [Begin,
// Begin+Extent). Both Begin and Extent must be *IntImm (§3.3).
type Dom struct {
	Begin  Expr
	Extent Expr
}

func (n *Dom) ExprKind() ExprKind { return KindDom }

// Type returns the Dom's own element type, taken from Extent, since a
// Dom has no independent Type field of its own but callers sometimes
// need one (e.g. to construct a matching IntImm).
func (n *Dom) Type() types.Type {
	if n.Extent != nil {
		return n.Extent.Type()
	}
	return types.Type{}
}

// BeginValue returns the constant begin offset, which §8 invariant 2
// requires to always be zero.
func (n *Dom) BeginValue() int64 {
	if imm, ok := n.Begin.(*IntImm); ok {
		return imm.Val
	}
	return 0
}

// ExtentValue returns the constant extent, which §8 invariant 2
// requires to always be positive.
func (n *Dom) ExtentValue() int64 {
	if imm, ok := n.Extent.(*IntImm); ok {
		return imm.Val
	}
	return 0
}

// Index is a named loop induction variable ranging over Dom.
type Index struct {
	Ty   types.Type
	Name string
	Dom  *Dom
	Kind IndexKind
}

func (n *Index) ExprKind() ExprKind { return KindIndex }
func (n *Index) Type() types.Type   { return n.Ty }
