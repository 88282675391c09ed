package parser

import (
	"tclc/internal/diag"
	"tclc/internal/ir"
	"tclc/internal/token"
)

// parseStmt parses one `LHS '=' RHS ';'` statement and lowers it to a
// LoopNest per §4.2's three-step construction. It returns nil once
// p.failed is set.
func (p *Parser) parseStmt() ir.Stmt {
	st := newStmtState()

	lhs := p.parseTRef(st)
	if !p.ok() {
		return nil
	}
	if !p.expectSym("=") {
		return nil
	}
	rhs := p.parseRHS(st)
	if !p.ok() {
		return nil
	}
	if !p.expectSym(";") {
		return nil
	}

	main := ir.Stmt(&ir.Move{Dst: lhs, Src: rhs, Kind: ir.MemToMem})
	if guard := st.guard(); guard != nil {
		main = &ir.If{Cond: guard, T: main}
	}
	return &ir.LoopNest{Indices: st.orderedIndices(), Bodies: []ir.Stmt{main}}
}

// parseRHS parses `TERM RHS1`, left-folding '+'/'-' into Binary nodes.
func (p *Parser) parseRHS(st *stmtState) ir.Expr {
	acc := p.parseTerm(st)
	for p.ok() && (p.atSym("+") || p.atSym("-")) {
		op := ir.Add
		if p.peek().Text == "-" {
			op = ir.Sub
		}
		p.advance()
		rhs := p.parseTerm(st)
		if !p.ok() {
			return acc
		}
		acc = &ir.Binary{Ty: p.elemType, Op: op, A: acc, B: rhs}
	}
	return acc
}

// parseTerm parses `FACTOR TERM1`, left-folding '*'/'/'/'//'/'%'.
func (p *Parser) parseTerm(st *stmtState) ir.Expr {
	acc := p.parseFactor(st)
	for p.ok() && (p.atSym("*") || p.atSym("/") || p.atSym("//") || p.atSym("%")) {
		var op ir.BinaryOp
		switch p.peek().Text {
		case "*":
			op = ir.Mul
		case "%":
			op = ir.Mod
		default:
			// Both '/' and '//' lower to Div — a documented lossy
			// fidelity point (§9 open question on floor division).
			op = ir.Div
		}
		p.advance()
		rhs := p.parseFactor(st)
		if !p.ok() {
			return acc
		}
		acc = &ir.Binary{Ty: p.elemType, Op: op, A: acc, B: rhs}
	}
	return acc
}

// parseFactor parses `'(' RHS ')' | Const | TRef`.
func (p *Parser) parseFactor(st *stmtState) ir.Expr {
	switch {
	case p.atSym("("):
		p.advance()
		inner := p.parseRHS(st)
		if !p.ok() {
			return inner
		}
		if !p.expectSym(")") {
			return inner
		}
		if b, ok := inner.(*ir.Binary); ok {
			marked := *b
			marked.Bracketed = true
			return &marked
		}
		return inner
	case p.at(token.Int), p.at(token.Float):
		return p.parseConst()
	default:
		return p.parseTRef(st)
	}
}

// parseConst parses `Int | Float`.
func (p *Parser) parseConst() ir.Expr {
	if p.at(token.Int) {
		v := p.advance().IVal
		return &ir.IntImm{Ty: p.elemType, Val: v}
	}
	if p.at(token.Float) {
		v := p.advance().FVal
		return &ir.FloatImm{Ty: p.elemType, Val: v}
	}
	p.fail(diag.SynExpectedConst, "expected an integer or floating point constant")
	return nil
}

// parseTRef parses `Id '<' CList '>' SRef`, registering any index
// names found in SRef against st and adding a guard bound pair for
// every compound (non-bare) index expression (§4.2).
func (p *Parser) parseTRef(st *stmtState) *ir.Var {
	name, ok := p.expectID()
	if !ok {
		return nil
	}
	if !p.expectSym("<") {
		return nil
	}
	shape := p.parseCList()
	if !p.ok() {
		return nil
	}
	if !p.expectSym(">") {
		return nil
	}
	args := p.parseSRef(st, shape)
	if !p.ok() {
		return nil
	}
	return &ir.Var{Ty: p.elemType, Name: name, Args: args, Shape: shape}
}

// parseCList parses `Int (',' Int)*`.
func (p *Parser) parseCList() []uint64 {
	var shape []uint64
	v, ok := p.expectInt()
	if !ok {
		return nil
	}
	shape = append(shape, uint64(v))
	for p.ok() && p.atSym(",") {
		p.advance()
		v, ok := p.expectInt()
		if !ok {
			return shape
		}
		shape = append(shape, uint64(v))
	}
	return shape
}

// parseSRef parses `'[' AList ']' | ε`.
func (p *Parser) parseSRef(st *stmtState, shape []uint64) []ir.Expr {
	if !p.atSym("[") {
		return nil
	}
	p.advance()
	var args []ir.Expr
	for dim := 0; ; dim++ {
		extent := int64(0)
		if dim < len(shape) {
			extent = int64(shape[dim])
		}
		expr := p.parseIdExpr(st, extent)
		if !p.ok() {
			return args
		}
		args = append(args, expr)
		if _, isBinary := expr.(*ir.Binary); isBinary {
			st.addBound(expr, extent)
		}
		if p.atSym(",") {
			p.advance()
			continue
		}
		break
	}
	if !p.expectSym("]") {
		return args
	}
	return args
}

// parseIdExpr parses `ITERM IdExpr1`, left-folding '+'/'-'. extent is
// the declared shape dimension this argument position ranges over,
// passed down so any bare Id leaf can register itself as an Index
// with the right bound (§3.3, §4.2).
func (p *Parser) parseIdExpr(st *stmtState, extent int64) ir.Expr {
	acc := p.parseITerm(st, extent)
	for p.ok() && (p.atSym("+") || p.atSym("-")) {
		op := ir.Add
		if p.peek().Text == "-" {
			op = ir.Sub
		}
		p.advance()
		rhs := p.parseITerm(st, extent)
		if !p.ok() {
			return acc
		}
		acc = &ir.Binary{Ty: IndexType, Op: op, A: acc, B: rhs}
	}
	return acc
}

// parseITerm parses `IFACTOR ITERM1`, left-folding '*'/'/'/'//'/'%' —
// mirroring parseTerm's value-level handling, per the original's
// Parse::ITERM1 (include/IR.h), which accepts all four operators
// inside index expressions (e.g. `A[i%2]`, `A[i//2]`).
func (p *Parser) parseITerm(st *stmtState, extent int64) ir.Expr {
	acc := p.parseIFactor(st, extent)
	for p.ok() && (p.atSym("*") || p.atSym("/") || p.atSym("//") || p.atSym("%")) {
		var op ir.BinaryOp
		switch p.peek().Text {
		case "*":
			op = ir.Mul
		case "%":
			op = ir.Mod
		default:
			// Both '/' and '//' lower to Div — same documented lossy
			// fidelity point as parseTerm (§9 open question).
			op = ir.Div
		}
		p.advance()
		rhs := p.parseIFactor(st, extent)
		if !p.ok() {
			return acc
		}
		acc = &ir.Binary{Ty: IndexType, Op: op, A: acc, B: rhs}
	}
	return acc
}

// parseIFactor parses `'(' IdExpr ')' | Id | Int`.
func (p *Parser) parseIFactor(st *stmtState, extent int64) ir.Expr {
	switch {
	case p.atSym("("):
		p.advance()
		inner := p.parseIdExpr(st, extent)
		if !p.ok() {
			return inner
		}
		if !p.expectSym(")") {
			return inner
		}
		if b, ok := inner.(*ir.Binary); ok {
			marked := *b
			marked.Bracketed = true
			return &marked
		}
		return inner
	case p.at(token.Id):
		name, _ := p.expectID()
		return st.addIndex(name, extent)
	case p.at(token.Int):
		v, _ := p.expectInt()
		return &ir.IntImm{Ty: IndexType, Val: v}
	default:
		p.fail(diag.SynExpectedIdentOrInt, "expected an identifier or integer in an index expression")
		return nil
	}
}
