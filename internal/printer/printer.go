// Package printer renders an ir.Kernel as a C-compatible imperative
// function: a signature over the kernel's declared inputs/outputs,
// nested for-loops over each statement's LoopNest indices, and guarded
// assignments — the reverse direction of what internal/parser builds.
// Writes directly to an io.Writer and returns an error rather than
// building an intermediate string.
package printer

import (
	"fmt"
	"io"
	"strconv"

	"tclc/internal/ir"
)

// Print writes k as a C function definition to w.
func Print(w io.Writer, k *ir.Kernel) error {
	pw := &printWriter{w: w}
	pw.printSignature(k)
	pw.printf(" {\n")
	for _, stmt := range k.Stmts {
		pw.printStmt(stmt, 1)
	}
	pw.printf("}\n")
	return pw.err
}

// printWriter tracks the first write error so call sites can chain
// Fprintf calls without checking each one individually.
type printWriter struct {
	w   io.Writer
	err error
}

func (p *printWriter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printWriter) printSignature(k *ir.Kernel) {
	params := declParams(k)
	p.printf("void %s(", k.Name)
	for i, v := range params {
		if i > 0 {
			p.printf(", ")
		}
		p.printf("%s (&%s)%s", v.Ty.CName(), v.Name, shapeBrackets(v.Shape))
	}
	p.printf(")")
}

// declParams combines inputs and outputs in order, deduplicated by
// name with first appearance winning (§4.5).
func declParams(k *ir.Kernel) []*ir.Var {
	seen := make(map[string]bool)
	out := make([]*ir.Var, 0, len(k.Inputs)+len(k.Outputs))
	for _, lists := range [][]*ir.Var{k.Inputs, k.Outputs} {
		for _, v := range lists {
			if seen[v.Name] {
				continue
			}
			seen[v.Name] = true
			out = append(out, v)
		}
	}
	return out
}

func shapeBrackets(shape []uint64) string {
	s := ""
	for _, dim := range shape {
		s += fmt.Sprintf("[%d]", dim)
	}
	return s
}

func (p *printWriter) indent(level int) {
	for i := 0; i < level; i++ {
		p.printf("    ")
	}
}

func (p *printWriter) printStmt(s ir.Stmt, level int) {
	switch n := s.(type) {
	case *ir.LoopNest:
		p.printLoopNest(n, level)
	case *ir.If:
		p.indent(level)
		p.printf("if (%s) {\n", exprString(n.Cond))
		p.printStmt(n.T, level+1)
		p.indent(level)
		p.printf("}\n")
	case *ir.IfThenElse:
		p.indent(level)
		p.printf("if (%s) {\n", exprString(n.Cond))
		p.printStmt(n.T, level+1)
		p.indent(level)
		p.printf("} else {\n")
		p.printStmt(n.F, level+1)
		p.indent(level)
		p.printf("}\n")
	case *ir.Move:
		p.printMove(n, level)
	}
}

func (p *printWriter) printLoopNest(n *ir.LoopNest, level int) {
	for i, idx := range n.Indices {
		p.indent(level + i)
		begin := idx.Dom.BeginValue()
		extent := idx.Dom.ExtentValue()
		p.printf("for (int %s = %d; %s < %d; ++%s) {\n",
			idx.Name, begin, idx.Name, begin+extent, idx.Name)
	}
	for _, body := range n.Bodies {
		p.printStmt(body, level+len(n.Indices))
	}
	for i := len(n.Indices) - 1; i >= 0; i-- {
		p.indent(level + i)
		p.printf("}\n")
	}
}

func (p *printWriter) printMove(n *ir.Move, level int) {
	op := "="
	if containsVarName(n.Src, n.Dst.Name) {
		op = "+="
	}
	p.indent(level)
	p.printf("%s %s %s;\n", exprString(n.Dst), op, exprString(n.Src))
}

// containsVarName reports whether e reads a Var named name anywhere
// in its tree — the printer's syntactic (not semantic) reduction
// detection (§4.5).
func containsVarName(e ir.Expr, name string) bool {
	switch n := e.(type) {
	case *ir.Var:
		if n.Name == name {
			return true
		}
		for _, a := range n.Args {
			if containsVarName(a, name) {
				return true
			}
		}
		return false
	case *ir.Binary:
		return containsVarName(n.A, name) || containsVarName(n.B, name)
	case *ir.Unary:
		return containsVarName(n.A, name)
	case *ir.Compare:
		return containsVarName(n.A, name) || containsVarName(n.B, name)
	case *ir.Select:
		return containsVarName(n.Cond, name) || containsVarName(n.T, name) || containsVarName(n.F, name)
	case *ir.Cast:
		return containsVarName(n.Val, name)
	case *ir.Call:
		for _, a := range n.Args {
			if containsVarName(a, name) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
