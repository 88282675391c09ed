package parser

import (
	"tclc/internal/diag"
	"tclc/internal/ir"
	"tclc/internal/lexer"
	"tclc/internal/token"
	"tclc/internal/types"
)

// Options configures one call to Parse.
type Options struct {
	// Name is the kernel's declared name, taken from the JSON case's
	// "name" field.
	Name string
	// ElemType is the element type every Var/Imm/Binary in this
	// kernel carries, derived from the JSON case's "data_type" field
	// via types.FromDataType (§6.1).
	ElemType types.Type
	// Ins / Outs are the JSON case's declaration-ordered variable name
	// lists; Kernel.Inputs/Outputs are built from these, deduplicated,
	// first occurrence wins (§3.3).
	Ins, Outs []string
	Reporter  diag.Reporter
}

// Parse lexes and parses src (one or more ';'-terminated statements)
// into a Kernel, or returns an error once the first fatal diagnostic
// is reported (§4.2 failure conditions, §7).
func Parse(src string, opts Options) (*ir.Kernel, error) {
	toks := lexer.Tokenize(src, opts.Reporter)
	p := newParser(toks, opts.ElemType, opts.Reporter)

	decls := make(map[string]*ir.Var)
	var stmts []ir.Stmt

	for p.ok() && !p.at(token.EOF) {
		before := p.pos
		stmt := p.parseStmt()
		if !p.ok() {
			break
		}
		stmts = append(stmts, stmt)
		recordDecls(decls, stmt)
		if p.pos == before {
			// Defensive: a grammar bug that consumes no tokens would
			// otherwise loop forever; treat it as a parse failure.
			p.fail(diag.SynUnexpectedToken, "parser made no progress")
			break
		}
	}

	if p.failed {
		return nil, errParse{}
	}

	return &ir.Kernel{
		Name:    opts.Name,
		Inputs:  resolveVars(opts.Ins, decls),
		Outputs: resolveVars(opts.Outs, decls),
		Stmts:   stmts,
		Target:  ir.CPU,
	}, nil
}

// recordDecls walks a freshly lowered statement's Move, registering
// every distinct Var name it declares (LHS and any TRef read on the
// RHS) so the Kernel's declared inputs/outputs can be resolved by
// name afterward.
func recordDecls(decls map[string]*ir.Var, stmt ir.Stmt) {
	loop, ok := stmt.(*ir.LoopNest)
	if !ok || len(loop.Bodies) == 0 {
		return
	}
	body := loop.Bodies[0]
	if ifStmt, ok := body.(*ir.If); ok {
		body = ifStmt.T
	}
	move, ok := body.(*ir.Move)
	if !ok {
		return
	}
	addDecl(decls, move.Dst)
	walkVars(move.Src, decls)
}

func walkVars(e ir.Expr, decls map[string]*ir.Var) {
	switch n := e.(type) {
	case *ir.Var:
		addDecl(decls, n)
		for _, a := range n.Args {
			walkVars(a, decls)
		}
	case *ir.Binary:
		walkVars(n.A, decls)
		walkVars(n.B, decls)
	case *ir.Unary:
		walkVars(n.A, decls)
	case *ir.Cast:
		walkVars(n.Val, decls)
	case *ir.Select:
		walkVars(n.Cond, decls)
		walkVars(n.T, decls)
		walkVars(n.F, decls)
	case *ir.Call:
		for _, a := range n.Args {
			walkVars(a, decls)
		}
	}
}

func addDecl(decls map[string]*ir.Var, v *ir.Var) {
	if v == nil {
		return
	}
	if _, exists := decls[v.Name]; !exists {
		decls[v.Name] = v
	}
}

// resolveVars maps a JSON name list to the Var declarations collected
// while parsing, in the list's order, deduplicated with first wins
// (§3.3). A name with no matching declaration is skipped — the input
// JSON is trusted to name only variables the kernel text actually
// uses.
func resolveVars(names []string, decls map[string]*ir.Var) []*ir.Var {
	seen := make(map[string]bool, len(names))
	out := make([]*ir.Var, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		if v, ok := decls[name]; ok {
			out = append(out, v)
		}
	}
	return out
}

type errParse struct{}

func (errParse) Error() string { return "parser: kernel source failed to parse" }
