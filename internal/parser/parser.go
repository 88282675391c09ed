// Package parser turns a lexed TCL kernel source string into an
// ir.Kernel via recursive descent with per-statement bookkeeping —
// one token of lookahead, no backtracking, over a pre-lexed token
// slice rather than a lazy lexer, since TCL kernels are short enough
// to tokenize in one shot (§4.3).
package parser

import (
	"fmt"

	"tclc/internal/diag"
	"tclc/internal/source"
	"tclc/internal/token"
	"tclc/internal/types"
)

// IndexType is the element type every synthesized Index/Dom/bound
// IntImm carries — loop counters are always 32-bit signed integers
// regardless of the kernel's own declared element type.
var IndexType = types.IntScalar(32)

// Parser holds the state for parsing exactly one kernel source string.
// It is never reused across kernels (§5).
type Parser struct {
	toks     []token.Token
	pos      int
	reporter diag.Reporter
	elemType types.Type
	failed   bool
	lastSpan source.Span
}

func newParser(toks []token.Token, elemType types.Type, r diag.Reporter) *Parser {
	return &Parser{toks: toks, elemType: elemType, reporter: r}
}

func (p *Parser) peek() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[p.pos]
}

func (p *Parser) at(kind token.Kind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) atSym(text string) bool {
	return p.peek().Is(token.Sym, text)
}

func (p *Parser) advance() token.Token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	p.lastSpan = t.Span
	return t
}

// expectSym consumes a Sym token with the given exact text or fails.
func (p *Parser) expectSym(text string) bool {
	if p.atSym(text) {
		p.advance()
		return true
	}
	p.fail(diag.SynUnexpectedToken, fmt.Sprintf("expected %q, got %q", text, p.peek().Text))
	return false
}

// expectID consumes an Id token or fails, returning its text.
func (p *Parser) expectID() (string, bool) {
	if p.at(token.Id) {
		return p.advance().Text, true
	}
	p.fail(diag.SynUnexpectedToken, fmt.Sprintf("expected identifier, got %q", p.peek().Text))
	return "", false
}

// expectInt consumes an Int token or fails, returning its value.
func (p *Parser) expectInt() (int64, bool) {
	if p.at(token.Int) {
		return p.advance().IVal, true
	}
	p.fail(diag.SynNonConstantShape, fmt.Sprintf("expected integer constant, got %q", p.peek().Text))
	return 0, false
}

// fail records the first fatal error for this parse. Later calls are
// no-ops: only the first failure's position is useful to the caller.
func (p *Parser) fail(code diag.Code, msg string) {
	if p.failed {
		return
	}
	p.failed = true
	diag.Error(p.reporter, code, p.peek().Span, msg)
}

func (p *Parser) ok() bool { return !p.failed }
