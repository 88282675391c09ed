// Package lexer tokenizes a TCL kernel string into the four-variant
// token alphabet described in §4.3: Id, Int, Float, Sym (with `//` as
// the one two-character symbol). It is a single left-to-right pass
// with one-byte lookahead, split into a cursor and per-class scan
// functions; TCL has no keywords, strings, comments or trivia.
package lexer

import (
	"tclc/internal/diag"
	"tclc/internal/token"
)

// Lexer tokenizes one kernel source string. It holds no state beyond
// the current scan, so a fresh Lexer (or a direct call to Tokenize)
// per kernel is always safe — nothing survives between calls (§4.3,
// §5).
type Lexer struct {
	cur      cursor
	reporter diag.Reporter
}

// New constructs a Lexer over src, reporting lexical errors to r (nil
// is accepted and simply discards them).
func New(src string, r diag.Reporter) *Lexer {
	return &Lexer{cur: newCursor(src), reporter: r}
}

// Tokenize lexes src in full and returns its token stream, terminated
// by a trailing EOF token. It is the stateless, restartable entry
// point most callers want.
func Tokenize(src string, r diag.Reporter) []token.Token {
	return New(src, r).All()
}

// All drains the lexer, returning every token including the trailing
// EOF sentinel.
func (l *Lexer) All() []token.Token {
	var out []token.Token
	for {
		tok := l.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

// Next scans and returns the next token, skipping whitespace first.
func (l *Lexer) Next() token.Token {
	l.skipWhitespace()
	if l.cur.eof() {
		return token.Token{Kind: token.EOF, Span: l.cur.spanFrom(l.cur.mark())}
	}

	b := l.cur.peek()
	switch {
	case isAlpha(b):
		return l.scanIdent()
	case isDigit(b) || (b == '.' && isDigit(l.cur.peekAt(1))):
		return l.scanNumber()
	default:
		return l.scanSym()
	}
}

func (l *Lexer) skipWhitespace() {
	for !l.cur.eof() && isSpace(l.cur.peek()) {
		l.cur.bump()
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
