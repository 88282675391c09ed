package lexer

import (
	"fmt"

	"tclc/internal/diag"
	"tclc/internal/token"
)

// scanSym consumes one symbol token. `//` is the lexer's one
// two-character lookahead case (floor-division, §4.3); every other
// non-alphanumeric printable byte becomes its own single-character
// Sym. Anything else — a stray control byte or non-ASCII byte — is a
// lex error (§7): each such byte is reported and returned as an
// Invalid token.
func (l *Lexer) scanSym() token.Token {
	m := l.cur.mark()
	b := l.cur.bump()

	if b == '/' && l.cur.peek() == '/' {
		l.cur.bump()
		return token.Token{Kind: token.Sym, Text: "//", Span: l.cur.spanFrom(m)}
	}

	if !isSymByte(b) {
		span := l.cur.spanFrom(m)
		diag.Error(l.reporter, diag.LexUnknownChar, span, fmt.Sprintf("unexpected character %q", b))
		return token.Token{Kind: token.Invalid, Text: string(b), Span: span}
	}

	return token.Token{Kind: token.Sym, Text: string(b), Span: l.cur.spanFrom(m)}
}

// isSymByte reports whether b is a printable ASCII byte usable as a
// single-character symbol (anything that isn't whitespace, a letter
// or a digit — those are handled by their own scan functions before
// scanSym is ever reached).
func isSymByte(b byte) bool {
	return b >= 0x21 && b <= 0x7E
}
