package lexer

import "tclc/internal/token"

// scanIdent consumes a maximal run of letters ([A-Za-z]+), per §4.3 —
// TCL identifiers never contain digits or underscores.
func (l *Lexer) scanIdent() token.Token {
	m := l.cur.mark()
	for !l.cur.eof() && isAlpha(l.cur.peek()) {
		l.cur.bump()
	}
	span := l.cur.spanFrom(m)
	return token.Token{Kind: token.Id, Text: l.cur.src[m:l.cur.off], Span: span}
}
