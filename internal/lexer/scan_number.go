package lexer

import (
	"strconv"

	"tclc/internal/token"
)

// scanNumber consumes digits with an optional '.', producing a Float
// token if any '.' was seen, else an Int token — using Go's default
// decimal conversion, per §4.3.
func (l *Lexer) scanNumber() token.Token {
	m := l.cur.mark()
	sawDot := false
	for !l.cur.eof() {
		b := l.cur.peek()
		if isDigit(b) {
			l.cur.bump()
			continue
		}
		if b == '.' && !sawDot {
			sawDot = true
			l.cur.bump()
			continue
		}
		break
	}
	text := l.cur.src[m:l.cur.off]
	span := l.cur.spanFrom(m)

	if sawDot {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			f = 0
		}
		return token.Token{Kind: token.Float, Text: text, FVal: f, Span: span}
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		i = 0
	}
	return token.Token{Kind: token.Int, Text: text, IVal: i, Span: span}
}
