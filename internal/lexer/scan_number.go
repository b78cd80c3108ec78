package lexer

import (
	"strconv"

	"lox/internal/diag"
	"lox/internal/token"
)

// scanNumber consumes a maximal digit run, then a fractional part only when
// the dot is immediately followed by another digit. The two-byte lookahead
// is what keeps "123." as the number 123 plus a separate Dot token. The
// parse-failure branch is defensive; the digit-gated grammar should never
// reach it.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	tok := lx.emit(token.NumberLit, start)
	n, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		lx.errLex(diag.LexBadNumber, tok.Span, "Invalid decimal literal")
		return token.Token{Kind: token.Invalid, Span: tok.Span, Text: tok.Text}
	}
	tok.Num = n
	return tok
}
