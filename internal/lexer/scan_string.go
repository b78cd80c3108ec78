package lexer

import (
	"lox/internal/diag"
	"lox/internal/token"
)

// scanString consumes a "..." literal. Strings may span multiple lines; a
// backslash shields the following byte, so \" does not terminate. The
// decoded value is the raw text strictly between the quotes. Reaching end
// of input first reports an error and yields no token for the literal.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			tok := lx.emit(token.StringLit, start)
			tok.Str = tok.Text[1 : len(tok.Text)-1]
			return tok
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
		}
		lx.cursor.Bump()
	}
	// no closing quote before end of input
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "Unterminated string")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
