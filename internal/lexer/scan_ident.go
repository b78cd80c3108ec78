package lexer

import (
	"lox/internal/token"
)

// scanIdentOrKeyword consumes a maximal letter/underscore/digit run and
// classifies it through the keyword table. Reserved words are
// case-sensitive; Token.Text is always the exact source slice.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	lx.cursor.Bump()
	for isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	tok := lx.emit(token.Ident, start)
	if k, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = k
		return tok
	}

	tok.Str = tok.Text
	if lx.opts.Names != nil {
		lx.opts.Names.Intern(tok.Text)
	}
	return tok
}
