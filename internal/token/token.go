package token

import (
	"strconv"
	"strings"

	"lox/internal/source"
)

// Token represents a single source token with its location, lexeme, decoded
// literal value, and leading trivia. Tokens are values; nothing downstream
// mutates one after the lexer emits it.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string  // exact source slice for Span
	Line    uint32  // line of the token's final character, 1-based
	Str     string  // decoded value for StringLit (quotes stripped) and Ident
	Num     float64 // parsed value for NumberLit
	Leading []Trivia
}

// IsLiteral reports whether the token carries a literal value.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Ident, StringLit, NumberLit:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is punctuation or an operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case LParen, RParen, LBrace, RBrace, Comma, Dot, Minus, Plus, Semicolon,
		Slash, Star, Bang, BangEq, Assign, EqEq, Gt, GtEq, Lt, LtEq:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwAnd, KwClass, KwElse, KwFalse, KwFun, KwFor, KwIf, KwNil, KwOr,
		KwPrint, KwReturn, KwSuper, KwThis, KwTrue, KwVar, KwWhile:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// LiteralText returns the decoded literal rendered as text, or "" for
// non-literal kinds.
func (t Token) LiteralText() string {
	switch t.Kind {
	case Ident, StringLit:
		return t.Str
	case NumberLit:
		return strconv.FormatFloat(t.Num, 'g', -1, 64)
	default:
		return ""
	}
}

// String renders "<kind> <lexeme> <literal>" for debug dumps. Not a wire
// format; there is no way back from this text to a Token.
func (t Token) String() string {
	return strings.TrimRight(t.Kind.String()+" "+t.Text+" "+t.LiteralText(), " ")
}
