package lexer

import (
	"lox/internal/source"
	"lox/internal/token"
)

// Lexer converts one source file into tokens in a single left-to-right pass
// with at most two bytes of lookahead. One Lexer is scoped to one file and
// is not safe for concurrent use; a fresh Lexer over the same content always
// yields the same tokens and the same diagnostics.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // one-token lookahead buffer
	hold   []token.Trivia // leading trivia collected for the next token
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token with its leading trivia attached.
// Error lexemes (unknown characters, broken literals) are reported through
// Options.Reporter and skipped, never surfaced as tokens; the scan always
// runs to the end of input. After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.hold = lx.hold[:0]
	for {
		lx.collectLeadingTrivia()

		if lx.cursor.EOF() {
			// EOF carries the line the cursor ends on and no leading trivia.
			return token.Token{
				Kind: token.EOF,
				Span: lx.emptySpan(),
				Text: "",
				Line: lx.file.LineAt(lx.cursor.Off),
			}
		}

		var tok token.Token
		switch ch := lx.cursor.Peek(); {
		case isIdentStart(ch):
			tok = lx.scanIdentOrKeyword()
		case isDec(ch):
			tok = lx.scanNumber()
		case ch == '"':
			tok = lx.scanString()
		default:
			tok = lx.scanOperatorOrPunct()
		}

		if tok.Kind == token.Invalid {
			// already reported; resume with the next lexeme
			continue
		}

		tok.Leading = lx.hold
		lx.hold = nil
		return tok
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// emit builds a token for the span cut since m, filling Text and Line.
func (lx *Lexer) emit(kind token.Kind, m Mark) token.Token {
	sp := lx.cursor.SpanFrom(m)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
		Line: lx.file.LineAt(sp.End - 1),
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
