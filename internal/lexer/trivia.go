package lexer

import (
	"lox/internal/token"
)

// collectLeadingTrivia appends every run of insignificant bytes in front of
// the next significant token onto lx.hold:
//   - ' ', '\t', '\r' coalesce into one TriviaSpace
//   - consecutive '\n' coalesce into one TriviaNewline
//   - "//" up to (not including) the next newline -> TriviaLineComment
//
// None of these produce tokens; newlines only move the line accounting.
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' || b == '\r' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' && b2 != '\r' {
					break
				}
				lx.cursor.Bump()
			}
			lx.holdTrivia(token.TriviaSpace, start)
			continue
		}

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.holdTrivia(token.TriviaNewline, start)
			continue
		}

		if b == '/' {
			if lx.scanLineCommentIntoHold() {
				continue
			}
		}

		break
	}
}

// scanLineCommentIntoHold consumes a // comment, or rewinds and reports
// false so a lone '/' scans as the Slash token.
func (lx *Lexer) scanLineCommentIntoHold() bool {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('/') {
		return false
	}
	if lx.cursor.Peek() != '/' {
		lx.cursor.Reset(start)
		return false
	}
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	lx.holdTrivia(token.TriviaLineComment, start)
	return true
}

func (lx *Lexer) holdTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}
