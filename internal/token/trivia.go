package token

import "lox/internal/source"

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	}
	return "Unknown"
}

// Trivia is an insignificant stretch of source (whitespace or a // comment)
// collected in front of the token it precedes.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
