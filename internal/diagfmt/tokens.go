package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"lox/internal/source"
	"lox/internal/token"
)

type TokenOutput struct {
	Kind    string      `json:"kind"`
	Text    string      `json:"text,omitempty"`
	Line    uint32      `json:"line"`
	Span    source.Span `json:"span"`
	Literal string      `json:"literal,omitempty"`
	Leading []string    `json:"leading,omitempty"`
}

// FormatTokensPretty writes one token per line in a human-readable layout.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		var leading []string
		for _, trivia := range tok.Leading {
			leading = append(leading, trivia.Kind.String())
		}

		fmt.Fprintf(w, "%3d: %-10s", i+1, tok.Kind.String())

		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		if lit := tok.LiteralText(); lit != "" && tok.Kind != token.Ident {
			fmt.Fprintf(w, " = %s", lit)
		}

		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)

		if len(leading) > 0 {
			fmt.Fprintf(w, " (leading: %s)", strings.Join(leading, ", "))
		}

		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes the token stream as indented JSON.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	var output []TokenOutput

	for _, tok := range tokens {
		var leading []string
		for _, trivia := range tok.Leading {
			leading = append(leading, trivia.Kind.String())
		}

		output = append(output, TokenOutput{
			Kind:    tok.Kind.String(),
			Text:    tok.Text,
			Line:    tok.Line,
			Span:    tok.Span,
			Literal: tok.LiteralText(),
			Leading: leading,
		})

		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// FormatTokensDebug writes each token's String() form, one per line — the
// file-mode dump the CLI prints.
func FormatTokensDebug(w io.Writer, tokens []token.Token) {
	for _, tok := range tokens {
		fmt.Fprintln(w, tok.String())
	}
}
