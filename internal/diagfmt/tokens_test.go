package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"lox/internal/source"
	"lox/internal/token"
)

func sampleTokens(t *testing.T) ([]token.Token, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("sample.lox", []byte(`var x = "hi"`))
	return []token.Token{
		{Kind: token.KwVar, Span: source.Span{File: id, Start: 0, End: 3}, Text: "var", Line: 1},
		{Kind: token.Ident, Span: source.Span{File: id, Start: 4, End: 5}, Text: "x", Line: 1, Str: "x",
			Leading: []token.Trivia{{Kind: token.TriviaSpace, Text: " "}}},
		{Kind: token.Assign, Span: source.Span{File: id, Start: 6, End: 7}, Text: "=", Line: 1,
			Leading: []token.Trivia{{Kind: token.TriviaSpace, Text: " "}}},
		{Kind: token.StringLit, Span: source.Span{File: id, Start: 8, End: 12}, Text: `"hi"`, Line: 1, Str: "hi",
			Leading: []token.Trivia{{Kind: token.TriviaSpace, Text: " "}}},
		{Kind: token.EOF, Span: source.Span{File: id, Start: 12, End: 12}, Line: 1},
	}, fs
}

func TestFormatTokensDebug(t *testing.T) {
	toks, _ := sampleTokens(t)

	var buf bytes.Buffer
	FormatTokensDebug(&buf, toks)

	want := strings.Join([]string{
		"KwVar var",
		"Ident x x",
		"Assign =",
		`StringLit "hi" hi`,
		"EOF",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestFormatTokensPretty(t *testing.T) {
	toks, fs := sampleTokens(t)

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != len(toks) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(toks), out)
	}
	if !strings.Contains(lines[0], "KwVar") || !strings.Contains(lines[0], "at 1:1-1:4") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[3], `= hi`) {
		t.Errorf("string literal line = %q", lines[3])
	}
	if !strings.Contains(lines[3], "leading: Space") {
		t.Errorf("trivia missing: %q", lines[3])
	}
}

func TestFormatTokensJSON(t *testing.T) {
	toks, _ := sampleTokens(t)

	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, toks); err != nil {
		t.Fatal(err)
	}

	var decoded []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded) != len(toks) {
		t.Fatalf("decoded %d entries, want %d", len(decoded), len(toks))
	}
	if decoded[0].Kind != "KwVar" || decoded[0].Text != "var" {
		t.Errorf("entry 0 = %+v", decoded[0])
	}
	if decoded[3].Literal != "hi" {
		t.Errorf("string literal = %+v", decoded[3])
	}
	if decoded[4].Kind != "EOF" {
		t.Errorf("last entry = %+v", decoded[4])
	}
}
