package driver

import (
	"io"

	"lox/internal/diagfmt"
)

// Run scans one file, prints every token in debug form to stdout (one per
// line), and renders diagnostics compactly to stderr. The returned flag is
// the "had error" state the CLI turns into exit status 65; an I/O failure
// comes back as err instead.
func Run(path string, maxDiagnostics int, stdout, stderr io.Writer) (hadError bool, err error) {
	result, err := Tokenize(path, maxDiagnostics)
	if err != nil {
		return false, err
	}

	diagfmt.FormatTokensDebug(stdout, result.Tokens)
	diagfmt.Compact(stderr, result.Bag, result.FileSet)

	return result.HadError(), nil
}

// RunSource is Run for in-memory input; the REPL feeds it one line at a
// time with a fresh diagnostic bag, so an error on one line never leaks
// into the next.
func RunSource(name string, src []byte, maxDiagnostics int, stdout, stderr io.Writer) (hadError bool) {
	result := TokenizeSource(name, src, maxDiagnostics)

	diagfmt.FormatTokensDebug(stdout, result.Tokens)
	diagfmt.Compact(stderr, result.Bag, result.FileSet)

	return result.HadError()
}
