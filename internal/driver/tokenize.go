package driver

import (
	"lox/internal/diag"
	"lox/internal/lexer"
	"lox/internal/source"
	"lox/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Names   *source.Interner
	Bag     *diag.Bag
}

// HadError reports whether the scan surfaced at least one lexical error.
// The scanner itself never aborts; callers check this after the full pass.
func (r *TokenizeResult) HadError() bool {
	return r.Bag.HasErrors()
}

// Tokenize loads a file from disk and scans it completely.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fileID, maxDiagnostics), nil
}

// TokenizeSource scans in-memory input (a REPL line, a test snippet).
func TokenizeSource(name string, src []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return tokenizeFile(fs, fileID, maxDiagnostics)
}

func tokenizeFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)
	names := source.NewInterner()

	opts := lexer.Options{
		Reporter: diag.NewDedupReporter((&lexer.ReporterAdapter{Bag: bag}).Reporter()),
		Names:    names,
	}
	lx := lexer.New(file, opts)

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Names:   names,
		Bag:     bag,
	}
}
