package lexer

import (
	"lox/internal/diag"
	"lox/internal/source"
)

type Options struct {
	// Reporter receives lexical diagnostics. May be nil: errors are then
	// dropped, but scanning still continues past them.
	Reporter diag.Reporter
	// Names, when set, interns every identifier lexeme.
	Names *source.Interner
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
