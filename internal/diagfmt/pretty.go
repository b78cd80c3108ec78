package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"lox/internal/diag"
	"lox/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	posColor  = color.New(color.Bold)
)

// Pretty renders diagnostics for humans. Call bag.Sort() first for a stable
// order. Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEVERITY> <CODE>: <message>
//
// followed by the offending source line with a caret underline, then notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for i := range bag.Items() {
		d := &bag.Items()[i]
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	sev := sevString(d.Severity, opts.Color)

	// span-less diagnostics (load failures) have no file to point into
	if d.Primary == (source.Span{}) {
		fmt.Fprintf(w, "%s %s: %s\n", sev, d.Code.ID(), d.Message)
		return
	}

	start, _ := fs.Resolve(d.Primary)
	f := fs.Get(d.Primary.File)

	pos := fmt.Sprintf("%s:%d:%d", f.Path, start.Line, start.Col)
	if opts.Color {
		pos = posColor.Sprint(pos)
	}
	fmt.Fprintf(w, "%s: %s %s: %s\n", pos, sev, d.Code.ID(), d.Message)

	writeContext(w, f, d.Primary, start, opts)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			nStart, _ := fs.Resolve(n.Span)
			nf := fs.Get(n.Span.File)
			fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", nf.Path, nStart.Line, nStart.Col, n.Msg)
		}
	}
}

// writeContext prints the primary line with a caret underline, plus up to
// opts.Context surrounding lines.
func writeContext(w io.Writer, f *source.File, sp source.Span, start source.LineCol, opts PrettyOpts) {
	if sp.Empty() && sp.Start == 0 {
		return // span-less diagnostic (I/O errors and the like)
	}

	first := start.Line
	if ctx := uint32(opts.Context); ctx > 0 && first > ctx {
		first -= ctx
	} else if ctx > 0 {
		first = 1
	}

	for line := first; line <= start.Line; line++ {
		text := f.GetLine(line)
		fmt.Fprintf(w, "%5d | %s\n", line, text)
	}

	// underline limited to the primary line
	width := int(sp.Len())
	lineText := f.GetLine(start.Line)
	if rest := len(lineText) - int(start.Col-1); width > rest {
		width = rest
	}
	if width < 1 {
		width = 1
	}
	underline := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		underline = errColor.Sprint(underline)
	}
	fmt.Fprintf(w, "      | %s%s\n", strings.Repeat(" ", int(start.Col-1)), underline)
}

func sevString(s diag.Severity, colorize bool) string {
	if !colorize {
		return s.String()
	}
	switch s {
	case diag.SevError:
		return errColor.Sprint(s.String())
	case diag.SevWarning:
		return warnColor.Sprint(s.String())
	default:
		return infoColor.Sprint(s.String())
	}
}
