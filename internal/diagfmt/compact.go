package diagfmt

import (
	"fmt"
	"io"

	"lox/internal/diag"
	"lox/internal/source"
)

// Compact renders diagnostics in the classic one-line scanner form:
//
//	[line N] Error: message
//
// N is the line in effect where consumption stopped, so an unterminated
// string reports the line the cursor died on, not the line of its opening
// quote.
func Compact(w io.Writer, bag *diag.Bag, fs *source.FileSet) {
	for i := range bag.Items() {
		d := &bag.Items()[i]
		fmt.Fprintf(w, "[line %d] Error: %s\n", CompactLine(d, fs), d.Message)
	}
}

// CompactLine resolves the line number Compact reports for a diagnostic.
// Counting newlines up to the span end matches a scanner line counter that
// already consumed everything inside the span.
func CompactLine(d *diag.Diagnostic, fs *source.FileSet) uint32 {
	f := fs.Get(d.Primary.File)
	return f.LineAt(d.Primary.End)
}
