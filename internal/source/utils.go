package source

import (
	"path/filepath"
	"slices"
	"sort"
)

// normalizeCRLF replaces every \r\n pair with \n, leaving lone \r untouched.
// The second result reports whether at least one replacement happened.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}
	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

func buildLineIndex(content []byte) []uint32 {
	var out []uint32
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// toLineCol resolves a byte offset against a line index.
// The offset of a '\n' resolves to the line it terminates, one column past
// its last character, so exclusive span ends display on the right line.
func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// count newlines strictly before off
	n := uint32(sort.Search(len(lineIdx), func(i int) bool {
		return lineIdx[i] >= off
	}))
	var startOff uint32
	if n > 0 {
		startOff = lineIdx[n-1] + 1
	}
	return LineCol{Line: n + 1, Col: off - startOff + 1}
}

func normalizePath(p string) string {
	// keep paths identical across platforms in diffs and cache keys
	return filepath.ToSlash(filepath.Clean(p))
}
