package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode covers diagnostics that predate a dedicated code.
	UnknownCode Code = 0

	// Lexical (1000-1999)
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1004

	// I/O (4000-4999)
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:           "unknown diagnostic",
	LexInfo:               "lexical note",
	LexUnknownChar:        "Unexpected character",
	LexUnterminatedString: "Unterminated string",
	LexBadNumber:          "Invalid decimal literal",
	IOLoadFileError:       "failed to load file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
