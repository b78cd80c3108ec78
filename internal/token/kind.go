package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// StringLit represents a string literal token.
	StringLit
	// NumberLit represents a number literal token.
	NumberLit

	// KwAnd represents the 'and' keyword.
	KwAnd // and
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwFun represents the 'fun' keyword.
	KwFun // fun
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwNil represents the 'nil' keyword.
	KwNil // nil
	// KwOr represents the 'or' keyword.
	KwOr // or
	// KwPrint represents the 'print' keyword.
	KwPrint // print
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwSuper represents the 'super' keyword.
	KwSuper // super
	// KwThis represents the 'this' keyword.
	KwThis // this
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwWhile represents the 'while' keyword.
	KwWhile // while

	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// Minus represents the minus token.
	Minus // -
	// Plus represents the plus token.
	Plus // +
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Slash represents the slash token.
	Slash // /
	// Star represents the star token.
	Star // *

	// Bang represents the bang operator token.
	Bang // !
	// BangEq represents the bang eq operator token.
	BangEq // !=
	// Assign represents the assign operator token.
	Assign // =
	// EqEq represents the eq eq operator token.
	EqEq // ==
	// Gt represents the gt operator token.
	Gt // >
	// GtEq represents the gt eq operator token.
	GtEq // >=
	// Lt represents the lt operator token.
	Lt // <
	// LtEq represents the lt eq operator token.
	LtEq // <=
)

var kindNames = map[Kind]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	StringLit: "StringLit",
	NumberLit: "NumberLit",
	KwAnd:     "KwAnd",
	KwClass:   "KwClass",
	KwElse:    "KwElse",
	KwFalse:   "KwFalse",
	KwFun:     "KwFun",
	KwFor:     "KwFor",
	KwIf:      "KwIf",
	KwNil:     "KwNil",
	KwOr:      "KwOr",
	KwPrint:   "KwPrint",
	KwReturn:  "KwReturn",
	KwSuper:   "KwSuper",
	KwThis:    "KwThis",
	KwTrue:    "KwTrue",
	KwVar:     "KwVar",
	KwWhile:   "KwWhile",
	LParen:    "LParen",
	RParen:    "RParen",
	LBrace:    "LBrace",
	RBrace:    "RBrace",
	Comma:     "Comma",
	Dot:       "Dot",
	Minus:     "Minus",
	Plus:      "Plus",
	Semicolon: "Semicolon",
	Slash:     "Slash",
	Star:      "Star",
	Bang:      "Bang",
	BangEq:    "BangEq",
	Assign:    "Assign",
	EqEq:      "EqEq",
	Gt:        "Gt",
	GtEq:      "GtEq",
	Lt:        "Lt",
	LtEq:      "LtEq",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
