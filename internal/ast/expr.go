// Package ast holds the expression tree scaffold for a future parser.
// Nodes form a strict tree: each parent exclusively owns its children, and
// once built a tree is only ever read through Accept, never mutated.
package ast

import (
	"lox/internal/token"
)

// Expr is the closed set of expression variants. Accept performs double
// dispatch: the node picks the Visit method matching its own shape and
// passes itself by reference, so visiting never copies subtrees.
type Expr interface {
	Accept(v Visitor) any
}

// Visitor exposes one method per expression variant. The concrete visitor
// decides what the traversal computes.
type Visitor interface {
	VisitBinary(expr *Binary) any
	VisitGrouping(expr *Grouping) any
	VisitLiteral(expr *Literal) any
	VisitUnary(expr *Unary) any
}

// Binary is an infix operator application.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *Binary) Accept(v Visitor) any {
	return v.VisitBinary(e)
}

// Grouping is a parenthesized expression.
type Grouping struct {
	Inner Expr
}

func (e *Grouping) Accept(v Visitor) any {
	return v.VisitGrouping(e)
}

// Literal wraps a literal-carrying token. A nil Value is the nil literal.
type Literal struct {
	Value *token.Token
}

func (e *Literal) Accept(v Visitor) any {
	return v.VisitLiteral(e)
}

// Unary is a prefix operator application.
type Unary struct {
	Op      token.Token
	Operand Expr
}

func (e *Unary) Accept(v Visitor) any {
	return v.VisitUnary(e)
}
