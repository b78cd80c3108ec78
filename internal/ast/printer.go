package ast

import (
	"strings"
)

// Printer renders a tree as fully parenthesized prefix notation. Two trees
// print identically exactly when they share shape and operator/literal
// lexemes, which makes the output a structural-equality oracle in tests.
type Printer struct{}

// Print renders expr; a nil expr renders as "nil".
func (p *Printer) Print(expr Expr) string {
	if expr == nil {
		return "nil"
	}
	return expr.Accept(p).(string)
}

func (p *Printer) VisitBinary(expr *Binary) any {
	return p.parenthesize(expr.Op.Text, expr.Left, expr.Right)
}

func (p *Printer) VisitGrouping(expr *Grouping) any {
	return p.parenthesize("group", expr.Inner)
}

func (p *Printer) VisitLiteral(expr *Literal) any {
	if expr.Value == nil {
		return "nil"
	}
	return expr.Value.Text
}

func (p *Printer) VisitUnary(expr *Unary) any {
	return p.parenthesize(expr.Op.Text, expr.Operand)
}

func (p *Printer) parenthesize(name string, children ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, child := range children {
		b.WriteByte(' ')
		b.WriteString(child.Accept(p).(string))
	}
	b.WriteByte(')')
	return b.String()
}
