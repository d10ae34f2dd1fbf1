package ast

import (
	"minipyc/common"
	"minipyc/report"
)

// ASTExpr is the interface for all expression nodes.  The expression set is
// closed: each consuming stage dispatches exhaustively over the variants
// below.
type ASTExpr interface {
	ASTNode

	// exprNode marks the closed set of expression variants.
	exprNode()
}

// ExprBase is the base struct for all expressions.
type ExprBase struct {
	ASTBase
}

// NewExprBaseOn creates a new expression base with the given span.
func NewExprBaseOn(span *report.TextSpan) ExprBase {
	return ExprBase{ASTBase: NewASTBaseOn(span)}
}

// NewExprBaseOver creates a new expression base spanning over two spans.
func NewExprBaseOver(start, end *report.TextSpan) ExprBase {
	return ExprBase{ASTBase: NewASTBaseOver(start, end)}
}

func (ExprBase) exprNode() {}

// -----------------------------------------------------------------------------

// Oper is an operator used in the AST.
type Oper struct {
	// The token kind of the operator.
	Kind int

	// The name (lexeme) of the operator.
	Name string

	// The span over which the operator occurs.
	Span *report.TextSpan
}

// BinaryOp represents a binary arithmetic operator application.
type BinaryOp struct {
	ExprBase

	Op Oper

	Lhs, Rhs ASTExpr
}

// -----------------------------------------------------------------------------

// Identifier represents a named reference to a symbol.
type Identifier struct {
	ExprBase

	// The name of the identifier.
	Name string

	// The symbol this identifier resolves to.  This is attached by symbol
	// resolution; it is nil until that stage has run.
	Sym *common.Symbol
}

// IntLit represents an integer literal.
type IntLit struct {
	ExprBase

	// The value of the literal.
	Value int64
}

// Call is a function call expression.  The callee is always a plain
// identifier in this subset.
type Call struct {
	ExprBase

	Func *Identifier
	Args []ASTExpr
}
