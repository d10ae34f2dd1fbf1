package ast

// Assignment represents a simple assignment statement: `target = value`.
type Assignment struct {
	ASTBase

	// The identifier being assigned to.
	Target *Identifier

	// The expression whose value is assigned.
	Value ASTExpr
}

// FuncDef represents a function definition.
type FuncDef struct {
	ASTBase

	// The name of the function.
	Name string

	// The ordered parameters of the function.
	Params []*Identifier

	// The ordered statements comprising the function body.
	Body []ASTNode
}

// ReturnStmt represents a return statement.  Value is nil for a bare
// `return`.
type ReturnStmt struct {
	ASTBase

	Value ASTExpr
}

// ExprStmt wraps an expression used as a statement, such as a standalone
// print call.
type ExprStmt struct {
	ASTBase

	Expr ASTExpr
}
