package ast

import (
	"fmt"
	"strings"

	"minipyc/util"
)

// Repr returns the full textual representation of the program's AST.
func (p *Program) Repr() string {
	sb := strings.Builder{}
	sb.WriteString("Program\n")

	for _, stmt := range p.Statements {
		reprNode(&sb, stmt, "  ")
	}

	return sb.String()
}

// reprNode writes the textual representation of a single node, prefixed with
// the given indentation, into the builder.
func reprNode(sb *strings.Builder, node ASTNode, preindent string) {
	sb.WriteString(preindent)

	switch v := node.(type) {
	case *Assignment:
		fmt.Fprintf(sb, "Assignment `%s`\n", v.Target.Name)
		reprNode(sb, v.Value, preindent+"  ")
	case *FuncDef:
		params := util.Map(v.Params, func(p *Identifier) string { return p.Name })
		fmt.Fprintf(sb, "FuncDef `%s` (%s)\n", v.Name, strings.Join(params, ", "))

		for _, stmt := range v.Body {
			reprNode(sb, stmt, preindent+"  ")
		}
	case *ReturnStmt:
		sb.WriteString("Return\n")

		if v.Value != nil {
			reprNode(sb, v.Value, preindent+"  ")
		}
	case *ExprStmt:
		sb.WriteString("ExprStmt\n")
		reprNode(sb, v.Expr, preindent+"  ")
	case *BinaryOp:
		fmt.Fprintf(sb, "BinaryOp `%s`\n", v.Op.Name)
		reprNode(sb, v.Lhs, preindent+"  ")
		reprNode(sb, v.Rhs, preindent+"  ")
	case *Call:
		fmt.Fprintf(sb, "Call `%s`\n", v.Func.Name)

		for _, arg := range v.Args {
			reprNode(sb, arg, preindent+"  ")
		}
	case *Identifier:
		fmt.Fprintf(sb, "Identifier `%s`\n", v.Name)
	case *IntLit:
		fmt.Fprintf(sb, "IntLit %d\n", v.Value)
	}
}
