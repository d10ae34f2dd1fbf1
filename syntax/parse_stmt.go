package syntax

import (
	"minipyc/ast"
	"minipyc/report"
)

// program := {statement | 'NEWLINE'} 'EOF'
func (p *Parser) parseProgram() *ast.Program {
	startSpan := p.tok.Span

	var stmts []ast.ASTNode

	p.newlines()
	for !p.has(TOK_EOF) {
		if p.has(TOK_INDENT) {
			p.rejectWithMsg("unexpected indentation at top level")
		}

		stmts = append(stmts, p.parseStmt())
		p.newlines()
	}

	return &ast.Program{
		ASTBase:    ast.NewASTBaseOver(startSpan, p.tok.Span),
		Statements: stmts,
	}
}

// statement := func_def | return_stmt | assignment | expr_stmt
func (p *Parser) parseStmt() ast.ASTNode {
	switch p.tok.Kind {
	case TOK_DEF:
		return p.parseFuncDef()
	case TOK_RETURN:
		return p.parseReturnStmt()
	case TOK_IDENT:
		if p.ahead().Kind == TOK_ASSIGN {
			return p.parseAssignment()
		}

		return p.parseExprStmt()
	default:
		return p.parseExprStmt()
	}
}

// func_def := 'def' 'IDENT' '(' [param_list] ')' ':' 'NEWLINE' block
// param_list := 'IDENT' {',' 'IDENT'} [',']
func (p *Parser) parseFuncDef() *ast.FuncDef {
	defTok := p.want(TOK_DEF)
	nameTok := p.want(TOK_IDENT)

	p.want(TOK_LPAREN)

	var params []*ast.Identifier
	if !p.has(TOK_RPAREN) {
		for {
			paramTok := p.want(TOK_IDENT)
			params = append(params, &ast.Identifier{
				ExprBase: ast.NewExprBaseOn(paramTok.Span),
				Name:     paramTok.Value,
			})

			if p.has(TOK_COMMA) {
				p.next()

				// trailing comma
				if p.has(TOK_RPAREN) {
					break
				}

				continue
			}

			break
		}
	}

	p.want(TOK_RPAREN)
	p.want(TOK_COLON)
	p.want(TOK_NEWLINE)

	body, endSpan := p.parseBlock()

	return &ast.FuncDef{
		ASTBase: ast.NewASTBaseOver(defTok.Span, endSpan),
		Name:    nameTok.Value,
		Params:  params,
		Body:    body,
	}
}

// block := {'NEWLINE'} 'INDENT' statement {statement | 'NEWLINE'} 'DEDENT'
func (p *Parser) parseBlock() ([]ast.ASTNode, *report.TextSpan) {
	// blank lines may separate the header from its body
	p.newlines()
	p.want(TOK_INDENT)

	var body []ast.ASTNode

	p.newlines()
	for !p.has(TOK_DEDENT) && !p.has(TOK_EOF) {
		body = append(body, p.parseStmt())
		p.newlines()
	}

	if len(body) == 0 {
		p.rejectWithMsg("function body must contain at least one statement")
	}

	endTok := p.want(TOK_DEDENT)
	return body, endTok.Span
}

// return_stmt := 'return' [expression] 'NEWLINE'
func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	retTok := p.want(TOK_RETURN)

	var value ast.ASTExpr
	endSpan := retTok.Span
	if !p.has(TOK_NEWLINE) {
		value = p.parseExpr()
		endSpan = value.Span()
	}

	p.want(TOK_NEWLINE)

	return &ast.ReturnStmt{
		ASTBase: ast.NewASTBaseOver(retTok.Span, endSpan),
		Value:   value,
	}
}

// assignment := 'IDENT' '=' expression 'NEWLINE'
func (p *Parser) parseAssignment() *ast.Assignment {
	nameTok := p.want(TOK_IDENT)

	p.want(TOK_ASSIGN)

	value := p.parseExpr()

	p.want(TOK_NEWLINE)

	return &ast.Assignment{
		ASTBase: ast.NewASTBaseOver(nameTok.Span, value.Span()),
		Target: &ast.Identifier{
			ExprBase: ast.NewExprBaseOn(nameTok.Span),
			Name:     nameTok.Value,
		},
		Value: value,
	}
}

// expr_stmt := expression 'NEWLINE'
func (p *Parser) parseExprStmt() *ast.ExprStmt {
	expr := p.parseExpr()

	p.want(TOK_NEWLINE)

	return &ast.ExprStmt{
		ASTBase: ast.NewASTBaseOn(expr.Span()),
		Expr:    expr,
	}
}
