package syntax

import (
	"strconv"

	"minipyc/ast"
	"minipyc/report"
)

// expression := term {('+' | '-') term}
func (p *Parser) parseExpr() ast.ASTExpr {
	lhs := p.parseTerm()

	for p.has(TOK_PLUS) || p.has(TOK_MINUS) {
		opTok := p.tok
		p.next()

		rhs := p.parseTerm()

		lhs = &ast.BinaryOp{
			ExprBase: ast.NewExprBaseOver(lhs.Span(), rhs.Span()),
			Op:       ast.Oper{Kind: opTok.Kind, Name: opTok.Value, Span: opTok.Span},
			Lhs:      lhs,
			Rhs:      rhs,
		}
	}

	return lhs
}

// term := factor {('*' | '/') factor}
func (p *Parser) parseTerm() ast.ASTExpr {
	lhs := p.parseFactor()

	for p.has(TOK_STAR) || p.has(TOK_DIV) {
		opTok := p.tok
		p.next()

		rhs := p.parseFactor()

		lhs = &ast.BinaryOp{
			ExprBase: ast.NewExprBaseOver(lhs.Span(), rhs.Span()),
			Op:       ast.Oper{Kind: opTok.Kind, Name: opTok.Value, Span: opTok.Span},
			Lhs:      lhs,
			Rhs:      rhs,
		}
	}

	return lhs
}

// factor := call | 'IDENT' | 'INTLIT' | '(' expression ')'
func (p *Parser) parseFactor() ast.ASTExpr {
	switch p.tok.Kind {
	case TOK_IDENT:
		nameTok := p.tok
		p.next()

		ident := &ast.Identifier{
			ExprBase: ast.NewExprBaseOn(nameTok.Span),
			Name:     nameTok.Value,
		}

		if p.has(TOK_LPAREN) {
			return p.parseCall(ident)
		}

		return ident
	case TOK_INTLIT:
		litTok := p.tok
		p.next()

		value, err := strconv.ParseInt(litTok.Value, 10, 64)
		if err != nil {
			panic(report.Raise(
				report.ErrKindSyntax,
				litTok.Span,
				"integer literal out of range: `%s`",
				litTok.Value,
			))
		}

		return &ast.IntLit{
			ExprBase: ast.NewExprBaseOn(litTok.Span),
			Value:    value,
		}
	case TOK_LPAREN:
		p.next()

		expr := p.parseExpr()

		p.want(TOK_RPAREN)
		return expr
	default:
		p.reject("an expression")
		return nil
	}
}

// call := 'IDENT' '(' [arg_list] ')'
// arg_list := expression {',' expression} [',']
func (p *Parser) parseCall(callee *ast.Identifier) *ast.Call {
	p.want(TOK_LPAREN)

	var args []ast.ASTExpr
	if !p.has(TOK_RPAREN) {
		for {
			args = append(args, p.parseExpr())

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

	endTok := p.want(TOK_RPAREN)

	return &ast.Call{
		ExprBase: ast.NewExprBaseOver(callee.Span(), endTok.Span),
		Func:     callee,
		Args:     args,
	}
}
