package syntax

import (
	"minipyc/ast"
	"minipyc/report"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse.

// Parser is the parser for a source file: a recursive descent parser over the
// token sequence produced by the lexer.  All parsing functions assume that
// they begin with the parser centered on the first token of their production
// and must consume all tokens (including the last) of their production,
// leaving the parser on the next token.  On a grammar mismatch the parser
// fails immediately: single-token lookahead suffices for this grammar.
type Parser struct {
	// tokens is the full token sequence being parsed.  It always ends with an
	// EOF token, on which the parser parks once input is exhausted.
	tokens []*Token

	// pos is the index of the current token.
	pos int

	// tok is the current token the parser is positioned on.
	tok *Token

	// lookbehind is the token most recently consumed.
	lookbehind *Token
}

// NewParser creates a new parser for the given token sequence.  The sequence
// must be non-empty and EOF-terminated, as produced by Lexer.Tokenize.
func NewParser(tokens []*Token) *Parser {
	return &Parser{
		tokens: tokens,
		tok:    tokens[0],
	}
}

// Parse parses the token sequence into a single program node.
func (p *Parser) Parse() (prog *ast.Program, err error) {
	defer report.CatchError(&err)

	return p.parseProgram(), nil
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.  The parser parks on the trailing
// EOF token.
func (p *Parser) next() {
	p.lookbehind = p.tok

	if p.pos < len(p.tokens)-1 {
		p.pos++
		p.tok = p.tokens[p.pos]
	}
}

// has returns true if the parser is on a token of the given kind.
func (p *Parser) has(kind int) bool {
	return p.tok.Kind == kind
}

// ahead returns the token one past the current token without consuming
// anything.
func (p *Parser) ahead() *Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}

	return p.tokens[len(p.tokens)-1]
}

// want asserts that the current token is of the given kind, consumes it, and
// returns it.  A mismatched token is rejected.
func (p *Parser) want(kind int) *Token {
	if !p.has(kind) {
		p.reject(describeKind(kind))
	}

	tok := p.tok
	p.next()
	return tok
}

// newlines moves the parser forward until a non-newline token is encountered.
// The current token is considered.
func (p *Parser) newlines() {
	for p.has(TOK_NEWLINE) {
		p.next()
	}
}

// -----------------------------------------------------------------------------

// reject fails parsing at the current token, naming the construct or token
// that was expected in its place.
func (p *Parser) reject(expected string) {
	panic(report.Raise(
		report.ErrKindSyntax,
		p.tok.Span,
		"expected %s but found %s",
		expected,
		describeToken(p.tok),
	))
}

// rejectWithMsg fails parsing at the current token with a specific message.
func (p *Parser) rejectWithMsg(msg string, args ...interface{}) {
	panic(report.Raise(report.ErrKindSyntax, p.tok.Span, msg, args...))
}

// describeToken produces the displayable description of a token used in
// syntax error messages.
func describeToken(tok *Token) string {
	switch tok.Kind {
	case TOK_NEWLINE:
		return "end of line"
	case TOK_INDENT:
		return "an indented block"
	case TOK_DEDENT:
		return "end of block"
	case TOK_EOF:
		return "end of file"
	default:
		return "`" + tok.Value + "`"
	}
}

// describeKind produces the displayable description of an expected token
// kind used in syntax error messages.
func describeKind(kind int) string {
	switch kind {
	case TOK_IDENT:
		return "an identifier"
	case TOK_INTLIT:
		return "an integer literal"
	case TOK_NEWLINE:
		return "end of line"
	case TOK_INDENT:
		return "an indented block"
	case TOK_DEDENT:
		return "end of block"
	case TOK_EOF:
		return "end of file"
	case TOK_DEF:
		return "`def`"
	case TOK_RETURN:
		return "`return`"
	case TOK_PLUS:
		return "`+`"
	case TOK_MINUS:
		return "`-`"
	case TOK_STAR:
		return "`*`"
	case TOK_DIV:
		return "`/`"
	case TOK_ASSIGN:
		return "`=`"
	case TOK_LPAREN:
		return "`(`"
	case TOK_RPAREN:
		return "`)`"
	case TOK_COMMA:
		return "`,`"
	default:
		return "`:`"
	}
}
