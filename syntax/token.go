package syntax

import (
	"fmt"

	"minipyc/report"
)

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.
	Value string

	// The text span over which the token exists.
	Span *report.TextSpan
}

// Enumeration of token kinds.
const (
	TOK_IDENT = iota
	TOK_INTLIT

	TOK_DEF
	TOK_RETURN

	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_DIV

	TOK_ASSIGN

	TOK_LPAREN
	TOK_RPAREN
	TOK_COMMA
	TOK_COLON

	TOK_NEWLINE
	TOK_INDENT
	TOK_DEDENT
	TOK_EOF
)

// tokKindNames converts a token kind into a displayable name.
var tokKindNames = []string{
	"IDENT",
	"INTLIT",
	"DEF",
	"RETURN",
	"PLUS",
	"MINUS",
	"STAR",
	"DIV",
	"ASSIGN",
	"LPAREN",
	"RPAREN",
	"COMMA",
	"COLON",
	"NEWLINE",
	"INDENT",
	"DEDENT",
	"EOF",
}

// KindName returns the displayable name of a token kind.
func KindName(kind int) string {
	return tokKindNames[kind]
}

func (t *Token) String() string {
	switch t.Kind {
	case TOK_IDENT, TOK_INTLIT:
		return fmt.Sprintf("%s(%s) @ %d:%d", KindName(t.Kind), t.Value, t.Span.StartLine+1, t.Span.StartCol+1)
	default:
		return fmt.Sprintf("%s @ %d:%d", KindName(t.Kind), t.Span.StartLine+1, t.Span.StartCol+1)
	}
}

// keywordPatterns maps keyword strings (patterns) to their keyword token
// kind.  Keywords are checked after an identifier run has been fully scanned.
var keywordPatterns = map[string]int{
	"def":    TOK_DEF,
	"return": TOK_RETURN,
}

// symbolPatterns maps symbol strings (patterns) to their punctuation/operator
// token kind.
var symbolPatterns = map[string]int{
	"+": TOK_PLUS,
	"-": TOK_MINUS,
	"*": TOK_STAR,
	"/": TOK_DIV,

	"=": TOK_ASSIGN,

	"(": TOK_LPAREN,
	")": TOK_RPAREN,
	",": TOK_COMMA,
	":": TOK_COLON,
}
