package syntax

import (
	"strings"
	"unicode"

	"minipyc/report"
)

// Lexer is responsible for tokenizing a source text.  Tokenization is a
// single, non-restartable pass: the lexer fails fast on the first malformed
// token or inconsistent indentation.
type Lexer struct {
	src []rune
	pos int

	tokBuff *strings.Builder

	line, col           int
	startLine, startCol int

	// indents is the stack of enclosing indentation widths.  It always
	// retains its initial zero entry.  Each push emits one INDENT token and
	// each pop emits one DEDENT token.
	indents []int

	// parenDepth is the number of currently open parentheses.  Newlines
	// inside parentheses are joined into the logical line rather than
	// emitted, mirroring the source grammar's implicit line joining.
	parenDepth int

	// atLineStart indicates that the lexer is at the start of a logical line
	// and should measure leading indentation.
	atLineStart bool

	tokens []*Token
}

// NewLexer creates a new lexer for the given source text.
func NewLexer(src string) *Lexer {
	return &Lexer{
		src:         []rune(src),
		tokBuff:     &strings.Builder{},
		indents:     []int{0},
		atLineStart: true,
	}
}

// Tokenize converts the source text into its full ordered token sequence,
// terminated by exactly one EOF token.
func (l *Lexer) Tokenize() (tokens []*Token, err error) {
	defer report.CatchError(&err)

	for !l.eof() {
		if l.atLineStart && l.parenDepth == 0 {
			l.lexLineStart()

			if l.eof() {
				break
			}
		}

		c := l.peek()
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			l.skip()
		case c == '\n':
			l.mark()
			l.skip()

			if l.parenDepth == 0 {
				l.emit(l.makeSynthetic(TOK_NEWLINE, "\n"))
				l.atLineStart = true
			}
		case c == '#':
			// Line comments are skipped; the trailing newline is handled by
			// the main loop.
			for !l.eof() && l.peek() != '\n' {
				l.skip()
			}
		case isDecimalDigit(c):
			l.lexNumericLit()
		case isFirstIdentChar(c):
			l.lexIdentOrKeyword()
		default:
			l.lexPunctOrOper()
		}
	}

	// If the final line held code, synthesize its closing NEWLINE so the
	// parser always sees complete statements.
	l.mark()
	if n := len(l.tokens); n > 0 && l.tokens[n-1].Kind != TOK_NEWLINE {
		l.emit(l.makeSynthetic(TOK_NEWLINE, "\n"))
	}

	// Close any blocks still open at the end of the file.
	for len(l.indents) > 1 {
		l.indents = l.indents[:len(l.indents)-1]
		l.emit(l.makeSynthetic(TOK_DEDENT, ""))
	}

	l.emit(l.makeSynthetic(TOK_EOF, ""))
	return l.tokens, nil
}

// -----------------------------------------------------------------------------

// lexLineStart measures the leading indentation of a logical line and emits
// the INDENT and DEDENT tokens implied by its width against the indentation
// stack.  Blank and comment-only lines never touch the stack.
func (l *Lexer) lexLineStart() {
	l.atLineStart = false
	l.mark()

	width := 0
countLoop:
	for !l.eof() {
		switch l.peek() {
		case ' ':
			width++
			l.skip()
		case '\t':
			// Tabs count as four spaces.
			width += 4
			l.skip()
		default:
			break countLoop
		}
	}

	if l.eof() {
		return
	}

	if c := l.peek(); c == '\n' || c == '\r' || c == '#' {
		return
	}

	top := l.indents[len(l.indents)-1]
	if width > top {
		l.indents = append(l.indents, width)
		l.emit(l.makeSynthetic(TOK_INDENT, ""))
	} else if width < top {
		for len(l.indents) > 1 && width < l.indents[len(l.indents)-1] {
			l.indents = l.indents[:len(l.indents)-1]
			l.emit(l.makeSynthetic(TOK_DEDENT, ""))
		}

		// After popping, the width must land exactly on an enclosing level.
		if width != l.indents[len(l.indents)-1] {
			panic(report.Raise(report.ErrKindLex, l.getSpan(), "inconsistent indentation"))
		}
	}
}

// -----------------------------------------------------------------------------

// lexIdentOrKeyword lexes an identifier or a keyword.  The keyword set is
// checked only after the full run has been scanned.
func (l *Lexer) lexIdentOrKeyword() {
	l.mark()
	l.eat()

	for !l.eof() {
		c := l.peek()
		if !isFirstIdentChar(c) && !isDecimalDigit(c) {
			break
		}

		l.eat()
	}

	var kind int
	if _kind, ok := keywordPatterns[l.tokBuff.String()]; ok {
		kind = _kind
	} else {
		kind = TOK_IDENT
	}

	l.emit(l.makeToken(kind))
}

// lexNumericLit lexes an integer literal.  A letter directly adjacent to the
// digit run makes the whole token malformed.
func (l *Lexer) lexNumericLit() {
	l.mark()
	l.eat()

	for !l.eof() && isDecimalDigit(l.peek()) {
		l.eat()
	}

	if !l.eof() && isFirstIdentChar(l.peek()) {
		l.eat()
		panic(report.Raise(report.ErrKindLex, l.getSpan(), "malformed numeric literal: `%s`", l.tokBuff.String()))
	}

	l.emit(l.makeToken(TOK_INTLIT))
}

// lexPunctOrOper lexes a punctuation or operator symbol, preferring the
// longest match.  It also maintains the parenthesis depth used for implicit
// line joining.
func (l *Lexer) lexPunctOrOper() {
	l.mark()
	l.eat()

	kind, ok := symbolPatterns[l.tokBuff.String()]
	if !ok {
		panic(report.Raise(report.ErrKindLex, l.getSpan(), "unexpected character: `%s`", l.tokBuff.String()))
	}

	for !l.eof() {
		if _kind, ok := symbolPatterns[l.tokBuff.String()+string(l.peek())]; ok {
			l.eat()
			kind = _kind
		} else {
			break
		}
	}

	switch kind {
	case TOK_LPAREN:
		l.parenDepth++
	case TOK_RPAREN:
		if l.parenDepth > 0 {
			l.parenDepth--
		}
	}

	l.emit(l.makeToken(kind))
}

// -----------------------------------------------------------------------------

// mark sets the lexer's stored start line and column to its current position.
func (l *Lexer) mark() {
	l.startLine = l.line
	l.startCol = l.col
}

// makeToken produces a new token of the given kind from the lexer's token
// buffer and resets the buffer for the next token.
func (l *Lexer) makeToken(kind int) *Token {
	value := l.tokBuff.String()
	l.tokBuff.Reset()

	return &Token{
		Kind:  kind,
		Value: value,
		Span:  l.getSpan(),
	}
}

// makeSynthetic produces a token whose value is not scanned source text, such
// as a NEWLINE, INDENT, DEDENT, or EOF token.
func (l *Lexer) makeSynthetic(kind int, value string) *Token {
	return &Token{
		Kind:  kind,
		Value: value,
		Span:  l.getSpan(),
	}
}

// emit appends a token to the lexer's output sequence.
func (l *Lexer) emit(tok *Token) {
	l.tokens = append(l.tokens, tok)
}

// getSpan calculates a text span based on the lexer's current state.
func (l *Lexer) getSpan() *report.TextSpan {
	return &report.TextSpan{
		StartLine: l.startLine,
		StartCol:  l.startCol,
		EndLine:   l.line,
		EndCol:    l.col,
	}
}

// -----------------------------------------------------------------------------

// eof returns whether the lexer has consumed all of the source text.
func (l *Lexer) eof() bool {
	return l.pos >= len(l.src)
}

// peek returns the next rune in the source without moving the lexer forward.
func (l *Lexer) peek() rune {
	return l.src[l.pos]
}

// eat moves the lexer forward one rune and writes the rune to the token
// buffer.
func (l *Lexer) eat() {
	c := l.src[l.pos]
	l.tokBuff.WriteRune(c)
	l.advance(c)
}

// skip moves the lexer forward one rune but does not write the rune to the
// token buffer.
func (l *Lexer) skip() {
	l.advance(l.src[l.pos])
}

// advance updates the lexer's position based on the input character.
func (l *Lexer) advance(c rune) {
	l.pos++

	switch c {
	case '\n':
		l.line++
		l.col = 0
	case '\t':
		l.col += 4
	default:
		l.col++
	}
}

// -----------------------------------------------------------------------------

// isDecimalDigit returns whether c is a decimal digit.
func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// isFirstIdentChar returns whether c could be the first rune of an
// identifier.
func isFirstIdentChar(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}
