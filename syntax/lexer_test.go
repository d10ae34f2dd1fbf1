package syntax

import (
	"testing"

	"minipyc/report"
)

// lexKinds tokenizes the source and returns only the token kinds.
func lexKinds(t *testing.T, src string) []int {
	t.Helper()

	tokens, err := NewLexer(src).Tokenize()
	if err != nil {
		t.Fatalf("unexpected tokenize error: %s", err)
	}

	kinds := make([]int, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}

	return kinds
}

func assertKinds(t *testing.T, got, want []int) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(got))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: expected %s, got %s", i, KindName(want[i]), KindName(got[i]))
		}
	}
}

func TestTokenizeKindSequences(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []int
	}{
		{
			name: "empty source",
			src:  "",
			want: []int{TOK_EOF},
		},
		{
			name: "simple assignment",
			src:  "x = 10\n",
			want: []int{TOK_IDENT, TOK_ASSIGN, TOK_INTLIT, TOK_NEWLINE, TOK_EOF},
		},
		{
			name: "missing trailing newline is synthesized",
			src:  "x = 10",
			want: []int{TOK_IDENT, TOK_ASSIGN, TOK_INTLIT, TOK_NEWLINE, TOK_EOF},
		},
		{
			name: "blank lines",
			src:  "\n\n",
			want: []int{TOK_NEWLINE, TOK_NEWLINE, TOK_EOF},
		},
		{
			name: "comment only line",
			src:  "# just a comment\nx = 1\n",
			want: []int{TOK_NEWLINE, TOK_IDENT, TOK_ASSIGN, TOK_INTLIT, TOK_NEWLINE, TOK_EOF},
		},
		{
			name: "trailing comment",
			src:  "x = 1  # the answer\n",
			want: []int{TOK_IDENT, TOK_ASSIGN, TOK_INTLIT, TOK_NEWLINE, TOK_EOF},
		},
		{
			name: "newlines inside parentheses are joined",
			src:  "x = (1 +\n  2)\n",
			want: []int{
				TOK_IDENT, TOK_ASSIGN, TOK_LPAREN, TOK_INTLIT, TOK_PLUS,
				TOK_INTLIT, TOK_RPAREN, TOK_NEWLINE, TOK_EOF,
			},
		},
		{
			name: "function definition",
			src: "def sumar(a, b):\n" +
				"    c = a + b\n" +
				"    return c\n",
			want: []int{
				TOK_DEF, TOK_IDENT, TOK_LPAREN, TOK_IDENT, TOK_COMMA,
				TOK_IDENT, TOK_RPAREN, TOK_COLON, TOK_NEWLINE,
				TOK_INDENT,
				TOK_IDENT, TOK_ASSIGN, TOK_IDENT, TOK_PLUS, TOK_IDENT, TOK_NEWLINE,
				TOK_RETURN, TOK_IDENT, TOK_NEWLINE,
				TOK_DEDENT,
				TOK_EOF,
			},
		},
		{
			name: "dedent before following statement",
			src: "def f(a):\n" +
				"    return a\n" +
				"x = f(1)\n",
			want: []int{
				TOK_DEF, TOK_IDENT, TOK_LPAREN, TOK_IDENT, TOK_RPAREN,
				TOK_COLON, TOK_NEWLINE,
				TOK_INDENT,
				TOK_RETURN, TOK_IDENT, TOK_NEWLINE,
				TOK_DEDENT,
				TOK_IDENT, TOK_ASSIGN, TOK_IDENT, TOK_LPAREN, TOK_INTLIT,
				TOK_RPAREN, TOK_NEWLINE, TOK_EOF,
			},
		},
		{
			name: "blank line inside block keeps it open",
			src: "def f(a):\n" +
				"    x = 1\n" +
				"\n" +
				"    return x\n",
			want: []int{
				TOK_DEF, TOK_IDENT, TOK_LPAREN, TOK_IDENT, TOK_RPAREN,
				TOK_COLON, TOK_NEWLINE,
				TOK_INDENT,
				TOK_IDENT, TOK_ASSIGN, TOK_INTLIT, TOK_NEWLINE,
				TOK_NEWLINE,
				TOK_RETURN, TOK_IDENT, TOK_NEWLINE,
				TOK_DEDENT,
				TOK_EOF,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assertKinds(t, lexKinds(t, test.src), test.want)
		})
	}
}

// Any consistent indentation width should produce the same token sequence,
// and tabs should count as four spaces.
func TestTokenizeIndentWidths(t *testing.T) {
	base := lexKinds(t, "def f(a):\n    return a\n")

	for _, variant := range []string{
		"def f(a):\n  return a\n",
		"def f(a):\n\treturn a\n",
		"def f(a):\n        return a\n",
	} {
		assertKinds(t, lexKinds(t, variant), base)
	}
}

func TestTokenizeValues(t *testing.T) {
	tokens, err := NewLexer("z = sumar(x, 25)\n").Tokenize()
	if err != nil {
		t.Fatalf("unexpected tokenize error: %s", err)
	}

	wantValues := []string{"z", "=", "sumar", "(", "x", ",", "25", ")", "\n", ""}
	for i, want := range wantValues {
		if tokens[i].Value != want {
			t.Errorf("token %d: expected value %q, got %q", i, want, tokens[i].Value)
		}
	}
}

func TestTokenizeSpans(t *testing.T) {
	tokens, err := NewLexer("x = 10\ny = 2\n").Tokenize()
	if err != nil {
		t.Fatalf("unexpected tokenize error: %s", err)
	}

	// `10` sits on line 0, columns 4-6.
	lit := tokens[2]
	if lit.Span.StartLine != 0 || lit.Span.StartCol != 4 || lit.Span.EndCol != 6 {
		t.Errorf("bad span for `10`: %+v", *lit.Span)
	}

	// `y` sits on line 1, column 0.
	ident := tokens[4]
	if ident.Span.StartLine != 1 || ident.Span.StartCol != 0 {
		t.Errorf("bad span for `y`: %+v", *ident.Span)
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "malformed numeric literal",
			src:  "x = 10a\n",
		},
		{
			name: "unexpected character",
			src:  "x = 10 $\n",
		},
		{
			name: "inconsistent indentation",
			src: "def f(a):\n" +
				"        x = 1\n" +
				"    return x\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewLexer(test.src).Tokenize()
			if err == nil {
				t.Fatal("expected a tokenize error")
			}

			cerr, ok := err.(*report.CompileError)
			if !ok {
				t.Fatalf("expected a compile error, got %T", err)
			}

			if cerr.Kind != report.ErrKindLex {
				t.Errorf("expected a %s error, got %s", report.KindLabel(report.ErrKindLex), report.KindLabel(cerr.Kind))
			}
		})
	}
}
