package syntax

import (
	"testing"

	"minipyc/ast"
	"minipyc/report"
)

// parseProg tokenizes and parses the source, failing the test on any error.
func parseProg(t *testing.T, src string) *ast.Program {
	t.Helper()

	tokens, err := NewLexer(src).Tokenize()
	if err != nil {
		t.Fatalf("unexpected tokenize error: %s", err)
	}

	prog, err := NewParser(tokens).Parse()
	if err != nil {
		t.Fatalf("unexpected parse error: %s", err)
	}

	return prog
}

// binOp asserts the expression is a binary operation with the given operator.
func binOp(t *testing.T, expr ast.ASTExpr, opName string) *ast.BinaryOp {
	t.Helper()

	bop, ok := expr.(*ast.BinaryOp)
	if !ok {
		t.Fatalf("expected a binary operation, got %T", expr)
	}

	if bop.Op.Name != opName {
		t.Fatalf("expected operator `%s`, got `%s`", opName, bop.Op.Name)
	}

	return bop
}

func TestParsePrecedence(t *testing.T) {
	prog := parseProg(t, "a = 1 + 2 * 3\n")

	asn := prog.Statements[0].(*ast.Assignment)

	// `+` is the root: `*` binds tighter.
	add := binOp(t, asn.Value, "+")
	binOp(t, add.Rhs, "*")

	if lit, ok := add.Lhs.(*ast.IntLit); !ok || lit.Value != 1 {
		t.Errorf("expected lhs of `+` to be the literal 1, got %#v", add.Lhs)
	}
}

func TestParseParenGrouping(t *testing.T) {
	prog := parseProg(t, "a = (1 + 2) * 3\n")

	asn := prog.Statements[0].(*ast.Assignment)

	mul := binOp(t, asn.Value, "*")
	binOp(t, mul.Lhs, "+")
}

func TestParseLeftAssociativity(t *testing.T) {
	prog := parseProg(t, "a = 1 - 2 - 3\n")

	asn := prog.Statements[0].(*ast.Assignment)

	// ((1 - 2) - 3)
	outer := binOp(t, asn.Value, "-")
	binOp(t, outer.Lhs, "-")

	if lit, ok := outer.Rhs.(*ast.IntLit); !ok || lit.Value != 3 {
		t.Errorf("expected rhs of outer `-` to be the literal 3, got %#v", outer.Rhs)
	}
}

func TestParseFuncDef(t *testing.T) {
	prog := parseProg(t,
		"def sumar(a, b):\n"+
			"    c = a + b\n"+
			"    return c\n")

	fd, ok := prog.Statements[0].(*ast.FuncDef)
	if !ok {
		t.Fatalf("expected a function definition, got %T", prog.Statements[0])
	}

	if fd.Name != "sumar" {
		t.Errorf("expected function name `sumar`, got `%s`", fd.Name)
	}

	if len(fd.Params) != 2 || fd.Params[0].Name != "a" || fd.Params[1].Name != "b" {
		t.Errorf("bad parameter list: %#v", fd.Params)
	}

	if len(fd.Body) != 2 {
		t.Fatalf("expected 2 body statements, got %d", len(fd.Body))
	}

	if _, ok := fd.Body[1].(*ast.ReturnStmt); !ok {
		t.Errorf("expected last body statement to be a return, got %T", fd.Body[1])
	}
}

func TestParseBlankLineBeforeBody(t *testing.T) {
	prog := parseProg(t,
		"def f(a):\n"+
			"\n"+
			"    return a\n")

	fd := prog.Statements[0].(*ast.FuncDef)
	if len(fd.Body) != 1 {
		t.Errorf("expected 1 body statement, got %d", len(fd.Body))
	}
}

func TestParseTrailingCommas(t *testing.T) {
	prog := parseProg(t,
		"def f(a, b,):\n"+
			"    return a\n"+
			"x = f(1, 2,)\n")

	fd := prog.Statements[0].(*ast.FuncDef)
	if len(fd.Params) != 2 {
		t.Errorf("expected 2 parameters, got %d", len(fd.Params))
	}

	call := prog.Statements[1].(*ast.Assignment).Value.(*ast.Call)
	if len(call.Args) != 2 {
		t.Errorf("expected 2 arguments, got %d", len(call.Args))
	}
}

func TestParseBareReturn(t *testing.T) {
	prog := parseProg(t,
		"def f():\n"+
			"    return\n")

	fd := prog.Statements[0].(*ast.FuncDef)
	if len(fd.Params) != 0 {
		t.Errorf("expected no parameters, got %d", len(fd.Params))
	}

	ret := fd.Body[0].(*ast.ReturnStmt)
	if ret.Value != nil {
		t.Errorf("expected a bare return, got value %#v", ret.Value)
	}
}

func TestParseNestedCalls(t *testing.T) {
	prog := parseProg(t, "x = f(g(1), 2 + h(3))\n")

	call := prog.Statements[0].(*ast.Assignment).Value.(*ast.Call)
	if call.Func.Name != "f" || len(call.Args) != 2 {
		t.Fatalf("bad outer call: %#v", call)
	}

	if inner, ok := call.Args[0].(*ast.Call); !ok || inner.Func.Name != "g" {
		t.Errorf("expected first argument to be a call to `g`, got %#v", call.Args[0])
	}

	add := binOp(t, call.Args[1], "+")
	if inner, ok := add.Rhs.(*ast.Call); !ok || inner.Func.Name != "h" {
		t.Errorf("expected rhs of `+` to be a call to `h`, got %#v", add.Rhs)
	}
}

func TestParseExprStmt(t *testing.T) {
	prog := parseProg(t, "print(1, 2)\n")

	es, ok := prog.Statements[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("expected an expression statement, got %T", prog.Statements[0])
	}

	call := es.Expr.(*ast.Call)
	if call.Func.Name != "print" || len(call.Args) != 2 {
		t.Errorf("bad call: %#v", call)
	}
}

func TestParseReparseIsDeterministic(t *testing.T) {
	src := "x = 10\n" +
		"def sumar(a, b):\n" +
		"    c = a + b\n" +
		"    return c\n" +
		"print(sumar(x, 2))\n"

	first := parseProg(t, src).Repr()
	second := parseProg(t, src).Repr()

	if first != second {
		t.Errorf("reparsing produced a different tree:\n%s\nvs\n%s", first, second)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "missing assignment value",
			src:  "x =\n",
		},
		{
			name: "missing colon",
			src: "def f(a)\n" +
				"    return a\n",
		},
		{
			name: "missing parameter name",
			src: "def f(,):\n" +
				"    return 1\n",
		},
		{
			name: "empty function body",
			src:  "def f():\n",
		},
		{
			name: "unexpected indentation at top level",
			src:  "    x = 1\n",
		},
		{
			name: "unclosed call",
			src:  "x = f(1, 2\n",
		},
		{
			name: "operator without operand",
			src:  "x = 1 +\n",
		},
		{
			name: "stray token after expression",
			src:  "x 1\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tokens, err := NewLexer(test.src).Tokenize()
			if err != nil {
				t.Fatalf("unexpected tokenize error: %s", err)
			}

			_, err = NewParser(tokens).Parse()
			if err == nil {
				t.Fatal("expected a parse error")
			}

			cerr, ok := err.(*report.CompileError)
			if !ok {
				t.Fatalf("expected a compile error, got %T", err)
			}

			if cerr.Kind != report.ErrKindSyntax {
				t.Errorf("expected a %s error, got %s", report.KindLabel(report.ErrKindSyntax), report.KindLabel(cerr.Kind))
			}
		})
	}
}
