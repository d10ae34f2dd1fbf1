package sem

import (
	"minipyc/ast"
	"minipyc/common"
	"minipyc/report"
)

// Walker resolves all the names of a program against a symbol table.  It
// performs a single top-to-bottom pass: a name may only be used after the
// statement that binds it, so forward references are rejected.
type Walker struct {
	// table is the symbol table being built.
	table *Table

	// scope is the scope the walker is currently resolving inside of.
	scope *Scope
}

// NewWalker creates a new walker with an empty symbol table.
func NewWalker() *Walker {
	table := NewTable()

	return &Walker{
		table: table,
		scope: table.Global(),
	}
}

// Resolve walks the program, binding every definition and resolving every
// use.  It returns the completed symbol table.  Resolution stops at the first
// error.
func (w *Walker) Resolve(prog *ast.Program) (table *Table, err error) {
	defer report.CatchError(&err)

	for _, stmt := range prog.Statements {
		w.walkStmt(stmt, false)
	}

	return w.table, nil
}

// -----------------------------------------------------------------------------

func (w *Walker) walkStmt(stmt ast.ASTNode, inFunc bool) {
	switch v := stmt.(type) {
	case *ast.Assignment:
		w.walkAssignment(v)
	case *ast.FuncDef:
		w.walkFuncDef(v)
	case *ast.ReturnStmt:
		if !inFunc {
			panic(report.Raise(
				report.ErrKindSyntax,
				v.Span(),
				"`return` used outside of a function body",
			))
		}

		if v.Value != nil {
			w.walkExpr(v.Value)
		}
	case *ast.ExprStmt:
		w.walkExpr(v.Expr)
	}
}

// walkAssignment resolves the value of an assignment before binding its
// target: `x = x + 1` refers to the previous binding of `x`.
func (w *Walker) walkAssignment(asn *ast.Assignment) {
	w.walkExpr(asn.Value)

	sym := &common.Symbol{
		Name:    asn.Target.Name,
		Kind:    common.SymKindVariable,
		DefSpan: asn.Target.Span(),
	}

	if prev, ok := w.table.Define(w.scope, sym); !ok {
		if prev.Kind != common.SymKindVariable {
			panic(report.Raise(
				report.ErrKindName,
				asn.Target.Span(),
				"cannot rebind %s `%s` as a variable",
				common.KindRepr(prev.Kind),
				prev.Name,
			))
		}

		// rebinding a variable reuses its symbol
		sym = prev
	}

	asn.Target.Sym = sym
}

// walkFuncDef binds the function in the enclosing scope before its body is
// resolved so the function may call itself.
func (w *Walker) walkFuncDef(fd *ast.FuncDef) {
	sym := &common.Symbol{
		Name:       fd.Name,
		Kind:       common.SymKindFunction,
		DefSpan:    fd.Span(),
		ParamCount: len(fd.Params),
	}

	if prev, ok := w.table.Define(w.scope, sym); !ok {
		panic(report.Raise(
			report.ErrKindName,
			fd.Span(),
			"`%s` is already bound as a %s in this scope",
			prev.Name,
			common.KindRepr(prev.Kind),
		))
	}

	outer := w.scope
	w.scope = w.table.NewScope(ScopeFunction, outer.ID, fd.Name)

	for _, param := range fd.Params {
		psym := &common.Symbol{
			Name:    param.Name,
			Kind:    common.SymKindParameter,
			DefSpan: param.Span(),
		}

		if _, ok := w.table.Define(w.scope, psym); !ok {
			panic(report.Raise(
				report.ErrKindName,
				param.Span(),
				"multiple parameters named `%s`",
				param.Name,
			))
		}

		param.Sym = psym
	}

	for _, stmt := range fd.Body {
		w.walkStmt(stmt, true)
	}

	w.scope = outer
}

func (w *Walker) walkExpr(expr ast.ASTExpr) {
	switch v := expr.(type) {
	case *ast.BinaryOp:
		w.walkExpr(v.Lhs)
		w.walkExpr(v.Rhs)
	case *ast.Identifier:
		v.Sym = w.resolveName(v)
	case *ast.Call:
		w.walkCall(v)
	case *ast.IntLit:
		// nothing to resolve
	}
}

func (w *Walker) walkCall(call *ast.Call) {
	sym := w.resolveName(call.Func)
	call.Func.Sym = sym

	if sym.Kind != common.SymKindFunction {
		panic(report.Raise(
			report.ErrKindName,
			call.Func.Span(),
			"cannot call %s `%s`",
			common.KindRepr(sym.Kind),
			sym.Name,
		))
	}

	if !sym.Variadic && len(call.Args) != sym.ParamCount {
		panic(report.Raise(
			report.ErrKindArity,
			call.Span(),
			"function `%s` expects %d arguments but received %d",
			sym.Name,
			sym.ParamCount,
			len(call.Args),
		))
	}

	for _, arg := range call.Args {
		w.walkExpr(arg)
	}
}

func (w *Walker) resolveName(ident *ast.Identifier) *common.Symbol {
	sym, ok := w.table.Lookup(w.scope, ident.Name)
	if !ok {
		panic(report.Raise(
			report.ErrKindName,
			ident.Span(),
			"undefined symbol: `%s`",
			ident.Name,
		))
	}

	return sym
}
