package common

import "minipyc/report"

// Symbol represents a semantic symbol: a named value or definition.
type Symbol struct {
	// The name of the symbol.
	Name string

	// The symbol's kind: what kind of thing this symbol represents.  This
	// must be one of the enumerated symbol kinds.
	Kind int

	// The ID of the scope which declares this symbol.  Builtin symbols use
	// ScopeUniverse.
	ScopeID int

	// The symbol's index of introduction within its declaring scope.  Ordinals
	// are dense per scope and stable for the rest of compilation: together
	// with the scope ID they derive the symbol's storage reference.
	Ordinal int

	// Where the symbol was defined.
	DefSpan *report.TextSpan

	// The number of parameters the symbol accepts.  Only meaningful for
	// function symbols.
	ParamCount int

	// Whether the symbol is a function accepting any number of arguments.
	// Only builtin functions are variadic.
	Variadic bool
}

// Enumeration of different symbol kinds.
const (
	SymKindVariable = iota
	SymKindParameter
	SymKindFunction
)

// ScopeUniverse is the scope ID used for builtin symbols which belong to no
// user scope.
const ScopeUniverse = -1

// KindRepr returns the displayable name of a symbol kind.
func KindRepr(kind int) string {
	switch kind {
	case SymKindVariable:
		return "variable"
	case SymKindParameter:
		return "parameter"
	default:
		return "function"
	}
}
