package sem

import (
	"fmt"
	"strings"

	"minipyc/common"
)

// Enumeration of the different kinds of scopes.
const (
	ScopeGlobal = iota
	ScopeFunction
)

// Scope represents a single lexical scope: a flat mapping of names to the
// symbols bound in that scope.  Scopes are stored in an arena (the Table) and
// refer to their parents by ID so the full chain can be rendered after
// resolution finishes.
type Scope struct {
	// ID is the arena index of this scope.
	ID int

	// Kind is the kind of this scope.  It must be one of the enumerated scope
	// kinds.
	Kind int

	// Parent is the ID of the enclosing scope.  The global scope's parent is
	// the universe.
	Parent int

	// Name is the name of the function that introduced this scope.  It is
	// empty for the global scope.
	Name string

	// Bindings maps names to the symbols bound in this scope.
	Bindings map[string]*common.Symbol

	// Ordered stores the symbols of this scope in declaration order.
	Ordered []*common.Symbol
}

// Table is the symbol table for a whole compilation: the arena of every scope
// created during resolution.  Scope 0 is always the global scope.
type Table struct {
	Scopes []*Scope
}

// NewTable creates a new symbol table containing only the global scope.
func NewTable() *Table {
	t := &Table{}
	t.NewScope(ScopeGlobal, common.ScopeUniverse, "")
	return t
}

// NewScope creates a new scope in the table and returns it.
func (t *Table) NewScope(kind, parent int, name string) *Scope {
	scope := &Scope{
		ID:       len(t.Scopes),
		Kind:     kind,
		Parent:   parent,
		Name:     name,
		Bindings: make(map[string]*common.Symbol),
	}

	t.Scopes = append(t.Scopes, scope)
	return scope
}

// Global returns the global scope of the table.
func (t *Table) Global() *Scope {
	return t.Scopes[0]
}

// Define binds a symbol in the given scope.  If the name is already bound in
// that scope, the previous symbol is returned and the binding is unchanged.
func (t *Table) Define(scope *Scope, sym *common.Symbol) (*common.Symbol, bool) {
	if prev, ok := scope.Bindings[sym.Name]; ok {
		return prev, false
	}

	sym.ScopeID = scope.ID
	sym.Ordinal = len(scope.Ordered)
	scope.Bindings[sym.Name] = sym
	scope.Ordered = append(scope.Ordered, sym)
	return sym, true
}

// Lookup resolves a name starting from the given scope and walking the chain
// of enclosing scopes out to the global scope and finally the universe.
func (t *Table) Lookup(scope *Scope, name string) (*common.Symbol, bool) {
	for {
		if sym, ok := scope.Bindings[name]; ok {
			return sym, true
		}

		if scope.Parent == common.ScopeUniverse {
			break
		}

		scope = t.Scopes[scope.Parent]
	}

	return LookupUniverse(name)
}

// Repr returns the displayable representation of the symbol table: every
// scope in creation order with its bindings in declaration order.
func (t *Table) Repr() string {
	sb := strings.Builder{}

	for i, scope := range t.Scopes {
		if i > 0 {
			sb.WriteRune('\n')
		}

		if scope.Kind == ScopeGlobal {
			sb.WriteString("scope global:\n")
		} else {
			fmt.Fprintf(&sb, "scope function `%s`:\n", scope.Name)
		}

		for _, sym := range scope.Ordered {
			fmt.Fprintf(&sb, "  %-12s %s", sym.Name, common.KindRepr(sym.Kind))

			if sym.Kind == common.SymKindFunction {
				fmt.Fprintf(&sb, " (%d params)", sym.ParamCount)
			}

			sb.WriteRune('\n')
		}
	}

	return sb.String()
}
