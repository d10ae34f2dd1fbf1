package sem

import "minipyc/common"

// universe is the outermost scope of every compilation: the built-in symbols
// that are visible everywhere but may be shadowed by user definitions.
var universe = map[string]*common.Symbol{
	"print": {
		Name:     "print",
		Kind:     common.SymKindFunction,
		ScopeID:  common.ScopeUniverse,
		Variadic: true,
	},
}

// LookupUniverse resolves a name against the built-in symbols.
func LookupUniverse(name string) (*common.Symbol, bool) {
	sym, ok := universe[name]
	return sym, ok
}
