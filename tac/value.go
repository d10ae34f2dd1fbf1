package tac

import (
	"strconv"

	"minipyc/common"
)

// Value represents an operand or destination of a three-address instruction.
type Value interface {
	// Repr returns the displayable representation of the value.
	Repr() string
}

// Temp is a compiler-generated temporary.  Temporaries are numbered
// monotonically across a whole compilation and are assigned exactly once.
type Temp struct {
	ID int
}

func (t Temp) Repr() string {
	return "t" + strconv.Itoa(t.ID)
}

// VarRef refers to a named variable, parameter, or function by its symbol.
type VarRef struct {
	Sym *common.Symbol
}

func (v VarRef) Repr() string {
	return v.Sym.Name
}

// FuncRef refers to the function being called by a call instruction.
type FuncRef struct {
	Sym *common.Symbol
}

func (f FuncRef) Repr() string {
	return f.Sym.Name
}

// IntConst is an integer constant operand.
type IntConst struct {
	Value int64
}

func (ic IntConst) Repr() string {
	return strconv.FormatInt(ic.Value, 10)
}
