package tac

import (
	"fmt"
	"strings"
)

// Item is a single entry of a lowered bundle: either an instruction or one of
// the function boundary markers.
type Item interface {
	// Repr returns the displayable representation of the item.
	Repr() string
}

// FuncBegin marks the start of a function's instruction run.
type FuncBegin struct {
	// Name is the name of the function.
	Name string

	// Params are the parameter names of the function in order.
	Params []string
}

func (fb *FuncBegin) Repr() string {
	return fmt.Sprintf("func_begin %s(%s)", fb.Name, strings.Join(fb.Params, ", "))
}

// FuncEnd marks the end of a function's instruction run.
type FuncEnd struct {
	Name string
}

func (fe *FuncEnd) Repr() string {
	return "func_end " + fe.Name
}

// Bundle is the full lowered form of a program: a flat sequence of
// instructions and function boundary markers in source order.
type Bundle struct {
	Items []Item
}

// Instructions returns only the instructions of the bundle, skipping the
// function boundary markers.
func (b *Bundle) Instructions() []*Instruction {
	var instrs []*Instruction

	for _, item := range b.Items {
		if instr, ok := item.(*Instruction); ok {
			instrs = append(instrs, instr)
		}
	}

	return instrs
}

// Repr returns the displayable listing of the bundle: one item per line, with
// instructions inside a function indented one level.
func (b *Bundle) Repr() string {
	sb := strings.Builder{}

	depth := 0
	for _, item := range b.Items {
		if _, ok := item.(*FuncEnd); ok {
			depth--
		}

		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(item.Repr())
		sb.WriteRune('\n')

		if _, ok := item.(*FuncBegin); ok {
			depth++
		}
	}

	return sb.String()
}
