package tac

import "strings"

// Enumeration of the different three-address opcodes.
const (
	OpCopy = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpCall
	OpParam
	OpReturn
)

// displayTable maps opcodes to their displayable mnemonics.
var displayTable = map[int]string{
	OpCopy:   "copy",
	OpAdd:    "add",
	OpSub:    "sub",
	OpMul:    "mul",
	OpDiv:    "div",
	OpCall:   "call",
	OpParam:  "param",
	OpReturn: "return",
}

// Instruction is a single three-address instruction: an opcode, an optional
// destination, and zero or more operands.
type Instruction struct {
	// OpCode is the opcode of the instruction.  It must be one of the
	// enumerated opcodes.
	OpCode int

	// Dest is the destination the instruction writes to.  It is nil for
	// instructions that produce no value (param, return).
	Dest Value

	// Operands are the operands of the instruction in order.
	Operands []Value
}

// Repr returns the displayable representation of the instruction, eg.
// `add t1, a, b` or `copy x, 10`.
func (instr *Instruction) Repr() string {
	sb := strings.Builder{}
	sb.WriteString(displayTable[instr.OpCode])

	first := true
	writeValue := func(v Value) {
		if first {
			sb.WriteRune(' ')
			first = false
		} else {
			sb.WriteString(", ")
		}

		sb.WriteString(v.Repr())
	}

	if instr.Dest != nil {
		writeValue(instr.Dest)
	}

	for _, operand := range instr.Operands {
		writeValue(operand)
	}

	return sb.String()
}
