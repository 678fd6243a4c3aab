package vm

import "fmt"

// Opcode identifies one of the six interpreter instructions.
type Opcode int

const (
	PUSH Opcode = iota
	POP
	ADD
	SUB
	MUL
	DIV
	OpcodeMax
)

func (o Opcode) String() string {
	switch o {
	case PUSH:
		return "PUSH"
	case POP:
		return "POP"
	case ADD:
		return "ADD"
	case SUB:
		return "SUB"
	case MUL:
		return "MUL"
	case DIV:
		return "DIV"
	}
	return fmt.Sprintf("Opcode(%d)", int(o))
}

// HasArg reports whether the opcode takes an immediate argument.
// Only PUSH does.
func (o Opcode) HasArg() bool {
	return o == PUSH
}

// Instruction is a single executable instruction. Arg is only
// meaningful when Op.HasArg() is true.
type Instruction struct {
	Op  Opcode
	Arg int32
}

func (i Instruction) String() string {
	if i.Op.HasArg() {
		return fmt.Sprintf("%s %d", i.Op, i.Arg)
	}
	return i.Op.String()
}
