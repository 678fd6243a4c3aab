package vm

import (
	"strconv"
	"strings"
)

var mnemonics = map[string]Opcode{
	"PUSH": PUSH,
	"POP":  POP,
	"ADD":  ADD,
	"SUB":  SUB,
	"MUL":  MUL,
	"DIV":  DIV,
}

// ParseInstruction parses a single instruction of the form
// "PUSH <i32>" or a bare zero-argument mnemonic. Mnemonics are
// case-sensitive and separated from their argument by a single space.
func ParseInstruction(text string) (Instruction, error) {
	mnemonic, arg, hasArg := strings.Cut(text, " ")

	op, ok := mnemonics[mnemonic]
	if !ok {
		return Instruction{}, ErrUnknownInstruction(mnemonic)
	}

	if !op.HasArg() {
		if hasArg {
			return Instruction{}, ErrMalformedInstruction
		}
		return Instruction{Op: op}, nil
	}

	if !hasArg || arg == "" {
		return Instruction{}, ErrMalformedInstruction
	}
	value, err := strconv.ParseInt(arg, 10, 32)
	if err != nil {
		return Instruction{}, ErrInvalidArgument(arg)
	}
	return Instruction{Op: op, Arg: int32(value)}, nil
}

// ParseBatch parses a semicolon-separated batch of instructions.
// Parsing is all-or-nothing: the first failure is returned wrapped in
// an ErrBatch and no instructions are produced. A single trailing
// semicolon is tolerated.
func ParseBatch(text string) ([]Instruction, error) {
	parts := strings.Split(text, ";")
	out := make([]Instruction, 0, len(parts))
	for i, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			if i == len(parts)-1 && len(out) > 0 {
				break
			}
			return nil, ErrBatch{Index: i, Text: part, Err: ErrMalformedInstruction}
		}
		instr, err := ParseInstruction(trimmed)
		if err != nil {
			return nil, ErrBatch{Index: i, Text: trimmed, Err: err}
		}
		out = append(out, instr)
	}
	return out, nil
}
