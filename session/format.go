package session

import (
	"fmt"
	"strings"

	"github.com/rewinder-dev/rewinder/interp"
	"github.com/rewinder-dev/rewinder/vm"
)

// FormatStack renders a stack bottom-to-top, so the rightmost value is
// the top of the stack.
func FormatStack(stack []int32) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range stack {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", v)
	}
	b.WriteByte(']')
	return b.String()
}

// FormatQueue renders pending instructions front-first.
func FormatQueue(queue []vm.Instruction) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, instr := range queue {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(instr.String())
	}
	b.WriteByte(']')
	return b.String()
}

// FormatHistory renders executed instructions oldest-first.
func FormatHistory(history []interp.HistoryEntry) string {
	instrs := make([]vm.Instruction, len(history))
	for i, entry := range history {
		instrs[i] = entry.Instruction
	}
	return FormatQueue(instrs)
}
