package interp

import "github.com/rewinder-dev/rewinder/vm"

// HistoryEntry records one executed instruction together with the
// stack values it consumed and produced. Popped holds the consumed
// values in pop order (top of stack first), Pushed the produced ones.
// That is enough to invert the instruction exactly: drop len(Pushed)
// values from the stack top, then push Popped back in reverse order.
type HistoryEntry struct {
	Instruction vm.Instruction
	Popped      []int32
	Pushed      []int32
}
