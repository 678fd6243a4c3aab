package interp

import (
	"math"

	"github.com/rewinder-dev/rewinder/vm"
)

// Interpreter executes instructions forward and reverses them one step
// at a time. It owns three mutually consistent pieces of state: the
// FIFO queue of pending instructions, the value stack (top = last
// element), and the history log of executed instructions. Forward and
// Back mutate all three as one step; a failing call leaves every piece
// untouched.
//
// An Interpreter is not safe for concurrent use.
type Interpreter struct {
	queue   []vm.Instruction
	stack   []int32
	history []HistoryEntry
}

// Report describes one executed or reversed instruction and the stack
// it left behind.
type Report struct {
	Instruction vm.Instruction
	Stack       []int32
}

// Summary describes a Run: how many instructions executed and the
// final stack. On error the summary still reflects the work done
// before the failing instruction.
type Summary struct {
	Executed int
	Stack    []int32
}

func New() *Interpreter {
	return &Interpreter{}
}

// Enqueue appends instructions to the back of the pending queue in
// order. The stack and history are untouched.
func (in *Interpreter) Enqueue(instructions ...vm.Instruction) {
	in.queue = append(in.queue, instructions...)
}

// CurrentInstruction returns a pointer to the instruction the next
// Forward will execute, or nil when the queue is empty. The pointer is
// valid until the queue next mutates.
func (in *Interpreter) CurrentInstruction() *vm.Instruction {
	if len(in.queue) == 0 {
		return nil
	}
	return &in.queue[0]
}

// Queue returns a copy of the pending instruction queue, front first.
// The copy is never nil.
func (in *Interpreter) Queue() []vm.Instruction {
	return append([]vm.Instruction{}, in.queue...)
}

// Stack returns a copy of the value stack, top last. The copy is
// never nil.
func (in *Interpreter) Stack() []int32 {
	return append([]int32{}, in.stack...)
}

// History returns a copy of the execution history, most recent last.
// The copy is never nil.
func (in *Interpreter) History() []HistoryEntry {
	return append([]HistoryEntry{}, in.history...)
}

// Forward dequeues and executes the front instruction. On success the
// executed instruction is appended to the history. On failure the
// instruction is consumed but the stack and history are unchanged; a
// failed instruction is not retried.
func (in *Interpreter) Forward() (Report, error) {
	if len(in.queue) == 0 {
		return Report{}, ErrNoInstructions
	}
	instr := in.queue[0]
	in.queue = in.queue[1:]

	entry, err := in.execute(instr)
	if err != nil {
		return Report{}, err
	}
	in.history = append(in.history, entry)
	return Report{Instruction: instr, Stack: in.Stack()}, nil
}

func (in *Interpreter) execute(instr vm.Instruction) (HistoryEntry, error) {
	switch instr.Op {
	case vm.PUSH:
		in.stack = append(in.stack, instr.Arg)
		return HistoryEntry{Instruction: instr, Pushed: []int32{instr.Arg}}, nil
	case vm.POP:
		if len(in.stack) == 0 {
			return HistoryEntry{}, ErrStackUnderflow
		}
		top := in.stack[len(in.stack)-1]
		in.stack = in.stack[:len(in.stack)-1]
		return HistoryEntry{Instruction: instr, Popped: []int32{top}}, nil
	default:
		return in.arithmetic(instr)
	}
}

// arithmetic executes ADD, SUB, MUL or DIV. Operands are peeked, not
// popped, so a failing operation never mutates the stack: b is the top
// of the stack, a the value beneath it, and the result is a OP b.
func (in *Interpreter) arithmetic(instr vm.Instruction) (HistoryEntry, error) {
	if len(in.stack) < 2 {
		return HistoryEntry{}, ErrStackUnderflow
	}
	b := in.stack[len(in.stack)-1]
	a := in.stack[len(in.stack)-2]

	var wide int64
	switch instr.Op {
	case vm.ADD:
		wide = int64(a) + int64(b)
	case vm.SUB:
		wide = int64(a) - int64(b)
	case vm.MUL:
		wide = int64(a) * int64(b)
	case vm.DIV:
		if b == 0 {
			return HistoryEntry{}, ErrDivideByZero
		}
		// Truncating division; MinInt32 / -1 trips the range
		// check below.
		wide = int64(a) / int64(b)
	}
	if wide < math.MinInt32 || wide > math.MaxInt32 {
		return HistoryEntry{}, ErrArithmeticOverflow
	}

	result := int32(wide)
	in.stack = append(in.stack[:len(in.stack)-2], result)
	return HistoryEntry{
		Instruction: instr,
		Popped:      []int32{b, a},
		Pushed:      []int32{result},
	}, nil
}

// Run calls Forward until the queue is empty or a call fails. The
// returned summary counts the successfully executed instructions; on
// error it describes the state at the point of failure, which stays
// inspectable through Stack, Queue and History.
func (in *Interpreter) Run() (Summary, error) {
	executed := 0
	for len(in.queue) > 0 {
		if _, err := in.Forward(); err != nil {
			return Summary{Executed: executed, Stack: in.Stack()}, err
		}
		executed++
	}
	return Summary{Executed: executed, Stack: in.Stack()}, nil
}

// Back reverses the most recently executed instruction: the history
// entry's stack effect is inverted and its instruction is reinserted
// at the front of the queue, so the next Forward would redo exactly
// that step. Back cannot fail once history is non-empty.
func (in *Interpreter) Back() (Report, error) {
	if len(in.history) == 0 {
		return Report{}, ErrNoHistory
	}
	entry := in.history[len(in.history)-1]
	in.history = in.history[:len(in.history)-1]

	in.stack = in.stack[:len(in.stack)-len(entry.Pushed)]
	for i := len(entry.Popped) - 1; i >= 0; i-- {
		in.stack = append(in.stack, entry.Popped[i])
	}

	in.queue = append([]vm.Instruction{entry.Instruction}, in.queue...)
	return Report{Instruction: entry.Instruction, Stack: in.Stack()}, nil
}
