package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewinder-dev/rewinder/interp"
	"github.com/rewinder-dev/rewinder/vm"
)

func evalAll(t *testing.T, s *Session, lines ...string) {
	t.Helper()
	for _, line := range lines {
		quit, err := s.Eval(line)
		require.NoError(t, err, "line %q", line)
		require.False(t, quit, "line %q", line)
	}
}

func TestEval_AddAndRun(t *testing.T) {
	var out bytes.Buffer
	s := New(&out)

	evalAll(t, s,
		"add PUSH 5; PUSH 10; ADD",
		"run",
		"print",
	)
	assert.Equal(t,
		"Added 3 instructions.\n"+
			"All instructions executed. Stack: [15]\n"+
			"Stack: [15]\n",
		out.String())
}

func TestEval_ForwardAndBack(t *testing.T) {
	var out bytes.Buffer
	s := New(&out)

	evalAll(t, s, "add PUSH 4", "forward", "back")
	assert.Contains(t, out.String(), "Executed PUSH 4. Stack: [4]\n")
	assert.Contains(t, out.String(), "Reversed PUSH 4. Stack: []\n")
}

func TestEval_CurrentAndQueue(t *testing.T) {
	var out bytes.Buffer
	s := New(&out)

	evalAll(t, s, "current", "add PUSH 1; POP", "current", "queue")
	assert.Equal(t,
		"No instructions in the queue.\n"+
			"Added 2 instructions.\n"+
			"Current instruction: PUSH 1\n"+
			"Instruction queue: [PUSH 1, POP]\n",
		out.String())
}

func TestEval_History(t *testing.T) {
	var out bytes.Buffer
	s := New(&out)

	evalAll(t, s, "add PUSH 1; PUSH 2; ADD", "run")
	out.Reset()
	evalAll(t, s, "history")
	assert.Equal(t, "History: [PUSH 1, PUSH 2, ADD]\n", out.String())
}

func TestEval_State(t *testing.T) {
	var out bytes.Buffer
	s := New(&out)

	evalAll(t, s, "add PUSH 1; PUSH 2", "forward", "state")
	assert.Contains(t, out.String(), "1 pending, 1 on stack, 1 executed")
}

func TestEval_CommandAliasesAndCase(t *testing.T) {
	var out bytes.Buffer
	s := New(&out)

	evalAll(t, s,
		"ADD-INSTRUCTION PUSH 7",
		"Current-Instruction",
		"STACK",
	)
	assert.Contains(t, out.String(), "Current instruction: PUSH 7")
	assert.Contains(t, out.String(), "Stack: []")
}

func TestEval_MnemonicsStayCaseSensitive(t *testing.T) {
	var out bytes.Buffer
	s := New(&out)

	_, err := s.Eval("add push 7")
	assert.ErrorIs(t, err, vm.ErrUnknownInstruction(""))
	assert.Empty(t, s.Interpreter().Queue(), "a failed batch enqueues nothing")
}

func TestEval_RuntimeErrorsPropagate(t *testing.T) {
	var out bytes.Buffer
	s := New(&out)

	evalAll(t, s, "add POP")
	_, err := s.Eval("forward")
	assert.ErrorIs(t, err, interp.ErrStackUnderflow)

	_, err = s.Eval("back")
	assert.ErrorIs(t, err, interp.ErrNoHistory)

	_, err = s.Eval("forward")
	assert.ErrorIs(t, err, interp.ErrNoInstructions)
}

func TestEval_UnknownCommand(t *testing.T) {
	var out bytes.Buffer
	s := New(&out)

	_, err := s.Eval("frobnicate")
	require.Error(t, err)
	assert.Equal(t, ErrUnknownCommand("frobnicate"), err)
	assert.False(t, interp.IsRuntime(err))
}

func TestEval_BlankLinesAreNoOps(t *testing.T) {
	var out bytes.Buffer
	s := New(&out)

	evalAll(t, s, "", "   ", "\t")
	assert.Empty(t, out.String())
}

func TestEval_ExitQuits(t *testing.T) {
	var out bytes.Buffer
	s := New(&out)

	for _, line := range []string{"exit", "quit", "EXIT"} {
		quit, err := s.Eval(line)
		require.NoError(t, err)
		assert.True(t, quit, "line %q", line)
	}
}

func TestEval_Help(t *testing.T) {
	var out bytes.Buffer
	s := New(&out)

	evalAll(t, s, "help")
	assert.Contains(t, out.String(), "add <instr>")
	assert.Contains(t, out.String(), "back")
}

func TestRunScript_WorkedExample(t *testing.T) {
	script := `add PUSH 10; PUSH 20; ADD; PUSH 5; MUL; PUSH 1; POP; PUSH 2; PUSH 3; SUB; DIV
run
back
back
print
`
	var out bytes.Buffer
	s := New(&out)
	require.NoError(t, s.RunScript(strings.NewReader(script)))

	assert.Contains(t, out.String(), "All instructions executed. Stack: [-150]")
	assert.Contains(t, out.String(), "Reversed DIV. Stack: [150, -1]")
	assert.Contains(t, out.String(), "Reversed SUB. Stack: [150, 2, 3]")
	assert.Contains(t, out.String(), "Stack: [150, 2, 3]\n")
}

func TestRunScript_StopsOnRuntimeError(t *testing.T) {
	script := `add PUSH 10; PUSH 0; DIV
run
print
`
	var out bytes.Buffer
	s := New(&out)
	err := s.RunScript(strings.NewReader(script))
	assert.ErrorIs(t, err, interp.ErrDivideByZero)
	assert.NotContains(t, out.String(), "Stack: [10, 0]",
		"the script must halt before the print command")
}

func TestRunScript_ContinuesPastCommandErrors(t *testing.T) {
	script := `bogus
add PUSH 3d
add PUSH 3
print
`
	var out bytes.Buffer
	s := New(&out)
	require.NoError(t, s.RunScript(strings.NewReader(script)))
	assert.Contains(t, out.String(), `Error: unknown command "bogus"`)
	assert.Contains(t, out.String(), "Error: instruction 1")
	assert.Contains(t, out.String(), "Added 1 instruction.")
	assert.Contains(t, out.String(), "Stack: []")
}

func TestRunScript_ExitStopsEarly(t *testing.T) {
	script := `add PUSH 1
exit
run
`
	var out bytes.Buffer
	s := New(&out)
	require.NoError(t, s.RunScript(strings.NewReader(script)))
	assert.NotContains(t, out.String(), "All instructions executed")
	assert.Equal(t, []vm.Instruction{{Op: vm.PUSH, Arg: 1}}, s.Interpreter().Queue())
}

func TestFormatStack(t *testing.T) {
	assert.Equal(t, "[]", FormatStack(nil))
	assert.Equal(t, "[7]", FormatStack([]int32{7}))
	assert.Equal(t, "[10, 20, -1]", FormatStack([]int32{10, 20, -1}))
}

func TestFormatQueue(t *testing.T) {
	assert.Equal(t, "[]", FormatQueue(nil))
	assert.Equal(t, "[PUSH 5, ADD]", FormatQueue([]vm.Instruction{
		{Op: vm.PUSH, Arg: 5},
		{Op: vm.ADD},
	}))
}
