package interp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewinder-dev/rewinder/vm"
)

func workedInterpreter(t *testing.T) *Interpreter {
	t.Helper()
	in := New()
	in.Enqueue(
		vm.Instruction{Op: vm.PUSH, Arg: 10},
		vm.Instruction{Op: vm.PUSH, Arg: 20},
		vm.Instruction{Op: vm.ADD},
		vm.Instruction{Op: vm.PUSH, Arg: 5},
	)
	_, err := in.Forward()
	require.NoError(t, err)
	_, err = in.Forward()
	require.NoError(t, err)
	return in
}

func TestSnapshot_SerializeRoundTrip(t *testing.T) {
	in := workedInterpreter(t)
	snap := in.Snapshot()

	var buf bytes.Buffer
	require.NoError(t, snap.Serialize(&buf))

	var restored Snapshot
	require.NoError(t, restored.Deserialize(&buf))
	assert.Equal(t, snap.Queue, restored.Queue)
	assert.Equal(t, snap.Stack, restored.Stack)
	assert.Equal(t, snap.History, restored.History)
}

func TestSnapshot_IsDetached(t *testing.T) {
	in := workedInterpreter(t)
	snap := in.Snapshot()

	_, err := in.Forward()
	require.NoError(t, err)
	assert.Equal(t, []int32{10, 20}, snap.Stack, "snapshots must not track later execution")
	assert.Len(t, snap.History, 2)
}

func TestFingerprint_StableUnderRoundTrip(t *testing.T) {
	in := workedInterpreter(t)
	before, err := in.Snapshot().Fingerprint()
	require.NoError(t, err)

	_, err = in.Forward()
	require.NoError(t, err)
	changed, err := in.Snapshot().Fingerprint()
	require.NoError(t, err)
	assert.NotEqual(t, before, changed, "executing a step must change the fingerprint")

	_, err = in.Back()
	require.NoError(t, err)
	after, err := in.Snapshot().Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, before, after, "undoing the step must restore the fingerprint")
}

func TestFingerprint_FreshInterpretersAgree(t *testing.T) {
	a, err := New().Snapshot().Fingerprint()
	require.NoError(t, err)
	b, err := New().Snapshot().Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
