package interp

import (
	"bytes"
	"io"

	"github.com/dgryski/go-farm"
	"github.com/shamaton/msgpack/v2"

	"github.com/rewinder-dev/rewinder/vm"
)

// Snapshot is a point-in-time copy of the interpreter state: pending
// queue, value stack and history. Snapshots are inert data, detached
// from the interpreter that produced them.
type Snapshot struct {
	Queue   []vm.Instruction
	Stack   []int32
	History []HistoryEntry
}

// Snapshot copies the current interpreter state.
func (in *Interpreter) Snapshot() *Snapshot {
	return &Snapshot{
		Queue:   in.Queue(),
		Stack:   in.Stack(),
		History: in.History(),
	}
}

func (s *Snapshot) Serialize(w io.Writer) error {
	return msgpack.MarshalWrite(w, s)
}

func (s *Snapshot) Deserialize(r io.Reader) error {
	return msgpack.UnmarshalRead(r, s)
}

// Fingerprint hashes the serialized snapshot. Two interpreters with
// identical queue, stack and history fingerprint identically, so a
// forward followed by a back leaves the fingerprint unchanged.
func (s *Snapshot) Fingerprint() (uint64, error) {
	var buf bytes.Buffer
	if err := s.Serialize(&buf); err != nil {
		return 0, err
	}
	return farm.Hash64(buf.Bytes()), nil
}
