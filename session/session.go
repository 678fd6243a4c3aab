// Package session implements the command layer shared by script mode
// and the interactive shell. A Session wraps one interpreter and
// evaluates textual commands against it, writing human-readable
// results to its output. The interpreter itself never formats or
// prints; all rendering happens here.
package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rewinder-dev/rewinder/interp"
	"github.com/rewinder-dev/rewinder/vm"
)

const helpText = `Commands:
  add <instr>[; <instr>...]  queue instructions (PUSH <i32>, POP, ADD, SUB, MUL, DIV)
  forward                    execute the next pending instruction
  run                        execute until the queue is empty or an error occurs
  back                       undo the most recently executed instruction
  print                      show the stack (top is rightmost)
  current                    show the next pending instruction
  queue                      show all pending instructions
  history                    show executed instructions, oldest first
  state                      show a fingerprint of the interpreter state
  help                       show this help
  exit                       leave the session`

// ErrUnknownCommand carries an unrecognized command word.
type ErrUnknownCommand string

func (e ErrUnknownCommand) Error() string {
	return fmt.Sprintf("unknown command %q", string(e))
}

// Session evaluates interpreter commands against one Interpreter.
type Session struct {
	interp *interp.Interpreter
	out    io.Writer
	log    zerolog.Logger
}

func New(out io.Writer) *Session {
	return &Session{
		interp: interp.New(),
		out:    out,
		log:    log.With().Str("session", uuid.NewString()).Logger(),
	}
}

// Interpreter exposes the wrapped interpreter, mainly for tests.
func (s *Session) Interpreter() *interp.Interpreter {
	return s.interp
}

// Eval evaluates one command line. It returns quit=true when the
// session should end. Errors are returned, never printed: the caller
// decides whether to abort (script mode on runtime errors) or to keep
// the session going (shell mode). Blank lines are no-ops.
func (s *Session) Eval(line string) (quit bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false, nil
	}

	word, args, _ := strings.Cut(trimmed, " ")
	word = strings.ToLower(word)
	args = strings.TrimSpace(args)
	s.log.Debug().Str("command", word).Str("args", args).Msg("eval")

	switch word {
	case "add", "add-instruction":
		return false, s.add(args)
	case "current", "current-instruction":
		if instr := s.interp.CurrentInstruction(); instr != nil {
			fmt.Fprintf(s.out, "Current instruction: %s\n", instr)
		} else {
			fmt.Fprintln(s.out, "No instructions in the queue.")
		}
	case "queue":
		fmt.Fprintf(s.out, "Instruction queue: %s\n", FormatQueue(s.interp.Queue()))
	case "forward":
		report, err := s.interp.Forward()
		if err != nil {
			return false, err
		}
		fmt.Fprintf(s.out, "Executed %s. Stack: %s\n", report.Instruction, FormatStack(report.Stack))
	case "run":
		summary, err := s.interp.Run()
		if err != nil {
			return false, err
		}
		fmt.Fprintf(s.out, "All instructions executed. Stack: %s\n", FormatStack(summary.Stack))
	case "back":
		report, err := s.interp.Back()
		if err != nil {
			return false, err
		}
		fmt.Fprintf(s.out, "Reversed %s. Stack: %s\n", report.Instruction, FormatStack(report.Stack))
	case "print", "stack":
		fmt.Fprintf(s.out, "Stack: %s\n", FormatStack(s.interp.Stack()))
	case "history":
		fmt.Fprintf(s.out, "History: %s\n", FormatHistory(s.interp.History()))
	case "state":
		snap := s.interp.Snapshot()
		fp, err := snap.Fingerprint()
		if err != nil {
			return false, err
		}
		fmt.Fprintf(s.out, "State %016x: %d pending, %d on stack, %d executed\n",
			fp, len(snap.Queue), len(snap.Stack), len(snap.History))
	case "help":
		fmt.Fprintln(s.out, helpText)
	case "exit", "quit":
		return true, nil
	default:
		return false, ErrUnknownCommand(word)
	}
	return false, nil
}

func (s *Session) add(args string) error {
	instructions, err := vm.ParseBatch(args)
	if err != nil {
		return err
	}
	s.interp.Enqueue(instructions...)
	if len(instructions) == 1 {
		fmt.Fprintln(s.out, "Added 1 instruction.")
	} else {
		fmt.Fprintf(s.out, "Added %d instructions.\n", len(instructions))
	}
	return nil
}

// RunScript evaluates commands from r line by line. Command and parse
// errors are reported to the session output and evaluation continues;
// the first interpreter runtime error stops the script and is
// returned. An exit command or end of input ends the script cleanly.
func (s *Session) RunScript(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		quit, err := s.Eval(scanner.Text())
		if err != nil {
			if interp.IsRuntime(err) {
				return err
			}
			fmt.Fprintf(s.out, "Error: %v\n", err)
			continue
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}
