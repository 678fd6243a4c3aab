// Package vm defines the instruction set of the reversible stack
// interpreter and the parser that turns command text into instructions.
//
// The instruction vocabulary is closed: PUSH with a signed 32-bit
// immediate, POP, and the four arithmetic operations ADD, SUB, MUL and
// DIV. Execution semantics live in the interp package.
package vm
