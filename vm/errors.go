package vm

import "errors"

// Fatal VM errors. These abort execution entirely, as distinct from
// language-level errors, which are reified as *object.Error values that
// flow through the stack like any other object.
var (
	// ErrStackOverflow is returned when a push would exceed StackSize.
	ErrStackOverflow = errors.New("stack overflow")

	// ErrEmptyStack is returned when a pop is attempted against an empty stack.
	ErrEmptyStack = errors.New("stack is empty")

	// ErrOpcodeNotFound is returned when the fetch-decode loop encounters an
	// opcode byte with no matching case in Run.
	ErrOpcodeNotFound = errors.New("opcode not found")

	// ErrUnsupportedType is returned when an operator is applied to operand
	// types it has no defined behavior for (e.g. negating a string).
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrUnknownOperator is returned when an opcode and operand-type pairing
	// has no matching arithmetic or comparison rule.
	ErrUnknownOperator = errors.New("unknown operator")
)
