package nfa

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions that don't need per-occurrence context.
var (
	// ErrInvalidState indicates an invalid state ID was dereferenced.
	ErrInvalidState = errors.New("nfa: invalid state")

	// ErrInvalidConfig indicates invalid configuration was supplied to a
	// Graph or Builder, e.g. a nil option list passed to SetOptions.
	ErrInvalidConfig = errors.New("nfa: invalid configuration")
)

// UnknownOpcodeError is returned when the dispatcher sees an opcode outside
// the recognized PCRE opcode set (spec.md §7.1). It is fatal to the build
// that produced it.
type UnknownOpcodeError struct {
	Opcode byte
	Cursor int
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("nfa: unknown opcode %d at byte-code offset %d", e.Opcode, e.Cursor)
}

// MalformedGroupError is returned when a group's terminator opcode is
// neither OP_KET nor OP_KETRMAX (spec.md §7.2). Fatal to the build.
type MalformedGroupError struct {
	Opcode byte
	Cursor int
}

func (e *MalformedGroupError) Error() string {
	return fmt.Sprintf("nfa: malformed group terminator opcode %d at byte-code offset %d", e.Opcode, e.Cursor)
}

// BuildError wraps any other build-time failure with the state under
// construction when one is available.
type BuildError struct {
	Message string
	StateID StateID
}

func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("nfa: build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("nfa: build error: %s", e.Message)
}
