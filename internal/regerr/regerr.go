// Package regerr declares the sentinel error kinds the core can raise.
//
// Every failure path in internal/driver, internal/builder and
// internal/sequence that falls under one of these kinds wraps it with
// fmt.Errorf's %w so callers can discriminate with errors.Is while still
// getting offending-state/char/index context in the message. Compiling an
// AST node of unknown type fails with a plain error outside these kinds.
package regerr

import "errors"

var (
	// ErrUnknownState means the driver looked up a state absent from the
	// transition table. This indicates a malformed table, not bad user input.
	ErrUnknownState = errors.New("regenum: unknown state")

	// ErrNoTransition means the driver saw a character with no matching
	// branch for the current state. This indicates a table bug.
	ErrNoTransition = errors.New("regenum: no matching transition")

	// ErrSyntaxError means the driver entered the ERR trap state on user
	// input.
	ErrSyntaxError = errors.New("regenum: syntax error")

	// ErrUnterminatedParse means the driver reached EOF input exhaustion
	// in a state other than EOF.
	ErrUnterminatedParse = errors.New("regenum: unterminated parse")

	// ErrUnclosedScope means the builder reached EOF with a non-empty
	// scope stack: an opening '(' with no matching ')'.
	ErrUnclosedScope = errors.New("regenum: unclosed scope")

	// ErrScopeUnderflow means a ')' was seen with no matching '('.
	ErrScopeUnderflow = errors.New("regenum: scope underflow")

	// ErrOutOfRange means Generator.At was called with an index outside
	// [0, Len()).
	ErrOutOfRange = errors.New("regenum: index out of range")

	// ErrCardinalityOverflow means a cardinality or an emitted artifact
	// exceeded the implementation's numeric domain for the operation
	// requested (e.g. inline code generation's word-count ceiling).
	ErrCardinalityOverflow = errors.New("regenum: cardinality overflow")
)
