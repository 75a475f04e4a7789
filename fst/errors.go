// File: errors.go
// Role: Sentinel errors for the mutable FST contract (spec.md §7,
//       StructuralError kind).

package fst

import "errors"

var (
	// ErrInvalidStateID is returned when an operation references a state id
	// that does not exist in the FST.
	ErrInvalidStateID = errors.New("fst: invalid state id")

	// ErrNoStartState is returned by operations that require a start state
	// to be set when none is.
	ErrNoStartState = errors.New("fst: no start state")
)
