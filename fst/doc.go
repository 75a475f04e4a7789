// Package fst defines the mutable weighted finite-state transducer data
// model: Label and StateId identifiers, the Arc and State records, and
// VectorFst, the vector-backed MutableFst implementation every algorithm in
// this module operates on.
//
// A VectorFst owns its states, which own their arcs; weights are value
// types copied across arcs, never shared. State identifiers are stable
// under AddState and AddArc, and are only invalidated by DelStates, which
// returns the old→new remapping the caller needs to translate any ids it
// held onto.
//
// This package has no I/O surface: text/binary encoding, symbol tables, and
// properties-flag computation are explicitly out of scope (spec.md §6) and
// live in separate collaborators this package does not depend on.
package fst
