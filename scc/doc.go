// Package scc implements Tarjan's strongly-connected-components algorithm as
// a visit.Visitor, and the Connect algorithm built on top of it.
//
// Grounded on the teacher's dfs package for the visitor-driven-by-an-engine
// shape (here: visit.Run instead of recursion), and on the Tarjan SCC
// visitor and connect algorithm from the Rust original this module's
// semantics were distilled from. github.com/cznic/mathutil supplies the
// integer Min used for lowlink propagation, the same library the legacy
// cznic finite-state-machine package in this retrieval pack reaches for when
// folding integer bounds during automaton construction.
package scc
