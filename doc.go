// Package wfst is a weighted finite-state transducer core: a mutable FST
// data model, a family of semirings, a depth-first visitor engine, and the
// algorithms built on it (strongly-connected components, connect, arc
// mapping, relabeling, union).
//
// Subpackages:
//
//	semiring/ — Weight capability interfaces plus Tropical, Log, Boolean,
//	            Product, and String(Restrict|Left|Right) concrete semirings.
//	fst/      — VectorFst, the sole MutableFst implementation algorithms in
//	            this module are written against.
//	visit/    — an iterative depth-first visitor engine classifying every
//	            arc as tree/back/forward-or-cross.
//	scc/      — Tarjan's algorithm on top of visit, and Connect.
//	arcmap/   — the arc-mapping protocol (superfinal-state machinery
//	            included) and InvertWeightMapper.
//	ops/      — RelabelPairs and Union.
//
// There is no I/O surface here — no text or binary FST format, no symbol
// tables, no CLI. Those are collaborators this core's types are shaped to
// support, not concerns this module implements.
package wfst
