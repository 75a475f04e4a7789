// File: methods_arcs.go
// Role: Arc lifecycle & iteration: Arcs/ArcsMut/AddArc/AddArcUnchecked.
// Determinism:
//   - Arcs(s) returns arcs in insertion order; every in-place algorithm in
//     this module preserves that order (spec.md §5 — load-bearing for SCC
//     numbering and test isomorphism).

package fst

// Arcs returns the outgoing arcs of s in insertion order. The returned
// slice is a snapshot copy; mutating it does not affect the FST.
func (f *VectorFst) Arcs(s StateId) []Arc {
	if !f.hasState(s) {
		return nil
	}
	arcs := f.states[s].Arcs
	out := make([]Arc, len(arcs))
	copy(out, arcs)

	return out
}

// ArcsMut returns pointers into the live outgoing arcs of s, letting
// callers mutate labels/weight in place (used by the arc-map driver) without
// disturbing arc order or identity.
func (f *VectorFst) ArcsMut(s StateId) []*Arc {
	if !f.hasState(s) {
		return nil
	}
	arcs := f.states[s].Arcs
	out := make([]*Arc, len(arcs))
	for i := range arcs {
		out[i] = &arcs[i]
	}

	return out
}

// AddArc appends arc to s's arc list. Returns ErrInvalidStateID if s or
// arc.NextState is unknown.
func (f *VectorFst) AddArc(s StateId, arc Arc) error {
	if !f.hasState(s) || !f.hasState(arc.NextState) {
		return ErrInvalidStateID
	}
	f.states[s].Arcs = append(f.states[s].Arcs, arc)

	return nil
}

// AddArcUnchecked appends arc to s's arc list without validating s or
// arc.NextState; the caller warrants both are valid. Used by the arc-map
// driver when it has already established both ids exist.
func (f *VectorFst) AddArcUnchecked(s StateId, arc Arc) {
	f.states[s].Arcs = append(f.states[s].Arcs, arc)
}
