// File: methods_states.go
// Role: Bulk state deletion (DelStates) and the id-compaction it performs.
// Determinism:
//   - Surviving states keep their relative order; new ids are assigned by
//     walking the old state vector in ascending order.
// AI-HINT (file):
//   - Arcs pointing at a deleted state are dropped, not left dangling
//     (spec.md §4.1: "Arcs whose next_state was deleted are dropped").
//   - If the start state is deleted, start becomes unset, matching
//     "The start state, if deleted, becomes none."

package fst

// DelStates bulk-deletes the states named by ids. Remaining states are
// compacted and every arc referring to a surviving state is rewritten to its
// new id; arcs whose NextState was deleted are dropped. If the start state
// is deleted, the FST's start becomes unset. Returns the old-id→new-id map
// for surviving states (deleted ids are absent from the map).
func (f *VectorFst) DelStates(ids map[StateId]struct{}) map[StateId]StateId {
	remap := make(map[StateId]StateId, len(f.states)-len(ids))
	newStates := make([]State, 0, len(f.states)-len(ids))

	for old := range f.states {
		oldID := StateId(old)
		if _, deleted := ids[oldID]; deleted {
			continue
		}
		remap[oldID] = StateId(len(newStates))
		newStates = append(newStates, f.states[old])
	}

	for i := range newStates {
		kept := newStates[i].Arcs[:0]
		for _, a := range newStates[i].Arcs {
			newNext, ok := remap[a.NextState]
			if !ok {
				continue // NextState was deleted: drop the arc.
			}
			a.NextState = newNext
			kept = append(kept, a)
		}
		newStates[i].Arcs = kept
	}

	if newStart, ok := remap[f.start]; ok {
		f.start = newStart
	} else {
		f.start = NoStateID
	}
	f.states = newStates

	return remap
}
