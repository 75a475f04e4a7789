// File: methods_clone.go
// Role: Cross-FST copying: AddFst (the mutable-FST contract's deep-copy-in
//       primitive) and Copy (a supplemented whole-FST clone convenience).
// AI-HINT (file):
//   - AddFst never copies other's start state into f's start; callers that
//     need that (e.g. ops.Union) wire it explicitly through the returned
//     id map (spec.md §4.1, grounded on rustfst's add_fst/union.rs usage).

package fst

// AddFst deep-copies every state of other into f: new state ids are
// allocated, arcs are copied with NextState rewritten through the mapping,
// and final weights are copied as-is. Returns the old (in other) → new
// (in f) id map. f's own existing states and start are left untouched.
func (f *VectorFst) AddFst(other MutableFst) map[StateId]StateId {
	oldIDs := other.States()
	remap := make(map[StateId]StateId, len(oldIDs))
	for _, old := range oldIDs {
		remap[old] = f.AddState()
	}

	for _, old := range oldIDs {
		newID := remap[old]
		if w, ok := other.Final(old); ok {
			f.SetFinal(newID, w) //nolint:errcheck // newID was just allocated above.
		}
		for _, a := range other.Arcs(old) {
			next, ok := remap[a.NextState]
			if !ok {
				continue // defensive: other reported an arc to an id it never listed.
			}
			f.AddArcUnchecked(newID, Arc{
				ILabel:    a.ILabel,
				OLabel:    a.OLabel,
				Weight:    a.Weight,
				NextState: next,
			})
		}
	}

	return remap
}

// Copy returns a deep clone of f: independent states, arcs, and start id.
// Mutating the clone never affects f and vice versa.
func (f *VectorFst) Copy() *VectorFst {
	clone := NewVectorFst()
	remap := clone.AddFst(f)
	if start, ok := f.Start(); ok {
		clone.SetStart(remap[start]) //nolint:errcheck // remap[start] was just added.
	}

	return clone
}

var _ MutableFst = (*VectorFst)(nil)
