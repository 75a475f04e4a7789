// File: vector_fst.go
// Role: VectorFst struct, constructor, and start-state/state-count/iteration
//       primitives.
// Determinism:
//   - States() yields ids in ascending order (spec.md §5: "State iteration
//     yields ids in ascending order").
// AI-HINT (file):
//   - start == NoStateID is the empty-FST marker (spec.md §3).

package fst

// VectorFst is a simple, concrete, mutable FST whose states and their arcs
// are stored in plain slices. It exclusively owns its states, which
// exclusively own their arcs; no cross-FST references exist.
type VectorFst struct {
	states []State
	start  StateId
}

// NewVectorFst returns an empty VectorFst: no states, no start state.
func NewVectorFst() *VectorFst {
	return &VectorFst{start: NoStateID}
}

// Start returns the current start state and whether one is set.
func (f *VectorFst) Start() (StateId, bool) {
	if f.start == NoStateID {
		return NoStateID, false
	}

	return f.start, true
}

// SetStart sets the start state. Returns ErrInvalidStateID if s is unknown.
func (f *VectorFst) SetStart(s StateId) error {
	if !f.hasState(s) {
		return ErrInvalidStateID
	}
	f.start = s

	return nil
}

// NumStates returns the number of states currently in the FST.
func (f *VectorFst) NumStates() int {
	return len(f.states)
}

// States returns every current state id in ascending order. The returned
// slice is a fresh snapshot safe to hold across mutations.
func (f *VectorFst) States() []StateId {
	out := make([]StateId, len(f.states))
	for i := range f.states {
		out[i] = StateId(i)
	}

	return out
}

// AddState appends a non-final state with an empty arc list and returns its id.
func (f *VectorFst) AddState() StateId {
	f.states = append(f.states, State{})

	return StateId(len(f.states) - 1)
}

func (f *VectorFst) hasState(s StateId) bool {
	return s >= 0 && int(s) < len(f.states)
}
