// File: types.go
// Role: Label/StateId sentinels, the Arc and State records, and the
//       MutableFst contract every algorithm package (visit, scc, arcmap,
//       ops) is written against.
// AI-HINT (file):
//   - StateId is a signed int64 everywhere (the "Open question — signed vs
//     unsigned state ids" design note): NoStateID (-1) is always a valid
//     sentinel value regardless of how many states exist, which a uint
//     representation cannot offer without stealing a real id.
//   - EPSLabel (0) is reserved; a Label value of 0 always means "no symbol".

package fst

import "github.com/katalvlaran/wfst/semiring"

// Label identifies an input or output symbol on an arc.
type Label = uint64

// EPSLabel is the reserved label denoting the empty symbol (epsilon).
const EPSLabel Label = 0

// StateId indexes a state within an FST's state vector.
type StateId int64

// NoStateID is the sentinel meaning "no state" — used for an absent start
// state and for id-not-found returns internal to this package.
const NoStateID StateId = -1

// Arc is a single outgoing transition: an input label, an output label, a
// semiring weight, and the id of the state it leads to. Arcs are owned by
// their source State; their order within that State's arc list is
// significant and preserved by every in-place algorithm in this module.
type Arc struct {
	ILabel    Label
	OLabel    Label
	Weight    semiring.Weight
	NextState StateId
}

// String renders "(ilabel, olabel, weight) -> next" for debug output.
func (a Arc) String() string {
	w := "<nil>"
	if a.Weight != nil {
		w = a.Weight.String()
	}

	return "(" + uintString(a.ILabel) + ", " + uintString(a.OLabel) + ", " + w + ") -> " + intString(int64(a.NextState))
}

// State is a final-weight slot plus an ordered list of outgoing arcs.
// Final == nil means the state is non-final; Final may also hold a Weight
// equal to Zero(), which is semantically distinct from non-final and is
// preserved rather than normalized away (spec.md's final-weight-equal-to-zero
// open question).
type State struct {
	Final semiring.Weight
	Arcs  []Arc
}

// MutableFst is the contract every algorithm in this module is written
// against (spec.md §4.1). VectorFst is this package's sole implementation;
// the interface exists so visit/scc/arcmap/ops do not depend on its
// concrete representation.
type MutableFst interface {
	// AddState appends a non-final state with an empty arc list and returns
	// its id.
	AddState() StateId

	// Start returns the current start state and whether one is set.
	Start() (StateId, bool)

	// SetStart sets the start state. Returns ErrInvalidStateID if s is unknown.
	SetStart(s StateId) error

	// NumStates returns the number of states currently in the FST.
	NumStates() int

	// States returns every current state id in ascending order. The
	// returned slice is a snapshot: it is safe to mutate the FST while
	// iterating over it.
	States() []StateId

	// Final returns the final weight of s and whether s is final.
	Final(s StateId) (semiring.Weight, bool)

	// SetFinal sets the final weight of s. Returns ErrInvalidStateID if s is unknown.
	SetFinal(s StateId, w semiring.Weight) error

	// DeleteFinalWeight clears the final weight of s, making it non-final.
	// Returns ErrInvalidStateID if s is unknown.
	DeleteFinalWeight(s StateId) error

	// Arcs returns the outgoing arcs of s in insertion order. The returned
	// slice is a snapshot.
	Arcs(s StateId) []Arc

	// ArcsMut returns pointers into the live outgoing arcs of s, so callers
	// may mutate labels/weight in place without disturbing arc order.
	ArcsMut(s StateId) []*Arc

	// AddArc appends arc to s's arc list. Returns ErrInvalidStateID if s or
	// arc.NextState is unknown.
	AddArc(s StateId, arc Arc) error

	// AddArcUnchecked appends arc to s's arc list without validating s or
	// arc.NextState; the caller warrants both are valid.
	AddArcUnchecked(s StateId, arc Arc)

	// DelStates bulk-deletes the states named by ids. Remaining states are
	// compacted and every arc referring to a surviving state is rewritten to
	// its new id; arcs whose NextState was deleted are dropped. If the start
	// state is deleted, the FST's start becomes unset. Returns the
	// old-id→new-id map for surviving states.
	DelStates(ids map[StateId]struct{}) map[StateId]StateId

	// AddFst deep-copies every state of other into the receiver (without
	// setting a start) and returns the old→new state id mapping.
	AddFst(other MutableFst) map[StateId]StateId
}

func uintString(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}

	return string(buf[i:])
}

func intString(v int64) string {
	if v < 0 {
		return "-" + uintString(uint64(-v))
	}

	return uintString(uint64(v))
}
