// File: union.go
// Role: Union(A, B) — builds a fresh FST whose accepted paths are exactly
//       those of A and B, prefixed by an epsilon arc to each original
//       start. Grounded on union.rs's add_fst + epsilon-arc + final-state
//       copying sequence.
// AI-HINT (file):
//   - fst.VectorFst.AddFst already copies final weights alongside states
//     (see methods_clone.go), so Union needs only the epsilon-arc step the
//     reference algorithm's separate set_new_final_states pass performs.

package ops

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// Union returns a new FST C such that paths(C) == paths(A) ∪ paths(B),
// modulo the epsilon prefix introduced at C's new start state. one is the
// multiplicative identity of A/B's semiring, used as the weight on both
// epsilon arcs (Go's interface-based Weight has no free-standing factory).
func Union(a, b fst.MutableFst, one semiring.Weight) *fst.VectorFst {
	out := fst.NewVectorFst()
	start := out.AddState()
	out.SetStart(start) //nolint:errcheck // start was just allocated.

	mapA := out.AddFst(a)
	mapB := out.AddFst(b)

	addEpsilonToStart(out, start, a, mapA, one)
	addEpsilonToStart(out, start, b, mapB, one)

	return out
}

func addEpsilonToStart(out *fst.VectorFst, start fst.StateId, src fst.MutableFst, mapping map[fst.StateId]fst.StateId, one semiring.Weight) {
	s, ok := src.Start()
	if !ok {
		return
	}
	out.AddArcUnchecked(start, fst.Arc{ILabel: fst.EPSLabel, OLabel: fst.EPSLabel, Weight: one, NextState: mapping[s]})
}
