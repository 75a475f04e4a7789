package fst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// buildLinear builds a 3-state chain 0->1->2 with tropical weights 1.0 and
// 2.0 on the two arcs, state 2 final with weight 0.0 (spec.md §8 scenario 1).
func buildLinear() *fst.VectorFst {
	f := fst.NewVectorFst()
	s0 := f.AddState()
	s1 := f.AddState()
	s2 := f.AddState()
	f.SetStart(s0)
	f.AddArc(s0, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.NewTropicalWeight(1.0), NextState: s1})
	f.AddArc(s1, fst.Arc{ILabel: 2, OLabel: 2, Weight: semiring.NewTropicalWeight(2.0), NextState: s2})
	f.SetFinal(s2, semiring.NewTropicalWeight(0.0))

	return f
}

func TestVectorFst_EmptyStartUnset(t *testing.T) {
	f := fst.NewVectorFst()
	_, ok := f.Start()
	assert.False(t, ok)
	assert.Equal(t, 0, f.NumStates())
}

func TestVectorFst_AddStateAndStart(t *testing.T) {
	f := fst.NewVectorFst()
	s0 := f.AddState()
	require.NoError(t, f.SetStart(s0))
	got, ok := f.Start()
	assert.True(t, ok)
	assert.Equal(t, s0, got)

	assert.ErrorIs(t, f.SetStart(fst.StateId(42)), fst.ErrInvalidStateID)
}

func TestVectorFst_FinalLifecycle(t *testing.T) {
	f := fst.NewVectorFst()
	s0 := f.AddState()

	_, ok := f.Final(s0)
	assert.False(t, ok)

	require.NoError(t, f.SetFinal(s0, semiring.NewTropicalWeight(0)))
	w, ok := f.Final(s0)
	require.True(t, ok)
	assert.Equal(t, semiring.NewTropicalWeight(0), w)

	require.NoError(t, f.DeleteFinalWeight(s0))
	_, ok = f.Final(s0)
	assert.False(t, ok)

	assert.ErrorIs(t, f.SetFinal(fst.StateId(99), semiring.NewTropicalWeight(0)), fst.ErrInvalidStateID)
}

func TestVectorFst_ArcsOrderPreserved(t *testing.T) {
	f := buildLinear()
	require.NoError(t, f.AddArc(0, fst.Arc{ILabel: 5, OLabel: 5, Weight: semiring.NewTropicalWeight(0), NextState: 2}))
	arcs := f.Arcs(0)
	require.Len(t, arcs, 2)
	assert.Equal(t, fst.Label(1), arcs[0].ILabel)
	assert.Equal(t, fst.Label(5), arcs[1].ILabel)

	assert.ErrorIs(t, f.AddArc(0, fst.Arc{NextState: fst.StateId(77)}), fst.ErrInvalidStateID)
}

func TestVectorFst_ArcsMutIsLive(t *testing.T) {
	f := buildLinear()
	mut := f.ArcsMut(0)
	require.Len(t, mut, 1)
	mut[0].ILabel = 9

	assert.Equal(t, fst.Label(9), f.Arcs(0)[0].ILabel)
}

func TestVectorFst_DelStates_DropsArcsToDeletedAndRewrites(t *testing.T) {
	// 0 -> 1 -> 2(final), plus 1 -> 3; state 3 is deleted.
	f := fst.NewVectorFst()
	s0 := f.AddState()
	s1 := f.AddState()
	s2 := f.AddState()
	s3 := f.AddState()
	f.SetStart(s0)
	f.AddArc(s0, fst.Arc{NextState: s1, Weight: semiring.NewTropicalWeight(0)})
	f.AddArc(s1, fst.Arc{NextState: s2, Weight: semiring.NewTropicalWeight(0)})
	f.AddArc(s1, fst.Arc{NextState: s3, Weight: semiring.NewTropicalWeight(0)})
	f.SetFinal(s2, semiring.NewTropicalWeight(0))

	remap := f.DelStates(map[fst.StateId]struct{}{s3: {}})

	assert.Equal(t, 3, f.NumStates())
	newStart, ok := f.Start()
	require.True(t, ok)
	assert.Equal(t, remap[s0], newStart)

	arcs := f.Arcs(remap[s1])
	require.Len(t, arcs, 1, "arc to the deleted state 3 must be dropped")
	assert.Equal(t, remap[s2], arcs[0].NextState)
}

func TestVectorFst_DelStates_ClearsStartWhenDeleted(t *testing.T) {
	f := fst.NewVectorFst()
	s0 := f.AddState()
	f.SetStart(s0)

	f.DelStates(map[fst.StateId]struct{}{s0: {}})

	_, ok := f.Start()
	assert.False(t, ok)
	assert.Equal(t, 0, f.NumStates())
}

func TestVectorFst_AddFst_DeepCopiesIntoReceiver(t *testing.T) {
	src := buildLinear()
	dst := fst.NewVectorFst()
	pre := dst.AddState() // receiver already has unrelated state 0

	remap := dst.AddFst(src)

	assert.Equal(t, 1+src.NumStates(), dst.NumStates())
	// dst's own start is untouched by AddFst.
	_, ok := dst.Start()
	assert.False(t, ok)

	srcStart, _ := src.Start()
	newStart := remap[srcStart]
	require.NoError(t, dst.SetStart(newStart))

	arcs := dst.Arcs(newStart)
	require.Len(t, arcs, 1)
	assert.Equal(t, semiring.NewTropicalWeight(1.0), arcs[0].Weight)

	// Mutating the copy must not affect the source.
	dst.ArcsMut(newStart)[0].ILabel = 123
	assert.Equal(t, fst.Label(1), src.Arcs(0)[0].ILabel)
	_ = pre
}

func TestVectorFst_Copy_IsIndependentAndPreservesStart(t *testing.T) {
	src := buildLinear()
	clone := src.Copy()

	assert.Equal(t, src.NumStates(), clone.NumStates())
	srcStart, _ := src.Start()
	cloneStart, ok := clone.Start()
	require.True(t, ok)

	assert.Equal(t, src.Arcs(srcStart), clone.Arcs(cloneStart))

	clone.AddArc(cloneStart, fst.Arc{NextState: cloneStart, Weight: semiring.NewTropicalWeight(5)})
	assert.Len(t, src.Arcs(srcStart), 1, "mutating the clone must not affect the source")
}
