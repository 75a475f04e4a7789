package arcmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/arcmap"
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// rewriteFinalMapper rewrites a state's final_arc ilabel to 7, leaving
// everything else untouched (spec.md §8 scenario 4).
type rewriteFinalMapper struct {
	action arcmap.FinalAction
}

func (m *rewriteFinalMapper) ArcMap(a fst.Arc) (fst.Arc, error) { return a, nil }

func (m *rewriteFinalMapper) FinalArcMap(a fst.Arc) (fst.Arc, error) {
	a.ILabel = 7
	return a, nil
}

func (m *rewriteFinalMapper) FinalAction() arcmap.FinalAction { return m.action }

func (m *rewriteFinalMapper) Identity() semiring.Weight { return semiring.NewTropicalWeight(0) }

func TestArcMap_AllowSuperfinal_CreatesSuperfinalState(t *testing.T) {
	f := fst.NewVectorFst()
	s := f.AddState()
	require.NoError(t, f.SetStart(s))
	w := semiring.NewTropicalWeight(3)
	require.NoError(t, f.SetFinal(s, w))

	require.NoError(t, arcmap.ArcMap(f, &rewriteFinalMapper{action: arcmap.AllowSuperfinal}))

	assert.Equal(t, 2, f.NumStates())
	_, isFinal := f.Final(s)
	assert.False(t, isFinal, "final weight of s must be cleared")

	arcs := f.Arcs(s)
	require.Len(t, arcs, 1)
	assert.Equal(t, fst.Label(7), arcs[0].ILabel)
	assert.Equal(t, w, arcs[0].Weight)

	sf := arcs[0].NextState
	sfFinal, ok := f.Final(sf)
	require.True(t, ok)
	assert.True(t, sfFinal.IsOne())
}

func TestArcMap_AllowSuperfinal_EpsEpsStaysAFinalWeight(t *testing.T) {
	f := fst.NewVectorFst()
	s := f.AddState()
	require.NoError(t, f.SetStart(s))
	require.NoError(t, f.SetFinal(s, semiring.NewTropicalWeight(3)))

	// A mapper whose final_arc_map is the identity never needs a superfinal.
	noop := &passthroughMapper{action: arcmap.AllowSuperfinal}
	require.NoError(t, arcmap.ArcMap(f, noop))

	assert.Equal(t, 1, f.NumStates())
	w, ok := f.Final(s)
	require.True(t, ok)
	assert.Equal(t, semiring.NewTropicalWeight(3), w)
}

type passthroughMapper struct {
	action arcmap.FinalAction
}

func (m *passthroughMapper) ArcMap(a fst.Arc) (fst.Arc, error)      { return a, nil }
func (m *passthroughMapper) FinalArcMap(a fst.Arc) (fst.Arc, error) { return a, nil }
func (m *passthroughMapper) FinalAction() arcmap.FinalAction        { return m.action }
func (m *passthroughMapper) Identity() semiring.Weight              { return semiring.NewTropicalWeight(0) }

func TestArcMap_NoSuperfinal_ErrorsOnNonEpsilonResult(t *testing.T) {
	f := fst.NewVectorFst()
	s := f.AddState()
	require.NoError(t, f.SetStart(s))
	require.NoError(t, f.SetFinal(s, semiring.NewTropicalWeight(0)))

	err := arcmap.ArcMap(f, &rewriteFinalMapper{action: arcmap.NoSuperfinal})
	assert.ErrorIs(t, err, arcmap.ErrNonEpsilonSuperfinalArc)
}

func TestArcMap_InvertWeightMapper_InvolutionOnTropical(t *testing.T) {
	f := fst.NewVectorFst()
	s0, s1 := f.AddState(), f.AddState()
	require.NoError(t, f.SetStart(s0))
	require.NoError(t, f.AddArc(s0, fst.Arc{NextState: s1, Weight: semiring.NewTropicalWeight(3)}))
	require.NoError(t, f.SetFinal(s1, semiring.NewTropicalWeight(2)))

	one := semiring.NewTropicalWeight(0)
	require.NoError(t, arcmap.ArcMap(f, arcmap.NewInvertWeightMapper(one)))
	require.NoError(t, arcmap.ArcMap(f, arcmap.NewInvertWeightMapper(one)))

	assert.Equal(t, semiring.NewTropicalWeight(3), f.Arcs(s0)[0].Weight)
	w, ok := f.Final(s1)
	require.True(t, ok)
	assert.Equal(t, semiring.NewTropicalWeight(2), w)
}
