package scc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/scc"
	"github.com/katalvlaran/wfst/semiring"
)

// buildLinearWithOrphan is spec.md §8 scenario 2: a linear decode FST plus
// one extra state with no incoming arcs.
func buildLinearWithOrphan() (*fst.VectorFst, fst.StateId) {
	f := fst.NewVectorFst()
	s0, s1, s2, s3 := f.AddState(), f.AddState(), f.AddState(), f.AddState()
	f.SetStart(s0)
	f.AddArc(s0, fst.Arc{ILabel: 1, OLabel: 1, Weight: semiring.NewTropicalWeight(1), NextState: s1})
	f.AddArc(s1, fst.Arc{ILabel: 2, OLabel: 2, Weight: semiring.NewTropicalWeight(1), NextState: s2})
	f.AddArc(s2, fst.Arc{ILabel: 3, OLabel: 3, Weight: semiring.NewTropicalWeight(1), NextState: s3})
	f.SetFinal(s3, semiring.NewTropicalWeight(1))
	s4 := f.AddState()

	return f, s4
}

func TestRun_LinearFst_AllAccessibleAndCoaccessible(t *testing.T) {
	f, orphan := buildLinearWithOrphan()
	res := scc.Run(f, false)

	for _, s := range []fst.StateId{0, 1, 2, 3} {
		assert.Truef(t, res.Access[s], "state %d should be accessible", s)
		assert.Truef(t, res.Coaccess[s], "state %d should be coaccessible", s)
	}
	assert.False(t, res.Access[orphan])
	assert.False(t, res.Coaccess[orphan])
}

func TestConnect_DropsOrphan(t *testing.T) {
	f, orphan := buildLinearWithOrphan()
	before := map[fst.StateId][]fst.Arc{}
	for _, s := range f.States() {
		before[s] = f.Arcs(s)
	}

	remap := scc.Connect(f)

	assert.Equal(t, 4, f.NumStates())
	_, wasKept := remap[orphan]
	assert.False(t, wasKept, "orphan must not survive Connect")

	start, ok := f.Start()
	require.True(t, ok)
	assert.Equal(t, remap[0], start)
	arcs := f.Arcs(start)
	require.Len(t, arcs, 1)
	assert.Equal(t, fst.Label(1), arcs[0].ILabel)
}

func TestConnect_Idempotent(t *testing.T) {
	f, _ := buildLinearWithOrphan()
	scc.Connect(f)
	n1 := f.NumStates()

	scc.Connect(f)
	assert.Equal(t, n1, f.NumStates())
}

func TestRun_SCCIds_AreTopologicallyNumbered(t *testing.T) {
	// A 2-cycle (s0<->s1) feeding into a lone final sink state s2.
	f := fst.NewVectorFst()
	s0, s1, s2 := f.AddState(), f.AddState(), f.AddState()
	f.SetStart(s0)
	f.AddArc(s0, fst.Arc{NextState: s1, Weight: semiring.NewTropicalWeight(0)})
	f.AddArc(s1, fst.Arc{NextState: s0, Weight: semiring.NewTropicalWeight(0)})
	f.AddArc(s1, fst.Arc{NextState: s2, Weight: semiring.NewTropicalWeight(0)})
	f.SetFinal(s2, semiring.NewTropicalWeight(0))

	res := scc.Run(f, true)
	require.Equal(t, 2, res.NumSCC)
	assert.Equal(t, res.SCC[s0], res.SCC[s1], "s0 and s1 are in the same SCC")
	assert.NotEqual(t, res.SCC[s0], res.SCC[s2])
	// {s0,s1} reaches s2, so in topological numbering s2 gets the higher id.
	assert.Equal(t, 1, res.SCC[s2])
}
