// File: tarjan.go
// Role: The Tarjan SCC visitor: dfnumber/lowlink/onstack/scc/access/coaccess
//       bookkeeping, built against visit.Visitor.
// AI-HINT (file):
//   - onstack here is the algorithm's own "SCC stack" membership, tracked
//     independently of the DFS engine's internal stack bookkeeping, because
//     rule 4 below pops several entries at once at an SCC root, ahead of
//     when the engine itself would clear its own per-frame state.

package scc

import (
	"github.com/cznic/mathutil"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/visit"
)

// Result carries every value Tarjan's visitor computes, keyed by state id.
type Result struct {
	DFNumber map[fst.StateId]int
	LowLink  map[fst.StateId]int
	Access   map[fst.StateId]bool
	Coaccess map[fst.StateId]bool
	// SCC maps each state to its SCC id in [0, NumSCC). Populated only when
	// RecordSCC was requested; nil otherwise.
	SCC    map[fst.StateId]int
	NumSCC int
}

// visitor implements visit.Visitor, running Tarjan's algorithm.
type visitor struct {
	f          fst.MutableFst
	recordSCC  bool
	start      fst.StateId
	haveStart  bool
	nstates    int
	sccStack   []fst.StateId
	onstackMap map[fst.StateId]bool
	res        Result
}

// newVisitor constructs a Tarjan visitor. Pass recordSCC=true to populate
// Result.SCC with topologically-numbered component ids; Connect only needs
// Access/Coaccess and skips this bookkeeping.
func newVisitor(recordSCC bool) *visitor {
	v := &visitor{
		recordSCC: recordSCC,
		res: Result{
			DFNumber: map[fst.StateId]int{},
			LowLink:  map[fst.StateId]int{},
			Access:   map[fst.StateId]bool{},
			Coaccess: map[fst.StateId]bool{},
		},
	}
	if recordSCC {
		v.res.SCC = map[fst.StateId]int{}
	}

	return v
}

func (v *visitor) InitVisit(f fst.MutableFst) {
	v.f = f
	v.start, v.haveStart = f.Start()
}

func (v *visitor) InitState(s, root fst.StateId) bool {
	v.sccStack = append(v.sccStack, s)
	v.res.DFNumber[s] = v.nstates
	v.res.LowLink[s] = v.nstates
	v.nstates++
	v.onStackSet(s, true)
	v.res.Access[s] = v.haveStart && root == v.start

	return true
}

func (v *visitor) TreeArc(s fst.StateId, arc fst.Arc) bool { return true }

func (v *visitor) BackArc(s fst.StateId, arc fst.Arc) bool {
	t := arc.NextState
	v.res.LowLink[s] = mathutil.Min(v.res.LowLink[s], v.res.DFNumber[t])
	if v.res.Coaccess[t] {
		v.res.Coaccess[s] = true
	}

	return true
}

func (v *visitor) ForwardOrCrossArc(s fst.StateId, arc fst.Arc) bool {
	t := arc.NextState
	if v.res.DFNumber[t] < v.res.DFNumber[s] && v.onStack(t) {
		v.res.LowLink[s] = mathutil.Min(v.res.LowLink[s], v.res.DFNumber[t])
	}
	if v.res.Coaccess[t] {
		v.res.Coaccess[s] = true
	}

	return true
}

func (v *visitor) FinishState(s, parent fst.StateId, parentArc *fst.Arc) {
	if w, ok := v.f.Final(s); ok && w != nil {
		v.res.Coaccess[s] = true
	}

	if v.res.DFNumber[s] == v.res.LowLink[s] {
		var sccCoaccess bool
		var members []fst.StateId
		for {
			n := len(v.sccStack) - 1
			t := v.sccStack[n]
			v.sccStack = v.sccStack[:n]
			members = append(members, t)
			if v.res.Coaccess[t] {
				sccCoaccess = true
			}
			v.onStackSet(t, false)
			if t == s {
				break
			}
		}
		for _, t := range members {
			if v.recordSCC {
				v.res.SCC[t] = v.res.NumSCC
			}
			if sccCoaccess {
				v.res.Coaccess[t] = true
			}
		}
		v.res.NumSCC++
	}

	if parent != fst.NoStateID {
		if v.res.Coaccess[s] {
			v.res.Coaccess[parent] = true
		}
		v.res.LowLink[parent] = mathutil.Min(v.res.LowLink[parent], v.res.LowLink[s])
	}
}

func (v *visitor) FinishVisit() {
	if !v.recordSCC {
		return
	}
	for s, id := range v.res.SCC {
		v.res.SCC[s] = v.res.NumSCC - 1 - id
	}
}

// onStackSet tracks SCC-stack membership, separate from the DFS engine's
// own bookkeeping (see file header).
func (v *visitor) onStackSet(s fst.StateId, on bool) {
	if v.onstackMap == nil {
		v.onstackMap = map[fst.StateId]bool{}
	}
	v.onstackMap[s] = on
}

func (v *visitor) onStack(s fst.StateId) bool {
	return v.onstackMap[s]
}

// Run executes Tarjan's algorithm over f and returns the computed Result.
// Pass recordSCC=true to have Result.SCC populated with topologically
// numbered component ids (an SCC gets a lower id than every other SCC
// reachable from it, so an SCC with no outgoing inter-SCC arcs gets a higher
// id than the SCCs that lead into it); Connect does not need this and runs with recordSCC=false.
func Run(f fst.MutableFst, recordSCC bool) Result {
	v := newVisitor(recordSCC)
	visit.Run(f, v)

	return v.res
}

var _ visit.Visitor = (*visitor)(nil)
