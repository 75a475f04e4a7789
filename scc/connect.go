// File: connect.go
// Role: Connect — trims every state that is not both accessible and
//       coaccessible, grounded on connect.rs's use of the SCC visitor's
//       access/coaccess results.

package scc

import "github.com/katalvlaran/wfst/fst"

// Connect removes every state of f not reachable from the start state
// (access) or not able to reach some final state (coaccess). The resulting
// FST has every state on some start→final path. Returns the old→new id map
// DelStates produced (see fst.MutableFst.DelStates).
func Connect(f fst.MutableFst) map[fst.StateId]fst.StateId {
	res := Run(f, false)

	toDelete := make(map[fst.StateId]struct{})
	for _, s := range f.States() {
		if !res.Access[s] || !res.Coaccess[s] {
			toDelete[s] = struct{}{}
		}
	}

	return f.DelStates(toDelete)
}
