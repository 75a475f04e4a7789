// File: engine.go
// Role: The iterative DFS engine: Run(f, v, opts...).
// AI-HINT (file):
//   - Explicit work stack of frames, each holding (state, parent, parentArc,
//     arc snapshot, arc cursor) instead of a recursive call — the
//     back-reference a recursive version would carry on the call stack is
//     instead the frame's parent/parentArc fields (source design note:
//     "encode it by carrying parent_state_id on each stack frame").
//   - Arc iteration order follows Arcs(s) (insertion order); this is part
//     of the observable contract SCC numbering depends on.

package visit

import "github.com/katalvlaran/wfst/fst"

// frame is one entry of the explicit DFS work stack.
type frame struct {
	state     fst.StateId
	parent    fst.StateId // fst.NoStateID for a DFS root
	parentArc *fst.Arc    // the tree arc that led here; nil for a root
	arcs      []fst.Arc   // snapshot taken at discovery time
	next      int         // index of the next arc to process
}

// Run drives a depth-first traversal of f with v. The engine itself never
// fails; a visitor aborts a subtree by returning false from a callback.
func Run(f fst.MutableFst, v Visitor, opts ...Option) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	v.InitVisit(f)

	discovered := make(map[fst.StateId]bool, f.NumStates())
	onStack := make(map[fst.StateId]bool, f.NumStates())

	roots := make([]fst.StateId, 0, f.NumStates())
	if start, ok := f.Start(); ok {
		roots = append(roots, start)
	}
	if !o.AccessOnly {
		roots = append(roots, f.States()...)
	}

	for _, root := range roots {
		if discovered[root] {
			continue
		}
		runTree(f, v, root, discovered, onStack)
	}

	v.FinishVisit()
}

// runTree runs one DFS rooted at root, pushing/popping explicit frames.
func runTree(f fst.MutableFst, v Visitor, root fst.StateId, discovered, onStack map[fst.StateId]bool) {
	stack := []*frame{newFrame(f, v, root, root, fst.NoStateID, nil, discovered, onStack)}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.next >= len(top.arcs) {
			onStack[top.state] = false
			stack = stack[:len(stack)-1]
			v.FinishState(top.state, top.parent, top.parentArc)
			continue
		}

		arc := top.arcs[top.next]
		top.next++
		t := arc.NextState

		switch {
		case !discovered[t]:
			if !v.TreeArc(top.state, arc) {
				continue // declined descent; keep processing s's remaining arcs.
			}
			stack = append(stack, newFrame(f, v, t, root, top.state, &arc, discovered, onStack))
		case onStack[t]:
			if !v.BackArc(top.state, arc) {
				top.next = len(top.arcs) // abort remaining arcs of this state.
			}
		default:
			if !v.ForwardOrCrossArc(top.state, arc) {
				top.next = len(top.arcs)
			}
		}
	}
}

// newFrame marks s discovered, notifies the visitor, and snapshots its arcs
// (unless InitState declined exploration).
func newFrame(f fst.MutableFst, v Visitor, s, root, parent fst.StateId, parentArc *fst.Arc, discovered, onStack map[fst.StateId]bool) *frame {
	discovered[s] = true
	onStack[s] = true

	fr := &frame{state: s, parent: parent, parentArc: parentArc}
	if v.InitState(s, root) {
		fr.arcs = f.Arcs(s)
	}

	return fr
}
