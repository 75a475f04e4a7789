// File: visitor.go
// Role: The Visitor contract and the Options functional-options surface
//       (grounded on dfs.DFSOptions/dfs.Option).

package visit

import "github.com/katalvlaran/wfst/fst"

// Visitor observes a depth-first traversal of an FST. BackArc and
// ForwardOrCrossArc may return false to abort exploration of the current
// state's remaining outgoing arcs; the engine then proceeds as though that
// state's arcs were exhausted (finish_state still fires). A false from
// InitState or TreeArc has the narrower effect documented on each.
type Visitor interface {
	// InitVisit is called once, before any state is discovered.
	InitVisit(f fst.MutableFst)

	// InitState is called when s is first discovered; root is the start
	// state of the DFS tree s belongs to. Returning false skips exploring
	// s's outgoing arcs entirely (s is finished with none visited).
	InitState(s, root fst.StateId) bool

	// TreeArc is called when arc leads from s to a state not yet
	// discovered. Returning false declines to descend into that child.
	TreeArc(s fst.StateId, arc fst.Arc) bool

	// BackArc is called when arc leads to an ancestor still on the current
	// DFS stack.
	BackArc(s fst.StateId, arc fst.Arc) bool

	// ForwardOrCrossArc is called when arc leads to a state already
	// finished, or in a different subtree.
	ForwardOrCrossArc(s fst.StateId, arc fst.Arc) bool

	// FinishState is called when s has no more unexplored outgoing arcs.
	// parent is the state s was discovered from (fst.NoStateID for a DFS
	// root); parentArc is the tree arc that led to s (nil for a root).
	FinishState(s, parent fst.StateId, parentArc *fst.Arc)

	// FinishVisit is called once, after every reachable root has been
	// fully explored.
	FinishVisit()
}

// Option configures a traversal. Use with Run(f, v, opts...).
type Option func(*Options)

// Options holds configurable parameters for Run.
type Options struct {
	// AccessOnly restricts the traversal to the subtree rooted at the
	// FST's start state. When false, every remaining undiscovered state is
	// additionally visited as a new DFS root, in ascending id order.
	AccessOnly bool
}

// DefaultOptions returns the default traversal options: AccessOnly = false
// (visit every state, not just those reachable from the start state).
func DefaultOptions() Options {
	return Options{AccessOnly: false}
}

// WithAccessOnly returns an Option that restricts Run to the subtree
// reachable from the FST's start state.
func WithAccessOnly() Option {
	return func(o *Options) {
		o.AccessOnly = true
	}
}
