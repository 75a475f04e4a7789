// Package visit drives a classical depth-first traversal of an fst.MutableFst
// against a caller-supplied Visitor, classifying every arc as a tree, back,
// or forward/cross edge.
//
// The engine is iterative (an explicit work stack), not recursive: this
// avoids call-stack depth proportional to FST depth, matching the
// re-architecture called for by the source this package's algorithm is
// drawn from. Grounded on dfs.DFS's walker/options shape (one struct driving
// a traversal over a mutable-but-not-mutated-during-traversal structure) and
// on couchbase/vellum's FSTIterator explicit-stack pattern.
package visit
