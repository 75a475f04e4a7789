// File: relabel.go
// Role: RelabelPairs — destructive input/output label relabeling using
//       (old, new) pairs; omitted labels are identity-mapped.

package ops

import (
	"fmt"

	"github.com/katalvlaran/wfst/fst"
)

// LabelPair is an (old, new) relabeling entry for either the input or output
// label alphabet.
type LabelPair struct {
	Old, New fst.Label
}

// RelabelPairs destructively relabels f's arc input and/or output labels
// using ipairs/opairs, built as two (old→new) maps. A label repeated as the
// "old" side of two pairs in the same list is an error. Arcs whose label is
// not named by a pair are left unchanged.
func RelabelPairs(f fst.MutableFst, ipairs, opairs []LabelPair) error {
	ilabels, err := pairsToMap(ipairs)
	if err != nil {
		return fmt.Errorf("ops: RelabelPairs: input pairs: %w", err)
	}
	olabels, err := pairsToMap(opairs)
	if err != nil {
		return fmt.Errorf("ops: RelabelPairs: output pairs: %w", err)
	}

	for _, s := range f.States() {
		for _, a := range f.ArcsMut(s) {
			if v, ok := ilabels[a.ILabel]; ok {
				a.ILabel = v
			}
			if v, ok := olabels[a.OLabel]; ok {
				a.OLabel = v
			}
		}
	}

	return nil
}

func pairsToMap(pairs []LabelPair) (map[fst.Label]fst.Label, error) {
	out := make(map[fst.Label]fst.Label, len(pairs))
	for _, p := range pairs {
		if _, dup := out[p.Old]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateRelabelKey, p.Old)
		}
		out[p.Old] = p.New
	}

	return out, nil
}
