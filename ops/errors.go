// File: errors.go
// Role: Sentinel errors for the ops package (relabel/union).

package ops

import "errors"

// ErrDuplicateRelabelKey is returned by RelabelPairs when the same old label
// appears twice among either pair list.
var ErrDuplicateRelabelKey = errors.New("ops: state present twice in relabeling pairs")
