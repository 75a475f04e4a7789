// File: errors.go
// Role: Sentinel errors for the arc-mapping driver.

package arcmap

import "errors"

// ErrNonEpsilonSuperfinalArc is returned by ArcMap when a NoSuperfinal
// mapper's final_arc_map produces non-epsilon labels, which that mode
// cannot represent.
var ErrNonEpsilonSuperfinalArc = errors.New("arcmap: non-zero arc labels for superfinal arc")
