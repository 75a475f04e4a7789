// File: mapper.go
// Role: The Mapper contract and the FinalAction enum.

package arcmap

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// FinalAction declares what a Mapper does to final weights: whether it
// ever needs a superfinal state to represent its output.
type FinalAction int

const (
	// NoSuperfinal means the mapper always produces a final weight whose
	// arc_map result keeps epsilon labels; ArcMap errors if that fails to
	// hold at runtime.
	NoSuperfinal FinalAction = iota

	// AllowSuperfinal means the mapper may or may not need a superfinal
	// state: ArcMap creates one lazily, only when a transformed final arc
	// carries non-epsilon labels.
	AllowSuperfinal

	// RequireSuperfinal means the mapper's output is never a pure final
	// weight; ArcMap always routes it through a single pre-created
	// superfinal state.
	RequireSuperfinal
)

// String renders the FinalAction name for diagnostics.
func (a FinalAction) String() string {
	switch a {
	case NoSuperfinal:
		return "NoSuperfinal"
	case AllowSuperfinal:
		return "AllowSuperfinal"
	case RequireSuperfinal:
		return "RequireSuperfinal"
	default:
		return "FinalAction(unknown)"
	}
}

// Mapper transforms arcs and final weights in place as ArcMap walks an FST.
type Mapper interface {
	// ArcMap transforms a single outgoing arc, returning the replacement.
	ArcMap(arc fst.Arc) (fst.Arc, error)

	// FinalArcMap transforms a synthetic (EPSLabel, EPSLabel, w) triple
	// standing in for a state's final weight.
	FinalArcMap(finalArc fst.Arc) (fst.Arc, error)

	// FinalAction declares this mapper's superfinal requirement.
	FinalAction() FinalAction

	// Identity returns the multiplicative identity (One()) of the semiring
	// this mapper operates over. ArcMap needs a concrete weight to seed a
	// superfinal state's final weight; the reference algorithm obtains this
	// from a statically-known weight type parameter, which a Go interface
	// has no equivalent of, so mappers supply it directly.
	Identity() semiring.Weight
}
