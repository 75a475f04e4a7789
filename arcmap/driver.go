// File: driver.go
// Role: ArcMap, the driver that walks an FST applying a Mapper to every arc
//       and final weight, creating a superfinal state as the mapper's
//       FinalAction demands.
// AI-HINT (file):
//   - The state list is snapshotted before any mutation (including the
//     RequireSuperfinal state's own creation) so a lazily- or eagerly-
//     created superfinal state is never itself re-visited and re-mapped.

package arcmap

import (
	"fmt"

	"github.com/katalvlaran/wfst/fst"
)

// ArcMap applies m to every arc and final weight of f. Returns
// ErrNonEpsilonSuperfinalArc if a NoSuperfinal mapper needs a superfinal
// arc it cannot create, or any error m itself returns.
func ArcMap(f fst.MutableFst, m Mapper) error {
	if _, ok := f.Start(); !ok {
		return nil
	}

	action := m.FinalAction()
	superfinal := fst.NoStateID
	states := f.States() // snapshot: the superfinal state must never be re-visited.

	if action == RequireSuperfinal {
		superfinal = f.AddState()
		if err := f.SetFinal(superfinal, m.Identity()); err != nil {
			return fmt.Errorf("arcmap: ArcMap: seed superfinal state %d: %w", superfinal, err)
		}
	}

	for _, s := range states {
		for _, a := range f.ArcsMut(s) {
			mapped, err := m.ArcMap(*a)
			if err != nil {
				return fmt.Errorf("arcmap: ArcMap: state %d arc: %w", s, err)
			}
			*a = mapped
		}

		w, isFinal := f.Final(s)
		if !isFinal {
			continue
		}

		finalArc, err := m.FinalArcMap(fst.Arc{ILabel: fst.EPSLabel, OLabel: fst.EPSLabel, Weight: w, NextState: fst.NoStateID})
		if err != nil {
			return fmt.Errorf("arcmap: ArcMap: state %d final arc: %w", s, err)
		}
		isEpsEps := finalArc.ILabel == fst.EPSLabel && finalArc.OLabel == fst.EPSLabel

		switch action {
		case NoSuperfinal:
			if !isEpsEps {
				return fmt.Errorf("arcmap: ArcMap: state %d: %w", s, ErrNonEpsilonSuperfinalArc)
			}
			if err := f.SetFinal(s, finalArc.Weight); err != nil {
				return fmt.Errorf("arcmap: ArcMap: state %d: %w", s, err)
			}

		case AllowSuperfinal:
			if s == superfinal {
				continue
			}
			if isEpsEps {
				if err := f.SetFinal(s, finalArc.Weight); err != nil {
					return fmt.Errorf("arcmap: ArcMap: state %d: %w", s, err)
				}
				continue
			}
			if superfinal == fst.NoStateID {
				superfinal = f.AddState()
				if err := f.SetFinal(superfinal, m.Identity()); err != nil {
					return fmt.Errorf("arcmap: ArcMap: lazily seed superfinal state %d: %w", superfinal, err)
				}
			}
			f.AddArcUnchecked(s, fst.Arc{ILabel: finalArc.ILabel, OLabel: finalArc.OLabel, Weight: finalArc.Weight, NextState: superfinal})
			if err := f.DeleteFinalWeight(s); err != nil {
				return fmt.Errorf("arcmap: ArcMap: state %d: %w", s, err)
			}

		case RequireSuperfinal:
			if s == superfinal {
				continue
			}
			if !(isEpsEps && finalArc.Weight != nil && finalArc.Weight.IsZero()) {
				f.AddArcUnchecked(s, fst.Arc{ILabel: finalArc.ILabel, OLabel: finalArc.OLabel, Weight: finalArc.Weight, NextState: superfinal})
			}
			if err := f.DeleteFinalWeight(s); err != nil {
				return fmt.Errorf("arcmap: ArcMap: state %d: %w", s, err)
			}
		}
	}

	return nil
}
