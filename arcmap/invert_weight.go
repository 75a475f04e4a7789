// File: invert_weight.go
// Role: InvertWeightMapper — reciprocates every non-zero weight in an FST.
//       Grounded on invert_weight_mapper.rs.

package arcmap

import (
	"fmt"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// InvertWeightMapper replaces every arc and final weight w with one / w,
// computed as one().Divide(w, DivideAny). FinalAction is always
// NoSuperfinal: inversion never changes a weight's representability as a
// plain final weight.
type InvertWeightMapper struct {
	one semiring.WeaklyDivisible
}

// NewInvertWeightMapper returns a mapper that inverts weights of the same
// semiring as one (used only for its Divide method and identity value).
func NewInvertWeightMapper(one semiring.WeaklyDivisible) *InvertWeightMapper {
	return &InvertWeightMapper{one: one}
}

func (m *InvertWeightMapper) invert(w semiring.Weight) (semiring.Weight, error) {
	divisor, ok := w.(semiring.WeaklyDivisible)
	if !ok {
		return nil, fmt.Errorf("arcmap: InvertWeightMapper: weight %T is not weakly divisible", w)
	}
	inverted, err := m.one.Divide(divisor, semiring.DivideAny)
	if err != nil {
		return nil, fmt.Errorf("arcmap: InvertWeightMapper: %w", err)
	}

	return inverted, nil
}

func (m *InvertWeightMapper) ArcMap(arc fst.Arc) (fst.Arc, error) {
	w, err := m.invert(arc.Weight)
	if err != nil {
		return fst.Arc{}, err
	}
	arc.Weight = w

	return arc, nil
}

func (m *InvertWeightMapper) FinalArcMap(finalArc fst.Arc) (fst.Arc, error) {
	w, err := m.invert(finalArc.Weight)
	if err != nil {
		return fst.Arc{}, err
	}
	finalArc.Weight = w

	return finalArc, nil
}

func (m *InvertWeightMapper) FinalAction() FinalAction { return NoSuperfinal }

func (m *InvertWeightMapper) Identity() semiring.Weight { return m.one }

var _ Mapper = (*InvertWeightMapper)(nil)
