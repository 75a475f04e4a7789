// File: methods_final.go
// Role: Final-weight lifecycle: Final/SetFinal/DeleteFinalWeight.
// AI-HINT (file):
//   - Final == nil means non-final. A final weight equal to the semiring's
//     Zero() is a distinct, preserved state (spec.md's final-weight-equal-
//     to-zero open question); this package never normalizes Zero() away.

package fst

import "github.com/katalvlaran/wfst/semiring"

// Final returns the final weight of s and whether s is final.
func (f *VectorFst) Final(s StateId) (semiring.Weight, bool) {
	if !f.hasState(s) {
		return nil, false
	}
	w := f.states[s].Final

	return w, w != nil
}

// SetFinal sets the final weight of s to w. Returns ErrInvalidStateID if s
// is unknown.
func (f *VectorFst) SetFinal(s StateId, w semiring.Weight) error {
	if !f.hasState(s) {
		return ErrInvalidStateID
	}
	f.states[s].Final = w

	return nil
}

// DeleteFinalWeight clears the final weight of s, making it non-final.
// Returns ErrInvalidStateID if s is unknown.
func (f *VectorFst) DeleteFinalWeight(s StateId) error {
	if !f.hasState(s) {
		return ErrInvalidStateID
	}
	f.states[s].Final = nil

	return nil
}
