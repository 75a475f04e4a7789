// File: types.go
// Role: Weight capability interface, Properties bitmask, DivideSide enum,
//       and the optional WeaklyDivisible/Quantizable capabilities.
// Determinism:
//   - Properties() is a pure function of the concrete type (or, for
//     ProductWeight, of its two component types); it never depends on the
//     current value.
// AI-HINT (file):
//   - Zero()/One() are instance methods, not package functions: an algorithm
//     holding an arbitrary Weight can still obtain the identity elements of
//     that same concrete type without a type switch.
//   - Reverse() returns a Weight because the reverse semiring may be a
//     distinct concrete type (StringWeightLeft.Reverse() is a
//     StringWeightRight); both still satisfy Weight.

package semiring

import "errors"

// Sentinel errors for semiring operations.
var (
	// ErrNonFunctional is returned by StringWeightRestrict's PlusChecked (and
	// is the value its Plus panics with) when the two operands are unequal: the Restrict variant requires the FST to be
	// functional, i.e. Plus is only ever applied to equal arguments.
	ErrNonFunctional = errors.New("semiring: non-functional FST: unequal arguments to restricted string plus")

	// ErrDivideUnsupportedSide is returned when Divide is called with a side
	// a given semiring does not support (e.g. DivideAny on StringWeightLeft).
	ErrDivideUnsupportedSide = errors.New("semiring: unsupported division side for this semiring")

	// ErrDivideByZero is returned when dividing by the additive zero of a
	// semiring for which that quotient is undefined.
	ErrDivideByZero = errors.New("semiring: division by zero weight is undefined")
)

// Properties is a bitmask of algebraic guarantees a Weight type advertises.
// Algorithms read these flags to decide which optimizations are legal; a
// Weight implementation that sets a flag it does not honor silently breaks
// every algorithm relying on it.
type Properties uint32

// Named property bits. LeftSemiring/RightSemiring indicate from which side(s)
// ⊗ distributes over ⊕; Commutative and Idempotent describe ⊕; Path marks
// semirings whose ⊕ always selects one of its two arguments (useful for
// shortest-path extraction).
const (
	LeftSemiring Properties = 1 << iota
	RightSemiring
	Commutative
	Idempotent
	Path
)

// Has reports whether every bit set in want is also set in p.
func (p Properties) Has(want Properties) bool {
	return p&want == want
}

// String renders the set bits as a compact, deterministic label list.
func (p Properties) String() string {
	if p == 0 {
		return "none"
	}
	labels := []struct {
		bit  Properties
		name string
	}{
		{LeftSemiring, "left"},
		{RightSemiring, "right"},
		{Commutative, "commutative"},
		{Idempotent, "idempotent"},
		{Path, "path"},
	}
	out := ""
	for _, l := range labels {
		if p.Has(l.bit) {
			if out != "" {
				out += "|"
			}
			out += l.name
		}
	}
	if out == "" {
		return "none"
	}

	return out
}

// DivideSide selects which side of ⊗ the divisor is taken to occupy.
type DivideSide int

// Division sides. DivideAny is only meaningful for commutative semirings,
// where left and right division coincide.
const (
	DivideLeft DivideSide = iota
	DivideRight
	DivideAny
)

// Weight is the capability set every concrete weight type implements.
// Implementations are value types: Plus/Times/Reverse return new values
// rather than mutating the receiver, matching the immutable-value idiom used
// throughout this module (an Arc's Weight is copied by value, never shared).
type Weight interface {
	// Zero returns the additive identity of this Weight's concrete type.
	Zero() Weight

	// One returns the multiplicative identity of this Weight's concrete type.
	One() Weight

	// Plus returns w ⊕ other. Plus has no error return: semirings whose ⊕
	// can fail (StringWeightRestrict) panic from Plus and expose PlusChecked
	// to report the failure as an error.
	Plus(other Weight) Weight

	// Times returns w ⊗ other.
	Times(other Weight) Weight

	// IsZero reports whether w equals this type's additive identity.
	IsZero() bool

	// IsOne reports whether w equals this type's multiplicative identity.
	IsOne() bool

	// Reverse maps w to the (possibly distinct) reverse-weight type used by
	// reverse-pass algorithms. Reverse is involutive: w.Reverse().Reverse()
	// reproduces w for every Weight defined in this package.
	Reverse() Weight

	// Properties returns the static algebraic flags for this Weight's
	// concrete type.
	Properties() Properties

	// String renders a debug form; not a serialization format.
	String() string
}

// Checked is implemented by Weight types whose ⊕ can fail (StringWeightRestrict).
// Algorithms that need to surface that failure call PlusChecked instead of Plus;
// Plus itself panics on the same condition so that it remains usable as a plain
// Weight method in generic code paths that cannot thread an error.
type Checked interface {
	// PlusChecked returns w ⊕ other, or ErrNonFunctional if the semiring's
	// ⊕ rejects these operands.
	PlusChecked(other Weight) (Weight, error)
}

// WeaklyDivisible is implemented by Weight types that support division by a
// non-zero weight on at least one side (spec §3: "Weakly divisible variant
// adds divide_assign").
type WeaklyDivisible interface {
	Weight

	// Divide returns w / other computed on the given side, or an error if
	// that side is unsupported for this semiring or other is zero.
	Divide(other Weight, side DivideSide) (Weight, error)
}

// Quantizable is implemented by Weight types that can be snapped to a finite
// resolution grid, used by higher-level weight-set deduplication outside
// this core's scope (kept here because those algorithms require the
// capability to exist on the semiring they are parameterized by).
type Quantizable interface {
	Weight

	// Quantize returns w rounded to the nearest multiple of delta.
	Quantize(delta float32) Weight
}
