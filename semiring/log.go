// File: log.go
// Role: LogWeight, the log semiring (⊕ = -log(e^-x + e^-y), ⊗ = +), used for
//       weights carried in negative-log-probability space.
// AI-HINT (file):
//   - Zero is +Inf, One is 0, same identities as TropicalWeight; only ⊕
//     differs (log-sum-exp instead of min).

package semiring

import (
	"fmt"
	"math"
)

// LogWeight carries a single float64 under log-semiring arithmetic.
type LogWeight struct {
	Value float64
}

// NewLogWeight constructs a LogWeight holding v.
func NewLogWeight(v float64) LogWeight {
	return LogWeight{Value: v}
}

// Zero returns the additive identity, +Inf.
func (w LogWeight) Zero() Weight { return LogWeight{Value: math.Inf(1)} }

// One returns the multiplicative identity, 0.
func (w LogWeight) One() Weight { return LogWeight{Value: 0} }

// Plus returns -log(e^-w + e^-other), computed so that either operand being
// +Inf (zero) leaves the other untouched.
func (w LogWeight) Plus(other Weight) Weight {
	o := other.(LogWeight)
	if math.IsInf(w.Value, 1) {
		return o
	}
	if math.IsInf(o.Value, 1) {
		return w
	}
	// Numerically stable log-sum-exp: factor out the smaller exponent.
	lo, hi := w.Value, o.Value
	if hi < lo {
		lo, hi = hi, lo
	}

	return LogWeight{Value: lo - math.Log1p(math.Exp(lo-hi))}
}

// Times returns w + other, with +Inf absorbing.
func (w LogWeight) Times(other Weight) Weight {
	o := other.(LogWeight)
	if math.IsInf(w.Value, 1) || math.IsInf(o.Value, 1) {
		return LogWeight{Value: math.Inf(1)}
	}

	return LogWeight{Value: w.Value + o.Value}
}

// IsZero reports whether w is +Inf.
func (w LogWeight) IsZero() bool { return math.IsInf(w.Value, 1) }

// IsOne reports whether w is exactly 0.
func (w LogWeight) IsOne() bool { return w.Value == 0 }

// Reverse is the identity map: the log semiring is its own reverse.
func (w LogWeight) Reverse() Weight { return w }

// Properties reports Left|Right|Commutative: the log-sum-exp ⊕ is
// commutative and distributes from both sides, but is neither idempotent
// (x ⊕ x != x in general) nor a path semiring (⊕ never simply selects one of
// its two operands: NewLogWeight(1.0).Plus(NewLogWeight(2.0)) ≈ 0.687, equal
// to neither input).
func (w LogWeight) Properties() Properties {
	return LeftSemiring | RightSemiring | Commutative
}

// String renders the value, or "Infinity" for the additive identity.
func (w LogWeight) String() string {
	if w.IsZero() {
		return "Infinity"
	}

	return fmt.Sprintf("%g", w.Value)
}

// Divide returns w - other; the log semiring is commutative, so side is
// ignored beyond validating other is not zero.
func (w LogWeight) Divide(other Weight, _ DivideSide) (Weight, error) {
	o := other.(LogWeight)
	if o.IsZero() {
		return nil, ErrDivideByZero
	}
	if w.IsZero() {
		return LogWeight{Value: math.Inf(1)}, nil
	}

	return LogWeight{Value: w.Value - o.Value}, nil
}

// Quantize rounds Value to the nearest multiple of delta.
func (w LogWeight) Quantize(delta float32) Weight {
	if w.IsZero() || delta <= 0 {
		return w
	}
	d := float64(delta)

	return LogWeight{Value: math.Round(w.Value/d) * d}
}

var (
	_ Weight          = LogWeight{}
	_ WeaklyDivisible = LogWeight{}
	_ Quantizable     = LogWeight{}
)
