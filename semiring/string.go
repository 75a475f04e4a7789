// File: string.go
// Role: The three string-semiring variants: Restrict, Left, Right.
// Grounded on: original_source rustfst semirings/string_weight.rs. The Rust
//              source defines all three via one macro over a StringType
//              enum; Go has no equivalent macro, so this file spells the
//              three types out, sharing their label-slice plumbing through
//              unexported helpers (commonPrefixLen/commonSuffixLen/equalLabels)
//              the way the teacher splits one concern across small private
//              helpers (core/methods_edges.go's nextEdgeID, ensureAdjacency).
// AI-HINT (file):
//   - A string weight is either Infinity (additive zero) or a finite,
//     possibly-empty label sequence; One is the empty sequence.
//   - Times is concatenation; Infinity absorbs on either side.
//   - Reverse(Left) = Right and vice versa; Reverse(Restrict) = Restrict.

package semiring

// Label identifies a symbol carried by a string-weight element. Matches
// fst.Label's underlying representation so string weights can carry arc
// labels directly without a conversion layer.
type Label = uint64

// StringWeightRestrict implements ⊕(x, y) = x if x == y, else an error
// surfaced through PlusChecked (Plus itself panics, matching the contract
// every other Weight.Plus honors: it never returns an error value).
type StringWeightRestrict struct {
	// Infinity, when true, marks the additive zero; Labels is ignored.
	Infinity bool
	Labels   []Label
}

// StringWeightLeft implements ⊕(x, y) = longest common prefix.
type StringWeightLeft struct {
	Infinity bool
	Labels   []Label
}

// StringWeightRight implements ⊕(x, y) = longest common suffix.
type StringWeightRight struct {
	Infinity bool
	Labels   []Label
}

// newStringLabels returns a fresh copy of labels, so a string weight never
// shares its backing array with the caller's slice.
func newStringLabels(labels ...Label) []Label {
	out := make([]Label, len(labels))
	copy(out, labels)

	return out
}

func equalLabels(a, b []Label) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// commonPrefixLen returns the length of the longest common prefix of a, b.
func commonPrefixLen(a, b []Label) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}

	return i
}

// commonSuffixLen returns the length of the longest common suffix of a, b.
func commonSuffixLen(a, b []Label) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}

	return i
}

// --- StringWeightRestrict ---

// NewStringWeightRestrict constructs a finite StringWeightRestrict from labels.
func NewStringWeightRestrict(labels ...Label) StringWeightRestrict {
	return StringWeightRestrict{Labels: newStringLabels(labels...)}
}

func (w StringWeightRestrict) Zero() Weight { return StringWeightRestrict{Infinity: true} }
func (w StringWeightRestrict) One() Weight  { return StringWeightRestrict{} }

func (w StringWeightRestrict) Plus(other Weight) Weight {
	r, err := w.PlusChecked(other)
	if err != nil {
		panic(err)
	}

	return r
}

// PlusChecked returns w if w == other, else ErrNonFunctional. Either operand
// being the additive zero yields the other, matching the general ⊕-zero
// identity law.
func (w StringWeightRestrict) PlusChecked(other Weight) (Weight, error) {
	o := other.(StringWeightRestrict)
	if w.IsZero() {
		return o, nil
	}
	if o.IsZero() {
		return w, nil
	}
	if w.Infinity != o.Infinity || !equalLabels(w.Labels, o.Labels) {
		return nil, ErrNonFunctional
	}

	return w, nil
}

func (w StringWeightRestrict) Times(other Weight) Weight {
	o := other.(StringWeightRestrict)
	if w.Infinity || o.Infinity {
		return StringWeightRestrict{Infinity: true}
	}

	return StringWeightRestrict{Labels: append(append([]Label(nil), w.Labels...), o.Labels...)}
}

func (w StringWeightRestrict) IsZero() bool { return w.Infinity }
func (w StringWeightRestrict) IsOne() bool  { return !w.Infinity && len(w.Labels) == 0 }
func (w StringWeightRestrict) Reverse() Weight {
	return StringWeightRestrict{Infinity: w.Infinity, Labels: reverseLabels(w.Labels)}
}
func (w StringWeightRestrict) Properties() Properties {
	return LeftSemiring | RightSemiring | Idempotent
}
func (w StringWeightRestrict) String() string { return stringWeightString(w.Infinity, w.Labels) }

// Divide supports DivideLeft and DivideRight: left division strips a
// matching prefix, right division strips a matching suffix. DivideAny
// returns ErrDivideUnsupportedSide.
func (w StringWeightRestrict) Divide(other Weight, side DivideSide) (Weight, error) {
	o := other.(StringWeightRestrict)
	switch side {
	case DivideLeft:
		labels, infinite, err := divideLeftLabels(w.Infinity, w.Labels, o.Infinity, o.Labels)
		return StringWeightRestrict{Infinity: infinite, Labels: labels}, err
	case DivideRight:
		labels, infinite, err := divideRightLabels(w.Infinity, w.Labels, o.Infinity, o.Labels)
		return StringWeightRestrict{Infinity: infinite, Labels: labels}, err
	default:
		return nil, ErrDivideUnsupportedSide
	}
}

func (w StringWeightRestrict) Quantize(_ float32) Weight { return w }

// --- StringWeightLeft ---

// NewStringWeightLeft constructs a finite StringWeightLeft from labels.
func NewStringWeightLeft(labels ...Label) StringWeightLeft {
	return StringWeightLeft{Labels: newStringLabels(labels...)}
}

func (w StringWeightLeft) Zero() Weight { return StringWeightLeft{Infinity: true} }
func (w StringWeightLeft) One() Weight  { return StringWeightLeft{} }

// Plus returns the longest common prefix of w and other; either operand
// being Infinity (zero) yields the other.
func (w StringWeightLeft) Plus(other Weight) Weight {
	o := other.(StringWeightLeft)
	if w.IsZero() {
		return o
	}
	if o.IsZero() {
		return w
	}
	n := commonPrefixLen(w.Labels, o.Labels)

	return StringWeightLeft{Labels: append([]Label(nil), w.Labels[:n]...)}
}

func (w StringWeightLeft) Times(other Weight) Weight {
	o := other.(StringWeightLeft)
	if w.Infinity || o.Infinity {
		return StringWeightLeft{Infinity: true}
	}

	return StringWeightLeft{Labels: append(append([]Label(nil), w.Labels...), o.Labels...)}
}

func (w StringWeightLeft) IsZero() bool { return w.Infinity }
func (w StringWeightLeft) IsOne() bool  { return !w.Infinity && len(w.Labels) == 0 }

// Reverse of Left is Right: the label order is reversed, so a common prefix
// of two Left weights becomes a common suffix of their Right reverses.
func (w StringWeightLeft) Reverse() Weight {
	return StringWeightRight{Infinity: w.Infinity, Labels: reverseLabels(w.Labels)}
}
func (w StringWeightLeft) Properties() Properties { return LeftSemiring | Idempotent }
func (w StringWeightLeft) String() string         { return stringWeightString(w.Infinity, w.Labels) }

// Divide supports DivideLeft only: it strips a prefix equal to other.
func (w StringWeightLeft) Divide(other Weight, side DivideSide) (Weight, error) {
	if side != DivideLeft {
		return nil, ErrDivideUnsupportedSide
	}
	o := other.(StringWeightLeft)
	labels, infinite, err := divideLeftLabels(w.Infinity, w.Labels, o.Infinity, o.Labels)
	if err != nil {
		return nil, err
	}

	return StringWeightLeft{Infinity: infinite, Labels: labels}, nil
}

func (w StringWeightLeft) Quantize(_ float32) Weight { return w }

// --- StringWeightRight ---

// NewStringWeightRight constructs a finite StringWeightRight from labels.
func NewStringWeightRight(labels ...Label) StringWeightRight {
	return StringWeightRight{Labels: newStringLabels(labels...)}
}

func (w StringWeightRight) Zero() Weight { return StringWeightRight{Infinity: true} }
func (w StringWeightRight) One() Weight  { return StringWeightRight{} }

// Plus returns the longest common suffix of w and other.
func (w StringWeightRight) Plus(other Weight) Weight {
	o := other.(StringWeightRight)
	if w.IsZero() {
		return o
	}
	if o.IsZero() {
		return w
	}
	n := commonSuffixLen(w.Labels, o.Labels)

	return StringWeightRight{Labels: append([]Label(nil), w.Labels[len(w.Labels)-n:]...)}
}

func (w StringWeightRight) Times(other Weight) Weight {
	o := other.(StringWeightRight)
	if w.Infinity || o.Infinity {
		return StringWeightRight{Infinity: true}
	}

	return StringWeightRight{Labels: append(append([]Label(nil), w.Labels...), o.Labels...)}
}

func (w StringWeightRight) IsZero() bool { return w.Infinity }
func (w StringWeightRight) IsOne() bool  { return !w.Infinity && len(w.Labels) == 0 }
func (w StringWeightRight) Reverse() Weight {
	return StringWeightLeft{Infinity: w.Infinity, Labels: reverseLabels(w.Labels)}
}
func (w StringWeightRight) Properties() Properties { return RightSemiring | Idempotent }
func (w StringWeightRight) String() string         { return stringWeightString(w.Infinity, w.Labels) }

// Divide supports DivideRight only: it strips a suffix equal to other.
func (w StringWeightRight) Divide(other Weight, side DivideSide) (Weight, error) {
	if side != DivideRight {
		return nil, ErrDivideUnsupportedSide
	}
	o := other.(StringWeightRight)
	labels, infinite, err := divideRightLabels(w.Infinity, w.Labels, o.Infinity, o.Labels)
	if err != nil {
		return nil, err
	}

	return StringWeightRight{Infinity: infinite, Labels: labels}, nil
}

func (w StringWeightRight) Quantize(_ float32) Weight { return w }

// --- shared helpers ---

func reverseLabels(l []Label) []Label {
	out := make([]Label, len(l))
	for i, v := range l {
		out[len(l)-1-i] = v
	}

	return out
}

func stringWeightString(infinity bool, labels []Label) string {
	if infinity {
		return "Infinity"
	}
	if len(labels) == 0 {
		return "Epsilon"
	}
	out := ""
	for i, l := range labels {
		if i > 0 {
			out += ","
		}
		out += uintToString(l)
	}

	return out
}

func uintToString(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}

	return string(buf[i:])
}

// divideLeftLabels strips a prefix equal to divisorLabels from labels.
// Dividing by Infinity is undefined; dividing Infinity by a finite divisor
// yields Infinity (reported via the second return value). A divisor longer
// than labels clamps to the empty label sequence rather than erroring,
// matching rustfst's divide_left (built on a saturating skip).
func divideLeftLabels(infinity bool, labels []Label, divInfinity bool, divisorLabels []Label) ([]Label, bool, error) {
	if divInfinity {
		return nil, false, ErrDivideByZero
	}
	if infinity {
		return nil, true, nil
	}
	if len(divisorLabels) > len(labels) {
		return []Label{}, false, nil
	}

	return append([]Label(nil), labels[len(divisorLabels):]...), false, nil
}

// divideRightLabels strips a suffix equal to divisorLabels from labels. A
// divisor longer than labels clamps to the empty label sequence rather than
// erroring, matching rustfst's divide_right.
func divideRightLabels(infinity bool, labels []Label, divInfinity bool, divisorLabels []Label) ([]Label, bool, error) {
	if divInfinity {
		return nil, false, ErrDivideByZero
	}
	if infinity {
		return nil, true, nil
	}
	if len(divisorLabels) > len(labels) {
		return []Label{}, false, nil
	}

	return append([]Label(nil), labels[:len(labels)-len(divisorLabels)]...), false, nil
}

var (
	_ Weight          = StringWeightRestrict{}
	_ Checked         = StringWeightRestrict{}
	_ WeaklyDivisible = StringWeightRestrict{}
	_ Quantizable     = StringWeightRestrict{}
	_ Weight          = StringWeightLeft{}
	_ WeaklyDivisible = StringWeightLeft{}
	_ Quantizable     = StringWeightLeft{}
	_ Weight          = StringWeightRight{}
	_ WeaklyDivisible = StringWeightRight{}
	_ Quantizable     = StringWeightRight{}
)
