// File: product.go
// Role: ProductWeight, the componentwise pairing of two semirings W1 x W2.
// Grounded on: original_source rustfst semirings/product_weight.rs, adapted
//              from Rust's generic ProductWeight<W1, W2> to a structural Go
//              form (holds two Weight interface values rather than a static
//              type parameter pair, matching this package's capability-set
//              design throughout).
// AI-HINT (file):
//   - Properties() ANDs the two component property sets, masked to the four
//     flags that remain meaningful after composition (Path is dropped: a
//     pair of two Path semirings need not itself have a ⊕ that always picks
//     one whole pair, since each half may pick a different side).

package semiring

// ProductWeight pairs a V1 and a V2 weight, both drawn from (possibly
// different) semirings, and applies ⊕/⊗ componentwise.
type ProductWeight struct {
	V1 Weight
	V2 Weight
}

// NewProductWeight pairs v1 and v2.
func NewProductWeight(v1, v2 Weight) ProductWeight {
	return ProductWeight{V1: v1, V2: v2}
}

// Zero returns (v1.Zero(), v2.Zero()), using the receiver's own component
// types as the source of each side's identity.
func (w ProductWeight) Zero() Weight {
	return ProductWeight{V1: w.V1.Zero(), V2: w.V2.Zero()}
}

// One returns (v1.One(), v2.One()).
func (w ProductWeight) One() Weight {
	return ProductWeight{V1: w.V1.One(), V2: w.V2.One()}
}

// Plus returns (v1 ⊕ other.v1, v2 ⊕ other.v2).
func (w ProductWeight) Plus(other Weight) Weight {
	o := other.(ProductWeight)

	return ProductWeight{V1: w.V1.Plus(o.V1), V2: w.V2.Plus(o.V2)}
}

// Times returns (v1 ⊗ other.v1, v2 ⊗ other.v2).
func (w ProductWeight) Times(other Weight) Weight {
	o := other.(ProductWeight)

	return ProductWeight{V1: w.V1.Times(o.V1), V2: w.V2.Times(o.V2)}
}

// IsZero reports whether both components are their additive identity.
func (w ProductWeight) IsZero() bool {
	return w.V1.IsZero() && w.V2.IsZero()
}

// IsOne reports whether both components are their multiplicative identity.
func (w ProductWeight) IsOne() bool {
	return w.V1.IsOne() && w.V2.IsOne()
}

// Reverse maps each component to its own reverse weight.
func (w ProductWeight) Reverse() Weight {
	return ProductWeight{V1: w.V1.Reverse(), V2: w.V2.Reverse()}
}

// Properties is the bitwise AND of the two components' properties, masked
// to the four flags that survive pairing.
func (w ProductWeight) Properties() Properties {
	const mask = LeftSemiring | RightSemiring | Commutative | Idempotent

	return w.V1.Properties() & w.V2.Properties() & mask
}

// String renders "(v1, v2)".
func (w ProductWeight) String() string {
	return "(" + w.V1.String() + ", " + w.V2.String() + ")"
}

// Divide divides componentwise; both components must support WeaklyDivisible.
func (w ProductWeight) Divide(other Weight, side DivideSide) (Weight, error) {
	o := other.(ProductWeight)
	d1, ok1 := w.V1.(WeaklyDivisible)
	d2, ok2 := w.V2.(WeaklyDivisible)
	if !ok1 || !ok2 {
		return nil, ErrDivideUnsupportedSide
	}
	r1, err := d1.Divide(o.V1, side)
	if err != nil {
		return nil, err
	}
	r2, err := d2.Divide(o.V2, side)
	if err != nil {
		return nil, err
	}

	return ProductWeight{V1: r1, V2: r2}, nil
}

// Quantize quantizes componentwise; both components must support Quantizable.
func (w ProductWeight) Quantize(delta float32) Weight {
	q1, ok1 := w.V1.(Quantizable)
	q2, ok2 := w.V2.(Quantizable)
	if !ok1 || !ok2 {
		return w
	}

	return ProductWeight{V1: q1.Quantize(delta), V2: q2.Quantize(delta)}
}

var _ Weight = ProductWeight{}
