// Package semiring defines the algebraic value type carried through every
// WFST algorithm: a weight drawn from a semiring (W, ⊕, ⊗, 0, 1).
//
// # Weight
//
// Weight is the capability set every concrete weight type implements: the
// additive and multiplicative operations, their identities, a reverse
// mapping used by reverse-pass algorithms, and a static Properties bitmask
// that algorithms read to decide which optimizations are legal (e.g.
// skipping a zero-weight arc is only sound if Zero() is ⊗-absorbing, which
// every Weight is required to honor).
//
// Three concrete base semirings are provided: TropicalWeight (min-plus, the
// default for shortest-path style weights), LogWeight (log-semiring, for
// probability-like weights in negative-log space), and BooleanWeight (the
// two-element semiring used by acceptors and membership tests). Two families
// of composed semirings build on top of any base semiring: ProductWeight
// (componentwise pairing of two semirings) and the three StringWeight
// variants (Restrict/Left/Right), used by algorithms that need to track
// output strings alongside a path weight.
//
// # Divisibility and quantization
//
// WeaklyDivisible is an optional capability (not every semiring supports
// division — the string semirings only divide on their declared side).
// Quantizable is a second optional capability used by weight-set
// deduplication in higher-level algorithms outside this core's scope; it is
// implemented here because those algorithms rely on it existing.
//
// # Properties
//
// Properties is a bitmask, not a single bool per property, because
// composed semirings (ProductWeight) need to AND two property sets
// together and mask the result to the properties that remain meaningful
// after composition.
package semiring
