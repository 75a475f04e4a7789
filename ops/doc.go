// Package ops collects leaf-level FST algorithms built directly on the
// fst.MutableFst contract: RelabelPairs and Union. Grounded on
// relabel_pairs.rs and union.rs from the Rust original this module's
// semantics were distilled from.
package ops
