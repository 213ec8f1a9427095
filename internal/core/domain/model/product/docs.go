// Package product provides the catalog aggregate targeted by inventory
// reconciliation. A Product is a tagged union of two shapes discriminated by
// Kind: simple products carry their own sku and stock, variant products keep
// stock on per-variant sub-records and share a single sold counter at the
// parent level.
//
// The central operation is ApplyDelta, which adjusts stock and sold counters
// for one sku while guarding the invariant that no quantity ever goes below
// zero and that a sku which resolves through the wrong shape is reported as a
// data-integrity fault instead of being silently absorbed.
package product
