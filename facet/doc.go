// Package facet derives bucketing functions from field statistics.
//
// A Facetizer is the (classify, compare, label) triple driving one grid
// axis. Rather than opaque closures, the modes are tagged variants, each
// carrying its own parameters:
//
//   - Identity: single empty bucket (unknown field or bucket count < 1)
//   - BagOfWords: word tree node bucketing for multi-word string fields
//   - Literal: exact-value buckets when unique values fit the budget
//   - NumericRange: equal-width buckets over the nicely rounded extent
//   - TopN: most frequent values plus a reserved catch-all bucket
//
// New applies the modes in exactly that order. Key ordering is axis aware:
// the non-numeric ordering flips between the horizontal and vertical axes
// so special buckets end up where a y-up renderer expects them.
package facet
