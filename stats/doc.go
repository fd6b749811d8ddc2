// Package stats implements the field statistics collector.
//
// Collect streams over a record collection once, accumulating per-field
// counts, numeric extrema, string length statistics, a value hash and
// per-field word frequency tables. Fields whose string values contain more
// than one word additionally get a hierarchical word tree (see package
// wordtree) for bag-of-words faceting.
//
// All inputs are coerced rather than rejected: NaN and infinite numeric
// values are excluded from the extrema but still counted, and values that
// are neither numbers nor strings land in the "other" type bucket.
//
// CollectContext offers bounded-parallel collection: per-field accumulation
// is independent across fields and carries no shared state.
package stats
