// Package wordtree builds hierarchical "bag of words" decompositions of
// multi-word string values for coarse-to-fine faceting.
//
// # Arena Layout
//
// Nodes live in a flat indexed arena; parent and child links are NodeID
// indices, never pointers. This avoids reference cycles and makes whole-tree
// inspection in tests trivial.
//
// # Construction
//
// Build greedily partitions a field's distinct values: the candidate node
// with the greatest undivided mass is split on its most frequent unclaimed
// word, words shared by every remaining value are promoted to the node's
// common-words list, and wordless values collect under a synthetic
// non-words branch. Each node's Level (root is 1) acts as the faceting
// granularity knob; depth-first Order indices give buckets a stable sort.
//
// Membership bookkeeping uses Roaring Bitmaps over entry indices: one
// posting set per word, one ownership set per node, so a split subset is a
// single AND and the common-word check is a cardinality comparison.
package wordtree
