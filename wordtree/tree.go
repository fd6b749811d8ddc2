package wordtree

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// NodeID indexes a node within a Tree. Nodes live in a flat arena; parent
// and child links are indices, never pointers.
type NodeID int32

// None is the null node reference.
const None NodeID = -1

// MaxTreeLevel caps tree depth. Splitting stops once a node reaches it.
const MaxTreeLevel = 100

// Entry is one distinct value fed into the builder.
type Entry struct {
	// Key is the stable identity of the value (model.Value.Key).
	Key string
	// Count is the number of occurrences of the value.
	Count int
	// Words maps each word of the value to its in-value count. Nil or
	// empty for values that carry no words (non-strings and wordless
	// strings); those are routed to the synthetic non-words branch.
	Words map[string]int
}

// Node is one node of the word tree.
//
// Invariant: ValueCount + NonValueCount + sum of children TotalCount equals
// TotalCount at every node.
type Node struct {
	// ID is this node's arena index.
	ID NodeID
	// Parent is the parent node, or None for the root.
	Parent NodeID
	// Children holds child nodes in creation order.
	Children []NodeID
	// Level is the node depth; the root is level 1. Level doubles as the
	// bag-of-words faceting granularity knob.
	Level int
	// Order is the node's depth-first index, assigned after construction
	// and used for stable bucket ordering.
	Order int
	// NonWords marks the synthetic branch holding wordless values.
	NonWords bool
	// CommonWords are the words shared by every value at or below this
	// node that are not already claimed by an ancestor. For a split child
	// the first entry is the word the split was made on.
	CommonWords []string
	// ValueCount is the occurrence total of the unresolved values held
	// directly at this node.
	ValueCount int
	// NonValueCount is the occurrence total of wordless values held at
	// this node.
	NonValueCount int
	// TotalCount is the occurrence total of the whole subtree.
	TotalCount int

	values *roaring.Bitmap // unresolved entry indices owned by this node
}

// Tree is a hierarchical word decomposition of a set of string values.
// Nodes are stored in a flat arena; the zero NodeID is the root.
type Tree struct {
	nodes    []Node
	entries  []Entry
	loc      map[string]NodeID
	byOrder  []NodeID
	maxLevel int
	nonWords NodeID
}

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns the root node ID.
func (t *Tree) Root() NodeID { return 0 }

// Node returns the node for id. The returned node is shared tree state and
// must be treated as read-only.
func (t *Tree) Node(id NodeID) *Node {
	return &t.nodes[id]
}

// MaxLevel returns the deepest node level. A tree with a single level has
// never been split and is useless for bag-of-words faceting.
func (t *Tree) MaxLevel() int { return t.maxLevel }

// NonWordsNode returns the synthetic branch holding wordless values, or
// None when every value carried words.
func (t *Tree) NonWordsNode() NodeID { return t.nonWords }

// Locate returns the node that finally holds the value identified by its
// stable key, or None for values unknown to the tree.
func (t *Tree) Locate(valueKey string) NodeID {
	if id, ok := t.loc[valueKey]; ok {
		return id
	}
	return None
}

// ByOrder returns the node with the given depth-first order index, or None
// when out of range.
func (t *Tree) ByOrder(order int) NodeID {
	if order < 0 || order >= len(t.byOrder) {
		return None
	}
	return t.byOrder[order]
}

// Ancestor walks up from id to the nearest node whose level does not exceed
// maxLevel. The root (level 1) terminates every walk.
func (t *Tree) Ancestor(id NodeID, maxLevel int) NodeID {
	for t.nodes[id].Level > maxLevel && t.nodes[id].Parent != None {
		id = t.nodes[id].Parent
	}
	return id
}

// InheritedCommonWords returns the common words accumulated from the root
// down to id, in root-first order.
func (t *Tree) InheritedCommonWords(id NodeID) []string {
	var chain []NodeID
	for cur := id; cur != None; cur = t.nodes[cur].Parent {
		chain = append(chain, cur)
	}
	var words []string
	for i := len(chain) - 1; i >= 0; i-- {
		words = append(words, t.nodes[chain[i]].CommonWords...)
	}
	return words
}
