package wordtree

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
)

// Build constructs a word tree from the distinct values of one field.
//
// The builder repeatedly picks the division candidate with the greatest
// undivided mass and splits off the subset of its values sharing the node's
// most frequent unclaimed word. A word present in every remaining value is
// promoted to the node's permanent common-words list instead. A node with no
// usable word left retires as a candidate but stays in the tree.
//
// The greedy split is intentionally kept as-is; a median-based split would
// partition better, but downstream bucket semantics depend on this exact
// behavior.
func Build(entries []Entry) *Tree {
	t := &Tree{
		entries:  make([]Entry, len(entries)),
		loc:      make(map[string]NodeID, len(entries)),
		nonWords: None,
		maxLevel: 1,
	}
	copy(t.entries, entries)
	sort.Slice(t.entries, func(i, j int) bool {
		return t.entries[i].Key < t.entries[j].Key
	})

	// Posting sets: word -> entry indices containing it.
	postings := make(map[string]*roaring.Bitmap)
	worded := roaring.New()
	total, wordedCount, wordlessCount := 0, 0, 0
	for i, e := range t.entries {
		total += e.Count
		if len(e.Words) == 0 {
			wordlessCount += e.Count
			continue
		}
		worded.Add(uint32(i))
		wordedCount += e.Count
		for w := range e.Words {
			p, ok := postings[w]
			if !ok {
				p = roaring.New()
				postings[w] = p
			}
			p.Add(uint32(i))
		}
	}
	words := make([]string, 0, len(postings))
	for w := range postings {
		words = append(words, w)
	}
	sort.Strings(words)

	t.nodes = append(t.nodes, Node{
		ID:         0,
		Parent:     None,
		Level:      1,
		values:     worded,
		ValueCount: wordedCount,
		TotalCount: total,
	})

	if wordlessCount > 0 {
		t.nonWords = t.addChild(0, Node{
			NonWords:      true,
			NonValueCount: wordlessCount,
			TotalCount:    wordlessCount,
			values:        roaring.New(),
		})
	}

	candidates := []NodeID{0}
	for len(candidates) > 0 {
		best := 0
		for i := 1; i < len(candidates); i++ {
			if t.mass(candidates[i]) > t.mass(candidates[best]) {
				best = i
			}
		}
		id := candidates[best]

		if t.nodes[id].Level >= MaxTreeLevel {
			candidates = append(candidates[:best], candidates[best+1:]...)
			continue
		}

		word, freq := t.topWord(id, words, postings)
		if word == "" {
			candidates = append(candidates[:best], candidates[best+1:]...)
			continue
		}

		node := &t.nodes[id]
		if freq == node.values.GetCardinality() {
			// The word is common to every remaining value; claim it
			// permanently instead of splitting.
			node.CommonWords = append(node.CommonWords, word)
			continue
		}

		subset := roaring.And(node.values, postings[word])
		subCount := 0
		it := subset.Iterator()
		for it.HasNext() {
			subCount += t.entries[it.Next()].Count
		}

		child := t.addChild(id, Node{
			CommonWords: []string{word},
			values:      subset,
			ValueCount:  subCount,
			TotalCount:  subCount,
		})

		parent := &t.nodes[id]
		parent.values.AndNot(subset)
		parent.ValueCount -= subCount

		candidates = append(candidates, child)
	}

	t.assignOrder()
	t.buildLocations()
	return t
}

// mass is a node's undivided mass: unresolved value occurrences plus
// wordless occurrences. Candidate selection is greatest-mass first, lower
// node ID on ties.
func (t *Tree) mass(id NodeID) int {
	n := &t.nodes[id]
	return n.ValueCount + n.NonValueCount
}

// topWord finds the most frequent word among the unresolved values of id
// that is not already claimed as common by an ancestor, the node itself, or
// a direct child. Frequency is the number of unresolved values containing
// the word; ties break on the lexicographically smaller word.
func (t *Tree) topWord(id NodeID, words []string, postings map[string]*roaring.Bitmap) (string, uint64) {
	claimed := make(map[string]struct{})
	for cur := id; cur != None; cur = t.nodes[cur].Parent {
		for _, w := range t.nodes[cur].CommonWords {
			claimed[w] = struct{}{}
		}
	}
	for _, child := range t.nodes[id].Children {
		for _, w := range t.nodes[child].CommonWords {
			claimed[w] = struct{}{}
		}
	}

	owned := t.nodes[id].values
	var bestWord string
	var bestFreq uint64
	for _, w := range words {
		if _, ok := claimed[w]; ok {
			continue
		}
		freq := owned.AndCardinality(postings[w])
		if freq > bestFreq {
			bestWord, bestFreq = w, freq
		}
	}
	return bestWord, bestFreq
}

// addChild appends a node to the arena and links it under parent.
func (t *Tree) addChild(parent NodeID, n Node) NodeID {
	id := NodeID(len(t.nodes))
	n.ID = id
	n.Parent = parent
	n.Level = t.nodes[parent].Level + 1
	if n.Level > t.maxLevel {
		t.maxLevel = n.Level
	}
	t.nodes = append(t.nodes, n)
	t.nodes[parent].Children = append(t.nodes[parent].Children, id)
	return id
}

// assignOrder gives every node a depth-first preorder index, children in
// creation order.
func (t *Tree) assignOrder() {
	t.byOrder = make([]NodeID, 0, len(t.nodes))
	stack := []NodeID{0}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		t.nodes[id].Order = len(t.byOrder)
		t.byOrder = append(t.byOrder, id)
		children := t.nodes[id].Children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}

// buildLocations maps every entry key to the node that finally holds it.
func (t *Tree) buildLocations() {
	for i := range t.nodes {
		it := t.nodes[i].values.Iterator()
		for it.HasNext() {
			t.loc[t.entries[it.Next()].Key] = t.nodes[i].ID
		}
	}
	if t.nonWords != None {
		for _, e := range t.entries {
			if len(e.Words) == 0 {
				t.loc[e.Key] = t.nonWords
			}
		}
	}
}
