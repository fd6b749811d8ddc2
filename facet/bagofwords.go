package facet

import (
	"cmp"
	"strings"

	"github.com/hupe1980/facetgrid/model"
	"github.com/hupe1980/facetgrid/wordtree"
)

// bagOfWords buckets string values by word tree node. The requested bucket
// count acts as the tree level granularity knob; the bucket key is the
// chosen node's depth-first order index.
type bagOfWords struct {
	tree    *wordtree.Tree
	buckets int
	orient  Orientation
}

func (f *bagOfWords) Kind() Kind { return KindBagOfWords }

// Classify walks from the value's leaf node up to the nearest ancestor
// whose level does not exceed the requested bucket count. Values unknown to
// the tree land at the root.
func (f *bagOfWords) Classify(v model.Value) model.Key {
	id := f.tree.Locate(v.Key())
	if id == wordtree.None {
		id = f.tree.Root()
	}
	id = f.tree.Ancestor(id, f.buckets)
	return model.NumberKey(float64(f.tree.Node(id).Order))
}

// Compare orders buckets by node depth-first order, flipped on the
// vertical axis.
func (f *bagOfWords) Compare(a, b model.Key) int {
	if a.Kind == model.KeyNumber && b.Kind == model.KeyNumber {
		c := cmp.Compare(a.Num, b.Num)
		if f.orient == Vertical {
			return -c
		}
		return c
	}
	return compareKeys(a, b, f.orient)
}

// Label concatenates the node's inherited common words, appending an
// ellipsis when children were collapsed by the bucket limit. The tree root
// and the non-words branch get special labels.
func (f *bagOfWords) Label(k model.Key) Label {
	if k.Kind != model.KeyNumber {
		return literalLabel(k)
	}
	id := f.tree.ByOrder(int(k.Num))
	if id == wordtree.None {
		return Label{Text: labelNone, Special: true}
	}
	node := f.tree.Node(id)
	if node.NonWords {
		return Label{Text: labelNonWords, Special: true}
	}
	if id == f.tree.Root() {
		return Label{Text: labelRoot, Special: true}
	}
	text := strings.Join(f.tree.InheritedCommonWords(id), " ")
	if len(node.Children) > 0 && node.Level+1 > f.buckets {
		text += "…"
	}
	return Label{Text: text}
}
