package facet

import (
	"github.com/hupe1980/facetgrid/model"
	"github.com/hupe1980/facetgrid/stats"
)

// Kind identifies the bucketing mode chosen for a facet.
type Kind uint8

const (
	// KindIdentity buckets everything into a single empty bucket.
	KindIdentity Kind = iota
	// KindBagOfWords buckets by word tree node.
	KindBagOfWords
	// KindLiteral buckets by the literal value (few unique values).
	KindLiteral
	// KindNumericRange buckets by equal-width numeric ranges.
	KindNumericRange
	// KindTopN buckets by the most frequent values plus a catch-all.
	KindTopN
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindIdentity:
		return "Identity"
	case KindBagOfWords:
		return "BagOfWords"
	case KindLiteral:
		return "Literal"
	case KindNumericRange:
		return "NumericRange"
	case KindTopN:
		return "TopN"
	default:
		return "Unknown"
	}
}

// Label is a human-readable bucket label. Special marks synthesized labels
// (catch-all buckets, null buckets, tree branches) that renderers may style
// differently.
type Label struct {
	Text    string
	Special bool
}

// Facetizer classifies values into bucket keys, orders keys, and labels
// them. Implementations are immutable and safe for concurrent use.
type Facetizer interface {
	// Kind reports the bucketing mode.
	Kind() Kind
	// Classify maps a field value to its bucket key.
	Classify(v model.Value) model.Key
	// Compare orders two bucket keys; negative, zero or positive like
	// strings.Compare.
	Compare(a, b model.Key) int
	// Label renders a bucket key for display.
	Label(k model.Key) Label
}

// Spec describes one requested facet axis.
type Spec struct {
	// Field is the faceted field name.
	Field string
	// Buckets is the maximum bucket count for the axis.
	Buckets int
	// BagOfWords requests word tree bucketing for multi-word string
	// fields.
	BagOfWords bool
	// Orientation is the axis the facet drives.
	Orientation Orientation
}

// New derives the facetizer for one axis from the field's statistics.
//
// Decision order: unknown field or bucket count < 1 degrades to a single
// bucket; a usable word tree honors a bag-of-words request; few unique
// values bucket literally; a numeric field with a real range buckets by
// equal-width ranges; everything else keeps the top-N values plus a
// catch-all.
func New(s stats.Stats, spec Spec) Facetizer {
	fs := s.Field(spec.Field)
	if fs == nil || spec.Buckets < 1 {
		return Identity()
	}
	if spec.BagOfWords && fs.Tree != nil && fs.Tree.MaxLevel() > 1 {
		return &bagOfWords{tree: fs.Tree, buckets: spec.Buckets, orient: spec.Orientation}
	}
	if fs.UniqueCount() <= spec.Buckets {
		return &literal{orient: spec.Orientation}
	}
	if fs.IsNumeric() {
		return newNumericRange(fs, spec)
	}
	return newTopN(fs, spec)
}

// Identity returns the degenerate facetizer: a single empty bucket.
func Identity() Facetizer { return identity{} }

type identity struct{}

func (identity) Kind() Kind { return KindIdentity }

func (identity) Classify(model.Value) model.Key { return model.NoneKey() }

func (identity) Compare(model.Key, model.Key) int { return 0 }

func (identity) Label(model.Key) Label { return Label{Text: labelAll, Special: true} }

const (
	labelAll      = "(all)"
	labelNone     = "(none)"
	labelOther    = "other"
	labelRoot     = "(other)"
	labelNonWords = "(non-words)"
)
