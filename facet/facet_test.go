package facet

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/facetgrid/model"
	"github.com/hupe1980/facetgrid/stats"
)

func scenarioStats() stats.Stats {
	return stats.Collect([]model.Record{
		{"x": model.Number(1), "category": model.String("a")},
		{"x": model.Number(5), "category": model.String("b")},
		{"x": model.Number(9), "category": model.String("a")},
	})
}

func TestNewIdentityFallbacks(t *testing.T) {
	s := scenarioStats()

	tests := []struct {
		name string
		spec Spec
	}{
		{"UnknownField", Spec{Field: "missing", Buckets: 3}},
		{"ZeroBuckets", Spec{Field: "x", Buckets: 0}},
		{"NegativeBuckets", Spec{Field: "x", Buckets: -1}},
		{"NilStats", Spec{Field: "x", Buckets: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := s
			if tt.name == "NilStats" {
				in = nil
			}
			f := New(in, tt.spec)
			assert.Equal(t, KindIdentity, f.Kind())
			assert.Equal(t, model.NoneKey(), f.Classify(model.Number(1)))
			assert.Zero(t, f.Compare(model.NoneKey(), model.StringKey("a")))
			assert.Equal(t, Label{Text: "(all)", Special: true}, f.Label(model.NoneKey()))
		})
	}
}

func TestNewDecisionOrder(t *testing.T) {
	s := scenarioStats()

	// Few unique values bucket literally, even for numbers.
	assert.Equal(t, KindLiteral, New(s, Spec{Field: "category", Buckets: 2}).Kind())
	assert.Equal(t, KindLiteral, New(s, Spec{Field: "x", Buckets: 3}).Kind())

	// More unique numeric values than buckets range-bucket.
	assert.Equal(t, KindNumericRange, New(s, Spec{Field: "x", Buckets: 2}).Kind())

	// Non-numeric overflow falls back to top-N.
	assert.Equal(t, KindTopN, New(s, Spec{Field: "category", Buckets: 1}).Kind())
}

func TestLiteralFacet(t *testing.T) {
	s := scenarioStats()
	f := New(s, Spec{Field: "category", Buckets: 2, Orientation: Horizontal})

	assert.Equal(t, model.StringKey("a"), f.Classify(model.String("a")))
	assert.Equal(t, model.NumberKey(4), f.Classify(model.Number(4)))
	assert.Equal(t, model.NoneKey(), f.Classify(model.Absent()))

	assert.Negative(t, f.Compare(model.StringKey("a"), model.StringKey("b")))
	assert.Equal(t, Label{Text: "a"}, f.Label(model.StringKey("a")))
	assert.Equal(t, Label{Text: "4"}, f.Label(model.NumberKey(4)))
	assert.Equal(t, Label{Text: "(none)", Special: true}, f.Label(model.NoneKey()))
}

func TestCompareDirectionFlipsPerAxis(t *testing.T) {
	s := scenarioStats()
	horiz := New(s, Spec{Field: "category", Buckets: 2, Orientation: Horizontal})
	vert := New(s, Spec{Field: "category", Buckets: 2, Orientation: Vertical})

	a, b := model.StringKey("a"), model.StringKey("b")
	assert.Negative(t, horiz.Compare(a, b))
	assert.Positive(t, vert.Compare(a, b))

	// Special keys sort last horizontally, first vertically.
	assert.Negative(t, horiz.Compare(b, model.NoneKey()))
	assert.Positive(t, vert.Compare(b, model.NoneKey()))
	assert.Negative(t, horiz.Compare(model.OtherKey(), model.NoneKey()))

	// Numbers ascend on both axes.
	assert.Negative(t, horiz.Compare(model.NumberKey(1), model.NumberKey(2)))
	assert.Negative(t, vert.Compare(model.NumberKey(1), model.NumberKey(2)))
}

func TestNumericRangeScenario(t *testing.T) {
	s := scenarioStats()
	f := New(s, Spec{Field: "x", Buckets: 2})
	require.Equal(t, KindNumericRange, f.Kind())

	// classify(5) = floor(2*(5-1)/8) = 1
	assert.Equal(t, model.NumberKey(0), f.Classify(model.Number(1)))
	assert.Equal(t, model.NumberKey(1), f.Classify(model.Number(5)))
	assert.Equal(t, model.NumberKey(1), f.Classify(model.Number(9)))

	// All-integer boundaries label as integers.
	assert.Equal(t, Label{Text: "1 - 5"}, f.Label(model.NumberKey(0)))
	assert.Equal(t, Label{Text: "5 - 9"}, f.Label(model.NumberKey(1)))
}

func TestNumericRangeClassifyMonotonic(t *testing.T) {
	records := make([]model.Record, 0, 101)
	for i := 0; i <= 100; i++ {
		records = append(records, model.Record{"v": model.Number(float64(i) * 0.37)})
	}
	s := stats.Collect(records)
	f := New(s, Spec{Field: "v", Buckets: 7})
	require.Equal(t, KindNumericRange, f.Kind())

	prev := math.Inf(-1)
	for i := 0; i <= 100; i++ {
		k := f.Classify(model.Number(float64(i) * 0.37))
		require.Equal(t, model.KeyNumber, k.Kind)
		assert.GreaterOrEqual(t, k.Num, prev, "classify must be monotonic")
		assert.GreaterOrEqual(t, k.Num, 0.0)
		assert.Less(t, k.Num, 7.0)
		prev = k.Num
	}
}

func TestNumericRangeSpecialValues(t *testing.T) {
	s := scenarioStats()
	f := New(s, Spec{Field: "x", Buckets: 2})

	// Non-numeric values pass through unchanged as special keys.
	assert.Equal(t, model.StringKey("n/a"), f.Classify(model.String("n/a")))
	assert.Equal(t, model.NoneKey(), f.Classify(model.Absent()))
	assert.Equal(t, model.NoneKey(), f.Classify(model.Number(math.NaN())))

	// Out-of-range numbers clamp to the edge buckets.
	assert.Equal(t, model.NumberKey(0), f.Classify(model.Number(-1000)))
	assert.Equal(t, model.NumberKey(1), f.Classify(model.Number(1000)))

	assert.Equal(t, Label{Text: "n/a", Special: true}, f.Label(model.StringKey("n/a")))
	assert.Equal(t, Label{Text: "(none)", Special: true}, f.Label(model.NoneKey()))
}

func TestNumericRangeFractionalLabels(t *testing.T) {
	records := []model.Record{
		{"v": model.Number(0.13)},
		{"v": model.Number(3.4)},
		{"v": model.Number(7.2)},
		{"v": model.Number(9.87)},
	}
	s := stats.Collect(records)
	f := New(s, Spec{Field: "v", Buckets: 3})
	require.Equal(t, KindNumericRange, f.Kind())

	// Adjacent labels share their boundary text and stay distinct.
	var labels []string
	for i := 0; i < 3; i++ {
		l := f.Label(model.NumberKey(float64(i)))
		assert.False(t, l.Special)
		assert.NotEmpty(t, l.Text)
		labels = append(labels, l.Text)
	}
	assert.Len(t, uniqueStrings(labels), 3)
}

func TestTopNFacet(t *testing.T) {
	records := []model.Record{
		{"c": model.String("a")}, {"c": model.String("a")}, {"c": model.String("a")},
		{"c": model.String("b")}, {"c": model.String("b")},
		{"c": model.String("c")},
		{"c": model.String("d")},
	}
	s := stats.Collect(records)
	f := New(s, Spec{Field: "c", Buckets: 2, Orientation: Horizontal})
	require.Equal(t, KindTopN, f.Kind())

	// The two most frequent values keep named buckets.
	assert.Equal(t, model.StringKey("a"), f.Classify(model.String("a")))
	assert.Equal(t, model.StringKey("b"), f.Classify(model.String("b")))

	// Everything else lands in the reserved catch-all.
	assert.Equal(t, model.OtherKey(), f.Classify(model.String("c")))
	assert.Equal(t, model.OtherKey(), f.Classify(model.String("zzz")))
	assert.Equal(t, model.OtherKey(), f.Classify(model.Other()))

	assert.Equal(t, Label{Text: "other", Special: true}, f.Label(model.OtherKey()))
	assert.Negative(t, f.Compare(model.StringKey("a"), model.OtherKey()))
}

func TestTopNCountTieBreaksOnValue(t *testing.T) {
	records := []model.Record{
		{"c": model.String("b")}, {"c": model.String("a")},
		{"c": model.String("c")}, {"c": model.String("d")},
	}
	s := stats.Collect(records)
	f := New(s, Spec{Field: "c", Buckets: 2})

	assert.Equal(t, model.StringKey("a"), f.Classify(model.String("a")))
	assert.Equal(t, model.StringKey("b"), f.Classify(model.String("b")))
	assert.Equal(t, model.OtherKey(), f.Classify(model.String("c")))
}

func bagOfWordsStats() stats.Stats {
	return stats.Collect([]model.Record{
		{"name": model.String("red store")},
		{"name": model.String("blue store")},
		{"name": model.String("green shop")},
	})
}

func TestBagOfWordsFacet(t *testing.T) {
	s := bagOfWordsStats()
	f := New(s, Spec{Field: "name", Buckets: 2, BagOfWords: true, Orientation: Horizontal})
	require.Equal(t, KindBagOfWords, f.Kind())

	// Both "store" values collapse into the level-2 store branch;
	// "green shop" stays at the root bucket.
	red := f.Classify(model.String("red store"))
	blue := f.Classify(model.String("blue store"))
	green := f.Classify(model.String("green shop"))

	assert.Equal(t, red, blue)
	assert.NotEqual(t, red, green)
	assert.Equal(t, model.NumberKey(0), green, "root has depth-first order 0")

	// Unknown values land at the root.
	assert.Equal(t, green, f.Classify(model.String("never seen")))

	// The store branch label carries the split word; collapsed children
	// append an ellipsis.
	storeLabel := f.Label(red)
	assert.Contains(t, storeLabel.Text, "store")
	assert.Contains(t, storeLabel.Text, "…")
	assert.False(t, storeLabel.Special)

	assert.Equal(t, Label{Text: "(other)", Special: true}, f.Label(green))
}

func TestBagOfWordsCompareFlips(t *testing.T) {
	s := bagOfWordsStats()
	horiz := New(s, Spec{Field: "name", Buckets: 2, BagOfWords: true, Orientation: Horizontal})
	vert := New(s, Spec{Field: "name", Buckets: 2, BagOfWords: true, Orientation: Vertical})

	a, b := model.NumberKey(0), model.NumberKey(1)
	assert.Negative(t, horiz.Compare(a, b))
	assert.Positive(t, vert.Compare(a, b))
}

func TestBagOfWordsRequiresUsableTree(t *testing.T) {
	// Single-word values build no tree; the request degrades to the
	// regular decision chain.
	s := stats.Collect([]model.Record{
		{"name": model.String("red")},
		{"name": model.String("blue")},
	})
	f := New(s, Spec{Field: "name", Buckets: 2, BagOfWords: true})
	assert.Equal(t, KindLiteral, f.Kind())
}

func TestBagOfWordsNonWordsBucket(t *testing.T) {
	s := stats.Collect([]model.Record{
		{"name": model.String("red store")},
		{"name": model.String("blue store")},
		{"name": model.Number(42)},
	})
	f := New(s, Spec{Field: "name", Buckets: 5, BagOfWords: true})
	require.Equal(t, KindBagOfWords, f.Kind())

	k := f.Classify(model.Number(42))
	assert.NotEqual(t, f.Classify(model.String("red store")), k)
	assert.Equal(t, Label{Text: "(non-words)", Special: true}, f.Label(k))
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindIdentity, "Identity"},
		{KindBagOfWords, "BagOfWords"},
		{KindLiteral, "Literal"},
		{KindNumericRange, "NumericRange"},
		{KindTopN, "TopN"},
		{Kind(99), "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.kind.String())
	}
}

func TestNiceRange(t *testing.T) {
	tests := []struct {
		name             string
		min, max         float64
		wantMin, wantMax float64
	}{
		{"ScenarioUntouched", 1, 9, 1, 9},
		{"FractionalTidied", 0.13, 9.87, 0, 10},
		{"Degenerate", 5, 5, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := niceRange(tt.min, tt.max)
			assert.InDelta(t, tt.wantMin, lo, 1e-9)
			assert.InDelta(t, tt.wantMax, hi, 1e-9)
		})
	}
}

func uniqueStrings(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	n := 0
	for i, s := range out {
		if i == 0 || s != out[i-1] {
			out[n] = s
			n++
		}
	}
	return out[:n]
}
