package facet

import (
	"math"
	"strconv"

	"github.com/hupe1980/facetgrid/model"
	"github.com/hupe1980/facetgrid/stats"
)

// numericRange divides the nicely rounded [min, max] of a numeric field
// into equal-width buckets keyed by bucket index.
type numericRange struct {
	orient  Orientation
	buckets int
	min     float64
	max     float64
	labels  []string
}

func newNumericRange(fs *stats.FieldStats, spec Spec) *numericRange {
	lo, hi := niceRange(fs.Min, fs.Max)
	return &numericRange{
		orient:  spec.Orientation,
		buckets: spec.Buckets,
		min:     lo,
		max:     hi,
		labels:  rangeLabels(lo, hi, spec.Buckets, fs.IsInteger()),
	}
}

func (f *numericRange) Kind() Kind { return KindNumericRange }

// Classify maps a numeric value to its bucket index. Non-numeric values
// pass through unchanged as special keys; NaN joins the null bucket.
func (f *numericRange) Classify(v model.Value) model.Key {
	switch v.Kind {
	case model.KindNumber:
		if math.IsNaN(v.F64) {
			return model.NoneKey()
		}
		idx := math.Floor(float64(f.buckets) * (v.F64 - f.min) / (f.max - f.min))
		if idx < 0 || math.IsNaN(idx) {
			idx = 0
		}
		if idx > float64(f.buckets-1) {
			idx = float64(f.buckets - 1)
		}
		return model.NumberKey(idx)
	case model.KindString:
		return model.StringKey(v.Str)
	default:
		return model.NoneKey()
	}
}

func (f *numericRange) Compare(a, b model.Key) int {
	return compareKeys(a, b, f.orient)
}

func (f *numericRange) Label(k model.Key) Label {
	switch k.Kind {
	case model.KeyNumber:
		idx := int(k.Num)
		if idx >= 0 && idx < len(f.labels) {
			return Label{Text: f.labels[idx]}
		}
		return Label{Text: strconv.FormatFloat(k.Num, 'f', -1, 64)}
	case model.KeyString:
		return Label{Text: k.Str, Special: true}
	case model.KeyOther:
		return Label{Text: labelOther, Special: true}
	default:
		return Label{Text: labelNone, Special: true}
	}
}

// niceRange widens [min, max] to boundaries aligned on the power of ten
// just below the span. A span of 8 aligns on 1 and leaves [1, 9] untouched;
// a span of 9.74 over [0.13, 9.87] tidies to [0, 10].
func niceRange(min, max float64) (float64, float64) {
	span := max - min
	if span <= 0 || math.IsInf(span, 0) || math.IsNaN(span) {
		return min, max
	}
	step := math.Pow(10, math.Floor(math.Log10(span)))
	return math.Floor(min/step) * step, math.Ceil(max/step) * step
}

// rangeLabels renders one "lo - hi" label per bucket, at the minimum
// decimal precision keeping adjacent boundaries textually distinct.
// All-integer fields round boundaries to integers first.
func rangeLabels(min, max float64, n int, integer bool) []string {
	bounds := make([]float64, n+1)
	for i := range bounds {
		bounds[i] = min + (max-min)*float64(i)/float64(n)
	}

	if integer {
		rounded := make([]string, n+1)
		for i, b := range bounds {
			rounded[i] = strconv.FormatFloat(math.Round(b), 'f', -1, 64)
		}
		if adjacentDistinct(rounded) {
			return joinBounds(rounded)
		}
	}

	// Search precision 1..100 for the first that separates every pair of
	// adjacent boundaries.
	for p := 1; p <= 100; p++ {
		strs := make([]string, n+1)
		for i, b := range bounds {
			strs[i] = strconv.FormatFloat(b, 'f', p, 64)
		}
		if p == 100 || adjacentDistinct(strs) {
			return joinBounds(strs)
		}
	}
	return nil // unreachable
}

func adjacentDistinct(strs []string) bool {
	for i := 1; i < len(strs); i++ {
		if strs[i] == strs[i-1] {
			return false
		}
	}
	return true
}

func joinBounds(strs []string) []string {
	labels := make([]string, len(strs)-1)
	for i := range labels {
		labels[i] = strs[i] + " - " + strs[i+1]
	}
	return labels
}
