package facet

import (
	"sort"

	"github.com/hupe1980/facetgrid/model"
	"github.com/hupe1980/facetgrid/stats"
)

// topN keeps the most frequent values as named buckets and routes
// everything else to the reserved catch-all bucket.
type topN struct {
	orient  Orientation
	allowed map[string]struct{}
}

func newTopN(fs *stats.FieldStats, spec Spec) *topN {
	type ranked struct {
		key   string
		bkey  model.Key
		count int
	}
	entries := make([]ranked, 0, len(fs.Hash))
	for key, e := range fs.Hash {
		bkey := literalKey(e.Value)
		if bkey.Kind != model.KeyNumber && bkey.Kind != model.KeyString {
			continue
		}
		entries = append(entries, ranked{key: key, bkey: bkey, count: e.Count})
	}
	// Most frequent first; the stable value key breaks count ties.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].key < entries[j].key
	})

	allowed := make(map[string]struct{}, spec.Buckets)
	for i := 0; i < len(entries) && i < spec.Buckets; i++ {
		allowed[entries[i].bkey.MapKey()] = struct{}{}
	}
	return &topN{orient: spec.Orientation, allowed: allowed}
}

func (f *topN) Kind() Kind { return KindTopN }

func (f *topN) Classify(v model.Value) model.Key {
	k := literalKey(v)
	if k.Kind != model.KeyNumber && k.Kind != model.KeyString {
		return model.OtherKey()
	}
	if _, ok := f.allowed[k.MapKey()]; !ok {
		return model.OtherKey()
	}
	return k
}

func (f *topN) Compare(a, b model.Key) int {
	return compareKeys(a, b, f.orient)
}

func (f *topN) Label(k model.Key) Label {
	return literalLabel(k)
}
