package stats

import (
	"context"
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/facetgrid/model"
	"github.com/hupe1980/facetgrid/wordtree"
)

// ValueEntry holds the accumulated state for one distinct (type, value) pair
// of a field.
type ValueEntry struct {
	// Value is the original value.
	Value model.Value
	// Count is the number of occurrences across the record set.
	Count int
	// Words maps each word of a string value to its in-value occurrence
	// count. Nil for non-string values.
	Words map[string]int
}

// ValueHash maps a type+value composite key (model.Value.Key) to its entry.
//
// Invariant: the entry counts sum to the field's TotalCount.
type ValueHash map[string]*ValueEntry

// FieldStats holds descriptive statistics for one field across a record
// collection. It is recomputed wholesale per run and immutable thereafter.
type FieldStats struct {
	// Field is the field name.
	Field string

	// TotalCount is the number of records where the field is present.
	TotalCount int

	// NumberCount, StringCount and OtherCount partition TotalCount by type.
	NumberCount int
	StringCount int
	OtherCount  int

	// IntegerCount is the number of numeric occurrences that were strict
	// integers.
	IntegerCount int

	// Min and Max are the numeric extrema, ignoring NaN and infinities.
	// When no finite numeric value was seen, Min is +Inf and Max is -Inf.
	Min float64
	Max float64

	// MinLength and MaxLength are the string length extrema in runes.
	// Both are -1 when no string value was seen.
	MinLength int
	MaxLength int

	// LengthHist maps string length to its occurrence multiplicity.
	LengthHist map[int]int

	// MultiwordCount is the number of distinct string values containing
	// more than one word.
	MultiwordCount int

	// Words maps each word to the number of in-value occurrences,
	// accumulated once per distinct string value.
	Words map[string]int

	// Hash indexes every distinct (type, value) pair of the field.
	Hash ValueHash

	// Tree is the hierarchical word decomposition of the field's string
	// values. Nil unless MultiwordCount is nonzero.
	Tree *wordtree.Tree

	totalLength int
}

func newFieldStats(field string) *FieldStats {
	return &FieldStats{
		Field:      field,
		Min:        math.Inf(1),
		Max:        math.Inf(-1),
		MinLength:  -1,
		MaxLength:  -1,
		LengthHist: make(map[int]int),
		Words:      make(map[string]int),
		Hash:       make(ValueHash),
	}
}

// add accumulates one field occurrence.
func (s *FieldStats) add(v model.Value) {
	s.TotalCount++

	switch v.Kind {
	case model.KindNumber:
		s.NumberCount++
		f := v.F64
		if !math.IsNaN(f) && !math.IsInf(f, 0) {
			if f < s.Min {
				s.Min = f
			}
			if f > s.Max {
				s.Max = f
			}
			if f == math.Trunc(f) {
				s.IntegerCount++
			}
		}
	case model.KindString:
		s.StringCount++
		l := runeLen(v.Str)
		if s.MinLength < 0 || l < s.MinLength {
			s.MinLength = l
		}
		if l > s.MaxLength {
			s.MaxLength = l
		}
		s.totalLength += l
		s.LengthHist[l]++
	default:
		s.OtherCount++
	}

	key := v.Key()
	entry, ok := s.Hash[key]
	if !ok {
		entry = &ValueEntry{Value: v}
		if v.Kind == model.KindString {
			// Tokenize once per distinct value.
			words, total := wordCounts(v.Str)
			entry.Words = words
			if total > 1 {
				s.MultiwordCount++
			}
			for w, c := range words {
				s.Words[w] += c
			}
		}
		s.Hash[key] = entry
	}
	entry.Count++
}

// finish derives post-pass state; currently the word tree.
func (s *FieldStats) finish() {
	if s.MultiwordCount == 0 {
		return
	}
	s.Tree = wordtree.Build(s.treeEntries())
}

// treeEntries converts the value hash into sorted word tree input.
func (s *FieldStats) treeEntries() []wordtree.Entry {
	keys := make([]string, 0, len(s.Hash))
	for k := range s.Hash {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]wordtree.Entry, 0, len(keys))
	for _, k := range keys {
		e := s.Hash[k]
		entries = append(entries, wordtree.Entry{
			Key:   k,
			Count: e.Count,
			Words: e.Words,
		})
	}
	return entries
}

// UniqueCount returns the number of distinct (type, value) pairs.
func (s *FieldStats) UniqueCount() int {
	return len(s.Hash)
}

// IsNumeric reports whether the field should follow the numeric faceting
// path. A field with a single repeated value is not numeric; it follows the
// few-unique-values categorical path instead.
func (s *FieldStats) IsNumeric() bool {
	return s.NumberCount > 0 && s.Max > s.Min
}

// IsInteger reports whether every numeric occurrence was a strict integer.
func (s *FieldStats) IsInteger() bool {
	return s.NumberCount > 0 && s.IntegerCount == s.NumberCount
}

// MeanLength returns the mean string length in runes, or 0 when the field
// has no string values.
func (s *FieldStats) MeanLength() float64 {
	if s.StringCount == 0 {
		return 0
	}
	return float64(s.totalLength) / float64(s.StringCount)
}

// Stats maps field names to their statistics.
type Stats map[string]*FieldStats

// Field returns the statistics for a field, or nil when unknown.
func (s Stats) Field(name string) *FieldStats {
	return s[name]
}

// Fields returns the field names in sorted order.
func (s Stats) Fields() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Collect streams over records and accumulates per-field statistics,
// visiting every (field, value) pair exactly once. A field that is absent on
// some records is simply uncounted for those records. An empty or nil record
// collection yields an empty map.
func Collect(records []model.Record) Stats {
	out := make(Stats)
	for _, rec := range records {
		for field, v := range rec {
			if v.IsAbsent() {
				continue
			}
			fs, ok := out[field]
			if !ok {
				fs = newFieldStats(field)
				out[field] = fs
			}
			fs.add(v)
		}
	}
	for _, fs := range out {
		fs.finish()
	}
	return out
}

// CollectContext is the parallel variant of Collect. Per-field accumulation
// is independent across fields, so each field is processed by its own
// goroutine, bounded by parallelism (runtime.GOMAXPROCS(0) when
// parallelism <= 0). The result is identical to Collect.
func CollectContext(ctx context.Context, records []model.Record, parallelism int) (Stats, error) {
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	// Field discovery pass.
	seen := make(map[string]struct{})
	fields := make([]string, 0)
	for _, rec := range records {
		for field := range rec {
			if _, ok := seen[field]; !ok {
				seen[field] = struct{}{}
				fields = append(fields, field)
			}
		}
	}
	sort.Strings(fields)

	results := make([]*FieldStats, len(fields))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i, field := range fields {
		i, field := i, field
		g.Go(func() error {
			fs := newFieldStats(field)
			for j, rec := range records {
				if j%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				if v, ok := rec[field]; ok && !v.IsAbsent() {
					fs.add(v)
				}
			}
			fs.finish()
			if fs.TotalCount > 0 {
				results[i] = fs
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(Stats, len(results))
	for _, fs := range results {
		if fs != nil {
			out[fs.Field] = fs
		}
	}
	return out, nil
}
