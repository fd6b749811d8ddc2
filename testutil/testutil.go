package testutil

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/hupe1980/facetgrid/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Categories are the string values used by RandomRecords.
var Categories = []string{
	"red store", "blue store", "green shop", "yellow market",
	"corner shop", "night market",
}

// RandomRecords generates num records with a numeric "price" field, a
// multi-word string "name" field, and a sparse "rating" field present on
// roughly half the records.
func (r *RNG) RandomRecords(num int) []model.Record {
	records := make([]model.Record, num)
	for i := range records {
		rec := model.Record{
			"price": model.Number(r.Float64() * 100),
			"name":  model.String(Categories[r.Intn(len(Categories))]),
		}
		if r.Intn(2) == 0 {
			rec["rating"] = model.Number(float64(r.Intn(5) + 1))
		}
		records[i] = rec
	}
	return records
}

// SequentialRecords generates num fully deterministic records without
// consuming RNG state: "id" counts up, "group" cycles g0..g(groups-1).
func SequentialRecords(num, groups int) []model.Record {
	records := make([]model.Record, num)
	for i := range records {
		records[i] = model.Record{
			"id":    model.Number(float64(i)),
			"group": model.String(fmt.Sprintf("g%d", i%groups)),
		}
	}
	return records
}
