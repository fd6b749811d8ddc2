package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindAbsent, "Absent"},
		{KindNumber, "Number"},
		{KindString, "String"},
		{KindOther, "Other"},
		{Kind(99), "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.kind.String())
	}
}

func TestFromAny(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		expected Value
	}{
		{"Nil", nil, Absent()},
		{"Float64", 3.5, Number(3.5)},
		{"Int", 7, Number(7)},
		{"Uint32", uint32(9), Number(9)},
		{"String", "hi", String("hi")},
		{"Bool", true, Other()},
		{"Slice", []int{1}, Other()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromAny(tt.in))
		})
	}
}

func TestValueKeyDistinct(t *testing.T) {
	// The number 7 and the string "7" must not collide.
	assert.NotEqual(t, Number(7).Key(), String("7").Key())
	assert.NotEqual(t, Number(1).Key(), Number(2).Key())
	assert.NotEqual(t, Other().Key(), Absent().Key())

	// Identical values share a key.
	assert.Equal(t, Number(1.5).Key(), Number(1.5).Key())
	assert.Equal(t, String("a b").Key(), String("a b").Key())
}

func TestValueKeyNaN(t *testing.T) {
	// NaN values still get a stable key.
	assert.Equal(t, Number(math.NaN()).Key(), Number(math.NaN()).Key())
}

func TestRecordGet(t *testing.T) {
	r := Record{"a": Number(1)}

	assert.Equal(t, Number(1), r.Get("a"))
	assert.True(t, r.Get("missing").IsAbsent())

	var nilRec Record
	assert.True(t, nilRec.Get("a").IsAbsent())
}

func TestRecordFromAny(t *testing.T) {
	r := RecordFromAny(map[string]any{
		"price": 9.5,
		"name":  "corner shop",
		"flag":  true,
	})

	assert.Equal(t, Number(9.5), r["price"])
	assert.Equal(t, String("corner shop"), r["name"])
	assert.Equal(t, Other(), r["flag"])
}

func TestKeyMapKeyDistinct(t *testing.T) {
	keys := []Key{NumberKey(0), NumberKey(1), StringKey("0"), StringKey(""), OtherKey(), NoneKey()}
	seen := make(map[string]struct{})
	for _, k := range keys {
		_, dup := seen[k.MapKey()]
		assert.False(t, dup, "duplicate map key for %v", k)
		seen[k.MapKey()] = struct{}{}
	}
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "1.5", NumberKey(1.5).String())
	assert.Equal(t, "a", StringKey("a").String())
	assert.Equal(t, "(other)", OtherKey().String())
	assert.Equal(t, "(none)", NoneKey().String())
}
