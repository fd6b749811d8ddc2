package model

import (
	"math"
	"strconv"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindAbsent represents a missing or null field value.
	KindAbsent Kind = iota
	// KindNumber represents a numeric value.
	KindNumber
	// KindString represents a string value.
	KindString
	// KindOther represents a scalar that is neither a number nor a string.
	KindOther
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "Absent"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// Value is a small typed scalar used for record fields.
//
// The representation is designed to make statistics collection fast and
// predictable: no reflection and no fmt-based stringification.
type Value struct {
	Kind Kind
	F64  float64
	Str  string
}

// Number creates a numeric Value.
func Number(f float64) Value {
	return Value{Kind: KindNumber, F64: f}
}

// String creates a string Value.
func String(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// Other creates a Value for a scalar that is neither a number nor a string.
func Other() Value {
	return Value{Kind: KindOther}
}

// Absent creates a Value for a missing or null field.
func Absent() Value {
	return Value{Kind: KindAbsent}
}

// FromAny coerces an arbitrary scalar into a Value. Numbers of any width map
// to KindNumber, strings to KindString, nil to KindAbsent, and everything
// else to KindOther.
func FromAny(v any) Value {
	switch t := v.(type) {
	case nil:
		return Absent()
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int8:
		return Number(float64(t))
	case int16:
		return Number(float64(t))
	case int32:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case uint:
		return Number(float64(t))
	case uint8:
		return Number(float64(t))
	case uint16:
		return Number(float64(t))
	case uint32:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case string:
		return String(t)
	default:
		return Other()
	}
}

// IsNumber reports whether the value is numeric.
func (v Value) IsNumber() bool { return v.Kind == KindNumber }

// IsString reports whether the value is a string.
func (v Value) IsString() bool { return v.Kind == KindString }

// IsAbsent reports whether the value is missing.
func (v Value) IsAbsent() bool { return v.Kind == KindAbsent }

// Key returns a stable type+value composite representation for use in maps.
//
// It is intended for internal indexing (value hashes, bucket maps) and must
// remain stable: distinct (kind, value) pairs yield distinct keys.
func (v Value) Key() string {
	switch v.Kind {
	case KindNumber:
		return "n:" + strconv.FormatUint(math.Float64bits(v.F64), 16)
	case KindString:
		return "s:" + v.Str
	case KindOther:
		return "o:"
	default:
		return "x:"
	}
}

// String returns a display representation of the value.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.F64, 'f', -1, 64)
	case KindString:
		return v.Str
	case KindOther:
		return "(other)"
	default:
		return "(absent)"
	}
}

// Record represents one flat data record: a mapping from field name to a
// scalar value. Records are owned by the caller and are never mutated here.
type Record map[string]Value

// Get returns the value for field, or an absent Value when the field is not
// present on this record.
func (r Record) Get(field string) Value {
	if v, ok := r[field]; ok {
		return v
	}
	return Absent()
}

// RecordFromAny coerces a generic map (e.g. decoded JSON) into a Record.
func RecordFromAny(m map[string]any) Record {
	r := make(Record, len(m))
	for k, v := range m {
		r[k] = FromAny(v)
	}
	return r
}

// KeyKind identifies the concrete type stored in a Key.
type KeyKind uint8

const (
	// KeyNone represents the null bucket key.
	KeyNone KeyKind = iota
	// KeyNumber represents a numeric bucket key.
	KeyNumber
	// KeyString represents a string bucket key.
	KeyString
	// KeyOther represents the reserved catch-all bucket used by top-N
	// categorical faceting for values outside the named buckets.
	KeyOther
)

// Key is a bucket identifier along one facet axis. It is used both to group
// items and to sort and label buckets.
type Key struct {
	Kind KeyKind
	Num  float64
	Str  string
}

// NumberKey creates a numeric Key.
func NumberKey(f float64) Key {
	return Key{Kind: KeyNumber, Num: f}
}

// StringKey creates a string Key.
func StringKey(s string) Key {
	return Key{Kind: KeyString, Str: s}
}

// OtherKey creates the reserved catch-all Key.
func OtherKey() Key {
	return Key{Kind: KeyOther}
}

// NoneKey creates the null Key.
func NoneKey() Key {
	return Key{Kind: KeyNone}
}

// MapKey returns a stable composite representation for use in maps.
// Distinct keys yield distinct map keys.
func (k Key) MapKey() string {
	switch k.Kind {
	case KeyNumber:
		return "n:" + strconv.FormatUint(math.Float64bits(k.Num), 16)
	case KeyString:
		return "s:" + k.Str
	case KeyOther:
		return "o:"
	default:
		return "x:"
	}
}

// String returns a display representation of the key.
func (k Key) String() string {
	switch k.Kind {
	case KeyNumber:
		return strconv.FormatFloat(k.Num, 'f', -1, 64)
	case KeyString:
		return k.Str
	case KeyOther:
		return "(other)"
	default:
		return "(none)"
	}
}
