package facet

import (
	"strconv"

	"github.com/hupe1980/facetgrid/model"
)

// literal buckets by the exact value; used when the field has no more
// distinct values than requested buckets.
type literal struct {
	orient Orientation
}

func (f *literal) Kind() Kind { return KindLiteral }

func (f *literal) Classify(v model.Value) model.Key {
	return literalKey(v)
}

func (f *literal) Compare(a, b model.Key) int {
	return compareKeys(a, b, f.orient)
}

func (f *literal) Label(k model.Key) Label {
	return literalLabel(k)
}

// literalKey maps a value to its identity bucket key. Values that are
// neither numbers nor strings share the null bucket.
func literalKey(v model.Value) model.Key {
	switch v.Kind {
	case model.KindNumber:
		return model.NumberKey(v.F64)
	case model.KindString:
		return model.StringKey(v.Str)
	default:
		return model.NoneKey()
	}
}

func literalLabel(k model.Key) Label {
	switch k.Kind {
	case model.KeyNumber:
		return Label{Text: strconv.FormatFloat(k.Num, 'f', -1, 64)}
	case model.KeyString:
		return Label{Text: k.Str}
	case model.KeyOther:
		return Label{Text: labelOther, Special: true}
	default:
		return Label{Text: labelNone, Special: true}
	}
}
