package facet

import (
	"cmp"
	"strings"

	"github.com/hupe1980/facetgrid/model"
)

// Orientation names the grid axis a facet drives.
type Orientation uint8

const (
	// Vertical facets drive grid rows.
	Vertical Orientation = iota
	// Horizontal facets drive grid columns.
	Horizontal
)

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	if o == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// compareKeys is the shared key ordering. Numeric keys ascend on both axes;
// the non-numeric ordering (strings, then the catch-all, then null) flips on
// the vertical axis so a y-up renderer reads top to bottom naturally.
func compareKeys(a, b model.Key, o Orientation) int {
	if a.Kind == model.KeyNumber && b.Kind == model.KeyNumber {
		return cmp.Compare(a.Num, b.Num)
	}
	c := horizontalKeyCompare(a, b)
	if o == Vertical {
		return -c
	}
	return c
}

func horizontalKeyCompare(a, b model.Key) int {
	if r := cmp.Compare(kindRank(a.Kind), kindRank(b.Kind)); r != 0 {
		return r
	}
	switch a.Kind {
	case model.KeyNumber:
		return cmp.Compare(a.Num, b.Num)
	case model.KeyString:
		return strings.Compare(a.Str, b.Str)
	default:
		return 0
	}
}

func kindRank(k model.KeyKind) int {
	switch k {
	case model.KeyNumber:
		return 0
	case model.KeyString:
		return 1
	case model.KeyOther:
		return 2
	default:
		return 3
	}
}
