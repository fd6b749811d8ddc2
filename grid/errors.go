package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPositionSetter is returned by PositionItems when no position
	// setter was configured.
	ErrNoPositionSetter = errors.New("grid: no position setter configured")
	// ErrNilLayout is returned when a nil layout is passed to
	// PositionItems.
	ErrNilLayout = errors.New("grid: nil layout")
)

// ErrInvalidAspectRange indicates an unusable cell aspect ratio range.
type ErrInvalidAspectRange struct {
	Min float64
	Max float64
}

func (e *ErrInvalidAspectRange) Error() string {
	return fmt.Sprintf("grid: invalid cell aspect range [%g, %g]", e.Min, e.Max)
}

// ErrInvalidAspect indicates a non-positive aspect ratio setting.
type ErrInvalidAspect struct {
	Name  string
	Value float64
}

func (e *ErrInvalidAspect) Error() string {
	return fmt.Sprintf("grid: invalid %s aspect ratio %g", e.Name, e.Value)
}

// ErrItemCountMismatch indicates that PositionItems was called with an item
// collection of a different size than the one the layout was arranged from.
type ErrItemCountMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrItemCountMismatch) Error() string {
	return fmt.Sprintf("grid: item count mismatch: layout was arranged from %d items, got %d", e.Expected, e.Actual)
}
