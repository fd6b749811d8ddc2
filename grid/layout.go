package grid

import (
	"github.com/hupe1980/facetgrid/model"
)

// Direction names one of the four cell neighbors. The coordinate space is
// y-up: Above is +y, Right is +x.
type Direction uint8

const (
	// Above is the neighbor at +y in the same column.
	Above Direction = iota
	// Below is the neighbor at -y in the same column.
	Below
	// Left is the neighbor at -x in the same row.
	Left
	// Right is the neighbor at +x in the same row.
	Right
)

// Padding is the per-cell inset between the cell border and its content
// rectangle, in item-height units.
type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformPadding returns a Padding with the same inset on all sides.
func UniformPadding(p float64) Padding {
	return Padding{Top: p, Right: p, Bottom: p, Left: p}
}

// Alignment is the row/column sizing mode of one axis.
type Alignment uint8

const (
	// Tight sizes each row or column to its contents.
	Tight Alignment = iota
	// Uniform forces equal sizing across the axis.
	Uniform
)

// Cell is one grid bucket's container, identified by its vertical and
// horizontal keys. All geometry is in item-height units with a y-up origin
// at the bottom-left of the grid.
type Cell struct {
	// VKey and HKey identify the bucket.
	VKey model.Key
	HKey model.Key
	// Row and Col are the cell's coordinates in the layout; row 0 is the
	// bottom row, column 0 the leftmost column.
	Row int
	Col int
	// Items are indices into the arranged item collection, in bucket
	// order.
	Items []int
	// X, Y, Width and Height are the outer cell rectangle.
	X      float64
	Y      float64
	Width  float64
	Height float64
	// ContentX, ContentY, InnerWidth and InnerHeight are the content
	// rectangle after padding. Width == InnerWidth + left + right
	// padding, and likewise for the height.
	ContentX    float64
	ContentY    float64
	InnerWidth  float64
	InnerHeight float64
	// MinWidth and MinHeight are the cell's own space requirements,
	// before rows and columns are stretched to per-axis maxima.
	MinWidth  float64
	MinHeight float64
	// Columns is the item grid width the cell was packed with.
	Columns int
}

// Count returns the number of items bucketed into the cell.
func (c *Cell) Count() int { return len(c.Items) }

type cellKey struct {
	v string
	h string
}

// Layout is the immutable result of one Arrange run: the discovered key
// sets per axis, every cell's geometry, and the chosen shared cell aspect
// ratio. Neighbor relationships are coordinate lookups into the cell index,
// not object links.
type Layout struct {
	// VerticalKeys and HorizontalKeys are the discovered bucket keys per
	// axis, in compare order. Row i carries VerticalKeys[i].
	VerticalKeys   []model.Key
	HorizontalKeys []model.Key
	// CellAspect is the shared cell aspect ratio the optimizer settled
	// on.
	CellAspect float64
	// RowHeights and ColWidths are the per-axis cell sizes.
	RowHeights []float64
	ColWidths  []float64
	// Width and Height are the whole-grid bounds including inter-cell
	// margins.
	Width  float64
	Height float64
	// Padding and Margin echo the engine configuration the layout was
	// computed with.
	Padding Padding
	Margin  float64

	cells     []*Cell // row-major
	byKey     map[cellKey]*Cell
	itemCount int
}

// Rows returns the number of rows.
func (l *Layout) Rows() int { return len(l.VerticalKeys) }

// Cols returns the number of columns.
func (l *Layout) Cols() int { return len(l.HorizontalKeys) }

// Cells returns all cells in row-major order. The slice is shared layout
// state and must be treated as read-only.
func (l *Layout) Cells() []*Cell { return l.cells }

// CellAt returns the cell at (row, col), or nil when out of range.
func (l *Layout) CellAt(row, col int) *Cell {
	if row < 0 || row >= l.Rows() || col < 0 || col >= l.Cols() {
		return nil
	}
	return l.cells[row*l.Cols()+col]
}

// Cell returns the cell for a key pair, or nil when the keys were not
// discovered during arrangement.
func (l *Layout) Cell(vKey, hKey model.Key) *Cell {
	return l.byKey[cellKey{v: vKey.MapKey(), h: hKey.MapKey()}]
}

// Neighbor returns the cell adjacent to c in the given direction, or nil at
// the grid edge. An unrecognized direction is a programming-contract
// violation and panics.
func (l *Layout) Neighbor(c *Cell, d Direction) *Cell {
	switch d {
	case Above:
		return l.CellAt(c.Row+1, c.Col)
	case Below:
		return l.CellAt(c.Row-1, c.Col)
	case Left:
		return l.CellAt(c.Row, c.Col-1)
	case Right:
		return l.CellAt(c.Row, c.Col+1)
	default:
		panic("grid: unknown direction")
	}
}

// Bounds returns the whole-grid extent.
func (l *Layout) Bounds() (width, height float64) {
	return l.Width, l.Height
}
