package grid

import "math"

// Placement computes a cell-relative position in [0, 1] x [0, 1] for one
// item. index is the item's position in the cell's (optionally sorted) item
// list, count the cell's item total, and columns the item grid width the
// cell was packed with.
type Placement interface {
	Position(index, count, columns int) (x, y float64)
}

// StackPlacement stacks items into rows, bottom to top and left to right.
// It is the default placement.
type StackPlacement struct{}

// Position implements Placement.
func (StackPlacement) Position(index, count, columns int) (x, y float64) {
	if count <= 0 || columns <= 0 {
		return 0, 0
	}
	rows := (count + columns - 1) / columns
	col := index % columns
	row := index / columns
	return float64(col) / float64(columns), float64(row) / float64(rows)
}

// ScatterPlacement spreads items over an index-derived square grid,
// ignoring the cell's packing columns.
type ScatterPlacement struct{}

// Position implements Placement.
func (ScatterPlacement) Position(index, count, columns int) (x, y float64) {
	if count <= 0 {
		return 0, 0
	}
	side := int(math.Ceil(math.Sqrt(float64(count))))
	if side < 1 {
		side = 1
	}
	return float64(index%side) / float64(side), float64((index/side)%side) / float64(side)
}
