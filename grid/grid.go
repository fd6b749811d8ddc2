package grid

import (
	"math"
	"slices"

	"github.com/hupe1980/facetgrid/facet"
	"github.com/hupe1980/facetgrid/model"
)

// Defaults for engine options, in item-height units where applicable.
const (
	DefaultTargetAspect  = 1.0
	DefaultMinCellAspect = 0.2
	DefaultMaxCellAspect = 5.0
	DefaultItemAspect    = 1.0
	DefaultMargin        = 0.25
)

// DefaultPadding is the default per-cell content inset.
var DefaultPadding = UniformPadding(0.25)

// Axis configures one facet axis of the grid.
type Axis[T any] struct {
	// Facet is the (classify, compare, label) triple driving the axis.
	// Nil degrades to the single-bucket identity facet.
	Facet facet.Facetizer
	// Value extracts the faceted value from an item. Nil reads every
	// item as absent.
	Value func(T) model.Value
	// Alignment selects Tight (size to contents) or Uniform (equal
	// sizing across the axis).
	Alignment Alignment
}

// Engine lays out items into a 2D faceted grid. It is immutable after New;
// Arrange is a pure function of the engine configuration and the item
// collection, so a single engine may arrange concurrently.
type Engine[T any] struct {
	vertical   Axis[T]
	horizontal Axis[T]

	targetAspect  float64
	minCellAspect float64
	maxCellAspect float64
	itemAspect    float64
	margin        float64
	padding       Padding

	placement   Placement
	setPosition func(item T, x, y float64)
	sortItems   func(a, b T) int
}

// Option configures an Engine.
type Option[T any] func(*Engine[T])

// WithTargetAspect sets the target whole-grid aspect ratio (width over
// height), typically the renderer's viewport aspect.
func WithTargetAspect[T any](aspect float64) Option[T] {
	return func(e *Engine[T]) {
		e.targetAspect = aspect
	}
}

// WithCellAspectRange clamps the shared cell aspect ratio the optimizer may
// settle on.
func WithCellAspectRange[T any](minAspect, maxAspect float64) Option[T] {
	return func(e *Engine[T]) {
		e.minCellAspect = minAspect
		e.maxCellAspect = maxAspect
	}
}

// WithItemAspect sets the item aspect ratio (item width in item-height
// units).
func WithItemAspect[T any](aspect float64) Option[T] {
	return func(e *Engine[T]) {
		e.itemAspect = aspect
	}
}

// WithPadding sets the per-cell content inset.
func WithPadding[T any](p Padding) Option[T] {
	return func(e *Engine[T]) {
		e.padding = p
	}
}

// WithMargin sets the fixed inter-cell margin.
func WithMargin[T any](m float64) Option[T] {
	return func(e *Engine[T]) {
		e.margin = m
	}
}

// WithPlacement sets the in-cell item placement strategy. The default is
// StackPlacement.
func WithPlacement[T any](p Placement) Option[T] {
	return func(e *Engine[T]) {
		e.placement = p
	}
}

// WithPositionSetter sets the callback receiving each item's absolute
// coordinates. The engine never mutates item internals directly; positions
// are delivered exclusively through this callback.
func WithPositionSetter[T any](set func(item T, x, y float64)) Option[T] {
	return func(e *Engine[T]) {
		e.setPosition = set
	}
}

// WithItemSort sets a per-cell item comparator (e.g. the renderer's
// color-sort order) applied before placement.
func WithItemSort[T any](compare func(a, b T) int) Option[T] {
	return func(e *Engine[T]) {
		e.sortItems = compare
	}
}

// New creates a grid engine for two facet axes.
func New[T any](vertical, horizontal Axis[T], opts ...Option[T]) (*Engine[T], error) {
	e := &Engine[T]{
		vertical:      vertical,
		horizontal:    horizontal,
		targetAspect:  DefaultTargetAspect,
		minCellAspect: DefaultMinCellAspect,
		maxCellAspect: DefaultMaxCellAspect,
		itemAspect:    DefaultItemAspect,
		margin:        DefaultMargin,
		padding:       DefaultPadding,
		placement:     StackPlacement{},
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.vertical.Facet == nil {
		e.vertical.Facet = facet.Identity()
	}
	if e.horizontal.Facet == nil {
		e.horizontal.Facet = facet.Identity()
	}
	if e.vertical.Value == nil {
		e.vertical.Value = func(T) model.Value { return model.Absent() }
	}
	if e.horizontal.Value == nil {
		e.horizontal.Value = func(T) model.Value { return model.Absent() }
	}

	if e.targetAspect <= 0 || math.IsNaN(e.targetAspect) {
		return nil, &ErrInvalidAspect{Name: "target", Value: e.targetAspect}
	}
	if e.itemAspect <= 0 || math.IsNaN(e.itemAspect) {
		return nil, &ErrInvalidAspect{Name: "item", Value: e.itemAspect}
	}
	if e.minCellAspect <= 0 || e.maxCellAspect < e.minCellAspect {
		return nil, &ErrInvalidAspectRange{Min: e.minCellAspect, Max: e.maxCellAspect}
	}
	return e, nil
}

// Arrange buckets every item into cells, sizes rows and columns around one
// optimized cell aspect ratio, assigns cumulative origins, and returns the
// resulting layout. When a position setter is configured, items are
// positioned as the final step.
//
// An empty item collection yields an empty layout with zero cells.
func (e *Engine[T]) Arrange(items []T) (*Layout, error) {
	vKeys, rowOf := e.discoverKeys(items, &e.vertical)
	hKeys, colOf := e.discoverKeys(items, &e.horizontal)

	nrows, ncols := len(vKeys), len(hKeys)
	layout := &Layout{
		VerticalKeys:   vKeys,
		HorizontalKeys: hKeys,
		Padding:        e.padding,
		Margin:         e.margin,
		byKey:          make(map[cellKey]*Cell, nrows*ncols),
		itemCount:      len(items),
	}
	if nrows == 0 || ncols == 0 {
		return layout, nil
	}

	// Bucket items.
	buckets := make([][]int, nrows*ncols)
	counts := make([][]int, nrows)
	for r := range counts {
		counts[r] = make([]int, ncols)
	}
	for i, item := range items {
		r := rowOf[e.vertical.Facet.Classify(e.vertical.Value(item)).MapKey()]
		c := colOf[e.horizontal.Facet.Classify(e.horizontal.Value(item)).MapKey()]
		buckets[r*ncols+c] = append(buckets[r*ncols+c], i)
		counts[r][c]++
	}

	ratio := e.solveCellAspect(counts)
	layout.CellAspect = ratio

	// Per-cell minimums, then per-axis maxima.
	layout.cells = make([]*Cell, nrows*ncols)
	rowH := make([]float64, nrows)
	colW := make([]float64, ncols)
	for r := 0; r < nrows; r++ {
		for c := 0; c < ncols; c++ {
			w, h, columns := e.cellMinSize(counts[r][c], ratio)
			cell := &Cell{
				VKey:      vKeys[r],
				HKey:      hKeys[c],
				Row:       r,
				Col:       c,
				Items:     buckets[r*ncols+c],
				MinWidth:  w,
				MinHeight: h,
				Columns:   columns,
			}
			layout.cells[r*ncols+c] = cell
			layout.byKey[cellKey{v: vKeys[r].MapKey(), h: hKeys[c].MapKey()}] = cell
			if w > colW[c] {
				colW[c] = w
			}
			if h > rowH[r] {
				rowH[r] = h
			}
		}
	}
	if e.vertical.Alignment == Uniform {
		uniformize(rowH)
	}
	if e.horizontal.Alignment == Uniform {
		uniformize(colW)
	}
	layout.RowHeights = rowH
	layout.ColWidths = colW

	// Cumulative origins with a fixed inter-cell margin; row 0 sits at
	// the bottom.
	x := make([]float64, ncols)
	for c := 1; c < ncols; c++ {
		x[c] = x[c-1] + colW[c-1] + e.margin
	}
	y := make([]float64, nrows)
	for r := 1; r < nrows; r++ {
		y[r] = y[r-1] + rowH[r-1] + e.margin
	}
	layout.Width = x[ncols-1] + colW[ncols-1]
	layout.Height = y[nrows-1] + rowH[nrows-1]

	for _, cell := range layout.cells {
		cell.X = x[cell.Col]
		cell.Y = y[cell.Row]
		cell.Width = colW[cell.Col]
		cell.Height = rowH[cell.Row]
		cell.InnerWidth = cell.Width - e.padding.Left - e.padding.Right
		cell.InnerHeight = cell.Height - e.padding.Top - e.padding.Bottom
		cell.ContentX = cell.X + e.padding.Left
		cell.ContentY = cell.Y + e.padding.Bottom
	}

	if e.setPosition != nil {
		if err := e.PositionItems(layout, items); err != nil {
			return nil, err
		}
	}
	return layout, nil
}

// PositionItems repositions items inside a previously arranged layout,
// reusing its bucket and size assignments. Per cell, items are optionally
// sorted with the configured comparator, placed by the active placement
// strategy, clamped into the unit square, scaled into the cell's content
// rectangle, and delivered to the position setter as absolute coordinates.
func (e *Engine[T]) PositionItems(layout *Layout, items []T) error {
	if layout == nil {
		return ErrNilLayout
	}
	if layout.itemCount != len(items) {
		return &ErrItemCountMismatch{Expected: layout.itemCount, Actual: len(items)}
	}
	if e.setPosition == nil {
		return ErrNoPositionSetter
	}

	for _, cell := range layout.cells {
		idxs := cell.Items
		if e.sortItems != nil {
			idxs = slices.Clone(idxs)
			slices.SortStableFunc(idxs, func(a, b int) int {
				return e.sortItems(items[a], items[b])
			})
		}
		n := len(idxs)
		for j, itemIdx := range idxs {
			px, py := e.placement.Position(j, n, cell.Columns)
			px = clampUnit(px)
			py = clampUnit(py)
			e.setPosition(items[itemIdx],
				cell.ContentX+px*cell.InnerWidth,
				cell.ContentY+py*cell.InnerHeight)
		}
	}
	return nil
}

// discoverKeys classifies every item along one axis and returns the
// distinct keys in compare order plus the key-to-index lookup.
func (e *Engine[T]) discoverKeys(items []T, axis *Axis[T]) ([]model.Key, map[string]int) {
	var keys []model.Key
	index := make(map[string]int)
	for _, item := range items {
		k := axis.Facet.Classify(axis.Value(item))
		mk := k.MapKey()
		if _, ok := index[mk]; !ok {
			index[mk] = 0
			keys = append(keys, k)
		}
	}
	slices.SortStableFunc(keys, axis.Facet.Compare)
	for i, k := range keys {
		index[k.MapKey()] = i
	}
	return keys, index
}

// clampUnit clamps NaN and out-of-range placements to 0.
func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return 0
	}
	return v
}

func uniformize(sizes []float64) {
	largest := 0.0
	for _, s := range sizes {
		if s > largest {
			largest = s
		}
	}
	for i := range sizes {
		sizes[i] = largest
	}
}
