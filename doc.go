// Package facetgrid computes descriptive statistics over flat heterogeneous
// records and lays them out as a 2D faceted grid for downstream rendering.
//
// The pipeline has four stages, each usable on its own:
//
//   - stats: stream over records once, accumulating per-field counts,
//     numeric extrema, string statistics and a value hash
//   - wordtree: decompose multi-word string fields into a hierarchical
//     "bag of words" tree for coarse-to-fine bucketing
//   - facet: derive (classify, compare, label) bucketing functions per axis
//     from the statistics
//   - grid: bucket items into cells, optimize a shared cell aspect ratio
//     against a target grid aspect, and position every item
//
// # Quick Start
//
//	ctx := context.Background()
//	fg := facetgrid.New(facetgrid.WithParallelism(4))
//
//	s, err := fg.Collect(ctx, records)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	g, err := fg.Grid(s,
//	    facet.Spec{Field: "category", Buckets: 5},
//	    facet.Spec{Field: "price", Buckets: 4},
//	    grid.WithTargetAspect[model.Record](16.0/9.0),
//	    grid.WithPositionSetter(func(r model.Record, x, y float64) {
//	        // deliver coordinates to the renderer
//	    }),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	layout, err := g.Arrange(records)
//
// The resulting Layout carries the ordered per-axis key lists (header
// labels), per-cell geometry (background and axis drawing) and, through the
// position setter, absolute per-item coordinates.
//
// # Concurrency
//
// All operations are synchronous, deterministic passes with no I/O. Engines
// are immutable after construction; Arrange returns a fresh immutable
// layout per call, so a single engine may serve concurrent arrangements.
//
// # Coercion over rejection
//
// Degenerate inputs degrade instead of erroring: an empty record collection
// yields empty statistics and an empty grid, unknown facet fields collapse
// to a single bucket, NaN values are counted but excluded from extrema, and
// out-of-range placements clamp to the cell origin.
package facetgrid
