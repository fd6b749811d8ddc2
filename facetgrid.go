package facetgrid

import (
	"context"

	"github.com/hupe1980/facetgrid/facet"
	"github.com/hupe1980/facetgrid/grid"
	"github.com/hupe1980/facetgrid/model"
	"github.com/hupe1980/facetgrid/stats"
)

// Engine is the facade over the statistics, faceting and grid packages: it
// collects per-field statistics, derives facetizers, and assembles grid
// engines for the common record-collection case, with structured logging
// around each operation.
//
// An Engine is immutable and safe for concurrent use. Each operation is a
// full, synchronous pass over its inputs; a run is either completed or
// wholly superseded by the next recompute, never merged.
type Engine struct {
	logger      *Logger
	parallelism int
}

// New creates an Engine.
func New(optFns ...Option) *Engine {
	opts := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Engine{
		logger:      opts.logger,
		parallelism: opts.parallelism,
	}
}

// Collect accumulates per-field statistics over the record collection.
// An empty or nil collection yields an empty statistics map.
func (e *Engine) Collect(ctx context.Context, records []model.Record) (stats.Stats, error) {
	s, err := stats.CollectContext(ctx, records, e.parallelism)
	e.logger.LogCollect(ctx, len(records), len(s), err)
	return s, err
}

// Facet derives the bucketing functions for one axis from collected
// statistics.
func (e *Engine) Facet(s stats.Stats, spec facet.Spec) facet.Facetizer {
	f := facet.New(s, spec)
	e.logger.LogFacet(spec.Field, spec.Buckets, f.Kind().String())
	return f
}

// Grid assembles a grid engine for a record collection from two facet
// specs. The specs' orientations are forced to their axes.
func (e *Engine) Grid(s stats.Stats, vertical, horizontal facet.Spec, opts ...grid.Option[model.Record]) (*grid.Engine[model.Record], error) {
	vertical.Orientation = facet.Vertical
	horizontal.Orientation = facet.Horizontal

	vAxis := grid.Axis[model.Record]{
		Facet: e.Facet(s, vertical),
		Value: FieldValue(vertical.Field),
	}
	hAxis := grid.Axis[model.Record]{
		Facet: e.Facet(s, horizontal),
		Value: FieldValue(horizontal.Field),
	}
	return grid.New(vAxis, hAxis, opts...)
}

// Arrange is a convenience wrapper running one full pipeline step: it
// buckets the records with the given grid engine and logs the outcome.
func (e *Engine) Arrange(g *grid.Engine[model.Record], records []model.Record) (*grid.Layout, error) {
	layout, err := g.Arrange(records)
	if err != nil {
		e.logger.LogArrange(0, 0, 0, err)
		return nil, err
	}
	e.logger.LogArrange(layout.Rows(), layout.Cols(), layout.CellAspect, nil)
	return layout, nil
}

// FieldValue returns an axis value accessor reading one field of a record.
func FieldValue(field string) func(model.Record) model.Value {
	return func(r model.Record) model.Value {
		return r.Get(field)
	}
}
