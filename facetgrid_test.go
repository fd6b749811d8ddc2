package facetgrid_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/facetgrid"
	"github.com/hupe1980/facetgrid/facet"
	"github.com/hupe1980/facetgrid/grid"
	"github.com/hupe1980/facetgrid/model"
	"github.com/hupe1980/facetgrid/testutil"
)

func scenarioRecords() []model.Record {
	return []model.Record{
		{"x": model.Number(1), "category": model.String("a")},
		{"x": model.Number(5), "category": model.String("b")},
		{"x": model.Number(9), "category": model.String("a")},
	}
}

func TestPipeline(t *testing.T) {
	e := facetgrid.New()
	records := scenarioRecords()

	s, err := e.Collect(context.Background(), records)
	require.NoError(t, err)
	require.Len(t, s, 2)

	g, err := e.Grid(s,
		facet.Spec{Field: "category", Buckets: 3},
		facet.Spec{Field: "x", Buckets: 2},
	)
	require.NoError(t, err)

	layout, err := e.Arrange(g, records)
	require.NoError(t, err)

	assert.Equal(t, 2, layout.Rows())
	assert.Equal(t, 2, layout.Cols())
	assert.Equal(t, 3, countItems(layout))
}

func TestFacetKinds(t *testing.T) {
	e := facetgrid.New()
	s, err := e.Collect(context.Background(), scenarioRecords())
	require.NoError(t, err)

	assert.Equal(t, facet.KindLiteral, e.Facet(s, facet.Spec{Field: "category", Buckets: 3}).Kind())
	assert.Equal(t, facet.KindNumericRange, e.Facet(s, facet.Spec{Field: "x", Buckets: 2}).Kind())
	assert.Equal(t, facet.KindIdentity, e.Facet(s, facet.Spec{}).Kind())
}

func TestCollectParallel(t *testing.T) {
	records := testutil.NewRNG(42).RandomRecords(200)

	serial, err := facetgrid.New().Collect(context.Background(), records)
	require.NoError(t, err)
	parallel, err := facetgrid.New(facetgrid.WithParallelism(4)).Collect(context.Background(), records)
	require.NoError(t, err)

	require.Equal(t, len(serial), len(parallel))
	for field, want := range serial {
		got := parallel[field]
		require.NotNil(t, got, "field %s", field)
		assert.Equal(t, want.TotalCount, got.TotalCount)
		assert.Equal(t, want.UniqueCount(), got.UniqueCount())
		assert.Equal(t, want.Min, got.Min)
		assert.Equal(t, want.Max, got.Max)
	}
}

func TestCollectCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := facetgrid.New(facetgrid.WithParallelism(2)).Collect(ctx, scenarioRecords())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGridForcesOrientations(t *testing.T) {
	e := facetgrid.New()
	s, err := e.Collect(context.Background(), scenarioRecords())
	require.NoError(t, err)

	// Even with the orientations swapped in the specs, the vertical axis
	// sorts its string keys descending and the horizontal axis ascending.
	g, err := e.Grid(s,
		facet.Spec{Field: "category", Buckets: 3, Orientation: facet.Horizontal},
		facet.Spec{Field: "category", Buckets: 3, Orientation: facet.Vertical},
	)
	require.NoError(t, err)

	layout, err := g.Arrange(scenarioRecords())
	require.NoError(t, err)

	assert.Equal(t, model.StringKey("b"), layout.VerticalKeys[0])
	assert.Equal(t, model.StringKey("a"), layout.VerticalKeys[1])
	assert.Equal(t, model.StringKey("a"), layout.HorizontalKeys[0])
	assert.Equal(t, model.StringKey("b"), layout.HorizontalKeys[1])
}

func TestArrangeLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := facetgrid.NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	e := facetgrid.New(facetgrid.WithLogger(logger))
	s, err := e.Collect(context.Background(), scenarioRecords())
	require.NoError(t, err)

	g, err := e.Grid(s,
		facet.Spec{Field: "category", Buckets: 3},
		facet.Spec{Field: "x", Buckets: 2},
	)
	require.NoError(t, err)

	_, err = e.Arrange(g, scenarioRecords())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "statistics collection completed")
	assert.Contains(t, out, "facet derived")
	assert.Contains(t, out, "grid arrangement completed")
}

func TestWithLoggerNil(t *testing.T) {
	assert.NotPanics(t, func() {
		e := facetgrid.New(facetgrid.WithLogger(nil))
		_, err := e.Collect(context.Background(), scenarioRecords())
		require.NoError(t, err)
	})
}

func TestFieldValue(t *testing.T) {
	get := facetgrid.FieldValue("x")
	assert.Equal(t, model.Number(1), get(scenarioRecords()[0]))
	assert.True(t, get(model.Record{}).IsAbsent())
}

func countItems(layout *grid.Layout) int {
	total := 0
	for _, c := range layout.Cells() {
		total += c.Count()
	}
	return total
}
