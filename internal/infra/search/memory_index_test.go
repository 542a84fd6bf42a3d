package search

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIndex() service.SearchIndex {
	return NewMemoryIndex(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestMemoryIndex_QueryTextMatchAndRanking(t *testing.T) {
	idx := newTestIndex()
	ctx := context.Background()

	docs := []*service.ListingDocument{
		{ObjectID: "1", Name: "Amazing Spider-Man #300", ViewCount: 3},
		{ObjectID: "2", Name: "Spider-Man Figurine", ViewCount: 9},
		{ObjectID: "3", Name: "Chewbacca Costume", Keywords: "wookiee star wars", ViewCount: 5},
	}
	for _, doc := range docs {
		require.NoError(t, idx.Upsert(ctx, doc))
	}

	results, err := idx.Query(ctx, &service.SearchQuery{Text: "spider-man"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "2", results[0].ObjectID)
	assert.Equal(t, "1", results[1].ObjectID)

	// Keywords are searchable too.
	results, err = idx.Query(ctx, &service.SearchQuery{Text: "wookiee"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "3", results[0].ObjectID)
}

func TestMemoryIndex_QueryFacetFilters(t *testing.T) {
	idx := newTestIndex()
	ctx := context.Background()

	require.NoError(t, idx.Upsert(ctx, &service.ListingDocument{ObjectID: "1", Name: "A", Status: "Available", Category: "Costumes"}))
	require.NoError(t, idx.Upsert(ctx, &service.ListingDocument{ObjectID: "2", Name: "B", Status: "Sold", Category: "Costumes"}))

	results, err := idx.Query(ctx, &service.SearchQuery{
		Filters: map[string]string{"status": "Available", "category": "Costumes"},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "1", results[0].ObjectID)

	// Unknown facet attributes match nothing.
	results, err = idx.Query(ctx, &service.SearchQuery{
		Filters: map[string]string{"price": "120"},
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestMemoryIndex_QueryGeoRadius(t *testing.T) {
	idx := newTestIndex()
	ctx := context.Background()

	// Taipei, Kaohsiung and an unresolved document.
	require.NoError(t, idx.Upsert(ctx, &service.ListingDocument{
		ObjectID: "taipei", Name: "A",
		Latitude: floatPtr(25.0330), Longitude: floatPtr(121.5654),
	}))
	require.NoError(t, idx.Upsert(ctx, &service.ListingDocument{
		ObjectID: "kaohsiung", Name: "B",
		Latitude: floatPtr(22.6273), Longitude: floatPtr(120.3014),
	}))
	require.NoError(t, idx.Upsert(ctx, &service.ListingDocument{ObjectID: "nowhere", Name: "C"}))

	results, err := idx.Query(ctx, &service.SearchQuery{
		Geo: &service.GeoRadius{Latitude: 25.0478, Longitude: 121.5319, RadiusKm: 10},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "taipei", results[0].ObjectID)
}

func TestMemoryIndex_QueryLimit(t *testing.T) {
	idx := newTestIndex()
	ctx := context.Background()

	for _, doc := range []*service.ListingDocument{
		{ObjectID: "1", Name: "A", ViewCount: 1},
		{ObjectID: "2", Name: "B", ViewCount: 2},
		{ObjectID: "3", Name: "C", ViewCount: 3},
	} {
		require.NoError(t, idx.Upsert(ctx, doc))
	}

	results, err := idx.Query(ctx, &service.SearchQuery{Limit: 2})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "3", results[0].ObjectID)
	assert.Equal(t, "2", results[1].ObjectID)
}

func TestMemoryIndex_UpsertReplacesAndDeleteIsIdempotent(t *testing.T) {
	idx := newTestIndex()
	ctx := context.Background()

	require.NoError(t, idx.Upsert(ctx, &service.ListingDocument{ObjectID: "1", Name: "Before"}))
	require.NoError(t, idx.Upsert(ctx, &service.ListingDocument{ObjectID: "1", Name: "After"}))

	results, err := idx.Query(ctx, &service.SearchQuery{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "After", results[0].Name)

	require.NoError(t, idx.Delete(ctx, "1"))
	require.NoError(t, idx.Delete(ctx, "1"))

	results, err = idx.Query(ctx, &service.SearchQuery{})
	require.NoError(t, err)
	assert.Empty(t, results)
}
