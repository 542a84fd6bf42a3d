package search

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"bazaar/internal/domain/geo"
	"bazaar/internal/domain/service"

	"github.com/paulmach/orb"
)

// memoryIndex implements SearchIndex in process memory. It honors the
// declared index settings: full-text matching over the searchable
// attributes, facet filters, geo-radius restriction and view-count ranking.
// Used in development and tests.
type memoryIndex struct {
	mu     sync.RWMutex
	docs   map[string]*service.ListingDocument
	logger *slog.Logger
}

// NewMemoryIndex creates an empty in-memory listing index.
func NewMemoryIndex(logger *slog.Logger) service.SearchIndex {
	return &memoryIndex{
		docs:   make(map[string]*service.ListingDocument),
		logger: logger,
	}
}

// Upsert creates or replaces the document for a listing.
func (idx *memoryIndex) Upsert(_ context.Context, doc *service.ListingDocument) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	cloned := *doc
	idx.docs[doc.ObjectID] = &cloned

	return nil
}

// Delete removes the document for a listing. Deleting an absent document is a no-op.
func (idx *memoryIndex) Delete(_ context.Context, objectID string) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	delete(idx.docs, objectID)

	return nil
}

// Query runs a search and returns matching documents ranked by view count descending.
func (idx *memoryIndex) Query(_ context.Context, query *service.SearchQuery) ([]*service.ListingDocument, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	results := make([]*service.ListingDocument, 0, len(idx.docs))
	for _, doc := range idx.docs {
		if !matchesText(doc, query.Text) {
			continue
		}
		if !matchesFilters(doc, query.Filters) {
			continue
		}
		if !matchesGeo(doc, query.Geo) {
			continue
		}

		cloned := *doc
		results = append(results, &cloned)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ViewCount > results[j].ViewCount
	})

	if query.Limit > 0 && len(results) > query.Limit {
		results = results[:query.Limit]
	}

	return results, nil
}

// matchesText checks the query term against the searchable attributes.
func matchesText(doc *service.ListingDocument, text string) bool {
	if text == "" {
		return true
	}

	term := strings.ToLower(text)
	for _, value := range []string{
		doc.Name, doc.Keywords, doc.Description, doc.SellerName,
		doc.Manufacturer, doc.Publisher, doc.Author, doc.Illustrator,
	} {
		if strings.Contains(strings.ToLower(value), term) {
			return true
		}
	}

	return false
}

// matchesFilters checks exact equality on the faceting attributes.
func matchesFilters(doc *service.ListingDocument, filters map[string]string) bool {
	for attribute, expected := range filters {
		var actual string
		switch attribute {
		case "status":
			actual = doc.Status
		case "manufacturer":
			actual = doc.Manufacturer
		case "publisher":
			actual = doc.Publisher
		case "category":
			actual = doc.Category
		case "seller_name":
			actual = doc.SellerName
		default:
			return false
		}

		if actual != expected {
			return false
		}
	}

	return true
}

// matchesGeo checks the document coordinate against the radius restriction.
// Documents without a resolved coordinate never match a geo query.
func matchesGeo(doc *service.ListingDocument, radius *service.GeoRadius) bool {
	if radius == nil {
		return true
	}
	if doc.Latitude == nil || doc.Longitude == nil {
		return false
	}

	center := orb.Point{radius.Longitude, radius.Latitude}
	location := orb.Point{*doc.Longitude, *doc.Latitude}

	return geo.DistanceKm(center, location) <= radius.RadiusKm
}
