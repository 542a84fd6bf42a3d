package service

import (
	"context"
)

// ListingDocument is the projection of a listing pushed to the search index.
// ObjectID is the listing ID; the coordinate pair is present only when the
// seller's location has been resolved.
type ListingDocument struct {
	ObjectID     string   `json:"objectID"`
	Name         string   `json:"name"`
	Keywords     string   `json:"keywords"`
	Description  string   `json:"description"`
	SellerName   string   `json:"seller_name"`
	Manufacturer string   `json:"manufacturer,omitempty"`
	Publisher    string   `json:"publisher,omitempty"`
	Author       string   `json:"author,omitempty"`
	Illustrator  string   `json:"illustrator,omitempty"`
	ViewCount    int64    `json:"view_count"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Status       string   `json:"status"`
	Category     string   `json:"category"`
}

// IndexSettings declares how the index treats each document field.
type IndexSettings struct {
	// SearchableAttributes participate in full-text matching.
	SearchableAttributes []string `json:"searchableAttributes"`
	// CustomRanking orders results, e.g. "desc(view_count)".
	CustomRanking []string `json:"customRanking"`
	// GeoFields name the coordinate pair backing geo-radius queries.
	GeoFields []string `json:"geoFields"`
	// AttributesForFaceting support filter/facet queries.
	AttributesForFaceting []string `json:"attributesForFaceting"`
}

// ListingIndexSettings is the declared schema of the listing index.
var ListingIndexSettings = IndexSettings{
	SearchableAttributes: []string{
		"name", "keywords", "description", "seller_name",
		"manufacturer", "publisher", "author", "illustrator",
	},
	CustomRanking:         []string{"desc(view_count)"},
	GeoFields:             []string{"latitude", "longitude"},
	AttributesForFaceting: []string{"status", "manufacturer", "publisher", "category", "seller_name"},
}

// GeoRadius restricts a query to documents within RadiusKm of a center point.
type GeoRadius struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusKm  float64 `json:"radius_km"`
}

// SearchQuery describes a listing search: optional full-text term, facet
// filters keyed by facet attribute, and an optional geo restriction.
// Results are always ranked by view count descending after text relevance.
type SearchQuery struct {
	Text    string            `json:"text,omitempty"`
	Filters map[string]string `json:"filters,omitempty"`
	Geo     *GeoRadius        `json:"geo,omitempty"`
	Limit   int               `json:"limit,omitempty"`
}

// SearchIndex defines the interface for the external full-text/geo index.
// Index pushes are side effects of catalog writes and must never block or
// fail the primary transaction; failures are logged and retried.
type SearchIndex interface {
	// Upsert creates or replaces the document for a listing.
	Upsert(ctx context.Context, doc *ListingDocument) error

	// Delete removes the document for a listing. Deleting an absent
	// document is a no-op.
	Delete(ctx context.Context, objectID string) error

	// Query runs a search and returns matching documents in rank order.
	Query(ctx context.Context, query *SearchQuery) ([]*ListingDocument, error)
}
