package service

import (
	"context"
)

// Listing event types carried on the index event stream.
const (
	// ListingEventUpserted signals that a listing document must be written.
	ListingEventUpserted = "listing.upserted"
	// ListingEventDeleted signals that a listing document must be removed.
	ListingEventDeleted = "listing.deleted"
)

// ListingEvent is published after a committed listing mutation so external
// consumers (the index worker) can apply the change. The projected document
// rides along for upserts so consumers need no database access.
type ListingEvent struct {
	RequestID string           `json:"request_id,omitempty"` // For distributed tracing
	Type      string           `json:"type"`
	ListingID string           `json:"listing_id"`
	Document  *ListingDocument `json:"document,omitempty"`
}

// EventPublisher defines the interface for publishing listing events to a
// message queue for async processing.
type EventPublisher interface {
	// PublishListingEvent publishes a listing index event.
	PublishListingEvent(ctx context.Context, event *ListingEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
