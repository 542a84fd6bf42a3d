// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"
)

// BuildListingDocument projects a listing onto its search index document.
// The coordinate pairs the billing address latitude with the shipping
// address longitude; existing map clients depend on that pairing.
func BuildListingDocument(listing *entity.Listing, seller *entity.User, viewCount int64) *service.ListingDocument {
	doc := &service.ListingDocument{
		ObjectID:     listing.ID.String(),
		Name:         listing.Name,
		Keywords:     listing.Keywords,
		Description:  listing.Description,
		Manufacturer: listing.Manufacturer,
		Publisher:    listing.Publisher,
		Author:       listing.Author,
		Illustrator:  listing.Illustrator,
		ViewCount:    viewCount,
		Status:       listing.Status.String(),
		Category:     listing.Category.String(),
	}

	if seller == nil {
		return doc
	}

	doc.SellerName = seller.Name
	if profile := seller.Profile; profile != nil {
		if profile.FullName != "" {
			doc.SellerName = profile.FullName
		}
		if billing := profile.BillingAddress; billing != nil {
			doc.Latitude = billing.Latitude
		}
		if shipping := profile.ShippingAddress; shipping != nil {
			doc.Longitude = shipping.Longitude
		}
	}

	return doc
}

// syncListingDocument pushes a committed listing change to the async index
// queue and the event stream. Publish failures are logged and swallowed; the
// primary write has already committed.
func syncListingDocument(
	ctx context.Context,
	searchSync usecase.SearchSyncUsecase,
	publisher service.EventPublisher,
	logger *slog.Logger,
	eventType, listingID string,
	doc *service.ListingDocument,
) {
	if doc != nil {
		searchSync.EnqueueUpsert(doc)
	} else {
		searchSync.EnqueueDelete(listingID)
	}

	event := &service.ListingEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      eventType,
		ListingID: listingID,
		Document:  doc,
	}

	if err := publisher.PublishListingEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("failed to publish listing event",
			slog.String("listing_id", listingID),
			slog.String("type", eventType),
			slog.String("error", err.Error()),
		)
	}
}
