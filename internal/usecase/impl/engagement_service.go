package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// engagementService implements the EngagementUsecase interface.
type engagementService struct {
	txManager  repository.TransactionManager
	searchSync usecase.SearchSyncUsecase
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// NewEngagementService is the constructor for engagementService.
func NewEngagementService(
	txManager repository.TransactionManager,
	searchSync usecase.SearchSyncUsecase,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.EngagementUsecase {
	return &engagementService{
		txManager:  txManager,
		searchSync: searchSync,
		publisher:  publisher,
		logger:     logger,
	}
}

// RecordView records that the buyer viewed the listing. The insert is
// idempotent, a repeat view is absorbed by the unique index and reports
// created=false. A first view changes the listing's view count, so the
// index document is refreshed.
func (srv *engagementService) RecordView(ctx context.Context, listingID, buyerID uuid.UUID) (bool, error) {
	var created bool
	var doc *service.ListingDocument

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listing, err := repoFactory.ListingRepo().FindListingByID(ctx, listingID)
		if err != nil {
			if errors.Is(err, repository.ErrListingNotFound) {
				return domainerrors.ErrListingNotFound
			}

			return errors.Wrap(err, "failed to find listing")
		}

		view := &entity.ProductView{
			ID:        uuid.New(),
			ListingID: listingID,
			BuyerID:   buyerID,
		}
		created, err = repoFactory.EngagementRepo().InsertViewIfAbsent(ctx, view)
		if err != nil {
			return errors.Wrap(err, "failed to record view")
		}

		if !created {
			return nil
		}

		seller, err := repoFactory.UserRepo().FindUserByID(ctx, listing.SellerID)
		if err != nil {
			return errors.Wrap(err, "failed to find seller")
		}
		viewCount, err := repoFactory.EngagementRepo().CountViews(ctx, listingID)
		if err != nil {
			return errors.Wrap(err, "failed to count views")
		}
		doc = BuildListingDocument(listing, seller, viewCount)

		return nil
	})
	if err != nil {
		return false, err
	}

	if created {
		syncListingDocument(ctx, srv.searchSync, srv.publisher, srv.logger,
			service.ListingEventUpserted, listingID.String(), doc)
	}

	return created, nil
}

// GetViewCount returns the number of distinct buyers who viewed the listing.
func (srv *engagementService) GetViewCount(ctx context.Context, listingID uuid.UUID) (int64, error) {
	var count int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.EngagementRepo().CountViews(ctx, listingID)
		if err != nil {
			return errors.Wrap(err, "failed to count views")
		}
		count = found

		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// AddToCart puts the listing in the buyer's cart. Adding twice keeps one entry.
func (srv *engagementService) AddToCart(ctx context.Context, listingID, buyerID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ListingRepo().FindListingByID(ctx, listingID); err != nil {
			if errors.Is(err, repository.ErrListingNotFound) {
				return domainerrors.ErrListingNotFound
			}

			return errors.Wrap(err, "failed to find listing")
		}

		entry := &entity.CartEntry{
			ID:        uuid.New(),
			ListingID: listingID,
			BuyerID:   buyerID,
		}
		if _, err := repoFactory.EngagementRepo().InsertCartEntryIfAbsent(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to add cart entry")
		}

		return nil
	})
}

// RemoveFromCart takes the listing out of the buyer's cart. Removing an
// absent listing is a no-op.
func (srv *engagementService) RemoveFromCart(ctx context.Context, listingID, buyerID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.EngagementRepo().DeleteCartEntry(ctx, listingID, buyerID); err != nil {
			return errors.Wrap(err, "failed to remove cart entry")
		}

		return nil
	})
}

// AddedToCart reports whether the buyer has the listing in their cart.
func (srv *engagementService) AddedToCart(ctx context.Context, listingID, buyerID uuid.UUID) (bool, error) {
	var inCart bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.EngagementRepo().HasCartEntry(ctx, listingID, buyerID)
		if err != nil {
			return errors.Wrap(err, "failed to check cart entry")
		}
		inCart = found

		return nil
	})
	if err != nil {
		return false, err
	}

	return inCart, nil
}

// GetCart assembles the buyer's cart with its listing details and total.
func (srv *engagementService) GetCart(ctx context.Context, buyerID uuid.UUID) (*usecase.CartSummary, error) {
	summary := &usecase.CartSummary{
		Items: []*usecase.CartItem{},
		Total: decimal.Zero,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		entries, err := repoFactory.EngagementRepo().FindCartEntriesByBuyer(ctx, buyerID)
		if err != nil {
			return errors.Wrap(err, "failed to find cart entries")
		}

		for _, entry := range entries {
			listing, err := repoFactory.ListingRepo().FindListingByID(ctx, entry.ListingID)
			if err != nil {
				if errors.Is(err, repository.ErrListingNotFound) {
					// The listing was deleted after being carted; skip it.
					deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("cart entry references missing listing",
						slog.String("listing_id", entry.ListingID.String()),
						slog.String("buyer_id", buyerID.String()),
					)

					continue
				}

				return errors.Wrap(err, "failed to find cart listing")
			}

			summary.Items = append(summary.Items, &usecase.CartItem{
				Listing: listing,
				AddedAt: entry.CreatedAt,
			})
			summary.Total = summary.Total.Add(listing.Price)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	summary.TotalCents = summary.Total.Shift(2).IntPart()

	return summary, nil
}
