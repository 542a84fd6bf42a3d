package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// watchlistService implements the WatchlistUsecase interface.
type watchlistService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewWatchlistService is the constructor for watchlistService.
func NewWatchlistService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.WatchlistUsecase {
	return &watchlistService{
		txManager: txManager,
		logger:    logger,
	}
}

// AddToWatchlist puts the listing on the buyer's watchlist. The watchlist is
// created on first use; adding twice keeps one entry.
func (srv *watchlistService) AddToWatchlist(ctx context.Context, buyerID, listingID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ListingRepo().FindListingByID(ctx, listingID); err != nil {
			if errors.Is(err, repository.ErrListingNotFound) {
				return domainerrors.ErrListingNotFound
			}

			return errors.Wrap(err, "failed to find listing")
		}

		watchlistRepo := repoFactory.WatchlistRepo()
		watchlist, err := watchlistRepo.FindOrCreateWatchlistByBuyer(ctx, buyerID)
		if err != nil {
			return errors.Wrap(err, "failed to load watchlist")
		}

		entry := &entity.WatchlistEntry{
			ID:          uuid.New(),
			WatchlistID: watchlist.ID,
			ListingID:   listingID,
		}
		if _, err := watchlistRepo.InsertEntryIfAbsent(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to add watchlist entry")
		}

		return nil
	})
}

// RemoveFromWatchlist takes the listing off the buyer's watchlist. Removing
// an absent listing is a no-op.
func (srv *watchlistService) RemoveFromWatchlist(ctx context.Context, buyerID, listingID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		watchlistRepo := repoFactory.WatchlistRepo()

		watchlist, err := watchlistRepo.FindOrCreateWatchlistByBuyer(ctx, buyerID)
		if err != nil {
			return errors.Wrap(err, "failed to load watchlist")
		}

		if err := watchlistRepo.DeleteEntry(ctx, watchlist.ID, listingID); err != nil {
			return errors.Wrap(err, "failed to remove watchlist entry")
		}

		return nil
	})
}

// IsWatched reports whether the buyer watches the listing.
func (srv *watchlistService) IsWatched(ctx context.Context, buyerID, listingID uuid.UUID) (bool, error) {
	var watched bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.WatchlistRepo().HasEntryForBuyer(ctx, buyerID, listingID)
		if err != nil {
			return errors.Wrap(err, "failed to check watchlist entry")
		}
		watched = found

		return nil
	})
	if err != nil {
		return false, err
	}

	return watched, nil
}

// GetWatchedListings retrieves the listings on the buyer's watchlist, oldest first.
func (srv *watchlistService) GetWatchedListings(ctx context.Context, buyerID uuid.UUID) ([]*entity.Listing, error) {
	listings := []*entity.Listing{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		watchlistRepo := repoFactory.WatchlistRepo()

		watchlist, err := watchlistRepo.FindOrCreateWatchlistByBuyer(ctx, buyerID)
		if err != nil {
			return errors.Wrap(err, "failed to load watchlist")
		}

		entries, err := watchlistRepo.FindEntries(ctx, watchlist.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find watchlist entries")
		}

		for _, entry := range entries {
			listing, err := repoFactory.ListingRepo().FindListingByID(ctx, entry.ListingID)
			if err != nil {
				if errors.Is(err, repository.ErrListingNotFound) {
					continue
				}

				return errors.Wrap(err, "failed to find watched listing")
			}
			listings = append(listings, listing)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return listings, nil
}
