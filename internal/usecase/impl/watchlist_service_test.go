package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWatchlistService_AddToWatchlist_CreatesWatchlistOnFirstUse(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	mockWatchlistRepo := mockRepo.NewMockWatchlistRepository(t)

	factory.EXPECT().ListingRepo().Return(mockListingRepo)
	factory.EXPECT().WatchlistRepo().Return(mockWatchlistRepo)

	ctx := context.Background()
	buyerID := uuid.New()
	listing := availableListing(uuid.New())
	watchlist := &entity.Watchlist{ID: uuid.New(), BuyerID: buyerID}

	mockListingRepo.EXPECT().FindListingByID(ctx, listing.ID).Return(listing, nil)
	mockWatchlistRepo.EXPECT().FindOrCreateWatchlistByBuyer(ctx, buyerID).Return(watchlist, nil)
	mockWatchlistRepo.EXPECT().
		InsertEntryIfAbsent(ctx, mock.AnythingOfType("*entity.WatchlistEntry")).
		Run(func(_ context.Context, entry *entity.WatchlistEntry) {
			assert.Equal(t, watchlist.ID, entry.WatchlistID)
			assert.Equal(t, listing.ID, entry.ListingID)
		}).
		Return(true, nil)

	srv := NewWatchlistService(mockTx, testLogger())

	require.NoError(t, srv.AddToWatchlist(ctx, buyerID, listing.ID))
}

func TestWatchlistService_AddToWatchlist_ListingNotFound(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)

	factory.EXPECT().ListingRepo().Return(mockListingRepo)

	ctx := context.Background()
	listingID := uuid.New()

	mockListingRepo.EXPECT().
		FindListingByID(ctx, listingID).
		Return(nil, repository.ErrListingNotFound)

	srv := NewWatchlistService(mockTx, testLogger())

	err := srv.AddToWatchlist(ctx, uuid.New(), listingID)
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestWatchlistService_RemoveFromWatchlist_AbsentIsNoOp(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockWatchlistRepo := mockRepo.NewMockWatchlistRepository(t)

	factory.EXPECT().WatchlistRepo().Return(mockWatchlistRepo)

	ctx := context.Background()
	buyerID := uuid.New()
	listingID := uuid.New()
	watchlist := &entity.Watchlist{ID: uuid.New(), BuyerID: buyerID}

	mockWatchlistRepo.EXPECT().FindOrCreateWatchlistByBuyer(ctx, buyerID).Return(watchlist, nil)
	mockWatchlistRepo.EXPECT().DeleteEntry(ctx, watchlist.ID, listingID).Return(nil)

	srv := NewWatchlistService(mockTx, testLogger())

	require.NoError(t, srv.RemoveFromWatchlist(ctx, buyerID, listingID))
}

func TestWatchlistService_IsWatched(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockWatchlistRepo := mockRepo.NewMockWatchlistRepository(t)

	factory.EXPECT().WatchlistRepo().Return(mockWatchlistRepo)

	ctx := context.Background()
	buyerID := uuid.New()
	listingID := uuid.New()

	mockWatchlistRepo.EXPECT().HasEntryForBuyer(ctx, buyerID, listingID).Return(true, nil)

	srv := NewWatchlistService(mockTx, testLogger())

	watched, err := srv.IsWatched(ctx, buyerID, listingID)
	require.NoError(t, err)
	assert.True(t, watched)
}

func TestWatchlistService_GetWatchedListings_SkipsMissingListings(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	mockWatchlistRepo := mockRepo.NewMockWatchlistRepository(t)

	factory.EXPECT().ListingRepo().Return(mockListingRepo)
	factory.EXPECT().WatchlistRepo().Return(mockWatchlistRepo)

	ctx := context.Background()
	buyerID := uuid.New()
	watchlist := &entity.Watchlist{ID: uuid.New(), BuyerID: buyerID}
	listing := availableListing(uuid.New())
	deletedID := uuid.New()

	entries := []*entity.WatchlistEntry{
		{ID: uuid.New(), WatchlistID: watchlist.ID, ListingID: listing.ID},
		{ID: uuid.New(), WatchlistID: watchlist.ID, ListingID: deletedID},
	}

	mockWatchlistRepo.EXPECT().FindOrCreateWatchlistByBuyer(ctx, buyerID).Return(watchlist, nil)
	mockWatchlistRepo.EXPECT().FindEntries(ctx, watchlist.ID).Return(entries, nil)
	mockListingRepo.EXPECT().FindListingByID(ctx, listing.ID).Return(listing, nil)
	mockListingRepo.EXPECT().FindListingByID(ctx, deletedID).Return(nil, repository.ErrListingNotFound)

	srv := NewWatchlistService(mockTx, testLogger())

	listings, err := srv.GetWatchedListings(ctx, buyerID)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, listing.ID, listings[0].ID)
}
