package impl

import (
	"context"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	mockUC "bazaar/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEngagementService_RecordView_FirstView(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockEngagementRepo := mockRepo.NewMockEngagementRepository(t)
	mockSearchSync := mockUC.NewMockSearchSyncUsecase(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)

	factory.EXPECT().ListingRepo().Return(mockListingRepo)
	factory.EXPECT().UserRepo().Return(mockUserRepo)
	factory.EXPECT().EngagementRepo().Return(mockEngagementRepo)

	ctx := context.Background()
	sellerID := uuid.New()
	buyerID := uuid.New()
	listing := availableListing(sellerID)
	seller := &entity.User{ID: sellerID, Name: "Peter"}

	mockListingRepo.EXPECT().FindListingByID(ctx, listing.ID).Return(listing, nil)
	mockEngagementRepo.EXPECT().
		InsertViewIfAbsent(ctx, mock.AnythingOfType("*entity.ProductView")).
		Return(true, nil)
	mockUserRepo.EXPECT().FindUserByID(ctx, sellerID).Return(seller, nil)
	mockEngagementRepo.EXPECT().CountViews(ctx, listing.ID).Return(int64(1), nil)
	mockSearchSync.EXPECT().
		EnqueueUpsert(mock.AnythingOfType("*service.ListingDocument")).
		Run(func(doc *service.ListingDocument) {
			assert.Equal(t, int64(1), doc.ViewCount)
		}).
		Return()
	mockPublisher.EXPECT().
		PublishListingEvent(ctx, mock.AnythingOfType("*service.ListingEvent")).
		Return(nil)

	srv := NewEngagementService(mockTx, mockSearchSync, mockPublisher, testLogger())

	created, err := srv.RecordView(ctx, listing.ID, buyerID)
	require.NoError(t, err)
	assert.True(t, created)
}

func TestEngagementService_RecordView_RepeatViewChangesNothing(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	mockEngagementRepo := mockRepo.NewMockEngagementRepository(t)
	mockSearchSync := mockUC.NewMockSearchSyncUsecase(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)

	factory.EXPECT().ListingRepo().Return(mockListingRepo)
	factory.EXPECT().EngagementRepo().Return(mockEngagementRepo)

	ctx := context.Background()
	buyerID := uuid.New()
	listing := availableListing(uuid.New())

	mockListingRepo.EXPECT().FindListingByID(ctx, listing.ID).Return(listing, nil)
	mockEngagementRepo.EXPECT().
		InsertViewIfAbsent(ctx, mock.AnythingOfType("*entity.ProductView")).
		Return(false, nil)

	srv := NewEngagementService(mockTx, mockSearchSync, mockPublisher, testLogger())

	created, err := srv.RecordView(ctx, listing.ID, buyerID)
	require.NoError(t, err)
	assert.False(t, created)
	mockSearchSync.AssertNotCalled(t, "EnqueueUpsert", mock.Anything)
}

func TestEngagementService_RecordView_ListingNotFound(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	mockSearchSync := mockUC.NewMockSearchSyncUsecase(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)

	factory.EXPECT().ListingRepo().Return(mockListingRepo)

	ctx := context.Background()
	listingID := uuid.New()

	mockListingRepo.EXPECT().
		FindListingByID(ctx, listingID).
		Return(nil, repository.ErrListingNotFound)

	srv := NewEngagementService(mockTx, mockSearchSync, mockPublisher, testLogger())

	created, err := srv.RecordView(ctx, listingID, uuid.New())
	assert.False(t, created)
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestEngagementService_AddToCart_Idempotent(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	mockEngagementRepo := mockRepo.NewMockEngagementRepository(t)
	mockSearchSync := mockUC.NewMockSearchSyncUsecase(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)

	factory.EXPECT().ListingRepo().Return(mockListingRepo)
	factory.EXPECT().EngagementRepo().Return(mockEngagementRepo)

	ctx := context.Background()
	buyerID := uuid.New()
	listing := availableListing(uuid.New())

	mockListingRepo.EXPECT().FindListingByID(ctx, listing.ID).Return(listing, nil)
	// The second add is absorbed by the unique index; neither call errors.
	mockEngagementRepo.EXPECT().
		InsertCartEntryIfAbsent(ctx, mock.AnythingOfType("*entity.CartEntry")).
		Return(true, nil).
		Once()
	mockEngagementRepo.EXPECT().
		InsertCartEntryIfAbsent(ctx, mock.AnythingOfType("*entity.CartEntry")).
		Return(false, nil).
		Once()

	srv := NewEngagementService(mockTx, mockSearchSync, mockPublisher, testLogger())

	require.NoError(t, srv.AddToCart(ctx, listing.ID, buyerID))
	require.NoError(t, srv.AddToCart(ctx, listing.ID, buyerID))
}

func TestEngagementService_RemoveFromCart_AbsentIsNoOp(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockEngagementRepo := mockRepo.NewMockEngagementRepository(t)
	mockSearchSync := mockUC.NewMockSearchSyncUsecase(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)

	factory.EXPECT().EngagementRepo().Return(mockEngagementRepo)

	ctx := context.Background()
	listingID := uuid.New()
	buyerID := uuid.New()

	mockEngagementRepo.EXPECT().DeleteCartEntry(ctx, listingID, buyerID).Return(nil)

	srv := NewEngagementService(mockTx, mockSearchSync, mockPublisher, testLogger())

	require.NoError(t, srv.RemoveFromCart(ctx, listingID, buyerID))
}

func TestEngagementService_GetCart_TotalsAndSkipsMissingListings(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	mockEngagementRepo := mockRepo.NewMockEngagementRepository(t)
	mockSearchSync := mockUC.NewMockSearchSyncUsecase(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)

	factory.EXPECT().ListingRepo().Return(mockListingRepo)
	factory.EXPECT().EngagementRepo().Return(mockEngagementRepo)

	ctx := context.Background()
	buyerID := uuid.New()

	comic := availableListing(uuid.New())
	comic.Price = decimal.NewFromFloat(10.50)
	figurine := availableListing(uuid.New())
	figurine.Name = "Chewbacca Figurine"
	figurine.Price = decimal.NewFromFloat(2.25)
	deletedID := uuid.New()

	entries := []*entity.CartEntry{
		{ID: uuid.New(), ListingID: comic.ID, BuyerID: buyerID, CreatedAt: time.Now()},
		{ID: uuid.New(), ListingID: deletedID, BuyerID: buyerID, CreatedAt: time.Now()},
		{ID: uuid.New(), ListingID: figurine.ID, BuyerID: buyerID, CreatedAt: time.Now()},
	}

	mockEngagementRepo.EXPECT().FindCartEntriesByBuyer(ctx, buyerID).Return(entries, nil)
	mockListingRepo.EXPECT().FindListingByID(ctx, comic.ID).Return(comic, nil)
	mockListingRepo.EXPECT().FindListingByID(ctx, deletedID).Return(nil, repository.ErrListingNotFound)
	mockListingRepo.EXPECT().FindListingByID(ctx, figurine.ID).Return(figurine, nil)

	srv := NewEngagementService(mockTx, mockSearchSync, mockPublisher, testLogger())

	summary, err := srv.GetCart(ctx, buyerID)
	require.NoError(t, err)
	require.Len(t, summary.Items, 2)
	assert.True(t, summary.Total.Equal(decimal.NewFromFloat(12.75)), "total was %s", summary.Total)
	assert.Equal(t, int64(1275), summary.TotalCents)
}

func TestEngagementService_GetViewCount(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockEngagementRepo := mockRepo.NewMockEngagementRepository(t)
	mockSearchSync := mockUC.NewMockSearchSyncUsecase(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)

	factory.EXPECT().EngagementRepo().Return(mockEngagementRepo)

	ctx := context.Background()
	listingID := uuid.New()

	mockEngagementRepo.EXPECT().CountViews(ctx, listingID).Return(int64(42), nil)

	srv := NewEngagementService(mockTx, mockSearchSync, mockPublisher, testLogger())

	count, err := srv.GetViewCount(ctx, listingID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}
