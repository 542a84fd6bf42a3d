package impl

import (
	"context"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	mockUC "bazaar/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_SetListingStatus_SameStatusIsNoOp(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	mockSearchSync := mockUC.NewMockSearchSyncUsecase(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	mockQRCodes := mockSvc.NewMockQRCodeService(t)

	factory.EXPECT().ListingRepo().Return(mockListingRepo)

	ctx := context.Background()
	listing := availableListing(uuid.New())

	mockListingRepo.EXPECT().FindListingByID(ctx, listing.ID).Return(listing, nil)

	srv := NewCatalogService(mockTx, mockSearchSync, mockPublisher, mockQRCodes, &config.Config{}, testLogger())

	result, err := srv.SetListingStatus(ctx, listing.ID, entity.StatusAvailable.String())
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAvailable, result.Status)
	assert.Equal(t, int64(1), result.Version)
	mockListingRepo.AssertNotCalled(t, "UpdateListingStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogService_SetListingStatus_Transition(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockEngagementRepo := mockRepo.NewMockEngagementRepository(t)
	mockSearchSync := mockUC.NewMockSearchSyncUsecase(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	mockQRCodes := mockSvc.NewMockQRCodeService(t)

	factory.EXPECT().ListingRepo().Return(mockListingRepo)
	factory.EXPECT().UserRepo().Return(mockUserRepo)
	factory.EXPECT().EngagementRepo().Return(mockEngagementRepo)

	ctx := context.Background()
	sellerID := uuid.New()
	listing := availableListing(sellerID)
	seller := &entity.User{ID: sellerID, Name: "Peter"}

	mockListingRepo.EXPECT().FindListingByID(ctx, listing.ID).Return(listing, nil)
	mockListingRepo.EXPECT().
		UpdateListingStatus(ctx, listing.ID, entity.StatusCheckedOut, int64(1)).
		Return(nil)
	mockUserRepo.EXPECT().FindUserByID(ctx, sellerID).Return(seller, nil)
	mockEngagementRepo.EXPECT().CountViews(ctx, listing.ID).Return(int64(4), nil)
	mockSearchSync.EXPECT().
		EnqueueUpsert(mock.AnythingOfType("*service.ListingDocument")).
		Run(func(doc *service.ListingDocument) {
			assert.Equal(t, entity.StatusCheckedOut.String(), doc.Status)
			assert.Equal(t, int64(4), doc.ViewCount)
		}).
		Return()
	mockPublisher.EXPECT().
		PublishListingEvent(ctx, mock.AnythingOfType("*service.ListingEvent")).
		Return(nil)

	srv := NewCatalogService(mockTx, mockSearchSync, mockPublisher, mockQRCodes, &config.Config{}, testLogger())

	result, err := srv.SetListingStatus(ctx, listing.ID, entity.StatusCheckedOut.String())
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCheckedOut, result.Status)
	assert.Equal(t, int64(2), result.Version)
}

func TestCatalogService_SetListingStatus_StrictRejectsInvalidTransition(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	mockSearchSync := mockUC.NewMockSearchSyncUsecase(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	mockQRCodes := mockSvc.NewMockQRCodeService(t)

	factory.EXPECT().ListingRepo().Return(mockListingRepo)

	ctx := context.Background()
	listing := availableListing(uuid.New())

	mockListingRepo.EXPECT().FindListingByID(ctx, listing.ID).Return(listing, nil)

	cfg := &config.Config{Catalog: &config.CatalogConfig{StrictStatusTransitions: true}}
	srv := NewCatalogService(mockTx, mockSearchSync, mockPublisher, mockQRCodes, cfg, testLogger())

	result, err := srv.SetListingStatus(ctx, listing.ID, entity.StatusSold.String())
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", appErr.ErrorCode())
}

func TestCatalogService_SetListingStatus_RetriesOnVersionConflict(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockEngagementRepo := mockRepo.NewMockEngagementRepository(t)
	mockSearchSync := mockUC.NewMockSearchSyncUsecase(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	mockQRCodes := mockSvc.NewMockQRCodeService(t)

	factory.EXPECT().ListingRepo().Return(mockListingRepo)
	factory.EXPECT().UserRepo().Return(mockUserRepo)
	factory.EXPECT().EngagementRepo().Return(mockEngagementRepo)

	ctx := context.Background()
	sellerID := uuid.New()
	seller := &entity.User{ID: sellerID, Name: "Peter"}

	first := availableListing(sellerID)
	second := availableListing(sellerID)
	second.ID = first.ID
	second.Version = 2

	// The first write loses the race; the re-read carries the bumped version.
	mockListingRepo.EXPECT().FindListingByID(ctx, first.ID).Return(first, nil).Once()
	mockListingRepo.EXPECT().
		UpdateListingStatus(ctx, first.ID, entity.StatusCheckedOut, int64(1)).
		Return(repository.ErrVersionConflict).
		Once()
	mockListingRepo.EXPECT().FindListingByID(ctx, first.ID).Return(second, nil).Once()
	mockListingRepo.EXPECT().
		UpdateListingStatus(ctx, first.ID, entity.StatusCheckedOut, int64(2)).
		Return(nil).
		Once()
	mockUserRepo.EXPECT().FindUserByID(ctx, sellerID).Return(seller, nil)
	mockEngagementRepo.EXPECT().CountViews(ctx, first.ID).Return(int64(0), nil)
	mockSearchSync.EXPECT().
		EnqueueUpsert(mock.AnythingOfType("*service.ListingDocument")).
		Return()
	mockPublisher.EXPECT().
		PublishListingEvent(ctx, mock.AnythingOfType("*service.ListingEvent")).
		Return(nil)

	srv := NewCatalogService(mockTx, mockSearchSync, mockPublisher, mockQRCodes, &config.Config{}, testLogger())

	result, err := srv.SetListingStatus(ctx, first.ID, entity.StatusCheckedOut.String())
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCheckedOut, result.Status)
	assert.Equal(t, int64(3), result.Version)
}

func TestCatalogService_SetListingStatus_StaleAfterRetries(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	mockSearchSync := mockUC.NewMockSearchSyncUsecase(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	mockQRCodes := mockSvc.NewMockQRCodeService(t)

	factory.EXPECT().ListingRepo().Return(mockListingRepo)

	ctx := context.Background()
	listing := availableListing(uuid.New())

	mockListingRepo.EXPECT().FindListingByID(ctx, listing.ID).Return(listing, nil)
	mockListingRepo.EXPECT().
		UpdateListingStatus(ctx, listing.ID, entity.StatusCheckedOut, int64(1)).
		Return(repository.ErrVersionConflict)

	srv := NewCatalogService(mockTx, mockSearchSync, mockPublisher, mockQRCodes, &config.Config{}, testLogger())

	result, err := srv.SetListingStatus(ctx, listing.ID, entity.StatusCheckedOut.String())
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrStaleListing)
	mockListingRepo.AssertNumberOfCalls(t, "UpdateListingStatus", 3)
}

func TestCatalogService_SetListingStatus_UnknownStatus(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockSearchSync := mockUC.NewMockSearchSyncUsecase(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	mockQRCodes := mockSvc.NewMockQRCodeService(t)

	srv := NewCatalogService(mockTx, mockSearchSync, mockPublisher, mockQRCodes, &config.Config{}, testLogger())

	result, err := srv.SetListingStatus(context.Background(), uuid.New(), "Vaporized")
	assert.Nil(t, result)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "status", vErr.Field)
}
