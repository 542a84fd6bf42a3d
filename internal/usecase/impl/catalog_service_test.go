package impl

import (
	"context"
	"errors"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	mockUC "bazaar/internal/mocks/usecase"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_CreateListing_Success(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockSearchSync := mockUC.NewMockSearchSyncUsecase(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	mockQRCodes := mockSvc.NewMockQRCodeService(t)

	factory.EXPECT().ListingRepo().Return(mockListingRepo)
	factory.EXPECT().UserRepo().Return(mockUserRepo)

	ctx := context.Background()
	sellerID := uuid.New()
	seller := &entity.User{ID: sellerID, Name: "Peter"}
	input := validCreateInput()

	mockListingRepo.EXPECT().
		FindListingBySellerAndName(ctx, sellerID, input.Name).
		Return(nil, repository.ErrListingNotFound)
	mockListingRepo.EXPECT().
		CreateListing(ctx, mock.AnythingOfType("*entity.Listing")).
		Return(nil)
	mockUserRepo.EXPECT().FindUserByID(ctx, sellerID).Return(seller, nil)
	mockSearchSync.EXPECT().
		EnqueueUpsert(mock.AnythingOfType("*service.ListingDocument")).
		Return()
	mockPublisher.EXPECT().
		PublishListingEvent(ctx, mock.AnythingOfType("*service.ListingEvent")).
		Return(nil)

	srv := NewCatalogService(mockTx, mockSearchSync, mockPublisher, mockQRCodes, &config.Config{}, testLogger())

	listing, err := srv.CreateListing(ctx, sellerID, input)
	require.NoError(t, err)
	assert.Equal(t, sellerID, listing.SellerID)
	assert.Equal(t, input.Name, listing.Name)
	assert.Equal(t, entity.StatusAvailable, listing.Status)
}

func TestCatalogService_CreateListing_DuplicateName(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	mockSearchSync := mockUC.NewMockSearchSyncUsecase(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	mockQRCodes := mockSvc.NewMockQRCodeService(t)

	factory.EXPECT().ListingRepo().Return(mockListingRepo)

	ctx := context.Background()
	sellerID := uuid.New()
	input := validCreateInput()

	mockListingRepo.EXPECT().
		FindListingBySellerAndName(ctx, sellerID, input.Name).
		Return(availableListing(sellerID), nil)

	srv := NewCatalogService(mockTx, mockSearchSync, mockPublisher, mockQRCodes, &config.Config{}, testLogger())

	listing, err := srv.CreateListing(ctx, sellerID, input)
	assert.Nil(t, listing)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Field)
	assert.Equal(t, "has already been taken", vErr.Reason)
}

func TestCatalogService_CreateListing_InvalidCondition(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockSearchSync := mockUC.NewMockSearchSyncUsecase(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	mockQRCodes := mockSvc.NewMockQRCodeService(t)

	input := validCreateInput()
	input.Condition = "Shredded"

	srv := NewCatalogService(mockTx, mockSearchSync, mockPublisher, mockQRCodes, &config.Config{}, testLogger())

	listing, err := srv.CreateListing(context.Background(), uuid.New(), input)
	assert.Nil(t, listing)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "condition", vErr.Field)
}

func TestCatalogService_UpdateListing_Forbidden(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	mockSearchSync := mockUC.NewMockSearchSyncUsecase(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	mockQRCodes := mockSvc.NewMockQRCodeService(t)

	factory.EXPECT().ListingRepo().Return(mockListingRepo)

	ctx := context.Background()
	owner := uuid.New()
	intruder := uuid.New()
	listing := availableListing(owner)

	mockListingRepo.EXPECT().FindListingByID(ctx, listing.ID).Return(listing, nil)

	srv := NewCatalogService(mockTx, mockSearchSync, mockPublisher, mockQRCodes, &config.Config{}, testLogger())

	newName := "Renamed"
	updated, err := srv.UpdateListing(ctx, intruder, listing.ID, &usecase.UpdateListingInput{Name: &newName})
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCatalogService_DeleteListing_SyncsDeletion(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	mockSearchSync := mockUC.NewMockSearchSyncUsecase(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	mockQRCodes := mockSvc.NewMockQRCodeService(t)

	factory.EXPECT().ListingRepo().Return(mockListingRepo)

	ctx := context.Background()
	sellerID := uuid.New()
	listing := availableListing(sellerID)

	mockListingRepo.EXPECT().FindListingByID(ctx, listing.ID).Return(listing, nil)
	mockListingRepo.EXPECT().DeleteListing(ctx, listing.ID).Return(nil)
	mockSearchSync.EXPECT().EnqueueDelete(listing.ID.String()).Return()
	mockPublisher.EXPECT().
		PublishListingEvent(ctx, mock.AnythingOfType("*service.ListingEvent")).
		Return(nil)

	srv := NewCatalogService(mockTx, mockSearchSync, mockPublisher, mockQRCodes, &config.Config{}, testLogger())

	err := srv.DeleteListing(ctx, sellerID, listing.ID)
	require.NoError(t, err)
}

func TestCatalogService_GetListingDetail_SellerFields(t *testing.T) {
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

	billing := &entity.Address{
		Kind:       entity.AddressKindBilling,
		TownSuburb: "Xinyi District",
		City:       "Taipei",
		Latitude:   floatPtr(25.0330),
		Longitude:  floatPtr(121.5654),
	}
	shipping := &entity.Address{
		Kind:      entity.AddressKindShipping,
		City:      "Sydney",
		Latitude:  floatPtr(-33.8688),
		Longitude: floatPtr(151.2093),
	}
	seller := &entity.User{
		ID:   sellerID,
		Name: "Peter",
		Profile: &entity.Profile{
			FullName:        "Pete's Comics",
			BillingAddress:  billing,
			ShippingAddress: shipping,
		},
	}

	mockListingRepo.EXPECT().FindListingByID(ctx, listing.ID).Return(listing, nil)
	mockUserRepo.EXPECT().FindUserByID(ctx, sellerID).Return(seller, nil)
	mockEngagementRepo.EXPECT().CountViews(ctx, listing.ID).Return(int64(7), nil)
	mockQRCodes.EXPECT().
		GetListingShareURL(listing.ID.String()).
		Return("https://bazaar.example.com/listings/" + listing.ID.String())

	srv := NewCatalogService(mockTx, mockSearchSync, mockPublisher, mockQRCodes, &config.Config{}, testLogger())

	detail, err := srv.GetListingDetail(ctx, listing.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "Pete's Comics", detail.SellerName)
	assert.Equal(t, billing.PublicAddress(), detail.SellerLocation)
	assert.Equal(t, int64(7), detail.ViewCount)
	assert.False(t, detail.AddedToCart)
	assert.False(t, detail.AddedToWatchlist)

	// The map pin pairs the billing latitude with the shipping longitude.
	require.NotNil(t, detail.SellerLatitude)
	require.NotNil(t, detail.SellerLongitude)
	assert.Equal(t, *billing.Latitude, *detail.SellerLatitude)
	assert.Equal(t, *shipping.Longitude, *detail.SellerLongitude)
}

func TestCatalogService_GetListingDetail_ViewerFlags(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockEngagementRepo := mockRepo.NewMockEngagementRepository(t)
	mockWatchlistRepo := mockRepo.NewMockWatchlistRepository(t)
	mockSearchSync := mockUC.NewMockSearchSyncUsecase(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	mockQRCodes := mockSvc.NewMockQRCodeService(t)

	factory.EXPECT().ListingRepo().Return(mockListingRepo)
	factory.EXPECT().UserRepo().Return(mockUserRepo)
	factory.EXPECT().EngagementRepo().Return(mockEngagementRepo)
	factory.EXPECT().WatchlistRepo().Return(mockWatchlistRepo)

	ctx := context.Background()
	sellerID := uuid.New()
	viewerID := uuid.New()
	listing := availableListing(sellerID)
	seller := &entity.User{ID: sellerID, Name: "Peter"}

	mockListingRepo.EXPECT().FindListingByID(ctx, listing.ID).Return(listing, nil)
	mockUserRepo.EXPECT().FindUserByID(ctx, sellerID).Return(seller, nil)
	mockEngagementRepo.EXPECT().CountViews(ctx, listing.ID).Return(int64(1), nil)
	mockEngagementRepo.EXPECT().HasCartEntry(ctx, listing.ID, viewerID).Return(true, nil)
	mockWatchlistRepo.EXPECT().HasEntryForBuyer(ctx, viewerID, listing.ID).Return(false, nil)
	mockQRCodes.EXPECT().GetListingShareURL(listing.ID.String()).Return("https://bazaar.example.com/listings/" + listing.ID.String())

	srv := NewCatalogService(mockTx, mockSearchSync, mockPublisher, mockQRCodes, &config.Config{}, testLogger())

	detail, err := srv.GetListingDetail(ctx, listing.ID, &viewerID)
	require.NoError(t, err)
	assert.Equal(t, "Peter", detail.SellerName)
	assert.True(t, detail.AddedToCart)
	assert.False(t, detail.AddedToWatchlist)
}

func TestCatalogService_SearchListings_WrapsIndexError(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockSearchSync := mockUC.NewMockSearchSyncUsecase(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	mockQRCodes := mockSvc.NewMockQRCodeService(t)

	ctx := context.Background()
	query := &service.SearchQuery{Text: "venom"}

	mockSearchSync.EXPECT().Search(ctx, query).Return(nil, errors.New("index unavailable"))

	srv := NewCatalogService(mockTx, mockSearchSync, mockPublisher, mockQRCodes, &config.Config{}, testLogger())

	results, err := srv.SearchListings(ctx, query)
	assert.Nil(t, results)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SEARCH_SYNC_FAILED", appErr.ErrorCode())
}

func TestCatalogService_GenerateShareQRCode(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	mockSearchSync := mockUC.NewMockSearchSyncUsecase(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	mockQRCodes := mockSvc.NewMockQRCodeService(t)

	factory.EXPECT().ListingRepo().Return(mockListingRepo)

	ctx := context.Background()
	listing := availableListing(uuid.New())
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	mockListingRepo.EXPECT().FindListingByID(ctx, listing.ID).Return(listing, nil)
	mockQRCodes.EXPECT().GenerateListingQRCode(listing.ID.String()).Return(png, nil)

	srv := NewCatalogService(mockTx, mockSearchSync, mockPublisher, mockQRCodes, &config.Config{}, testLogger())

	rendered, err := srv.GenerateShareQRCode(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, png, rendered)
}
