package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func taipeiAddressInput() *usecase.UpsertAddressInput {
	return &usecase.UpsertAddressInput{
		HouseNumber: "7",
		StreetName:  "Xinyi Road",
		TownSuburb:  "Xinyi District",
		City:        "Taipei",
		PostalCode:  "110",
		CountryCode: "TW",
	}
}

func userWithProfile(userID uuid.UUID) *entity.User {
	return &entity.User{
		ID:   userID,
		Name: "Peter",
		Profile: &entity.Profile{
			ID:     uuid.New(),
			UserID: userID,
		},
	}
}

func TestLocationService_UpsertAddress_GeocodesNewAddress(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockAddressRepo := mockRepo.NewMockAddressRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)

	factory.EXPECT().UserRepo().Return(mockUserRepo)
	factory.EXPECT().AddressRepo().Return(mockAddressRepo)

	ctx := context.Background()
	userID := uuid.New()
	user := userWithProfile(userID)

	mockUserRepo.EXPECT().FindUserByID(ctx, userID).Return(user, nil)
	mockAddressRepo.EXPECT().
		FindAddressByProfileAndKind(ctx, user.Profile.ID, entity.AddressKindBilling).
		Return(nil, repository.ErrAddressNotFound)
	mockGeocoder.EXPECT().
		Geocode(ctx, "7 Xinyi Road, Xinyi District, Taipei, 110, Taiwan").
		Return(orb.Point{121.5654, 25.0330}, nil)
	mockAddressRepo.EXPECT().
		CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).
		Return(nil)

	srv := NewLocationService(mockTx, mockGeocoder, testLogger())

	address, err := srv.UpsertAddress(ctx, userID, entity.AddressKindBilling, taipeiAddressInput())
	require.NoError(t, err)
	assert.Equal(t, user.Profile.ID, address.ProfileID)
	assert.Equal(t, entity.AddressKindBilling, address.Kind)
	require.NotNil(t, address.Latitude)
	require.NotNil(t, address.Longitude)
	assert.InDelta(t, 25.0330, *address.Latitude, 1e-9)
	assert.InDelta(t, 121.5654, *address.Longitude, 1e-9)
}

func TestLocationService_UpsertAddress_SkipsGeocodeWhenDisplayFormUnchanged(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockAddressRepo := mockRepo.NewMockAddressRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)

	factory.EXPECT().UserRepo().Return(mockUserRepo)
	factory.EXPECT().AddressRepo().Return(mockAddressRepo)

	ctx := context.Background()
	userID := uuid.New()
	user := userWithProfile(userID)
	input := taipeiAddressInput()

	existing := &entity.Address{
		ID:          uuid.New(),
		ProfileID:   user.Profile.ID,
		Kind:        entity.AddressKindBilling,
		HouseNumber: input.HouseNumber,
		StreetName:  input.StreetName,
		TownSuburb:  input.TownSuburb,
		City:        input.City,
		PostalCode:  input.PostalCode,
		CountryCode: input.CountryCode,
		Latitude:    floatPtr(25.0330),
		Longitude:   floatPtr(121.5654),
		CreatedAt:   time.Now().Add(-24 * time.Hour),
	}

	mockUserRepo.EXPECT().FindUserByID(ctx, userID).Return(user, nil)
	mockAddressRepo.EXPECT().
		FindAddressByProfileAndKind(ctx, user.Profile.ID, entity.AddressKindBilling).
		Return(existing, nil)
	mockAddressRepo.EXPECT().
		UpdateAddress(ctx, mock.AnythingOfType("*entity.Address")).
		Return(nil)

	srv := NewLocationService(mockTx, mockGeocoder, testLogger())

	address, err := srv.UpsertAddress(ctx, userID, entity.AddressKindBilling, input)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, address.ID)
	assert.Equal(t, existing.CreatedAt, address.CreatedAt)
	assert.Equal(t, existing.Latitude, address.Latitude)
	assert.Equal(t, existing.Longitude, address.Longitude)
	mockGeocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
}

func TestLocationService_UpsertAddress_GeocodeFailureLeavesUnresolved(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockAddressRepo := mockRepo.NewMockAddressRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)

	factory.EXPECT().UserRepo().Return(mockUserRepo)
	factory.EXPECT().AddressRepo().Return(mockAddressRepo)

	ctx := context.Background()
	userID := uuid.New()
	user := userWithProfile(userID)

	mockUserRepo.EXPECT().FindUserByID(ctx, userID).Return(user, nil)
	mockAddressRepo.EXPECT().
		FindAddressByProfileAndKind(ctx, user.Profile.ID, entity.AddressKindShipping).
		Return(nil, repository.ErrAddressNotFound)
	mockGeocoder.EXPECT().
		Geocode(ctx, mock.AnythingOfType("string")).
		Return(orb.Point{}, errors.New("lookup timed out"))
	mockAddressRepo.EXPECT().
		CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).
		Return(nil)

	srv := NewLocationService(mockTx, mockGeocoder, testLogger())

	address, err := srv.UpsertAddress(ctx, userID, entity.AddressKindShipping, taipeiAddressInput())
	require.NoError(t, err)
	assert.Nil(t, address.Latitude)
	assert.Nil(t, address.Longitude)
}

func TestLocationService_UpsertAddress_CityRequired(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)

	input := taipeiAddressInput()
	input.City = ""

	srv := NewLocationService(mockTx, mockGeocoder, testLogger())

	address, err := srv.UpsertAddress(context.Background(), uuid.New(), entity.AddressKindBilling, input)
	assert.Nil(t, address)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "city", vErr.Field)
}

func TestLocationService_UpsertAddress_UnknownCountry(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)

	input := taipeiAddressInput()
	input.CountryCode = "XX"

	srv := NewLocationService(mockTx, mockGeocoder, testLogger())

	address, err := srv.UpsertAddress(context.Background(), uuid.New(), entity.AddressKindBilling, input)
	assert.Nil(t, address)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "country_code", vErr.Field)
}

func TestLocationService_UpsertAddress_InvalidKind(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)

	srv := NewLocationService(mockTx, mockGeocoder, testLogger())

	address, err := srv.UpsertAddress(context.Background(), uuid.New(), entity.AddressKind("office"), taipeiAddressInput())
	assert.Nil(t, address)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "kind", vErr.Field)
}

func TestLocationService_DeleteAddress_NotFound(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockAddressRepo := mockRepo.NewMockAddressRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)

	factory.EXPECT().UserRepo().Return(mockUserRepo)
	factory.EXPECT().AddressRepo().Return(mockAddressRepo)

	ctx := context.Background()
	userID := uuid.New()
	user := userWithProfile(userID)

	mockUserRepo.EXPECT().FindUserByID(ctx, userID).Return(user, nil)
	mockAddressRepo.EXPECT().
		FindAddressByProfileAndKind(ctx, user.Profile.ID, entity.AddressKindShipping).
		Return(nil, repository.ErrAddressNotFound)

	srv := NewLocationService(mockTx, mockGeocoder, testLogger())

	err := srv.DeleteAddress(ctx, userID, entity.AddressKindShipping)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestLocationService_DistanceBetweenUsers_Known(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)

	factory.EXPECT().UserRepo().Return(mockUserRepo)

	ctx := context.Background()

	taipei := userWithProfile(uuid.New())
	taipei.Profile.BillingAddress = &entity.Address{
		Latitude:  floatPtr(25.0330),
		Longitude: floatPtr(121.5654),
	}
	kaohsiung := userWithProfile(uuid.New())
	kaohsiung.Profile.BillingAddress = &entity.Address{
		Latitude:  floatPtr(22.6273),
		Longitude: floatPtr(120.3014),
	}

	mockUserRepo.EXPECT().FindUserByID(ctx, taipei.ID).Return(taipei, nil)
	mockUserRepo.EXPECT().FindUserByID(ctx, kaohsiung.ID).Return(kaohsiung, nil)

	srv := NewLocationService(mockTx, mockGeocoder, testLogger())

	distanceKm, known, err := srv.DistanceBetweenUsers(ctx, taipei.ID, kaohsiung.ID)
	require.NoError(t, err)
	assert.True(t, known)
	assert.InDelta(t, 297, distanceKm, 5)
}

func TestLocationService_DistanceBetweenUsers_UnresolvedCoordinate(t *testing.T) {
	mockTx, factory := newTxManager(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockGeocoder := mockSvc.NewMockGeocoder(t)

	factory.EXPECT().UserRepo().Return(mockUserRepo)

	ctx := context.Background()

	resolved := userWithProfile(uuid.New())
	resolved.Profile.BillingAddress = &entity.Address{
		Latitude:  floatPtr(25.0330),
		Longitude: floatPtr(121.5654),
	}
	unresolved := userWithProfile(uuid.New())
	unresolved.Profile.BillingAddress = &entity.Address{City: "Taipei"}

	mockUserRepo.EXPECT().FindUserByID(ctx, resolved.ID).Return(resolved, nil)
	mockUserRepo.EXPECT().FindUserByID(ctx, unresolved.ID).Return(unresolved, nil)

	srv := NewLocationService(mockTx, mockGeocoder, testLogger())

	distanceKm, known, err := srv.DistanceBetweenUsers(ctx, resolved.ID, unresolved.ID)
	require.NoError(t, err)
	assert.False(t, known)
	assert.Zero(t, distanceKm)
}
