package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/geo"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// locationService implements the LocationUsecase interface.
type locationService struct {
	txManager repository.TransactionManager
	geocoder  service.Geocoder
	logger    *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(
	txManager repository.TransactionManager,
	geocoder service.Geocoder,
	logger *slog.Logger,
) usecase.LocationUsecase {
	return &locationService{
		txManager: txManager,
		geocoder:  geocoder,
		logger:    logger,
	}
}

// UpsertAddress creates or replaces the user's address of the given kind.
// The address is re-geocoded only when its canonical display form changed;
// a failed lookup leaves the address unresolved and is not an error.
func (srv *locationService) UpsertAddress(ctx context.Context, userID uuid.UUID, kind entity.AddressKind, input *usecase.UpsertAddressInput) (*entity.Address, error) {
	if !kind.IsValid() {
		return nil, domainerrors.NewValidationError("kind", "must be billing or shipping")
	}
	if err := validateAddressInput(input); err != nil {
		return nil, err
	}

	// Read phase: locate the profile and any existing address of this kind.
	var profileID uuid.UUID
	var existing *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}
		if user.Profile == nil {
			return domainerrors.ErrProfileNotFound
		}
		profileID = user.Profile.ID

		found, err := repoFactory.AddressRepo().FindAddressByProfileAndKind(ctx, profileID, kind)
		if err != nil && !errors.Is(err, repository.ErrAddressNotFound) {
			return errors.Wrap(err, "failed to find address")
		}
		existing = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	address := &entity.Address{
		ID:          uuid.New(),
		ProfileID:   profileID,
		Kind:        kind,
		HouseNumber: input.HouseNumber,
		StreetName:  input.StreetName,
		TownSuburb:  input.TownSuburb,
		City:        input.City,
		State:       input.State,
		PostalCode:  input.PostalCode,
		CountryCode: input.CountryCode,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if existing != nil {
		address.ID = existing.ID
		address.CreatedAt = existing.CreatedAt
		address.Latitude = existing.Latitude
		address.Longitude = existing.Longitude
	}

	// Geocode outside the transaction; the lookup is a network call.
	if existing == nil || address.FullAddress() != existing.FullAddress() {
		srv.resolveCoordinate(ctx, address)
	}

	// Write phase.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		if existing == nil {
			if err := addressRepo.CreateAddress(ctx, address); err != nil {
				if errors.Is(err, repository.ErrAddressKindConflict) {
					return domainerrors.ErrAddressKindConflict
				}

				return errors.Wrap(err, "failed to create address")
			}

			return nil
		}

		if err := addressRepo.UpdateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to update address")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return address, nil
}

// resolveCoordinate geocodes the address display form. On any failure the
// coordinate pair is cleared so the address is stored unresolved.
func (srv *locationService) resolveCoordinate(ctx context.Context, address *entity.Address) {
	point, err := srv.geocoder.Geocode(ctx, address.FullAddress())
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("address could not be geocoded",
			slog.String("address_id", address.ID.String()),
			slog.String("kind", address.Kind.String()),
			slog.String("error", err.Error()),
		)
		address.ClearCoordinate()

		return
	}

	address.SetCoordinate(point)
}

// GetAddresses retrieves the user's billing and shipping addresses.
func (srv *locationService) GetAddresses(ctx context.Context, userID uuid.UUID) (*entity.Address, *entity.Address, error) {
	var billing, shipping *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		if user.Profile != nil {
			billing = user.Profile.BillingAddress
			shipping = user.Profile.ShippingAddress
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return billing, shipping, nil
}

// DeleteAddress removes the user's address of the given kind.
func (srv *locationService) DeleteAddress(ctx context.Context, userID uuid.UUID, kind entity.AddressKind) error {
	if !kind.IsValid() {
		return domainerrors.NewValidationError("kind", "must be billing or shipping")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}
		if user.Profile == nil {
			return domainerrors.ErrProfileNotFound
		}

		addressRepo := repoFactory.AddressRepo()
		address, err := addressRepo.FindAddressByProfileAndKind(ctx, user.Profile.ID, kind)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return domainerrors.ErrAddressNotFound
			}

			return errors.Wrap(err, "failed to find address")
		}

		if err := addressRepo.DeleteAddress(ctx, address.ID); err != nil {
			return errors.Wrap(err, "failed to delete address")
		}

		return nil
	})
}

// DistanceBetweenUsers computes the kilometer distance between two users'
// billing addresses. known is false when either side has no resolved coordinate.
func (srv *locationService) DistanceBetweenUsers(ctx context.Context, userID, otherUserID uuid.UUID) (float64, bool, error) {
	var distanceKm float64
	var known bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		first, err := userRepo.FindUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}
		second, err := userRepo.FindUserByID(ctx, otherUserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		distanceKm, known = geo.AddressDistanceKm(billingAddressOf(first), billingAddressOf(second))

		return nil
	})
	if err != nil {
		return 0, false, err
	}

	return distanceKm, known, nil
}

// validateAddressInput checks the structured address fields.
func validateAddressInput(input *usecase.UpsertAddressInput) error {
	if input == nil {
		return domainerrors.NewValidationError("address", "is required")
	}
	if input.City == "" {
		return domainerrors.NewValidationError("city", "is required")
	}
	if input.CountryCode != "" {
		if _, ok := entity.CountryName(input.CountryCode); !ok {
			return domainerrors.NewValidationError("country_code", "is not a recognized country")
		}
	}

	return nil
}
