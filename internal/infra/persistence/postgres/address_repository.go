package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// CreateAddress persists a new address for a profile. The (profile, kind)
// unique index keeps each profile at one billing and one shipping address.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAddressKindConflict
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound.WrapMessage("invalid profile reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	// Update the entity with generated values
	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves an address by its unique ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressByProfileAndKind retrieves the profile's address of the given kind.
func (repo *addressRepository) FindAddressByProfileAndKind(ctx context.Context, profileID uuid.UUID, kind entity.AddressKind) (*entity.Address, error) {
	var addressM model.AddressModel
	if err := repo.db.WithContext(ctx).
		Where("profile_id = ? AND kind = ?", profileID, kind.String()).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by profile and kind")
	}

	return toAddressDomain(&addressM), nil
}

// UpdateAddress updates an existing address record. Save writes every column,
// so a cleared coordinate pair lands as NULLs.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Save(addressM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAddressKindConflict
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update address")
	}

	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// DeleteAddress removes an address by its ID.
func (repo *addressRepository) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AddressModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete address")
	}

	// If no rows were affected, it means the address was not found.
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:          data.ID,
		ProfileID:   data.ProfileID,
		Kind:        entity.AddressKind(data.Kind),
		HouseNumber: data.HouseNumber,
		StreetName:  data.StreetName,
		TownSuburb:  data.TownSuburb,
		City:        data.City,
		State:       data.State,
		PostalCode:  data.PostalCode,
		CountryCode: data.CountryCode,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:          data.ID,
		ProfileID:   data.ProfileID,
		Kind:        data.Kind.String(),
		HouseNumber: data.HouseNumber,
		StreetName:  data.StreetName,
		TownSuburb:  data.TownSuburb,
		City:        data.City,
		State:       data.State,
		PostalCode:  data.PostalCode,
		CountryCode: data.CountryCode,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
