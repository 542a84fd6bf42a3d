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

// listingRepository implements the domain.ListingRepository interface.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

// CreateListing persists a new listing. The (seller, name) unique index
// backs the per-seller name invariant.
func (repo *listingRepository) CreateListing(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateListingName
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrListingCreationFailed.WrapMessage("invalid seller reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrListingCreationFailed.WrapMessage("missing required listing information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	// Update the entity with generated values
	listing.ID = listingM.ID
	listing.Version = listingM.Version
	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// FindListingByID retrieves a listing by its unique ID.
func (repo *listingRepository) FindListingByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var listingM model.ListingModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by ID")
	}

	return toListingDomain(&listingM), nil
}

// FindListingBySellerAndName retrieves a listing by the (seller, name) pair.
func (repo *listingRepository) FindListingBySellerAndName(ctx context.Context, sellerID uuid.UUID, name string) (*entity.Listing, error) {
	var listingM model.ListingModel
	if err := repo.db.WithContext(ctx).
		Where("seller_id = ? AND name = ?", sellerID, name).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by seller and name")
	}

	return toListingDomain(&listingM), nil
}

// FindListingsBySeller retrieves all listings of a seller, newest first.
func (repo *listingRepository) FindListingsBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Listing, error) {
	var listingModels []*model.ListingModel
	if err := repo.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings by seller")
	}

	listings := make([]*entity.Listing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings, nil
}

// UpdateListing updates an existing listing record.
func (repo *listingRepository) UpdateListing(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Save(listingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateListingName
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrListingUpdateFailed.WrapMessage("missing required listing information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update listing")
	}

	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// UpdateListingStatus sets the status with a compare-and-swap on the version
// column. A zero RowsAffected means the expected version no longer matches,
// either because a concurrent writer advanced it or the row is gone.
func (repo *listingRepository) UpdateListingStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus, expectedVersion int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(map[string]any{
			"status":  status.String(),
			"version": gorm.Expr("version + 1"),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update listing status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVersionConflict
	}

	return nil
}

// DeleteListing removes a listing by its ID.
func (repo *listingRepository) DeleteListing(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ListingModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete listing")
	}

	// If no rows were affected, it means the listing was not found.
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toListingDomain converts a GORM ListingModel to a domain Listing entity.
func toListingDomain(data *model.ListingModel) *entity.Listing {
	if data == nil {
		return nil
	}

	return &entity.Listing{
		ID:           data.ID,
		SellerID:     data.SellerID,
		Name:         data.Name,
		Price:        data.Price,
		Description:  data.Description,
		Condition:    entity.ListingCondition(data.Condition),
		Status:       entity.ListingStatus(data.Status),
		Category:     entity.ListingCategory(data.Category),
		Postage:      entity.PostageType(data.Postage),
		Manufacturer: data.Manufacturer,
		Publisher:    data.Publisher,
		Author:       data.Author,
		Illustrator:  data.Illustrator,
		ISBN10:       data.ISBN10,
		ISBN13:       data.ISBN13,
		PublishDate:  data.PublishDate,
		Dimensions:   data.Dimensions,
		Weight:       data.Weight,
		Keywords:     data.Keywords,
		Version:      data.Version,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromListingDomain converts a domain Listing entity to a GORM ListingModel.
func fromListingDomain(data *entity.Listing) *model.ListingModel {
	if data == nil {
		return nil
	}

	return &model.ListingModel{
		ID:           data.ID,
		SellerID:     data.SellerID,
		Name:         data.Name,
		Price:        data.Price,
		Description:  data.Description,
		Condition:    data.Condition.String(),
		Status:       data.Status.String(),
		Category:     data.Category.String(),
		Postage:      data.Postage.String(),
		Manufacturer: data.Manufacturer,
		Publisher:    data.Publisher,
		Author:       data.Author,
		Illustrator:  data.Illustrator,
		ISBN10:       data.ISBN10,
		ISBN13:       data.ISBN13,
		PublishDate:  data.PublishDate,
		Dimensions:   data.Dimensions,
		Weight:       data.Weight,
		Keywords:     data.Keywords,
		Version:      data.Version,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
