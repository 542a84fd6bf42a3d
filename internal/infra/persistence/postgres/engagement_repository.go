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
	"gorm.io/gorm/clause"
)

// engagementRepository implements the domain.EngagementRepository interface.
// Idempotent inserts ride on ON CONFLICT DO NOTHING against the composite
// unique indexes, so two concurrent first views cannot both insert.
type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository is the constructor for engagementRepository.
func NewEngagementRepository(db *gorm.DB) repository.EngagementRepository {
	return &engagementRepository{db: db}
}

// InsertViewIfAbsent records a product view unless one already exists for
// the (listing, buyer) pair.
func (repo *engagementRepository) InsertViewIfAbsent(ctx context.Context, view *entity.ProductView) (bool, error) {
	viewM := &model.ProductViewModel{
		ID:        view.ID,
		ListingID: view.ListingID,
		BuyerID:   view.BuyerID,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "listing_id"}, {Name: "buyer_id"}},
			DoNothing: true,
		}).
		Create(viewM)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, domainerrors.ErrListingNotFound.WrapMessage("invalid listing or buyer reference")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to record product view")
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	view.ID = viewM.ID
	view.CreatedAt = viewM.CreatedAt

	return true, nil
}

// FindView retrieves the view record for a (listing, buyer) pair.
func (repo *engagementRepository) FindView(ctx context.Context, listingID, buyerID uuid.UUID) (*entity.ProductView, error) {
	var viewM model.ProductViewModel
	if err := repo.db.WithContext(ctx).
		Where("listing_id = ? AND buyer_id = ?", listingID, buyerID).
		First(&viewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrViewNotFound
		}

		return nil, errors.Wrap(err, "failed to find product view")
	}

	return &entity.ProductView{
		ID:        viewM.ID,
		ListingID: viewM.ListingID,
		BuyerID:   viewM.BuyerID,
		CreatedAt: viewM.CreatedAt,
	}, nil
}

// CountViews returns the number of view records for a listing. Rows are
// already unique per buyer, so this is the raw row count.
func (repo *engagementRepository) CountViews(ctx context.Context, listingID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductViewModel{}).
		Where("listing_id = ?", listingID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count product views")
	}

	return count, nil
}

// InsertCartEntryIfAbsent adds a listing to the buyer's cart unless it is already there.
func (repo *engagementRepository) InsertCartEntryIfAbsent(ctx context.Context, entry *entity.CartEntry) (bool, error) {
	entryM := &model.CartEntryModel{
		ID:        entry.ID,
		ListingID: entry.ListingID,
		BuyerID:   entry.BuyerID,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "listing_id"}, {Name: "buyer_id"}},
			DoNothing: true,
		}).
		Create(entryM)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, domainerrors.ErrListingNotFound.WrapMessage("invalid listing or buyer reference")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to add cart entry")
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return true, nil
}

// DeleteCartEntry removes a listing from the buyer's cart. Removing an
// absent entry is a no-op, not an error.
func (repo *engagementRepository) DeleteCartEntry(ctx context.Context, listingID, buyerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("listing_id = ? AND buyer_id = ?", listingID, buyerID).
		Delete(&model.CartEntryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cart entry")
	}

	return nil
}

// HasCartEntry reports whether the buyer has the listing in their cart.
func (repo *engagementRepository) HasCartEntry(ctx context.Context, listingID, buyerID uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.CartEntryModel{}).
		Where("listing_id = ? AND buyer_id = ?", listingID, buyerID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check cart entry")
	}

	return count > 0, nil
}

// FindCartEntriesByBuyer retrieves all cart entries of a buyer, oldest first.
func (repo *engagementRepository) FindCartEntriesByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.CartEntry, error) {
	var entryModels []*model.CartEntryModel
	if err := repo.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("created_at ASC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find cart entries by buyer")
	}

	entries := make([]*entity.CartEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, &entity.CartEntry{
			ID:        entryM.ID,
			ListingID: entryM.ListingID,
			BuyerID:   entryM.BuyerID,
			CreatedAt: entryM.CreatedAt,
		})
	}

	return entries, nil
}
