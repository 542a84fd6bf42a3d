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

// watchlistRepository implements the domain.WatchlistRepository interface.
type watchlistRepository struct {
	db *gorm.DB
}

// NewWatchlistRepository is the constructor for watchlistRepository.
func NewWatchlistRepository(db *gorm.DB) repository.WatchlistRepository {
	return &watchlistRepository{db: db}
}

// FindOrCreateWatchlistByBuyer retrieves the buyer's watchlist, creating it
// on first use. The insert absorbs the creation race on the buyer unique
// index and the follow-up read returns whichever row won.
func (repo *watchlistRepository) FindOrCreateWatchlistByBuyer(ctx context.Context, buyerID uuid.UUID) (*entity.Watchlist, error) {
	var watchlistM model.WatchlistModel
	err := repo.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		First(&watchlistM).Error
	if err == nil {
		return toWatchlistDomain(&watchlistM), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "failed to find watchlist by buyer")
	}

	created := model.WatchlistModel{BuyerID: buyerID}
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "buyer_id"}},
			DoNothing: true,
		}).
		Create(&created).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create watchlist")
	}

	if err := repo.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		First(&watchlistM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load watchlist after create")
	}

	return toWatchlistDomain(&watchlistM), nil
}

// InsertEntryIfAbsent adds a listing to the watchlist unless it is already present.
func (repo *watchlistRepository) InsertEntryIfAbsent(ctx context.Context, entry *entity.WatchlistEntry) (bool, error) {
	entryM := &model.WatchlistEntryModel{
		ID:          entry.ID,
		WatchlistID: entry.WatchlistID,
		ListingID:   entry.ListingID,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "watchlist_id"}, {Name: "listing_id"}},
			DoNothing: true,
		}).
		Create(entryM)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, domainerrors.ErrWatchlistNotFound.WrapMessage("invalid watchlist or listing reference")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to add watchlist entry")
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return true, nil
}

// DeleteEntry removes a listing from the watchlist. Removing an absent
// listing is a no-op, not an error.
func (repo *watchlistRepository) DeleteEntry(ctx context.Context, watchlistID, listingID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("watchlist_id = ? AND listing_id = ?", watchlistID, listingID).
		Delete(&model.WatchlistEntryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete watchlist entry")
	}

	return nil
}

// HasEntry reports whether the watchlist contains the listing.
func (repo *watchlistRepository) HasEntry(ctx context.Context, watchlistID, listingID uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.WatchlistEntryModel{}).
		Where("watchlist_id = ? AND listing_id = ?", watchlistID, listingID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check watchlist entry")
	}

	return count > 0, nil
}

// HasEntryForBuyer reports whether the buyer watches the listing. A buyer
// without a watchlist yet watches nothing.
func (repo *watchlistRepository) HasEntryForBuyer(ctx context.Context, buyerID, listingID uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.WatchlistEntryModel{}).
		Joins("JOIN watchlists ON watchlists.id = watchlist_entries.watchlist_id").
		Where("watchlists.buyer_id = ? AND watchlist_entries.listing_id = ?", buyerID, listingID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check watchlist entry for buyer")
	}

	return count > 0, nil
}

// FindEntries retrieves all entries of a watchlist, oldest first.
func (repo *watchlistRepository) FindEntries(ctx context.Context, watchlistID uuid.UUID) ([]*entity.WatchlistEntry, error) {
	var entryModels []*model.WatchlistEntryModel
	if err := repo.db.WithContext(ctx).
		Where("watchlist_id = ?", watchlistID).
		Order("created_at ASC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find watchlist entries")
	}

	entries := make([]*entity.WatchlistEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, &entity.WatchlistEntry{
			ID:          entryM.ID,
			WatchlistID: entryM.WatchlistID,
			ListingID:   entryM.ListingID,
			CreatedAt:   entryM.CreatedAt,
		})
	}

	return entries, nil
}

// toWatchlistDomain converts a GORM WatchlistModel to a domain Watchlist entity.
func toWatchlistDomain(data *model.WatchlistModel) *entity.Watchlist {
	if data == nil {
		return nil
	}

	return &entity.Watchlist{
		ID:        data.ID,
		BuyerID:   data.BuyerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
