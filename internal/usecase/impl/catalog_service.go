package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"bazaar/config"
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

// statusRetryAttempts bounds the optimistic retry loop on status writes.
const statusRetryAttempts = 3

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager  repository.TransactionManager
	searchSync usecase.SearchSyncUsecase
	publisher  service.EventPublisher
	qrCodes    service.QRCodeService
	config     *config.Config
	logger     *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	txManager repository.TransactionManager,
	searchSync usecase.SearchSyncUsecase,
	publisher service.EventPublisher,
	qrCodes service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		txManager:  txManager,
		searchSync: searchSync,
		publisher:  publisher,
		qrCodes:    qrCodes,
		config:     cfg,
		logger:     logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) strictTransitions() bool {
	return srv.config.Catalog != nil && srv.config.Catalog.StrictStatusTransitions
}

// CreateListing validates and persists a new listing for a seller.
func (srv *catalogService) CreateListing(ctx context.Context, sellerID uuid.UUID, input *usecase.CreateListingInput) (*entity.Listing, error) {
	listing := &entity.Listing{
		ID:           uuid.New(),
		SellerID:     sellerID,
		Name:         strings.TrimSpace(input.Name),
		Price:        input.Price,
		Description:  input.Description,
		Condition:    entity.ListingCondition(input.Condition),
		Status:       entity.StatusAvailable,
		Category:     entity.ListingCategory(input.Category),
		Postage:      entity.PostageType(input.Postage),
		Manufacturer: input.Manufacturer,
		Publisher:    input.Publisher,
		Author:       input.Author,
		Illustrator:  input.Illustrator,
		ISBN10:       input.ISBN10,
		ISBN13:       input.ISBN13,
		PublishDate:  input.PublishDate,
		Dimensions:   input.Dimensions,
		Weight:       input.Weight,
		Keywords:     input.Keywords,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := listing.Validate(); err != nil {
		return nil, err
	}

	var doc *service.ListingDocument

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listingRepo := repoFactory.ListingRepo()

		// 1. Enforce the per-seller name invariant before writing.
		_, err := listingRepo.FindListingBySellerAndName(ctx, sellerID, listing.Name)
		if err == nil {
			return domainerrors.NewValidationError("name", "has already been taken")
		}
		if !errors.Is(err, repository.ErrListingNotFound) {
			return errors.Wrap(err, "failed to check listing name")
		}

		// 2. Persist; the unique index catches the concurrent writer race.
		if err := listingRepo.CreateListing(ctx, listing); err != nil {
			if errors.Is(err, repository.ErrDuplicateListingName) {
				return domainerrors.NewValidationError("name", "has already been taken")
			}

			return errors.Wrap(err, "failed to create listing")
		}

		// 3. Project the index document while the seller row is at hand.
		seller, err := repoFactory.UserRepo().FindUserByID(ctx, sellerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "seller not found")
			}

			return errors.Wrap(err, "failed to find seller")
		}
		doc = BuildListingDocument(listing, seller, 0)

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("listing created",
		slog.String("listing_id", listing.ID.String()),
		slog.String("seller_id", sellerID.String()),
	)
	syncListingDocument(ctx, srv.searchSync, srv.publisher, srv.logger,
		service.ListingEventUpserted, listing.ID.String(), doc)

	return listing, nil
}

// UpdateListing applies partial updates to a listing owned by the seller.
func (srv *catalogService) UpdateListing(ctx context.Context, sellerID, listingID uuid.UUID, input *usecase.UpdateListingInput) (*entity.Listing, error) {
	var listing *entity.Listing
	var doc *service.ListingDocument

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listingRepo := repoFactory.ListingRepo()

		found, err := listingRepo.FindListingByID(ctx, listingID)
		if err != nil {
			if errors.Is(err, repository.ErrListingNotFound) {
				return domainerrors.ErrListingNotFound
			}

			return errors.Wrap(err, "failed to find listing")
		}

		if found.SellerID != sellerID {
			return errors.Wrap(domainerrors.ErrForbidden, "listing belongs to another seller")
		}

		nameChanged := applyListingUpdates(found, input)
		if err := found.Validate(); err != nil {
			return err
		}

		if nameChanged {
			existing, err := listingRepo.FindListingBySellerAndName(ctx, sellerID, found.Name)
			if err == nil && existing.ID != found.ID {
				return domainerrors.NewValidationError("name", "has already been taken")
			}
			if err != nil && !errors.Is(err, repository.ErrListingNotFound) {
				return errors.Wrap(err, "failed to check listing name")
			}
		}

		if err := listingRepo.UpdateListing(ctx, found); err != nil {
			if errors.Is(err, repository.ErrDuplicateListingName) {
				return domainerrors.NewValidationError("name", "has already been taken")
			}

			return errors.Wrap(err, "failed to update listing")
		}

		seller, err := repoFactory.UserRepo().FindUserByID(ctx, sellerID)
		if err != nil {
			return errors.Wrap(err, "failed to find seller")
		}
		viewCount, err := repoFactory.EngagementRepo().CountViews(ctx, listingID)
		if err != nil {
			return errors.Wrap(err, "failed to count views")
		}

		listing = found
		doc = BuildListingDocument(found, seller, viewCount)

		return nil
	})
	if err != nil {
		return nil, err
	}

	syncListingDocument(ctx, srv.searchSync, srv.publisher, srv.logger,
		service.ListingEventUpserted, listing.ID.String(), doc)

	return listing, nil
}

// applyListingUpdates applies the update input to a listing and reports
// whether the name changed.
func applyListingUpdates(listing *entity.Listing, input *usecase.UpdateListingInput) bool {
	nameChanged := false

	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		nameChanged = trimmed != listing.Name
		listing.Name = trimmed
	}
	if input.Price != nil {
		listing.Price = *input.Price
	}
	if input.Description != nil {
		listing.Description = *input.Description
	}
	if input.Condition != nil {
		listing.Condition = entity.ListingCondition(*input.Condition)
	}
	if input.Category != nil {
		listing.Category = entity.ListingCategory(*input.Category)
	}
	if input.Postage != nil {
		listing.Postage = entity.PostageType(*input.Postage)
	}
	if input.Manufacturer != nil {
		listing.Manufacturer = *input.Manufacturer
	}
	if input.Publisher != nil {
		listing.Publisher = *input.Publisher
	}
	if input.Author != nil {
		listing.Author = *input.Author
	}
	if input.Illustrator != nil {
		listing.Illustrator = *input.Illustrator
	}
	if input.ISBN10 != nil {
		listing.ISBN10 = *input.ISBN10
	}
	if input.ISBN13 != nil {
		listing.ISBN13 = *input.ISBN13
	}
	if input.PublishDate != nil {
		listing.PublishDate = input.PublishDate
	}
	if input.Dimensions != nil {
		listing.Dimensions = *input.Dimensions
	}
	if input.Weight != nil {
		listing.Weight = input.Weight
	}
	if input.Keywords != nil {
		listing.Keywords = *input.Keywords
	}
	listing.UpdatedAt = time.Now()

	return nameChanged
}

// GetListingDetail assembles the listing read model.
func (srv *catalogService) GetListingDetail(ctx context.Context, listingID uuid.UUID, viewerID *uuid.UUID) (*usecase.ListingDetail, error) {
	var detail *usecase.ListingDetail

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listing, err := repoFactory.ListingRepo().FindListingByID(ctx, listingID)
		if err != nil {
			if errors.Is(err, repository.ErrListingNotFound) {
				return domainerrors.ErrListingNotFound
			}

			return errors.Wrap(err, "failed to find listing")
		}

		seller, err := repoFactory.UserRepo().FindUserByID(ctx, listing.SellerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "seller not found")
			}

			return errors.Wrap(err, "failed to find seller")
		}

		viewCount, err := repoFactory.EngagementRepo().CountViews(ctx, listingID)
		if err != nil {
			return errors.Wrap(err, "failed to count views")
		}

		detail = &usecase.ListingDetail{
			Listing:    listing,
			SellerName: seller.Name,
			ViewCount:  viewCount,
			ShareURL:   srv.qrCodes.GetListingShareURL(listing.ID.String()),
		}

		if profile := seller.Profile; profile != nil {
			if profile.FullName != "" {
				detail.SellerName = profile.FullName
			}
			// The displayed location and latitude come from the billing
			// address, the longitude from the shipping address. Existing
			// map clients depend on that pairing.
			if billing := profile.BillingAddress; billing != nil {
				detail.SellerLocation = billing.PublicAddress()
				detail.SellerLatitude = billing.Latitude
			}
			if shipping := profile.ShippingAddress; shipping != nil {
				detail.SellerLongitude = shipping.Longitude
			}
		}

		if viewerID != nil {
			inCart, err := repoFactory.EngagementRepo().HasCartEntry(ctx, listingID, *viewerID)
			if err != nil {
				return errors.Wrap(err, "failed to check cart entry")
			}
			watched, err := repoFactory.WatchlistRepo().HasEntryForBuyer(ctx, *viewerID, listingID)
			if err != nil {
				return errors.Wrap(err, "failed to check watchlist entry")
			}
			detail.AddedToCart = inCart
			detail.AddedToWatchlist = watched
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return detail, nil
}

// GetSellerListings retrieves all listings of a seller.
func (srv *catalogService) GetSellerListings(ctx context.Context, sellerID uuid.UUID) ([]*entity.Listing, error) {
	var listings []*entity.Listing

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ListingRepo().FindListingsBySeller(ctx, sellerID)
		if err != nil {
			return errors.Wrap(err, "failed to find listings by seller")
		}
		listings = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return listings, nil
}

// SetListingStatus moves a listing through its sale lifecycle. Setting the
// current status again is a no-op. The write is a compare-and-swap on the
// listing version; losing the race re-reads and retries a bounded number of
// times before surfacing a stale error.
func (srv *catalogService) SetListingStatus(ctx context.Context, listingID uuid.UUID, status string) (*entity.Listing, error) {
	target := entity.ListingStatus(status)
	if !target.IsValid() {
		return nil, domainerrors.NewValidationError("status", "is not a recognized status")
	}

	for attempt := 0; attempt < statusRetryAttempts; attempt++ {
		var listing *entity.Listing
		var doc *service.ListingDocument
		var unchanged bool

		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			listingRepo := repoFactory.ListingRepo()

			found, err := listingRepo.FindListingByID(ctx, listingID)
			if err != nil {
				if errors.Is(err, repository.ErrListingNotFound) {
					return domainerrors.ErrListingNotFound
				}

				return errors.Wrap(err, "failed to find listing")
			}

			// Same status is always accepted and changes nothing.
			if found.Status == target {
				listing = found
				unchanged = true

				return nil
			}

			if srv.strictTransitions() && !found.Status.CanTransitionTo(target) {
				return domainerrors.ErrInvalidStatusTransition.WithDetails(
					fmt.Sprintf("cannot move from %s to %s", found.Status, target))
			}

			if err := listingRepo.UpdateListingStatus(ctx, listingID, target, found.Version); err != nil {
				return err
			}
			found.Status = target
			found.Version++
			found.UpdatedAt = time.Now()

			seller, err := repoFactory.UserRepo().FindUserByID(ctx, found.SellerID)
			if err != nil {
				return errors.Wrap(err, "failed to find seller")
			}
			viewCount, err := repoFactory.EngagementRepo().CountViews(ctx, listingID)
			if err != nil {
				return errors.Wrap(err, "failed to count views")
			}

			listing = found
			doc = BuildListingDocument(found, seller, viewCount)

			return nil
		})

		if err == nil {
			if !unchanged {
				srv.log(ctx).Info("listing status changed",
					slog.String("listing_id", listingID.String()),
					slog.String("status", target.String()),
				)
				syncListingDocument(ctx, srv.searchSync, srv.publisher, srv.logger,
					service.ListingEventUpserted, listingID.String(), doc)
			}

			return listing, nil
		}

		if errors.Is(err, repository.ErrVersionConflict) {
			if attempt < statusRetryAttempts-1 {
				continue
			}

			return nil, domainerrors.ErrStaleListing
		}

		return nil, err
	}

	return nil, domainerrors.ErrStaleListing
}

// DeleteListing removes a listing owned by the seller.
func (srv *catalogService) DeleteListing(ctx context.Context, sellerID, listingID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listingRepo := repoFactory.ListingRepo()

		found, err := listingRepo.FindListingByID(ctx, listingID)
		if err != nil {
			if errors.Is(err, repository.ErrListingNotFound) {
				return domainerrors.ErrListingNotFound
			}

			return errors.Wrap(err, "failed to find listing")
		}

		if found.SellerID != sellerID {
			return errors.Wrap(domainerrors.ErrForbidden, "listing belongs to another seller")
		}

		if err := listingRepo.DeleteListing(ctx, listingID); err != nil {
			return errors.Wrap(err, "failed to delete listing")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("listing deleted", slog.String("listing_id", listingID.String()))
	syncListingDocument(ctx, srv.searchSync, srv.publisher, srv.logger,
		service.ListingEventDeleted, listingID.String(), nil)

	return nil
}

// DistanceFromSeller computes the kilometer distance between the buyer's and
// the seller's billing addresses.
func (srv *catalogService) DistanceFromSeller(ctx context.Context, listingID, buyerID uuid.UUID) (float64, bool, error) {
	var distanceKm float64
	var known bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listing, err := repoFactory.ListingRepo().FindListingByID(ctx, listingID)
		if err != nil {
			if errors.Is(err, repository.ErrListingNotFound) {
				return domainerrors.ErrListingNotFound
			}

			return errors.Wrap(err, "failed to find listing")
		}

		userRepo := repoFactory.UserRepo()
		seller, err := userRepo.FindUserByID(ctx, listing.SellerID)
		if err != nil {
			return errors.Wrap(err, "failed to find seller")
		}
		buyer, err := userRepo.FindUserByID(ctx, buyerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "buyer not found")
			}

			return errors.Wrap(err, "failed to find buyer")
		}

		distanceKm, known = geo.AddressDistanceKm(billingAddressOf(buyer), billingAddressOf(seller))

		return nil
	})
	if err != nil {
		return 0, false, err
	}

	return distanceKm, known, nil
}

func billingAddressOf(user *entity.User) *entity.Address {
	if user == nil || user.Profile == nil {
		return nil
	}

	return user.Profile.BillingAddress
}

// SearchListings queries the listing index.
func (srv *catalogService) SearchListings(ctx context.Context, query *service.SearchQuery) ([]*service.ListingDocument, error) {
	results, err := srv.searchSync.Search(ctx, query)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrSearchSyncFailed, err.Error())
	}

	return results, nil
}

// GenerateShareQRCode renders the PNG QR code for a listing's share URL.
func (srv *catalogService) GenerateShareQRCode(ctx context.Context, listingID uuid.UUID) ([]byte, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ListingRepo().FindListingByID(ctx, listingID); err != nil {
			if errors.Is(err, repository.ErrListingNotFound) {
				return domainerrors.ErrListingNotFound
			}

			return errors.Wrap(err, "failed to find listing")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodes.GenerateListingQRCode(listingID.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to render listing QR code")
	}

	return png, nil
}
