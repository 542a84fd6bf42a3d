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

// userRepository implements the domain.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// CreateUser persists a new user together with its profile, if any.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("email is already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.Profile != nil && userM.Profile != nil {
		user.Profile.ID = userM.Profile.ID
		user.Profile.UserID = userM.ID
	}

	return nil
}

// FindUserByID retrieves a user with the profile and both owned addresses preloaded.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).
		Preload("Profile.Addresses").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// UpdateUser updates the user and profile records.
func (repo *userRepository) UpdateUser(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	profileM := userM.Profile
	userM.Profile = nil

	if err := repo.db.WithContext(ctx).Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("email is already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	if profileM != nil {
		if err := repo.db.WithContext(ctx).Save(profileM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
		}
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if data.Profile != nil {
		profile := &entity.Profile{
			ID:        data.Profile.ID,
			UserID:    data.Profile.UserID,
			FullName:  data.Profile.FullName,
			UpdatedAt: data.Profile.UpdatedAt,
		}

		// A profile holds at most one address per kind.
		for i := range data.Profile.Addresses {
			address := toAddressDomain(&data.Profile.Addresses[i])
			switch address.Kind {
			case entity.AddressKindBilling:
				profile.BillingAddress = address
			case entity.AddressKindShipping:
				profile.ShippingAddress = address
			}
		}

		user.Profile = profile
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
// Addresses are managed through the address repository and are not written here.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:        data.ID,
		Email:     data.Email,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if data.Profile != nil {
		userM.Profile = &model.ProfileModel{
			ID:        data.Profile.ID,
			UserID:    data.ID,
			FullName:  data.Profile.FullName,
			UpdatedAt: data.Profile.UpdatedAt,
		}
	}

	return userM
}
