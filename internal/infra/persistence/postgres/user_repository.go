package postgres

import (
	"context"
	"strings"
	"time"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByUsername retrieves a single user by username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, "username = ?", username)
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *userRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where(query, arg).Take(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user. Username and email collisions map to ErrUserAlreadyExists.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return translateUserWriteError(err, domainerrors.ErrUserCreationFailed, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update writes the mutable profile fields of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	userM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{ID: user.ID}).
		Select("email", "full_name", "password_hash", "disabled", "updated_at").
		Updates(userM)
	if result.Error != nil {
		return translateUserWriteError(result.Error, domainerrors.ErrUserUpdateFailed, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func translateUserWriteError(err error, failed *domainerrors.BaseError, details string) error {
	if isUniqueConstraintViolation(err) {
		if strings.Contains(violatedConstraint(err), "email") {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already exists")
		}

		return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already exists")
	}
	if isValueTooLong(err) {
		return domainerrors.ErrValidationFailed.WithDetails("username must be at most 30 characters and full_name at most 100")
	}
	if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
		return failed.WrapMessage("missing or invalid user information")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func toUserDomain(userM *model.UserModel) *entity.User {
	user := &entity.User{
		ID:           userM.ID,
		Username:     userM.Username,
		Email:        userM.Email,
		PasswordHash: userM.PasswordHash,
		Disabled:     userM.Disabled,
		CreatedAt:    userM.CreatedAt,
		UpdatedAt:    userM.UpdatedAt,
	}
	if userM.FullName != nil {
		user.FullName = *userM.FullName
	}

	return user
}

func fromUserDomain(user *entity.User) *model.UserModel {
	userM := &model.UserModel{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Disabled:     user.Disabled,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	if user.FullName != "" {
		fullName := user.FullName
		userM.FullName = &fullName
	}

	return userM
}
