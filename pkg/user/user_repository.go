package user

import (
	"Culinary-Alchemy/domain"
	"Culinary-Alchemy/entities"
	"Culinary-Alchemy/internal/utils"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		UpdateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id uint) (*entities.User, error)
		GetActiveUserByID(ctx context.Context, id uint) (*entities.User, error)
		GetActiveUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetActiveUserByUsername(ctx context.Context, username string) (*entities.User, error)
		GetActiveUsers(ctx context.Context, limit, offset int) ([]entities.User, int64, error)
		IsUserKeyTaken(ctx context.Context, username, email string) (bool, error)
		MarkUserDeleted(ctx context.Context, id uint, deletedAt time.Time) (bool, error)
		GetRoleByName(ctx context.Context, name string) (*entities.Role, error)
		EnsureRoles(ctx context.Context, names ...string) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

// Columns a profile update may touch. Lifecycle columns are written only by MarkUserDeleted.
var profileColumns = []string{
	"username", "email", "password", "avatar", "name",
	"description", "location", "dietary_preferences", "updated_at",
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	if err := validateUser(user); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Omit("Role").Create(user).Error; err != nil {
		return utils.StoreError(domain.EntityUser, err)
	}
	return nil
}

// UpdateUser writes the profile columns of an active user. A user deleted in the meantime
// is reported as not found.
func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	if err := validateUser(user); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(user).
		Where("is_deleted = ?", false).
		Select(profileColumns).
		Updates(user)
	if result.Error != nil {
		return utils.StoreError(domain.EntityUser, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError(domain.EntityUser, "id", user.ID)
	}
	return nil
}

// GetUserByID returns the row whatever its lifecycle state.
func (r *userRepository) GetUserByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(domain.EntityUser, "id", id)
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetActiveUserByID(ctx context.Context, id uint) (*entities.User, error) {
	return r.activeUser(ctx, "id", id)
}

func (r *userRepository) GetActiveUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.activeUser(ctx, "email", email)
}

func (r *userRepository) GetActiveUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.activeUser(ctx, "username", username)
}

// activeUser looks up a non-deleted user by one of the fixed key columns above.
func (r *userRepository) activeUser(ctx context.Context, column string, value any) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Preload("Role").
		Where(column+" = ? AND is_deleted = ?", value, false).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(domain.EntityUser, column, value)
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetActiveUsers(ctx context.Context, limit, offset int) ([]entities.User, int64, error) {
	var users []entities.User
	var count int64

	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("is_deleted = ?", false).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Role").
		Where("is_deleted = ?", false).
		Order("id asc").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, count, nil
}

// IsUserKeyTaken reports whether any user, deleted or not, already holds the username or
// email. Both keys stay unique after a soft delete.
func (r *userRepository) IsUserKeyTaken(ctx context.Context, username, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// MarkUserDeleted flips is_deleted only while it is still false. False means another
// caller deleted the user first.
func (r *userRepository) MarkUserDeleted(ctx context.Context, id uint, deletedAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]any{
			"is_deleted": true,
			"deleted_at": deletedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *userRepository) GetRoleByName(ctx context.Context, name string) (*entities.Role, error) {
	var role entities.Role
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("role", "name", name)
		}
		return nil, err
	}
	return &role, nil
}

func (r *userRepository) EnsureRoles(ctx context.Context, names ...string) error {
	for _, name := range names {
		role := entities.Role{Name: name}
		if err := r.db.WithContext(ctx).Where(entities.Role{Name: name}).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}
	return nil
}

func validateUser(user *entities.User) error {
	utils.InitValidator()
	if err := utils.Validate.Struct(user); err != nil {
		return &domain.ConstraintViolationError{Entity: domain.EntityUser, Constraint: "format", Err: err}
	}
	return nil
}
