// Package repository provides data access layer for the auth module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shaundavidpr/hashitup-sub000/internal/auth/model"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// GetByEmail finds a user by email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetByID finds a user by id.
	GetByID(ctx context.Context, id string) (*model.User, error)

	// Create persists a new user.
	Create(ctx context.Context, user *model.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *model.User) error

	// CountAdmins returns how many ADMIN/SUPERADMIN users exist.
	CountAdmins(ctx context.Context) (int64, error)

	// LinkTeamPlaceholders attaches unlinked team member placeholder rows
	// with a matching email to the given user. Returns the number linked.
	LinkTeamPlaceholders(ctx context.Context, email, userID string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new auth repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetByEmail finds a user by email.
func (r *repository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// GetByID finds a user by id.
func (r *repository) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// Create persists a new user.
func (r *repository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Update persists changes to an existing user.
func (r *repository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// CountAdmins returns how many ADMIN/SUPERADMIN users exist.
func (r *repository) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("role IN ?", []model.Role{model.RoleAdmin, model.RoleSuperadmin}).
		Count(&count).Error

	if err != nil {
		return 0, err
	}

	return count, nil
}

// LinkTeamPlaceholders attaches unlinked placeholder rows to a real user.
func (r *repository) LinkTeamPlaceholders(ctx context.Context, email, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Table("team_members").
		Where("email = ? AND user_id IS NULL", email).
		Update("user_id", userID)

	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
