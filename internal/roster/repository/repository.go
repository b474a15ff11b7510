// Package repository provides data access for the admin roster module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	authModel "github.com/shaundavidpr/hashitup-sub000/internal/auth/model"
)

// Repository defines the interface for roster data access operations.
type Repository interface {
	// GetByEmail finds a user by email.
	GetByEmail(ctx context.Context, email string) (*authModel.User, error)

	// SetRole updates a user's role and grant provenance.
	SetRole(ctx context.Context, userID string, role authModel.Role, addedBy *string) error

	// ListAdmins returns all users holding ADMIN or SUPERADMIN.
	ListAdmins(ctx context.Context) ([]authModel.User, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new roster repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetByEmail finds a user by email.
func (r *repository) GetByEmail(ctx context.Context, email string) (*authModel.User, error) {
	var user authModel.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authModel.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// SetRole updates a user's role and grant provenance.
func (r *repository) SetRole(ctx context.Context, userID string, role authModel.Role, addedBy *string) error {
	return r.db.WithContext(ctx).
		Model(&authModel.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"role":              role,
			"added_by_admin_id": addedBy,
		}).Error
}

// ListAdmins returns all users holding ADMIN or SUPERADMIN.
func (r *repository) ListAdmins(ctx context.Context) ([]authModel.User, error) {
	var admins []authModel.User
	err := r.db.WithContext(ctx).
		Where("role IN ?", []authModel.Role{authModel.RoleAdmin, authModel.RoleSuperadmin}).
		Order("created_at ASC").
		Find(&admins).Error

	if err != nil {
		return nil, err
	}
	if admins == nil {
		admins = []authModel.User{}
	}

	return admins, nil
}
