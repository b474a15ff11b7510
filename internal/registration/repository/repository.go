// Package repository provides data access layer for the registration module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shaundavidpr/hashitup-sub000/internal/registration/model"
)

// Repository defines the interface for registration settings data access.
type Repository interface {
	// Get returns the singleton settings row, creating the default
	// "open, no cutoff" row on first read.
	Get(ctx context.Context) (*model.RegistrationSettings, error)

	// Update persists changes to the settings row.
	Update(ctx context.Context, settings *model.RegistrationSettings) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new registration repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Get returns the singleton settings row, creating it if absent.
func (r *repository) Get(ctx context.Context) (*model.RegistrationSettings, error) {
	var settings model.RegistrationSettings
	err := r.db.WithContext(ctx).
		Where("id = ?", model.SettingsID).
		First(&settings).Error

	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = model.RegistrationSettings{
		ID:                 model.SettingsID,
		IsRegistrationOpen: true,
	}
	if createErr := r.db.WithContext(ctx).Create(&settings).Error; createErr != nil {
		// A concurrent first read may have created the row already.
		var existing model.RegistrationSettings
		if fetchErr := r.db.WithContext(ctx).
			Where("id = ?", model.SettingsID).
			First(&existing).Error; fetchErr == nil {
			return &existing, nil
		}
		return nil, createErr
	}

	return &settings, nil
}

// Update persists changes to the settings row.
func (r *repository) Update(ctx context.Context, settings *model.RegistrationSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
