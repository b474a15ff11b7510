// Package service provides business logic layer for the registration module.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/shaundavidpr/hashitup-sub000/internal/registration/model"
	"github.com/shaundavidpr/hashitup-sub000/internal/registration/repository"
)

// Service defines the interface for registration gate operations.
type Service interface {
	// Get returns the current gate settings with the computed openness.
	Get(ctx context.Context) (*model.SettingsResponse, error)

	// IsOpen reports whether new teams may currently register.
	IsOpen(ctx context.Context) (bool, error)

	// Update applies a partial settings update. A provided cutoff must be
	// strictly in the future at the moment it is set.
	Update(ctx context.Context, req *model.UpdateSettingsRequest) (*model.SettingsResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
	// now is swapped out in tests.
	now func() time.Time
}

// New creates a new registration service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Get returns the current gate settings with the computed openness.
func (s *service) Get(ctx context.Context) (*model.SettingsResponse, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return model.NewSettingsResponse(settings, s.now()), nil
}

// IsOpen reports whether new teams may currently register.
func (s *service) IsOpen(ctx context.Context) (bool, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return false, err
	}
	return settings.EffectiveOpen(s.now()), nil
}

// Update applies a partial settings update.
func (s *service) Update(ctx context.Context, req *model.UpdateSettingsRequest) (*model.SettingsResponse, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.RegistrationEndDate != nil {
		if !req.RegistrationEndDate.After(s.now()) {
			return nil, model.ErrPastCutoff
		}
		settings.RegistrationEndDate = req.RegistrationEndDate
	}
	if req.ClearEndDate {
		settings.RegistrationEndDate = nil
	}
	if req.IsRegistrationOpen != nil {
		settings.IsRegistrationOpen = *req.IsRegistrationOpen
	}

	if err := s.repo.Update(ctx, settings); err != nil {
		return nil, err
	}

	s.logger.Infow("registration settings updated",
		"is_open", settings.IsRegistrationOpen,
		"end_date", settings.RegistrationEndDate,
	)
	return model.NewSettingsResponse(settings, s.now()), nil
}
