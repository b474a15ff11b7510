// Package repository provides data access layer for the submission module.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/shaundavidpr/hashitup-sub000/internal/submission/model"
)

// Repository defines the interface for submission data access operations.
type Repository interface {
	// Create persists a new idea. Returns model.ErrAlreadySubmitted when
	// the team_id uniqueness constraint rejects the row.
	Create(ctx context.Context, idea *model.ProjectIdea) error

	// GetByTeam finds the idea belonging to a team.
	GetByTeam(ctx context.Context, teamID string) (*model.ProjectIdea, error)

	// GetByID finds an idea by its id.
	GetByID(ctx context.Context, id string) (*model.ProjectIdea, error)

	// Update persists changes to an existing idea.
	Update(ctx context.Context, idea *model.ProjectIdea) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new submission repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// Create persists a new idea.
func (r *repository) Create(ctx context.Context, idea *model.ProjectIdea) error {
	err := r.db.WithContext(ctx).Create(idea).Error
	if err != nil {
		if isDuplicateError(err) {
			return model.ErrAlreadySubmitted
		}
		return err
	}
	return nil
}

// GetByTeam finds the idea belonging to a team.
func (r *repository) GetByTeam(ctx context.Context, teamID string) (*model.ProjectIdea, error) {
	var idea model.ProjectIdea
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		First(&idea).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrIdeaNotFound
		}
		return nil, err
	}

	return &idea, nil
}

// GetByID finds an idea by its id.
func (r *repository) GetByID(ctx context.Context, id string) (*model.ProjectIdea, error) {
	var idea model.ProjectIdea
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&idea).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrIdeaNotFound
		}
		return nil, err
	}

	return &idea, nil
}

// Update persists changes to an existing idea.
func (r *repository) Update(ctx context.Context, idea *model.ProjectIdea) error {
	return r.db.WithContext(ctx).Save(idea).Error
}
