// Package repository provides data access for the results module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shaundavidpr/hashitup-sub000/internal/results/model"
	submissionModel "github.com/shaundavidpr/hashitup-sub000/internal/submission/model"
)

// Repository defines the interface for results data access operations.
type Repository interface {
	// Create appends a publication audit row.
	Create(ctx context.Context, publication *model.ResultPublication) error

	// Latest returns the most recent publication, or nil when none exists.
	Latest(ctx context.Context) (*model.ResultPublication, error)

	// CountByStatus counts non-draft submissions in the given status.
	CountByStatus(ctx context.Context, status submissionModel.Status) (int64, error)

	// LeadersByStatus returns the team name and leader email of teams whose
	// non-draft submission holds the given status.
	LeadersByStatus(ctx context.Context, status submissionModel.Status) ([]model.TeamLeader, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new results repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create appends a publication audit row.
func (r *repository) Create(ctx context.Context, publication *model.ResultPublication) error {
	return r.db.WithContext(ctx).Create(publication).Error
}

// Latest returns the most recent publication, or nil when none exists.
func (r *repository) Latest(ctx context.Context) (*model.ResultPublication, error) {
	var publication model.ResultPublication
	err := r.db.WithContext(ctx).
		Order("published_at DESC").
		First(&publication).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &publication, nil
}

// CountByStatus counts non-draft submissions in the given status.
func (r *repository) CountByStatus(ctx context.Context, status submissionModel.Status) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&submissionModel.ProjectIdea{}).
		Where("is_draft = ? AND status = ?", false, status).
		Count(&count).Error
	return count, err
}

// LeadersByStatus returns the team name and leader email of teams whose
// non-draft submission holds the given status.
func (r *repository) LeadersByStatus(ctx context.Context, status submissionModel.Status) ([]model.TeamLeader, error) {
	var leaders []model.TeamLeader
	err := r.db.WithContext(ctx).
		Table("project_ideas").
		Select("teams.name AS team_name, users.email").
		Joins("JOIN teams ON teams.id = project_ideas.team_id").
		Joins("JOIN users ON users.id = teams.leader_id").
		Where("project_ideas.is_draft = ? AND project_ideas.status = ?", false, status).
		Scan(&leaders).Error

	if err != nil {
		return nil, err
	}

	return leaders, nil
}
