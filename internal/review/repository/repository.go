// Package repository provides data access for the review workflow.
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/shaundavidpr/hashitup-sub000/internal/review/model"
	submissionModel "github.com/shaundavidpr/hashitup-sub000/internal/submission/model"
)

// Repository defines the interface for review data access operations.
type Repository interface {
	// ListSubmissions returns non-draft submissions joined with their team,
	// optionally filtered by status.
	ListSubmissions(ctx context.Context, status *submissionModel.Status) ([]model.SubmissionListItem, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new review repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ListSubmissions returns non-draft submissions joined with their team.
func (r *repository) ListSubmissions(ctx context.Context, status *submissionModel.Status) ([]model.SubmissionListItem, error) {
	query := r.db.WithContext(ctx).
		Table("project_ideas").
		Select(`project_ideas.id AS idea_id,
			project_ideas.team_id,
			teams.name AS team_name,
			teams.institution,
			project_ideas.title,
			project_ideas.status,
			project_ideas.created_at AS submitted_at,
			project_ideas.updated_at`).
		Joins("JOIN teams ON teams.id = project_ideas.team_id").
		Where("project_ideas.is_draft = ?", false).
		Order("project_ideas.created_at ASC")

	if status != nil {
		query = query.Where("project_ideas.status = ?", *status)
	}

	var items []model.SubmissionListItem
	if err := query.Scan(&items).Error; err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.SubmissionListItem{}
	}

	return items, nil
}
