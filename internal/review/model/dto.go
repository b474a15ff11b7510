// Package model provides DTOs for the review workflow module.
package model

import (
	"time"

	submissionModel "github.com/shaundavidpr/hashitup-sub000/internal/submission/model"
)

// SetStatusRequest carries a single review decision.
type SetStatusRequest struct {
	Status submissionModel.Status `json:"status" binding:"required"`
}

// BulkSetStatusRequest applies one decision to many teams at once.
type BulkSetStatusRequest struct {
	TeamIDs []string               `json:"team_ids" binding:"required,min=1"`
	Status  submissionModel.Status `json:"status" binding:"required"`
}

// SkippedItem explains why one team in a bulk request was not updated.
type SkippedItem struct {
	TeamID string `json:"team_id"`
	Reason string `json:"reason"`
}

// BulkSetStatusResponse reports the per-item outcome of a bulk request.
// A bulk update is never all-or-nothing.
type BulkSetStatusResponse struct {
	Updated []string      `json:"updated"`
	Skipped []SkippedItem `json:"skipped"`
}

// SubmissionListItem is one row of the admin submission listing.
type SubmissionListItem struct {
	IdeaID      string                 `json:"idea_id"`
	TeamID      string                 `json:"team_id"`
	TeamName    string                 `json:"team_name"`
	Institution string                 `json:"institution,omitempty"`
	Title       string                 `json:"title"`
	Status      submissionModel.Status `json:"status"`
	SubmittedAt time.Time              `json:"submitted_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// ListResponse is the admin submission listing.
type ListResponse struct {
	Submissions []SubmissionListItem `json:"submissions"`
	Total       int                  `json:"total"`
}
