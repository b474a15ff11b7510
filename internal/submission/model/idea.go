// Package model provides domain models and DTOs for the submission module.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is the review state of a project idea.
type Status string

// Review states. A fresh submission starts as StatusPending; reviewers may
// move it between any of the four states, including back to pending.
const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
	StatusWaitlist Status = "WAITLIST"
)

// Valid reports whether s is one of the known review states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusWaitlist:
		return true
	}
	return false
}

// ProjectIdea is a team's single submission. The unique index on team_id
// enforces one idea per team under concurrent requests.
type ProjectIdea struct {
	ID               string    `gorm:"primaryKey;column:id;type:varchar(36)"                json:"id"`
	TeamID           string    `gorm:"column:team_id;type:varchar(36);not null;uniqueIndex" json:"team_id"`
	Title            string    `gorm:"column:title;type:varchar(255);not null"              json:"title"`
	Description      string    `gorm:"column:description;type:text"                         json:"description"`
	TechStack        string    `gorm:"column:tech_stack;type:text"                          json:"tech_stack"`
	ProblemStatement string    `gorm:"column:problem_statement;type:text"                   json:"problem_statement"`
	Solution         string    `gorm:"column:solution;type:text"                            json:"solution"`
	Status           Status    `gorm:"column:status;type:varchar(16);not null;default:PENDING" json:"status"`
	IsDraft          bool      `gorm:"column:is_draft;not null;default:false"               json:"is_draft"`
	SubmittedByID    string    `gorm:"column:submitted_by_id;type:varchar(36);not null"     json:"submitted_by_id"`
	UpdatedByID      *string   `gorm:"column:updated_by_id;type:varchar(36)"                json:"updated_by_id,omitempty"`
	CreatedAt        time.Time `gorm:"column:created_at;type:timestamptz;not null"          json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;type:timestamptz;not null"          json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (ProjectIdea) TableName() string {
	return "project_ideas"
}

// BeforeCreate assigns an id and creation timestamps.
func (p *ProjectIdea) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = StatusPending
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return nil
}

// BeforeUpdate refreshes the UpdatedAt timestamp.
func (p *ProjectIdea) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return nil
}

// Mutable reports whether the idea may still be edited by its team.
// Drafts are always editable; a submitted idea locks once a reviewer has
// moved it out of PENDING.
func (p *ProjectIdea) Mutable() bool {
	return p.IsDraft || p.Status == StatusPending
}
