// Package model provides domain models and DTOs for the results module.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResultPublication is one audit row of a results publication. The table is
// append-only: republishing inserts a fresh row, never mutates an old one.
type ResultPublication struct {
	ID                   string    `gorm:"primaryKey;column:id;type:varchar(36)"            json:"id"`
	PublishedByID        string    `gorm:"column:published_by_id;type:varchar(36);not null" json:"published_by_id"`
	PublishedAt          time.Time `gorm:"column:published_at;type:timestamptz;not null"    json:"published_at"`
	AcceptedTeamsCount   int       `gorm:"column:accepted_teams_count;not null"             json:"accepted_teams_count"`
	WaitlistedTeamsCount int       `gorm:"column:waitlisted_teams_count;not null"           json:"waitlisted_teams_count"`
	TotalNotifications   int       `gorm:"column:total_notifications;not null"              json:"total_notifications"`
}

// TableName specifies the table name for GORM.
func (ResultPublication) TableName() string {
	return "result_publications"
}

// BeforeCreate assigns an id and the publication timestamp.
func (p *ResultPublication) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.PublishedAt.IsZero() {
		p.PublishedAt = time.Now()
	}
	return nil
}
