// Package model provides domain models and DTOs for the team module.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Declared team size limits. The leader is counted in the size.
const (
	MinTeamSize = 2
	MaxTeamSize = 4
)

// Team represents a registered hackathon team.
// Matches the teams table schema. The unique index on leader_id is what
// actually enforces one-team-per-leader under concurrent requests.
type Team struct {
	ID              string    `gorm:"primaryKey;column:id;type:varchar(36)"                 json:"id"`
	Name            string    `gorm:"column:name;type:varchar(255);not null"                json:"name"`
	Institution     string    `gorm:"column:institution;type:varchar(255)"                  json:"institution"`
	City            string    `gorm:"column:city;type:varchar(128)"                         json:"city"`
	NumberOfMembers int       `gorm:"column:number_of_members;not null"                     json:"number_of_members"`
	LeaderID        string    `gorm:"column:leader_id;type:varchar(36);not null;uniqueIndex" json:"leader_id"`
	CreatedAt       time.Time `gorm:"column:created_at;type:timestamptz;not null"           json:"-"`
	UpdatedAt       time.Time `gorm:"column:updated_at;type:timestamptz;not null"           json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeCreate assigns an id and creation timestamps.
func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	return nil
}

// BeforeUpdate refreshes the UpdatedAt timestamp.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}

// TeamMember is a member placeholder captured at team creation. It is
// linked to a real user when that email later signs in.
type TeamMember struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(36)"               json:"id"`
	TeamID    string    `gorm:"column:team_id;type:varchar(36);not null;index"      json:"team_id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"              json:"name"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	Phone     string    `gorm:"column:phone;type:varchar(32)"                       json:"phone,omitempty"`
	UserID    *string   `gorm:"column:user_id;type:varchar(36)"                     json:"user_id,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null"         json:"-"`
}

// TableName specifies the table name for GORM.
func (TeamMember) TableName() string {
	return "team_members"
}

// BeforeCreate assigns an id and creation timestamp.
func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	return nil
}
