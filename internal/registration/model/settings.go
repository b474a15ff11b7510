// Package model provides domain models and DTOs for the registration module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// SettingsID is the fixed primary key of the singleton settings row.
const SettingsID = 1

// RegistrationSettings is the singleton row controlling whether new teams
// may register.
type RegistrationSettings struct {
	ID                  int        `gorm:"primaryKey;column:id"                            json:"-"`
	IsRegistrationOpen  bool       `gorm:"column:is_registration_open;not null;default:true" json:"is_registration_open"`
	RegistrationEndDate *time.Time `gorm:"column:registration_end_date;type:timestamptz"  json:"registration_end_date,omitempty"`
	UpdatedAt           time.Time  `gorm:"column:updated_at;type:timestamptz;not null"     json:"-"`
}

// TableName specifies the table name for GORM.
func (RegistrationSettings) TableName() string {
	return "registration_settings"
}

// BeforeUpdate refreshes the UpdatedAt timestamp.
func (s *RegistrationSettings) BeforeUpdate(tx *gorm.DB) error {
	s.UpdatedAt = time.Now()
	return nil
}

// EffectiveOpen combines the manual flag with the optional cutoff:
// open = manual flag AND (no cutoff OR now <= cutoff).
func (s *RegistrationSettings) EffectiveOpen(now time.Time) bool {
	if !s.IsRegistrationOpen {
		return false
	}
	if s.RegistrationEndDate == nil {
		return true
	}
	return !now.After(*s.RegistrationEndDate)
}
