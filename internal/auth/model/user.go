// Package model provides domain models and DTOs for the auth module.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the closed set of roles a user can hold.
type Role string

// Roles, from least to most privileged. SUPERADMIN outranks ADMIN; an
// ADMIN's authority over other admins is limited to the ones it granted.
const (
	RoleMember     Role = "MEMBER"
	RoleLeader     Role = "LEADER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperadmin Role = "SUPERADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleLeader, RoleAdmin, RoleSuperadmin:
		return true
	}
	return false
}

// IsAdmin reports whether the role carries administrative access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperadmin
}

// CanReview reports whether the role may change submission statuses.
func (r Role) CanReview() bool {
	return r.IsAdmin()
}

// CanGrantAdmin reports whether the role may promote users to admin.
func (r Role) CanGrantAdmin() bool {
	return r.IsAdmin()
}

// CanPublish reports whether the role may publish results.
func (r Role) CanPublish() bool {
	return r == RoleSuperadmin
}

// User represents a portal user.
// Matches the users table schema.
type User struct {
	ID             string    `gorm:"primaryKey;column:id;type:varchar(36)"                json:"id"`
	Email          string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"  json:"email"`
	Name           string    `gorm:"column:name;type:varchar(255);not null"               json:"name"`
	AvatarURL      string    `gorm:"column:avatar_url;type:varchar(512)"                  json:"avatar_url,omitempty"`
	Phone          string    `gorm:"column:phone;type:varchar(32)"                        json:"phone,omitempty"`
	Role           Role      `gorm:"column:role;type:varchar(16);not null;default:MEMBER" json:"role"`
	AddedByAdminID *string   `gorm:"column:added_by_admin_id;type:varchar(36)"            json:"added_by_admin_id,omitempty"`
	CreatedAt      time.Time `gorm:"column:created_at;type:timestamptz;not null"          json:"-"`
	UpdatedAt      time.Time `gorm:"column:updated_at;type:timestamptz;not null"          json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns an id and creation timestamps.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	return nil
}

// BeforeUpdate refreshes the UpdatedAt timestamp.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}
