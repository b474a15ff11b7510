// Package model provides DTOs and errors for the admin roster module.
package model

import (
	authModel "github.com/shaundavidpr/hashitup-sub000/internal/auth/model"
)

// GrantRequest names the user to promote to ADMIN.
type GrantRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// AdminResponse is one row of the roster listing.
type AdminResponse struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	Name         string         `json:"name"`
	Role         authModel.Role `json:"role"`
	AddedByID    *string        `json:"added_by_id,omitempty"`
	AddedByEmail string         `json:"added_by_email,omitempty"`
}

// ListResponse is the roster listing.
type ListResponse struct {
	Admins []AdminResponse `json:"admins"`
	Total  int             `json:"total"`
}
