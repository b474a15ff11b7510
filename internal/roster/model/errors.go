package model

import "errors"

var (
	// ErrAlreadyAdmin indicates a grant against a user who is already an admin.
	ErrAlreadyAdmin = errors.New("user is already an admin")
	// ErrNotAnAdmin indicates a revoke against a user who holds no admin role.
	ErrNotAnAdmin = errors.New("user is not an admin")
	// ErrSuperadminImmutable indicates an attempt to change a superadmin.
	ErrSuperadminImmutable = errors.New("superadmin role cannot be changed")
	// ErrForbiddenTarget indicates a target outside the actor's authority.
	ErrForbiddenTarget = errors.New("insufficient authority over target user")
)
