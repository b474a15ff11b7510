package model

import "errors"

var (
	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidEmail indicates that the provided email is missing or malformed.
	ErrInvalidEmail = errors.New("invalid email")
	// ErrInvalidToken indicates a missing, malformed or expired session token.
	ErrInvalidToken = errors.New("invalid or expired token")
)
