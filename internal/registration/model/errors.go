package model

import "errors"

var (
	// ErrPastCutoff indicates a registration end date that is not in the future.
	ErrPastCutoff = errors.New("registration end date must be in the future")
)
