package model

import "errors"

var (
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrRegistrationClosed indicates that the registration gate is closed.
	ErrRegistrationClosed = errors.New("registration is closed")
	// ErrAlreadyLeader indicates that the acting user already leads a team.
	ErrAlreadyLeader = errors.New("user already leads a team")
	// ErrAlreadyMember indicates that the acting user already belongs to a team.
	ErrAlreadyMember = errors.New("user is already a member of a team")
	// ErrMemberTaken indicates that a listed member email already belongs to
	// another team.
	ErrMemberTaken = errors.New("member email already belongs to a team")
	// ErrInvalidTeamSize indicates a declared size outside the 2-4 range.
	ErrInvalidTeamSize = errors.New("team size must be between 2 and 4")
)
