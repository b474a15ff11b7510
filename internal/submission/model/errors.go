package model

import "errors"

var (
	// ErrIdeaNotFound indicates that the team has no submission.
	ErrIdeaNotFound = errors.New("project idea not found")
	// ErrAlreadySubmitted indicates that the team already has a submission.
	ErrAlreadySubmitted = errors.New("team already has a project idea")
	// ErrIdeaLocked indicates a write against an idea that has been reviewed.
	ErrIdeaLocked = errors.New("project idea is no longer editable")
	// ErrNotTeamParticipant indicates an actor outside the team.
	ErrNotTeamParticipant = errors.New("user does not belong to this team")
)
