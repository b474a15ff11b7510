package model

import "errors"

var (
	// ErrInvalidStatus indicates an unknown review status value.
	ErrInvalidStatus = errors.New("invalid review status")
	// ErrDraftNotEvaluable indicates a decision against a draft submission.
	ErrDraftNotEvaluable = errors.New("draft submissions cannot be evaluated")
)

// Skip reasons reported by bulk updates.
const (
	SkipReasonNoSubmission = "no submission"
	SkipReasonDraft        = "draft submission"
	SkipReasonUnknownTeam  = "unknown team"
)
