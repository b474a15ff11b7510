package model

import "time"

// TeamLeader is one notification recipient of a publication.
type TeamLeader struct {
	TeamName string `json:"team_name"`
	Email    string `json:"email"`
}

// StatusResponse is the public publication status.
type StatusResponse struct {
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// PublishResponse reports the outcome of one publication.
type PublishResponse struct {
	ID                   string    `json:"id"`
	PublishedAt          time.Time `json:"published_at"`
	AcceptedTeamsCount   int       `json:"accepted_teams_count"`
	WaitlistedTeamsCount int       `json:"waitlisted_teams_count"`
	TotalNotifications   int       `json:"total_notifications"`
}

// NewPublishResponse builds a PublishResponse from the audit row.
func NewPublishResponse(p *ResultPublication) *PublishResponse {
	return &PublishResponse{
		ID:                   p.ID,
		PublishedAt:          p.PublishedAt,
		AcceptedTeamsCount:   p.AcceptedTeamsCount,
		WaitlistedTeamsCount: p.WaitlistedTeamsCount,
		TotalNotifications:   p.TotalNotifications,
	}
}
