package model

import "time"

// SaveIdeaRequest carries the submission payload for both create and update.
type SaveIdeaRequest struct {
	Title            string `json:"title" binding:"required"`
	Description      string `json:"description"`
	TechStack        string `json:"tech_stack"`
	ProblemStatement string `json:"problem_statement"`
	Solution         string `json:"solution"`
	IsDraft          bool   `json:"is_draft"`
}

// IdeaResponse is the public shape of a submission. Status is withheld
// (empty) from non-admin readers until results are published.
type IdeaResponse struct {
	ID               string    `json:"id"`
	TeamID           string    `json:"team_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	TechStack        string    `json:"tech_stack,omitempty"`
	ProblemStatement string    `json:"problem_statement,omitempty"`
	Solution         string    `json:"solution,omitempty"`
	Status           Status    `json:"status,omitempty"`
	IsDraft          bool      `json:"is_draft"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewIdeaResponse builds an IdeaResponse. withStatus controls whether the
// review status is exposed.
func NewIdeaResponse(idea *ProjectIdea, withStatus bool) *IdeaResponse {
	resp := &IdeaResponse{
		ID:               idea.ID,
		TeamID:           idea.TeamID,
		Title:            idea.Title,
		Description:      idea.Description,
		TechStack:        idea.TechStack,
		ProblemStatement: idea.ProblemStatement,
		Solution:         idea.Solution,
		IsDraft:          idea.IsDraft,
		CreatedAt:        idea.CreatedAt,
		UpdatedAt:        idea.UpdatedAt,
	}
	if withStatus {
		resp.Status = idea.Status
	}
	return resp
}
