package model

// MemberInput is one member placeholder in a team creation request.
type MemberInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

// CreateTeamRequest is the request to register a team. The acting user
// becomes the leader; Members lists the 1-3 other participants.
type CreateTeamRequest struct {
	Name        string        `json:"name" binding:"required"`
	Institution string        `json:"institution"`
	City        string        `json:"city"`
	LeaderPhone string        `json:"leader_phone" binding:"required"`
	Members     []MemberInput `json:"members" binding:"required,dive"`
}

// MemberResponse is the public shape of a team member placeholder.
type MemberResponse struct {
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Phone  string  `json:"phone,omitempty"`
	UserID *string `json:"user_id,omitempty"`
}

// TeamResponse is the public shape of a team.
type TeamResponse struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Institution     string           `json:"institution,omitempty"`
	City            string           `json:"city,omitempty"`
	NumberOfMembers int              `json:"number_of_members"`
	LeaderID        string           `json:"leader_id"`
	LeaderName      string           `json:"leader_name,omitempty"`
	LeaderEmail     string           `json:"leader_email,omitempty"`
	Members         []MemberResponse `json:"members"`
}
