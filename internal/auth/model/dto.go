package model

// SignInRequest carries the verified identity handed over by the identity
// provider after interactive login.
type SignInRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Name      string `json:"name" binding:"required"`
	AvatarURL string `json:"avatar_url"`
}

// UserResponse is the public shape of a user.
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Role      Role   `json:"role"`
}

// NewUserResponse builds a UserResponse from a User.
func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		Role:      u.Role,
	}
}

// SignInResponse carries the issued session token and the resolved user.
type SignInResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
