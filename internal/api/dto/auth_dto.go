package dto

import "time"

// RegisterRequest payload for new accounts. Registration is the only place
// a campus is accepted from a client; afterwards the campus always comes
// from the token.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	CampusID string `json:"campus_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserInfo is the public profile of an account. It never carries the
// password digest.
type UserInfo struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	CampusID string `json:"campus_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// TokenResponse is returned on successful login.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      UserInfo  `json:"user"`
}

// IntrospectResponse reports token validity for diagnostics.
type IntrospectResponse struct {
	Valid  bool           `json:"valid"`
	Claims map[string]any `json:"claims,omitempty"`
}
