package responses

import "medtrack-portal/internal/app/models"

// Auth is the body returned by login, google login and signup.
type Auth struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type Message struct {
	Message   string `json:"message"`
	ResetLink string `json:"resetLink,omitempty"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}
