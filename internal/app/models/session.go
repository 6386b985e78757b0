package models

import "time"

// Session is the authenticated identity of one browser or CLI user.
type Session struct {
	ID        string    `json:"id,omitempty"`
	Token     string    `json:"token"`
	User      *User     `json:"user"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	ExpiresAt time.Time `json:"expiresAt,omitempty"`
}

func (s *Session) CurrentUser() *User {
	if s == nil {
		return nil
	}
	return s.User
}

func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
