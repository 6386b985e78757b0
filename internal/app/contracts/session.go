package contracts

import (
	"context"
	"medtrack-portal/internal/app/models"
)

// SessionStore persists the current identity under fixed keys.
type SessionStore interface {
	Save(ctx context.Context, session *models.Session) error
	Load(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
}

type SessionService interface {
	Create(ctx context.Context, token string, user *models.User) (*models.Session, string, error)
	Resolve(ctx context.Context, cookieValue string) (*models.Session, error)
	UpdateUser(ctx context.Context, session *models.Session, user *models.User) error
	Destroy(ctx context.Context, sessionID string) error
}
