package session

import (
	"context"
	"medtrack-portal/internal/app/contracts"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/exceptions"
	"medtrack-portal/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type sessionService struct {
	Store  contracts.SessionStore
	Secret string
	TTL    time.Duration
	Log    *zap.Logger
	now    func() time.Time
}

func NewSessionService(store contracts.SessionStore, secret string, ttl time.Duration, logger *zap.Logger) contracts.SessionService {
	return &sessionService{
		Store:  store,
		Secret: secret,
		TTL:    ttl,
		Log:    logger,
		now:    time.Now,
	}
}

// Create stores a new session and returns it with the signed cookie value
// that identifies it.
func (svc *sessionService) Create(ctx context.Context, token string, user *models.User) (*models.Session, string, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	svc.Log.Info("sessionService.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	now := svc.now()
	session := &models.Session{
		ID:        utils.GenerateSessionID(),
		Token:     token,
		User:      user,
		CreatedAt: now,
		ExpiresAt: now.Add(svc.TTL),
	}

	cookieValue, err := utils.GenerateSessionJWT(session.ID, svc.Secret, session.ExpiresAt)
	if err != nil {
		svc.Log.Error("sessionService.Create error signing session token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, "", exceptions.ErrSessionSign(err)
	}

	err = svc.Store.Save(ctx, session)
	if err != nil {
		svc.Log.Error("sessionService.Create error saving session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, "", err
	}

	svc.Log.Info("sessionService.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
	)
	return session, cookieValue, nil
}

func (svc *sessionService) Resolve(ctx context.Context, cookieValue string) (*models.Session, error) {
	if cookieValue == "" {
		return nil, exceptions.ErrSessionMissing(nil)
	}

	sessionID, err := utils.ParseSessionJWT(cookieValue, svc.Secret)
	if err != nil {
		return nil, exceptions.ErrSessionInvalid(err)
	}

	session, err := svc.Store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsExpired(svc.now()) {
		_ = svc.Store.Delete(ctx, sessionID)
		return nil, exceptions.ErrSessionNotFound(nil)
	}
	return session, nil
}

// UpdateUser folds a server side user update into the stored session.
func (svc *sessionService) UpdateUser(ctx context.Context, session *models.Session, user *models.User) error {
	svc.Log.Info("sessionService.UpdateUser called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
	)

	if session.User == nil {
		session.User = &models.User{}
	}
	session.User.Merge(user)
	return svc.Store.Save(ctx, session)
}

func (svc *sessionService) Destroy(ctx context.Context, sessionID string) error {
	svc.Log.Info("sessionService.Destroy called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return svc.Store.Delete(ctx, sessionID)
}
