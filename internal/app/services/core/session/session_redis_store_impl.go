package session

import (
	"context"
	"medtrack-portal/internal/app/contracts"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

type redisSessionStore struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
}

// NewRedisSessionStore keeps browser sessions in redis under
// medtrack:session:<id>.
func NewRedisSessionStore(redisRepository contracts.RedisRepository, ttl time.Duration) contracts.SessionStore {
	return &redisSessionStore{
		RedisRepository: redisRepository,
		TTL:             ttl,
	}
}

func sessionKey(sessionID string) string {
	return constvars.SessionRedisKeyPrefix + sessionID
}

func (s *redisSessionStore) Save(ctx context.Context, session *models.Session) error {
	return s.RedisRepository.Set(ctx, sessionKey(session.ID), session, s.TTL)
}

func (s *redisSessionStore) Load(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionData, err := s.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.RedisRepository.Delete(ctx, sessionKey(sessionID))
}
