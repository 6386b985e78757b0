package session

import (
	"context"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/exceptions"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryRedis struct {
	values map[string]string
	ttls   map[string]time.Duration
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memoryRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = string(data)
	m.ttls[key] = exp
	return nil
}

func (m *memoryRedis) Get(ctx context.Context, key string) (string, error) {
	return m.values[key], nil
}

func (m *memoryRedis) Delete(ctx context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func (m *memoryRedis) Expire(ctx context.Context, key string, exp time.Duration) error {
	m.ttls[key] = exp
	return nil
}

func TestSessionService(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: "u1", Email: "jane@example.com", Role: models.RolePatient}

	t.Run("Create Then Resolve", func(t *testing.T) {
		redis := newMemoryRedis()
		svc := NewSessionService(NewRedisSessionStore(redis, time.Hour), "secret", time.Hour, zap.NewNop())

		session, cookieValue, err := svc.Create(ctx, "api-token", user)
		require.NoError(t, err)
		assert.NotEmpty(t, cookieValue)
		assert.Contains(t, redis.values, constvars.SessionRedisKeyPrefix+session.ID)
		assert.Equal(t, time.Hour, redis.ttls[constvars.SessionRedisKeyPrefix+session.ID])

		resolved, err := svc.Resolve(ctx, cookieValue)
		require.NoError(t, err)
		assert.Equal(t, "api-token", resolved.Token)
		assert.Equal(t, models.RolePatient, resolved.User.Role)
	})

	t.Run("Rejects Cookie Signed With Another Secret", func(t *testing.T) {
		redis := newMemoryRedis()
		issuer := NewSessionService(NewRedisSessionStore(redis, time.Hour), "secret", time.Hour, zap.NewNop())
		verifier := NewSessionService(NewRedisSessionStore(redis, time.Hour), "other", time.Hour, zap.NewNop())

		_, cookieValue, err := issuer.Create(ctx, "api-token", user)
		require.NoError(t, err)

		_, err = verifier.Resolve(ctx, cookieValue)
		assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCode(err))
	})

	t.Run("Missing Cookie", func(t *testing.T) {
		svc := NewSessionService(NewRedisSessionStore(newMemoryRedis(), time.Hour), "secret", time.Hour, zap.NewNop())

		_, err := svc.Resolve(ctx, "")
		assert.Equal(t, constvars.ErrClientNotLoggedIn, exceptions.ClientMessage(err))
	})

	t.Run("Destroyed Session Is Not Found", func(t *testing.T) {
		svc := NewSessionService(NewRedisSessionStore(newMemoryRedis(), time.Hour), "secret", time.Hour, zap.NewNop())

		session, cookieValue, err := svc.Create(ctx, "api-token", user)
		require.NoError(t, err)
		require.NoError(t, svc.Destroy(ctx, session.ID))

		_, err = svc.Resolve(ctx, cookieValue)
		assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCode(err))
	})

	t.Run("Expired Session Is Dropped", func(t *testing.T) {
		redis := newMemoryRedis()
		svc := &sessionService{
			Store:  NewRedisSessionStore(redis, time.Hour),
			Secret: "secret",
			TTL:    time.Hour,
			Log:    zap.NewNop(),
			now:    time.Now,
		}

		session, cookieValue, err := svc.Create(ctx, "api-token", user)
		require.NoError(t, err)

		svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err = svc.Resolve(ctx, cookieValue)
		assert.Error(t, err)
		assert.NotContains(t, redis.values, constvars.SessionRedisKeyPrefix+session.ID)
	})

	t.Run("Update User Merges Server Response", func(t *testing.T) {
		redis := newMemoryRedis()
		svc := NewSessionService(NewRedisSessionStore(redis, time.Hour), "secret", time.Hour, zap.NewNop())

		session, cookieValue, err := svc.Create(ctx, "api-token", &models.User{ID: "u2", Email: "new@example.com"})
		require.NoError(t, err)

		err = svc.UpdateUser(ctx, session, &models.User{Role: models.RoleDoctor, Specialization: "Cardiology"})
		require.NoError(t, err)

		resolved, err := svc.Resolve(ctx, cookieValue)
		require.NoError(t, err)
		assert.Equal(t, models.RoleDoctor, resolved.User.Role)
		assert.Equal(t, "new@example.com", resolved.User.Email)
		assert.Equal(t, "Cardiology", resolved.User.Specialization)
	})
}

func TestFileSessionStore(t *testing.T) {
	ctx := context.Background()
	home := t.TempDir()
	store := NewFileSessionStore(home)

	_, err := store.Load(ctx, "")
	assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCode(err))

	err = store.Save(ctx, &models.Session{
		Token: "api-token",
		User:  &models.User{ID: "u1", Email: "admin@example.com", Role: models.RoleAdmin},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(home, constvars.CLISessionFileName))
	require.NoError(t, err)
	var document map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &document))
	assert.Equal(t, "api-token", document[constvars.SessionStorageTokenKey])
	assert.Contains(t, document, constvars.SessionStorageUserKey)

	session, err := store.Load(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, session.User.Role)

	require.NoError(t, store.Delete(ctx, ""))
	require.NoError(t, store.Delete(ctx, ""))
	_, err = os.Stat(filepath.Join(home, constvars.CLISessionFileName))
	assert.True(t, os.IsNotExist(err))
}
