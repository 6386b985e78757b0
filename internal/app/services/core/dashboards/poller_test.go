package dashboards

import (
	"context"
	"errors"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/constvars"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPoller_Run(t *testing.T) {
	t.Run("Publishes Immediately And On Every Tick", func(t *testing.T) {
		var fetches int64
		fetch := func(ctx context.Context) (interface{}, error) {
			atomic.AddInt64(&fetches, 1)
			return map[string]int{"pendingOrders": 2}, nil
		}
		poller := NewPoller(models.RolePharmacist, 5*time.Millisecond, fetch, "failed", zap.NewNop())

		var frames [][]byte
		done := make(chan struct{})
		go func() {
			poller.Run(context.Background(), func(frame []byte) bool {
				frames = append(frames, frame)
				return len(frames) < 3
			})
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("poller did not stop when the publisher went away")
		}

		require.Len(t, frames, 3)
		assert.Equal(t, int64(3), atomic.LoadInt64(&fetches))

		var frame Frame
		require.NoError(t, json.Unmarshal(frames[0], &frame))
		assert.Equal(t, models.RolePharmacist, frame.Role)
		assert.Empty(t, frame.Error)
		assert.NotEmpty(t, frame.FetchedAt)
	})

	t.Run("Non Positive Interval Uses Default", func(t *testing.T) {
		fetch := func(ctx context.Context) (interface{}, error) {
			return "ok", nil
		}

		for _, interval := range []time.Duration{0, -time.Second} {
			poller := NewPoller(models.RolePatient, interval, fetch, "failed", zap.NewNop())
			published := 0
			assert.NotPanics(t, func() {
				poller.Run(context.Background(), func(frame []byte) bool {
					published++
					return false
				})
			})
			assert.Equal(t, 1, published)
		}
	})

	t.Run("Stops When Context Ends", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(ctx context.Context) (interface{}, error) {
			return "ok", nil
		}
		poller := NewPoller(models.RolePatient, time.Hour, fetch, "failed", zap.NewNop())

		done := make(chan struct{})
		published := make(chan struct{}, 1)
		go func() {
			poller.Run(ctx, func(frame []byte) bool {
				published <- struct{}{}
				return true
			})
			close(done)
		}()

		<-published
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("poller kept running after cancellation")
		}
	})

	t.Run("Failure Becomes Banner", func(t *testing.T) {
		fetch := func(ctx context.Context) (interface{}, error) {
			return nil, errors.New("api down")
		}
		poller := NewPoller(models.RoleAdmin, time.Hour, fetch, constvars.ErrClientLoadAdminDashboard, zap.NewNop())

		var frame Frame
		poller.Run(context.Background(), func(payload []byte) bool {
			require.NoError(t, json.Unmarshal(payload, &frame))
			return false
		})
		assert.Equal(t, constvars.ErrClientLoadAdminDashboard, frame.Error)
		assert.Nil(t, frame.Data)
	})
}

func TestHub(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()

	first := NewClient("s-1", models.RolePatient)
	second := NewClient("s-2", models.RoleDoctor)
	hub.Register(first)
	hub.Register(second)
	assert.Eventually(t, func() bool { return hub.Clients() == 2 }, time.Second, 5*time.Millisecond)

	hub.Unregister(first)
	select {
	case <-first.Done():
	case <-time.After(time.Second):
		t.Fatal("unregistered client was not closed")
	}
	assert.False(t, first.Push([]byte("late")))

	hub.Stop()
	select {
	case <-second.Done():
	case <-time.After(time.Second):
		t.Fatal("stop did not close remaining clients")
	}

	third := NewClient("s-3", models.RoleAdmin)
	hub.Register(third)
	assert.False(t, third.Push([]byte("x")))
}

func TestClient_PushDropsWhenFull(t *testing.T) {
	client := NewClient("s-1", models.RolePatient)
	for i := 0; i < constvars.LiveClientBufferSize+3; i++ {
		assert.True(t, client.Push([]byte("frame")))
	}
	assert.Len(t, client.Send, constvars.LiveClientBufferSize)
}

func TestFeed_SnapshotFor(t *testing.T) {
	feed := &Feed{}

	_, _, err := feed.SnapshotFor(&models.Session{User: &models.User{}})
	assert.Error(t, err)

	_, message, err := feed.SnapshotFor(&models.Session{User: &models.User{Role: models.RolePharmacist}})
	require.NoError(t, err)
	assert.Equal(t, constvars.ErrClientLoadPharmacistData, message)
}
