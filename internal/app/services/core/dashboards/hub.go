package dashboards

import (
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/constvars"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Client is one live dashboard connection. Frames queued on Send are
// written by the connection's writer until Done is closed.
type Client struct {
	SessionID string
	Role      models.Role
	Send      chan []byte

	closed    chan struct{}
	closeOnce sync.Once
}

func NewClient(sessionID string, role models.Role) *Client {
	return &Client{
		SessionID: sessionID,
		Role:      role,
		Send:      make(chan []byte, constvars.LiveClientBufferSize),
		closed:    make(chan struct{}),
	}
}

// Push queues a frame. A full queue drops the frame, the next poll
// supersedes it anyway. It reports false once the client is closed.
func (c *Client) Push(frame []byte) bool {
	select {
	case <-c.closed:
		return false
	default:
	}

	select {
	case c.Send <- frame:
	default:
	}
	return true
}

func (c *Client) Done() <-chan struct{} {
	return c.closed
}

func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.closed)
	})
}

// Hub tracks the open live dashboard connections so they can be closed
// together on shutdown.
type Hub struct {
	Log *zap.Logger

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	stop       chan struct{}
	stopOnce   sync.Once
	count      int64
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		Log:        logger,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		stop:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			atomic.AddInt64(&h.count, 1)
			h.Log.Info("Hub.Run client registered",
				zap.String(constvars.LoggingSessionIDKey, client.SessionID),
				zap.String(constvars.LoggingRoleKey, string(client.Role)),
			)
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				atomic.AddInt64(&h.count, -1)
				client.Close()
				h.Log.Info("Hub.Run client unregistered",
					zap.String(constvars.LoggingSessionIDKey, client.SessionID),
				)
			}
		case <-h.stop:
			for client := range h.clients {
				delete(h.clients, client)
				client.Close()
			}
			atomic.StoreInt64(&h.count, 0)
			return
		}
	}
}

// Register adds client to the hub. After Stop the client is closed
// immediately.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.stop:
		client.Close()
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.stop:
		client.Close()
	}
}

func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.stop)
	})
}

// Clients is the number of open connections.
func (h *Hub) Clients() int {
	return int(atomic.LoadInt64(&h.count))
}
