package ws

import (
	"sync"

	"go.uber.org/zap"
)

// Registry maps a user id to its single live client. A reconnect for
// the same user supersedes and invalidates the previous client.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]*Client
	log   *zap.Logger
}

func NewRegistry(log *zap.Logger) *Registry {
	return &Registry{
		conns: make(map[string]*Client),
		log:   log,
	}
}

func (r *Registry) Register(c *Client) {
	r.mu.Lock()
	old := r.conns[c.UserID]
	r.conns[c.UserID] = c
	r.mu.Unlock()

	if old != nil && old != c {
		old.Close()
		r.log.Debug("connection superseded", zap.String("user_id", c.UserID))
	}
}

// Unregister removes c if it is still the current client for its user.
// A stale unregister from a superseded connection must not evict the
// newer one, so removal is by identity, not by user id.
func (r *Registry) Unregister(c *Client) {
	r.mu.Lock()
	if r.conns[c.UserID] == c {
		delete(r.conns, c.UserID)
	}
	r.mu.Unlock()
	c.Close()
}

// Send delivers msg to userID's client if one is registered. A user
// without a live channel is not an error, the message is dropped. A
// delivery failure evicts the client.
func (r *Registry) Send(userID string, msg []byte) {
	r.mu.RLock()
	c := r.conns[userID]
	r.mu.RUnlock()

	if c == nil {
		return
	}
	if !c.trySend(msg) {
		r.log.Debug("send failed, unregistering", zap.String("user_id", userID))
		r.Unregister(c)
	}
}

// Connected reports whether userID currently has a live channel.
func (r *Registry) Connected(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.conns[userID] != nil
}
