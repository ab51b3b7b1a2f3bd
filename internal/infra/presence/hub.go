// Package presence tracks live socket connections and pushes events to them.
package presence

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"bloodcare/config"
	"bloodcare/internal/domain/service"

	"github.com/google/uuid"
)

const defaultWriteTimeout = 5 * time.Second

// wsConn is the subset of the websocket connection the hub needs. Narrowing
// the surface keeps the hub testable without a network socket.
type wsConn interface {
	SetWriteDeadline(t time.Time) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// textMessage matches websocket.TextMessage without importing the package here.
const textMessage = 1

// Channel is one registered connection. Writes are serialized through its
// mutex because websocket connections allow only one concurrent writer.
type Channel struct {
	conn wsConn
	mu   sync.Mutex
}

// NewChannel wraps a websocket connection for registration with the hub.
func NewChannel(conn wsConn) *Channel {
	return &Channel{conn: conn}
}

func (c *Channel) send(timeout time.Duration, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
		return err
	}

	return c.conn.WriteMessage(textMessage, data)
}

// Hub is the in-memory connection registry. A user may hold several channels
// at once (multiple devices); unicast fans out to all of them.
type Hub struct {
	mu           sync.RWMutex
	channels     map[uuid.UUID]map[*Channel]struct{}
	writeTimeout time.Duration
	logger       *slog.Logger
}

// NewHub creates the connection registry.
func NewHub(cfg *config.Config, logger *slog.Logger) *Hub {
	writeTimeout := defaultWriteTimeout
	if cfg.Location != nil && cfg.Location.PresenceWriteTimeout > 0 {
		writeTimeout = cfg.Location.PresenceWriteTimeout
	}

	return &Hub{
		channels:     make(map[uuid.UUID]map[*Channel]struct{}),
		writeTimeout: writeTimeout,
		logger:       logger,
	}
}

var _ service.Notifier = (*Hub)(nil)

// Register adds a channel for the user. Registration is idempotent.
func (h *Hub) Register(userID uuid.UUID, ch *Channel) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.channels[userID]
	if !ok {
		set = make(map[*Channel]struct{})
		h.channels[userID] = set
	}
	set[ch] = struct{}{}
}

// Unregister removes a channel and closes its connection. Unknown channels
// are ignored so disconnect paths can call it unconditionally.
func (h *Hub) Unregister(userID uuid.UUID, ch *Channel) {
	h.mu.Lock()
	set, ok := h.channels[userID]
	if ok {
		delete(set, ch)
		if len(set) == 0 {
			delete(h.channels, userID)
		}
	}
	h.mu.Unlock()

	if ok {
		_ = ch.conn.Close()
	}
}

// Unicast pushes an event to every live connection of one user. It is a
// no-op when the user has no connections.
func (h *Hub) Unicast(userID uuid.UUID, event string, payload any) {
	data, err := marshalEnvelope(event, payload)
	if err != nil {
		h.logger.Error("presence: marshal event failed",
			slog.String("event", event),
			slog.Any("error", err),
		)

		return
	}

	h.mu.RLock()
	targets := make([]*Channel, 0, len(h.channels[userID]))
	for ch := range h.channels[userID] {
		targets = append(targets, ch)
	}
	h.mu.RUnlock()

	h.push(userID, event, targets, data)
}

// Broadcast pushes an event to every connected client.
func (h *Hub) Broadcast(event string, payload any) {
	data, err := marshalEnvelope(event, payload)
	if err != nil {
		h.logger.Error("presence: marshal event failed",
			slog.String("event", event),
			slog.Any("error", err),
		)

		return
	}

	h.mu.RLock()
	type target struct {
		userID uuid.UUID
		ch     *Channel
	}
	targets := make([]target, 0, len(h.channels))
	for userID, set := range h.channels {
		for ch := range set {
			targets = append(targets, target{userID: userID, ch: ch})
		}
	}
	h.mu.RUnlock()

	for _, t := range targets {
		h.push(t.userID, event, []*Channel{t.ch}, data)
	}
}

// ConnectionCount reports the number of live channels, for health reporting.
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	count := 0
	for _, set := range h.channels {
		count += len(set)
	}

	return count
}

// push writes outside the registry lock. A failed write marks the channel
// dead and drops it; delivery failures are logged and never escalated.
func (h *Hub) push(userID uuid.UUID, event string, targets []*Channel, data []byte) {
	for _, ch := range targets {
		if err := ch.send(h.writeTimeout, data); err != nil {
			h.logger.Warn("presence: dropping dead channel",
				slog.String("userId", userID.String()),
				slog.String("event", event),
				slog.Any("error", err),
			)
			h.Unregister(userID, ch)
		}
	}
}

func marshalEnvelope(event string, payload any) ([]byte, error) {
	return json.Marshal(map[string]any{
		"event": event,
		"data":  payload,
	})
}
