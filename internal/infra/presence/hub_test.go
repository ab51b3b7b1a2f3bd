package presence

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"bloodcare/config"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConn records written frames in place of a network socket.
type fakeConn struct {
	frames   [][]byte
	writeErr error
	closed   bool
}

func (c *fakeConn) SetWriteDeadline(time.Time) error { return nil }

func (c *fakeConn) WriteMessage(_ int, data []byte) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	c.frames = append(c.frames, data)

	return nil
}

func (c *fakeConn) Close() error {
	c.closed = true

	return nil
}

func newTestHub() *Hub {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewHub(&config.Config{}, logger)
}

func decodeFrame(t *testing.T, data []byte) (string, map[string]any) {
	t.Helper()

	var envelope struct {
		Event string         `json:"event"`
		Data  map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(data, &envelope))

	return envelope.Event, envelope.Data
}

func TestHub_Unicast_ReachesAllUserChannels(t *testing.T) {
	hub := newTestHub()
	userID := uuid.New()
	otherID := uuid.New()

	phone := &fakeConn{}
	laptop := &fakeConn{}
	other := &fakeConn{}
	hub.Register(userID, NewChannel(phone))
	hub.Register(userID, NewChannel(laptop))
	hub.Register(otherID, NewChannel(other))

	hub.Unicast(userID, "bloodRequest", map[string]string{"message": "Urgent blood request"})

	require.Len(t, phone.frames, 1)
	require.Len(t, laptop.frames, 1)
	assert.Empty(t, other.frames)

	event, data := decodeFrame(t, phone.frames[0])
	assert.Equal(t, "bloodRequest", event)
	assert.Equal(t, "Urgent blood request", data["message"])
}

func TestHub_Unicast_NoConnectionsIsNoop(t *testing.T) {
	hub := newTestHub()

	hub.Unicast(uuid.New(), "bloodRequest", map[string]string{"message": "hello"})

	assert.Equal(t, 0, hub.ConnectionCount())
}

func TestHub_Broadcast_ReachesEveryChannel(t *testing.T) {
	hub := newTestHub()

	first := &fakeConn{}
	second := &fakeConn{}
	hub.Register(uuid.New(), NewChannel(first))
	hub.Register(uuid.New(), NewChannel(second))

	hub.Broadcast("donorUpdated", map[string]string{"address": "12 Park Street"})

	require.Len(t, first.frames, 1)
	require.Len(t, second.frames, 1)

	event, _ := decodeFrame(t, second.frames[0])
	assert.Equal(t, "donorUpdated", event)
}

func TestHub_DeadChannelIsDropped(t *testing.T) {
	hub := newTestHub()
	userID := uuid.New()

	dead := &fakeConn{writeErr: errors.New("broken pipe")}
	alive := &fakeConn{}
	hub.Register(userID, NewChannel(dead))
	hub.Register(userID, NewChannel(alive))

	hub.Unicast(userID, "bloodRequest", map[string]string{"message": "hello"})

	assert.Equal(t, 1, hub.ConnectionCount())
	assert.True(t, dead.closed)
	require.Len(t, alive.frames, 1)
}

func TestHub_Unregister_ClosesConnection(t *testing.T) {
	hub := newTestHub()
	userID := uuid.New()

	conn := &fakeConn{}
	channel := NewChannel(conn)
	hub.Register(userID, channel)
	require.Equal(t, 1, hub.ConnectionCount())

	hub.Unregister(userID, channel)

	assert.Equal(t, 0, hub.ConnectionCount())
	assert.True(t, conn.closed)

	// Unregistering again must not panic or re-close.
	conn.closed = false
	hub.Unregister(userID, channel)
	assert.False(t, conn.closed)
}

func TestHub_Register_IsIdempotent(t *testing.T) {
	hub := newTestHub()
	userID := uuid.New()

	channel := NewChannel(&fakeConn{})
	hub.Register(userID, channel)
	hub.Register(userID, channel)

	assert.Equal(t, 1, hub.ConnectionCount())
}
