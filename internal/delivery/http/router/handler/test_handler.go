package handler

import (
	"net/http"

	"bloodcare/internal/delivery/http/response"
	"bloodcare/internal/infra/presence"

	"github.com/labstack/echo/v4"
)

// TestHandler exposes diagnostic endpoints. The routes are only registered
// when config enables them, never in production.
type TestHandler struct {
	hub *presence.Hub
}

// NewTestHandler is the constructor for TestHandler, injected by Fx.
func NewTestHandler(hub *presence.Hub) *TestHandler {
	return &TestHandler{hub: hub}
}

// Ping confirms the API is reachable.
func (h *TestHandler) Ping(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"ping": "pong"}, "")
}

// Connections reports the number of live socket channels.
func (h *TestHandler) Connections(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]int{
		"connections": h.hub.ConnectionCount(),
	}, "")
}

type testBroadcastInput struct {
	Event   string `json:"event" validate:"required"`
	Message string `json:"message"`
}

// Broadcast pushes an arbitrary event to every connected socket, for
// verifying client subscriptions during development.
func (h *TestHandler) Broadcast(c echo.Context) error {
	var input testBroadcastInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid broadcast input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	h.hub.Broadcast(input.Event, map[string]string{"message": input.Message})

	return response.Success(c, http.StatusOK, nil, "Broadcast sent")
}
