package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"bloodcare/internal/domain/entity"
	"bloodcare/internal/domain/service"
	"bloodcare/internal/infra/presence"
	"bloodcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// eventUpdateLocation is the only client-to-server event; everything else
// flows server-to-client through the hub.
const eventUpdateLocation = "updateLocation"

// SocketHandler upgrades HTTP requests to websocket connections and wires
// them into the presence hub.
type SocketHandler struct {
	hub      *presence.Hub
	tokens   service.TokenService
	location usecase.LocationUsecase
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewSocketHandler is the constructor for SocketHandler, injected by Fx.
func NewSocketHandler(
	hub *presence.Hub,
	tokens service.TokenService,
	location usecase.LocationUsecase,
	logger *slog.Logger,
) *SocketHandler {
	return &SocketHandler{
		hub:      hub,
		tokens:   tokens,
		location: location,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browsers cannot set headers on websocket dials, so origin
			// policy is enforced by the token instead.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// inboundFrame is the envelope clients send over the socket.
type inboundFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Connect authenticates via the token query parameter, upgrades the
// connection, and serves it until the client disconnects.
func (h *SocketHandler) Connect(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}

	claims, err := h.tokens.ValidateToken(token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		return nil
	}

	channel := presence.NewChannel(conn)
	h.hub.Register(claims.UserID, channel)

	h.logger.Info("socket connected",
		slog.String("userId", claims.UserID.String()),
		slog.String("role", string(claims.Role)),
		slog.Int("connections", h.hub.ConnectionCount()),
	)

	h.readLoop(c.Request().Context(), conn, claims.UserID, claims.Role)

	h.hub.Unregister(claims.UserID, channel)
	h.logger.Info("socket disconnected",
		slog.String("userId", claims.UserID.String()),
		slog.Int("connections", h.hub.ConnectionCount()),
	)

	return nil
}

// readLoop consumes frames until the connection drops. Malformed frames are
// logged and skipped so one bad client message never kills the session.
func (h *SocketHandler) readLoop(ctx context.Context, conn *websocket.Conn, userID uuid.UUID, role entity.Role) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn("socket read failed",
					slog.String("userId", userID.String()),
					slog.Any("error", err),
				)
			}

			return
		}

		var frame inboundFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			h.logger.Warn("socket frame malformed",
				slog.String("userId", userID.String()),
				slog.Any("error", err),
			)

			continue
		}

		h.dispatch(ctx, userID, role, frame)
	}
}

func (h *SocketHandler) dispatch(ctx context.Context, userID uuid.UUID, role entity.Role, frame inboundFrame) {
	switch frame.Event {
	case eventUpdateLocation:
		if role != entity.RoleDonor {
			h.logger.Warn("socket location update from non-donor",
				slog.String("userId", userID.String()),
				slog.String("role", string(role)),
			)

			return
		}

		var input *usecase.UpdateLocationInput
		if err := json.Unmarshal(frame.Data, &input); err != nil || input == nil {
			h.logger.Warn("socket location payload malformed",
				slog.String("userId", userID.String()),
				slog.Any("error", err),
			)

			return
		}

		if _, err := h.location.UpdateLocation(ctx, userID, input); err != nil {
			h.logger.Warn("socket location update failed",
				slog.String("userId", userID.String()),
				slog.Any("error", err),
			)
		}
	default:
		h.logger.Debug("socket event ignored",
			slog.String("userId", userID.String()),
			slog.String("event", frame.Event),
		)
	}
}
