package handler

import (
	"context"
	"log/slog"
	"net/http"

	"bloodcare/internal/delivery/http/middleware"
	"bloodcare/internal/delivery/http/response"
	"bloodcare/internal/domain/entity"
	"bloodcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RequestHandler holds dependencies for blood request handlers.
type RequestHandler struct {
	uc     usecase.RequestUsecase
	logger *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler, injected by Fx.
func NewRequestHandler(uc usecase.RequestUsecase, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{
		uc:     uc,
		logger: logger,
	}
}

// SendOtp issues the code that gates request creation.
func (h *RequestHandler) SendOtp(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	if err := h.uc.RequestOtp(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification code sent")
}

// Create verifies the OTP and creates a blood request.
func (h *RequestHandler) Create(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var input *usecase.CreateRequestInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request input")
	}

	request, err := h.uc.Create(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request, "Blood request sent")
}

// Incoming lists requests targeting the caller as donor.
func (h *RequestHandler) Incoming(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	requests, err := h.uc.IncomingRequests(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// Outgoing lists requests the caller created.
func (h *RequestHandler) Outgoing(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	requests, err := h.uc.OutgoingRequests(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// Accept moves a pending request to accepted.
func (h *RequestHandler) Accept(c echo.Context) error {
	return h.decide(c, h.uc.Accept, "Blood request accepted")
}

// Reject moves a pending request to rejected.
func (h *RequestHandler) Reject(c echo.Context) error {
	return h.decide(c, h.uc.Reject, "Blood request rejected")
}

func (h *RequestHandler) decide(
	c echo.Context,
	fn func(ctx context.Context, actingUserID, requestID uuid.UUID) (*entity.BloodRequest, error),
	message string,
) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request id")
	}

	request, err := fn(c.Request().Context(), userID, requestID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, message)
}
