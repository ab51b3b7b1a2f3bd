package handler

import (
	"log/slog"
	"net/http"

	"bloodcare/internal/delivery/http/response"
	"bloodcare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OtpHandler holds dependencies for email verification handlers.
type OtpHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewOtpHandler is the constructor for OtpHandler, injected by Fx.
func NewOtpHandler(uc usecase.UserUsecase, logger *slog.Logger) *OtpHandler {
	return &OtpHandler{
		uc:     uc,
		logger: logger,
	}
}

type sendOtpInput struct {
	Email string `json:"email" validate:"required,email"`
}

type verifyOtpInput struct {
	Email string `json:"email" validate:"required,email"`
	Otp   string `json:"otp" validate:"required,len=6"`
}

// Send issues an email verification code.
func (h *OtpHandler) Send(c echo.Context) error {
	var input sendOtpInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid OTP request input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.RequestEmailVerification(c.Request().Context(), input.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification code sent")
}

// Verify consumes an email verification code.
func (h *OtpHandler) Verify(c echo.Context) error {
	var input verifyOtpInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid OTP verification input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.VerifyEmail(c.Request().Context(), input.Email, input.Otp); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Email verified")
}
