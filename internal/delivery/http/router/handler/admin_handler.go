package handler

import (
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

// AdminHandler holds dependencies for administrative handlers.
type AdminHandler struct {
	users     usecase.UserUsecase
	approvals usecase.ApprovalUsecase
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(users usecase.UserUsecase, approvals usecase.ApprovalUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		users:     users,
		approvals: approvals,
		logger:    logger,
	}
}

// DonorList lists donor accounts.
func (h *AdminHandler) DonorList(c echo.Context) error {
	return h.listByRole(c, entity.RoleDonor)
}

// HospitalList lists hospital accounts.
func (h *AdminHandler) HospitalList(c echo.Context) error {
	return h.listByRole(c, entity.RoleHospital)
}

// OrganisationList lists organisation accounts.
func (h *AdminHandler) OrganisationList(c echo.Context) error {
	return h.listByRole(c, entity.RoleOrganisation)
}

func (h *AdminHandler) listByRole(c echo.Context, role entity.Role) error {
	users, err := h.users.ListByRole(c.Request().Context(), role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// PendingHospitals lists hospital accounts awaiting a decision.
func (h *AdminHandler) PendingHospitals(c echo.Context) error {
	hospitals, err := h.approvals.PendingHospitals(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, hospitals, "")
}

// DeleteDonor removes a donor account with its location record.
func (h *AdminHandler) DeleteDonor(c echo.Context) error {
	donorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid donor id")
	}

	if err := h.users.DeleteDonor(c.Request().Context(), donorID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Donor deleted")
}

// SendApprovalOtp issues the code that gates hospital approval.
func (h *AdminHandler) SendApprovalOtp(c echo.Context) error {
	adminID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	if err := h.approvals.RequestOtp(c.Request().Context(), adminID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification code sent")
}

type approveHospitalInput struct {
	Otp string `json:"otp" validate:"required,len=6"`
}

// ApproveHospital verifies the admin's OTP and approves a pending hospital.
func (h *AdminHandler) ApproveHospital(c echo.Context) error {
	adminID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	hospitalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid hospital id")
	}

	var input approveHospitalInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid approval input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	hospital, err := h.approvals.Approve(c.Request().Context(), adminID, hospitalID, input.Otp)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, hospital, "Hospital approved")
}

// RejectHospital rejects a pending hospital. No OTP is required.
func (h *AdminHandler) RejectHospital(c echo.Context) error {
	adminID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	hospitalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid hospital id")
	}

	hospital, err := h.approvals.Reject(c.Request().Context(), adminID, hospitalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, hospital, "Hospital rejected")
}
