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

// InventoryHandler holds dependencies for blood stock handlers.
type InventoryHandler struct {
	uc     usecase.InventoryUsecase
	logger *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler, injected by Fx.
func NewInventoryHandler(uc usecase.InventoryUsecase, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// RecordIn appends a donation to the ledger.
func (h *InventoryHandler) RecordIn(c echo.Context) error {
	organisationID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var input *usecase.AddInventoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inventory input")
	}

	record, err := h.uc.RecordIn(c.Request().Context(), organisationID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, record, "Inventory recorded")
}

// RecordOut appends an issue to a hospital, guarded by the stock level.
func (h *InventoryHandler) RecordOut(c echo.Context) error {
	organisationID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var input *usecase.AddInventoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inventory input")
	}

	record, err := h.uc.RecordOut(c.Request().Context(), organisationID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, record, "Inventory issued")
}

// InRecords lists inbound ledger entries.
func (h *InventoryHandler) InRecords(c echo.Context) error {
	return h.records(c, entity.RecordTypeIn)
}

// OutRecords lists outbound ledger entries.
func (h *InventoryHandler) OutRecords(c echo.Context) error {
	return h.records(c, entity.RecordTypeOut)
}

func (h *InventoryHandler) records(c echo.Context, recordType entity.RecordType) error {
	organisationID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	records, err := h.uc.Records(c.Request().Context(), organisationID, recordType)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "")
}

// Analytics aggregates in and out volume per blood group.
func (h *InventoryHandler) Analytics(c echo.Context) error {
	organisationID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	totals, err := h.uc.Analytics(c.Request().Context(), organisationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, totals, "")
}
