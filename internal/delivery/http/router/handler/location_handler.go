package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bloodcare/internal/delivery/http/middleware"
	"bloodcare/internal/delivery/http/response"
	"bloodcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LocationHandler holds dependencies for geo index handlers.
type LocationHandler struct {
	uc     usecase.LocationUsecase
	logger *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler, injected by Fx.
func NewLocationHandler(uc usecase.LocationUsecase, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{
		uc:     uc,
		logger: logger,
	}
}

// Update persists the caller's position sample.
func (h *LocationHandler) Update(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var input *usecase.UpdateLocationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	location, err := h.uc.UpdateLocation(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, location, "Location updated")
}

// Get returns the caller's stored location.
func (h *LocationHandler) Get(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	location, err := h.uc.GetLocation(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, location, "")
}

// ListAll returns every location record, for admin views.
func (h *LocationHandler) ListAll(c echo.Context) error {
	locations, err := h.uc.ListAllLocations(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, locations, "")
}

// ListDonors returns every discoverable donor location.
func (h *LocationHandler) ListDonors(c echo.Context) error {
	locations, err := h.uc.ListAvailableDonors(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, locations, "")
}

// Nearby searches available donors around a point. Parameters arrive as
// query strings so the endpoint is cacheable and linkable.
func (h *LocationHandler) Nearby(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "latitude must be a number")
	}
	lon, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "longitude must be a number")
	}

	var radiusKm float64
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "radius_km must be a number")
		}
	}

	donors, err := h.uc.FindNearbyDonors(c.Request().Context(), &usecase.NearbyQueryInput{
		Latitude:   lat,
		Longitude:  lon,
		RadiusKm:   radiusKm,
		BloodGroup: c.QueryParam("blood_group"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, donors, "")
}

type availabilityInput struct {
	Available *bool `json:"available" validate:"required"`
}

// SetAvailability flips the caller's discovery opt-in.
func (h *LocationHandler) SetAvailability(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var input availabilityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid availability input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.SetAvailability(c.Request().Context(), userID, *input.Available); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Availability updated")
}

// Delete removes the caller's location record.
func (h *LocationHandler) Delete(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	if err := h.uc.DeleteLocation(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Location deleted")
}
