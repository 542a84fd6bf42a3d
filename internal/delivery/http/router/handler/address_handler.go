package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// AddressHandler holds dependencies for profile address handlers
type AddressHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// AddressesResponse pairs the two profile addresses of a user
type AddressesResponse struct {
	Billing  *entity.Address `json:"billing,omitempty"`
	Shipping *entity.Address `json:"shipping,omitempty"`
}

// UpsertAddress handles creating or replacing the caller's address of a kind
func (h *AddressHandler) UpsertAddress(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	kind, err := h.addressKind(c)
	if err != nil {
		return err
	}

	var input usecase.UpsertAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	address, err := h.locationUC.UpsertAddress(c.Request().Context(), userID, kind, &input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, address, "Address saved successfully")
}

// GetAddresses handles retrieving the caller's billing and shipping addresses
func (h *AddressHandler) GetAddresses(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	billing, shipping, err := h.locationUC.GetAddresses(c.Request().Context(), userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &AddressesResponse{Billing: billing, Shipping: shipping}, "Addresses retrieved successfully")
}

// DeleteAddress handles removing the caller's address of a kind
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	kind, err := h.addressKind(c)
	if err != nil {
		return err
	}

	if err := h.locationUC.DeleteAddress(c.Request().Context(), userID, kind); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Address deleted successfully"}, "Address deleted successfully")
}

// GetDistanceToUser handles computing the caller's distance to another user
func (h *AddressHandler) GetDistanceToUser(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	otherUserID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	distanceKm, known, err := h.locationUC.DistanceBetweenUsers(c.Request().Context(), userID, otherUserID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	payload := map[string]any{"known": known}
	if known {
		payload["distance_km"] = distanceKm
	}

	return response.Success(c, http.StatusOK, payload, "Distance computed successfully")
}

// addressKind parses the :kind path parameter
func (h *AddressHandler) addressKind(c echo.Context) (entity.AddressKind, error) {
	kind := entity.AddressKind(c.Param("kind"))
	if !kind.IsValid() {
		return "", response.BadRequest(c, "INVALID_ADDRESS_KIND", "Address kind must be billing or shipping")
	}

	return kind, nil
}

// handleAppError handles application errors
func (h *AddressHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
