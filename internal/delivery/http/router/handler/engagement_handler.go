package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// EngagementHandlerParams holds dependencies for EngagementHandler, injected by Fx.
type EngagementHandlerParams struct {
	fx.In

	EngagementUC usecase.EngagementUsecase
	Logger       *slog.Logger
}

// EngagementHandler holds dependencies for view and cart handlers
type EngagementHandler struct {
	engagementUC usecase.EngagementUsecase
	logger       *slog.Logger
}

// NewEngagementHandler is the constructor for EngagementHandler
func NewEngagementHandler(params EngagementHandlerParams) *EngagementHandler {
	return &EngagementHandler{
		engagementUC: params.EngagementUC,
		logger:       params.Logger,
	}
}

// RecordView handles recording that the caller viewed a listing
func (h *EngagementHandler) RecordView(c echo.Context) error {
	buyerID, err := callerID(c)
	if err != nil {
		return err
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	created, err := h.engagementUC.RecordView(c.Request().Context(), listingID, buyerID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"created": created}, "View recorded successfully")
}

// GetViewCount handles retrieving the distinct viewer count of a listing
func (h *EngagementHandler) GetViewCount(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	count, err := h.engagementUC.GetViewCount(c.Request().Context(), listingID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"view_count": count}, "View count retrieved successfully")
}

// AddToCart handles putting a listing in the caller's cart
func (h *EngagementHandler) AddToCart(c echo.Context) error {
	buyerID, err := callerID(c)
	if err != nil {
		return err
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	if err := h.engagementUC.AddToCart(c.Request().Context(), listingID, buyerID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Listing added to cart"}, "Listing added to cart successfully")
}

// RemoveFromCart handles taking a listing out of the caller's cart
func (h *EngagementHandler) RemoveFromCart(c echo.Context) error {
	buyerID, err := callerID(c)
	if err != nil {
		return err
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	if err := h.engagementUC.RemoveFromCart(c.Request().Context(), listingID, buyerID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Listing removed from cart"}, "Listing removed from cart successfully")
}

// GetCart handles retrieving the caller's cart summary
func (h *EngagementHandler) GetCart(c echo.Context) error {
	buyerID, err := callerID(c)
	if err != nil {
		return err
	}

	summary, err := h.engagementUC.GetCart(c.Request().Context(), buyerID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "Cart retrieved successfully")
}

// handleAppError handles application errors
func (h *EngagementHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
