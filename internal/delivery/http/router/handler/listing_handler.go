package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// ListingHandler holds dependencies for listing-related handlers
type ListingHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// SetListingStatusRequest represents the request body for a status change
type SetListingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateListing handles creating a new listing for the caller
func (h *ListingHandler) CreateListing(c echo.Context) error {
	sellerID, err := callerID(c)
	if err != nil {
		return err
	}

	var input usecase.CreateListingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	listing, err := h.catalogUC.CreateListing(c.Request().Context(), sellerID, &input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, listing, "Listing created successfully")
}

// UpdateListing handles updating a listing owned by the caller
func (h *ListingHandler) UpdateListing(c echo.Context) error {
	sellerID, err := callerID(c)
	if err != nil {
		return err
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	var input usecase.UpdateListingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	listing, err := h.catalogUC.UpdateListing(c.Request().Context(), sellerID, listingID, &input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing, "Listing updated successfully")
}

// GetListing handles retrieving the listing detail page model
func (h *ListingHandler) GetListing(c echo.Context) error {
	viewerID, err := optionalCallerID(c)
	if err != nil {
		return err
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	detail, err := h.catalogUC.GetListingDetail(c.Request().Context(), listingID, viewerID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail, "Listing retrieved successfully")
}

// GetMyListings handles retrieving all listings of the caller
func (h *ListingHandler) GetMyListings(c echo.Context) error {
	sellerID, err := callerID(c)
	if err != nil {
		return err
	}

	listings, err := h.catalogUC.GetSellerListings(c.Request().Context(), sellerID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listings, "Listings retrieved successfully")
}

// SetListingStatus handles moving a listing through its sale lifecycle
func (h *ListingHandler) SetListingStatus(c echo.Context) error {
	if _, err := callerID(c); err != nil {
		return err
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	var req SetListingStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	listing, err := h.catalogUC.SetListingStatus(c.Request().Context(), listingID, req.Status)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing, "Listing status updated successfully")
}

// DeleteListing handles deleting a listing owned by the caller
func (h *ListingHandler) DeleteListing(c echo.Context) error {
	sellerID, err := callerID(c)
	if err != nil {
		return err
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	if err := h.catalogUC.DeleteListing(c.Request().Context(), sellerID, listingID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Listing deleted successfully"}, "Listing deleted successfully")
}

// SearchListings handles querying the listing index
func (h *ListingHandler) SearchListings(c echo.Context) error {
	var query service.SearchQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}

	docs, err := h.catalogUC.SearchListings(c.Request().Context(), &query)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, docs, "Search completed successfully")
}

// GetListingDistance handles computing the caller's distance to the seller
func (h *ListingHandler) GetListingDistance(c echo.Context) error {
	buyerID, err := callerID(c)
	if err != nil {
		return err
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	distanceKm, known, err := h.catalogUC.DistanceFromSeller(c.Request().Context(), listingID, buyerID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	payload := map[string]any{"known": known}
	if known {
		payload["distance_km"] = distanceKm
	}

	return response.Success(c, http.StatusOK, payload, "Distance computed successfully")
}

// GetListingQRCode handles rendering the share QR code of a listing
func (h *ListingHandler) GetListingQRCode(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	png, err := h.catalogUC.GenerateShareQRCode(c.Request().Context(), listingID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// handleAppError handles application errors
func (h *ListingHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
