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

// WatchlistHandlerParams holds dependencies for WatchlistHandler, injected by Fx.
type WatchlistHandlerParams struct {
	fx.In

	WatchlistUC usecase.WatchlistUsecase
	Logger      *slog.Logger
}

// WatchlistHandler holds dependencies for watchlist handlers
type WatchlistHandler struct {
	watchlistUC usecase.WatchlistUsecase
	logger      *slog.Logger
}

// NewWatchlistHandler is the constructor for WatchlistHandler
func NewWatchlistHandler(params WatchlistHandlerParams) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistUC: params.WatchlistUC,
		logger:      params.Logger,
	}
}

// AddToWatchlist handles putting a listing on the caller's watchlist
func (h *WatchlistHandler) AddToWatchlist(c echo.Context) error {
	buyerID, err := callerID(c)
	if err != nil {
		return err
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	if err := h.watchlistUC.AddToWatchlist(c.Request().Context(), buyerID, listingID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Listing added to watchlist"}, "Listing added to watchlist successfully")
}

// RemoveFromWatchlist handles taking a listing off the caller's watchlist
func (h *WatchlistHandler) RemoveFromWatchlist(c echo.Context) error {
	buyerID, err := callerID(c)
	if err != nil {
		return err
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	if err := h.watchlistUC.RemoveFromWatchlist(c.Request().Context(), buyerID, listingID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Listing removed from watchlist"}, "Listing removed from watchlist successfully")
}

// IsWatched handles reporting whether the caller watches a listing
func (h *WatchlistHandler) IsWatched(c echo.Context) error {
	buyerID, err := callerID(c)
	if err != nil {
		return err
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	watched, err := h.watchlistUC.IsWatched(c.Request().Context(), buyerID, listingID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"watched": watched}, "Watch state retrieved successfully")
}

// GetWatchlist handles retrieving the caller's watched listings
func (h *WatchlistHandler) GetWatchlist(c echo.Context) error {
	buyerID, err := callerID(c)
	if err != nil {
		return err
	}

	listings, err := h.watchlistUC.GetWatchedListings(c.Request().Context(), buyerID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listings, "Watchlist retrieved successfully")
}

// handleAppError handles application errors
func (h *WatchlistHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
