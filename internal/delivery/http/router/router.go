// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ListingHandler    *handler.ListingHandler
	EngagementHandler *handler.EngagementHandler
	WatchlistHandler  *handler.WatchlistHandler
	AddressHandler    *handler.AddressHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	listingHandler    *handler.ListingHandler
	engagementHandler *handler.EngagementHandler
	watchlistHandler  *handler.WatchlistHandler
	addressHandler    *handler.AddressHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		listingHandler:    params.ListingHandler,
		engagementHandler: params.EngagementHandler,
		watchlistHandler:  params.WatchlistHandler,
		addressHandler:    params.AddressHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Listing catalog routes
	listingGroup := e.Group("/listings")
	{
		listingGroup.POST("", r.listingHandler.CreateListing)
		listingGroup.GET("/mine", r.listingHandler.GetMyListings)
		listingGroup.POST("/search", r.listingHandler.SearchListings)
		listingGroup.GET("/:id", r.listingHandler.GetListing)
		listingGroup.PUT("/:id", r.listingHandler.UpdateListing)
		listingGroup.DELETE("/:id", r.listingHandler.DeleteListing)
		listingGroup.PATCH("/:id/status", r.listingHandler.SetListingStatus)
		listingGroup.GET("/:id/qrcode", r.listingHandler.GetListingQRCode)
		listingGroup.GET("/:id/distance", r.listingHandler.GetListingDistance)

		// Engagement routes hang off the listing they target
		listingGroup.POST("/:id/view", r.engagementHandler.RecordView)
		listingGroup.GET("/:id/views", r.engagementHandler.GetViewCount)
	}

	// Cart routes
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.engagementHandler.GetCart)
		cartGroup.POST("/:id", r.engagementHandler.AddToCart)
		cartGroup.DELETE("/:id", r.engagementHandler.RemoveFromCart)
	}

	// Watchlist routes
	watchlistGroup := e.Group("/watchlist")
	{
		watchlistGroup.GET("", r.watchlistHandler.GetWatchlist)
		watchlistGroup.GET("/:id", r.watchlistHandler.IsWatched)
		watchlistGroup.POST("/:id", r.watchlistHandler.AddToWatchlist)
		watchlistGroup.DELETE("/:id", r.watchlistHandler.RemoveFromWatchlist)
	}

	// Profile address routes
	addressGroup := e.Group("/profile/addresses")
	{
		addressGroup.GET("", r.addressHandler.GetAddresses)
		addressGroup.PUT("/:kind", r.addressHandler.UpsertAddress)
		addressGroup.DELETE("/:kind", r.addressHandler.DeleteAddress)
		addressGroup.GET("/distance/:userID", r.addressHandler.GetDistanceToUser)
	}
}
