// Package handler contains the Echo HTTP handlers of the API.
package handler

import (
	"bazaar/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXUserID carries the authenticated user's ID, set by the gateway in
// front of this service. Authentication itself happens upstream.
const HeaderXUserID = "X-User-Id"

// callerID extracts the authenticated user's ID from the request headers.
func callerID(c echo.Context) (uuid.UUID, error) {
	raw := c.Request().Header.Get(HeaderXUserID)
	if raw == "" {
		return uuid.Nil, response.Unauthorized(c, "MISSING_USER_ID", "Missing "+HeaderXUserID+" header")
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, response.Unauthorized(c, "INVALID_USER_ID", "Invalid "+HeaderXUserID+" header")
	}

	return userID, nil
}

// optionalCallerID extracts the user's ID when the header is present. An
// absent header is not an error; anonymous requests are allowed.
func optionalCallerID(c echo.Context) (*uuid.UUID, error) {
	raw := c.Request().Header.Get(HeaderXUserID)
	if raw == "" {
		return nil, nil
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return nil, response.Unauthorized(c, "INVALID_USER_ID", "Invalid "+HeaderXUserID+" header")
	}

	return &userID, nil
}
