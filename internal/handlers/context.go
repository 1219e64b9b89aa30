package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lunaroak/driftfeed/backend/internal/models"
	"github.com/lunaroak/driftfeed/backend/internal/services"
)

// getUserIDFromContext returns the authenticated user's ID, or 0 for
// anonymous requests
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}

// serviceError translates the service error taxonomy into HTTP statuses
func serviceError(err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrSelfFollow):
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot follow yourself")
	case errors.Is(err, services.ErrEmptyContent):
		return echo.NewHTTPError(http.StatusBadRequest, "Content cannot be empty")
	case errors.Is(err, services.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusForbidden, "You do not have access to this resource")
	case errors.Is(err, services.ErrDuplicateReport):
		return echo.NewHTTPError(http.StatusConflict, "You have already reported this content")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
