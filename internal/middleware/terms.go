package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lunaroak/driftfeed/backend/internal/models"
	"github.com/lunaroak/driftfeed/backend/internal/repositories"
)

// RequireTermsMiddleware rejects mutating actions by users who have not
// accepted the Terms of Service. Composed after JWT auth; the guard is
// explicit per route group rather than ambient state.
func RequireTermsMiddleware(userRepo repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*models.JwtCustomClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
			}
			user, err := userRepo.GetUserByID(claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authenticated user not found")
			}
			if !user.TosAccepted {
				return echo.NewHTTPError(http.StatusForbidden, "You must accept the Terms of Service to continue")
			}
			return next(c)
		}
	}
}
