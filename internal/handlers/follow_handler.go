package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lunaroak/driftfeed/backend/internal/services"
)

// FollowHandler handles the follow toggle
type FollowHandler struct {
	engagementService *services.EngagementService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(engagementService *services.EngagementService) *FollowHandler {
	return &FollowHandler{engagementService: engagementService}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/follow", h.ToggleFollow)
}

// ToggleFollow follows or unfollows the target user
func (h *FollowHandler) ToggleFollow(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	following, count, err := h.engagementService.ToggleFollow(currentUserID, uint(targetID))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"following": following, "count": count})
}
