package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lunaroak/driftfeed/backend/internal/services"
)

// LikeHandler handles the like and save toggles
type LikeHandler struct {
	engagementService *services.EngagementService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(engagementService *services.EngagementService) *LikeHandler {
	return &LikeHandler{engagementService: engagementService}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/like", h.ToggleLike)
	g.POST("/posts/:post_id/save", h.ToggleSave)
}

// ToggleLike likes or unlikes a post for the current user
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	liked, count, err := h.engagementService.ToggleLike(currentUserID, uint(postID))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"liked": liked, "count": count})
}

// ToggleSave bookmarks or un-bookmarks a post for the current user
func (h *LikeHandler) ToggleSave(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	saved, err := h.engagementService.ToggleSave(currentUserID, uint(postID))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"saved": saved})
}
