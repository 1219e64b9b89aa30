package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lunaroak/driftfeed/backend/internal/models"
	"github.com/lunaroak/driftfeed/backend/internal/services"
)

// CommentHandler handles commenting, replies and comment deletion
type CommentHandler struct {
	contentService *services.ContentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(contentService *services.ContentService) *CommentHandler {
	return &CommentHandler{contentService: contentService}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.AddComment)
	g.POST("/comments/:id/replies", h.ReplyToComment)
	g.DELETE("/comments/:id", h.DeleteComment)
}

// AddComment adds a top-level comment to a post
func (h *CommentHandler) AddComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.contentService.AddComment(uint(postID), currentUserID, req.Content)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, comment)
}

// ReplyToComment adds a reply under an existing comment
func (h *CommentHandler) ReplyToComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	parentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	reply, err := h.contentService.ReplyToComment(uint(parentID), currentUserID, req.Content)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, reply)
}

// DeleteComment deletes a comment; allowed for its author or the post
// author
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	if err := h.contentService.DeleteComment(uint(commentID), currentUserID); err != nil {
		return serviceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
