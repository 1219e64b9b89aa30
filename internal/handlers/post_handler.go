package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lunaroak/driftfeed/backend/internal/models"
	"github.com/lunaroak/driftfeed/backend/internal/repositories"
	"github.com/lunaroak/driftfeed/backend/internal/services"
)

// PostHandler handles post creation, viewing, discovery and search
type PostHandler struct {
	contentService    *services.ContentService
	postRepository    repositories.PostRepository
	userRepository    repositories.UserRepository
	hashtagRepository repositories.HashtagRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(
	contentService *services.ContentService,
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	hashtagRepo repositories.HashtagRepository,
) *PostHandler {
	return &PostHandler{
		contentService:    contentService,
		postRepository:    postRepo,
		userRepository:    userRepo,
		hashtagRepository: hashtagRepo,
	}
}

// RegisterPostRoutes registers routes requiring authentication and terms
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
}

// RegisterBrowseRoutes registers public read routes
func (h *PostHandler) RegisterBrowseRoutes(g *echo.Group) {
	g.GET("/posts/:id", h.GetPost)
	g.GET("/hashtags/trending", h.GetTrendingHashtags)
	g.GET("/hashtags/:name/posts", h.GetHashtagPosts)
	g.GET("/search", h.Search)
}

// CreatePost creates a post; hashtags and mentions in the description
// are linked in the same transaction as the post row
func (h *PostHandler) CreatePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.contentService.CreatePost(currentUserID, req)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

// GetPost returns a post with its comments and bumps the view counter
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	post, err := h.contentService.ViewPost(uint(postID))
	if err != nil {
		return serviceError(err)
	}
	comments, err := h.contentService.CommentsForPost(post.ID)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"post":     post,
			"comments": comments,
		},
	})
}

// GetTrendingHashtags lists hashtags by descending post count
func (h *PostHandler) GetTrendingHashtags(c echo.Context) error {
	tags, err := h.hashtagRepository.GetTrendingHashtags(20)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"hashtags": tags}})
}

// GetHashtagPosts lists posts linked to a hashtag, newest first
func (h *PostHandler) GetHashtagPosts(c echo.Context) error {
	tag, err := h.hashtagRepository.GetByName(c.Param("name"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Hashtag not found")
	}
	posts, err := h.postRepository.GetPostsByHashtag(tag.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"hashtag": tag, "posts": posts},
	})
}

// Search searches posts, hashtags and users in one round trip
func (h *PostHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"data":    echo.Map{"posts": []models.Post{}, "hashtags": []models.Hashtag{}, "users": []models.UserCompact{}},
		})
	}

	posts, err := h.postRepository.SearchPosts(query, 20)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	tags, err := h.hashtagRepository.SearchHashtags(query, 10)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	users, err := h.userRepository.SearchUsers(query, 10)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	compact := make([]models.UserCompact, len(users))
	for i := range users {
		compact[i] = users[i].ToCompact()
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"posts": posts, "hashtags": tags, "users": compact},
	})
}
