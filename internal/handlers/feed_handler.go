package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lunaroak/driftfeed/backend/internal/models"
	"github.com/lunaroak/driftfeed/backend/internal/repositories"
	"github.com/lunaroak/driftfeed/backend/internal/services"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	feedService    *services.FeedService
	userRepository repositories.UserRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(feedService *services.FeedService, userRepo repositories.UserRepository) *FeedHandler {
	return &FeedHandler{
		feedService:    feedService,
		userRepository: userRepo,
	}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// EnrichedPost is a post with author info and viewer-specific flags
type EnrichedPost struct {
	models.Post
	Author  models.UserCompact `json:"author"`
	IsLiked bool               `json:"is_liked"`
	IsSaved bool               `json:"is_saved"`
}

// GetFeed composes the feed for the requested section. Anonymous
// viewers get for_you and trending; following needs authentication.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	strategy := c.QueryParam("section")
	if strategy == "" {
		strategy = services.StrategyForYou
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 50 {
		limit = services.DefaultFeedLimit
	}

	var viewerID *uint
	if currentUserID > 0 {
		viewerID = &currentUserID
	}
	if strategy == services.StrategyFollowing && viewerID == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Sign in to see posts from people you follow")
	}

	feed, err := h.feedService.Compose(viewerID, strategy, limit)
	if err != nil {
		return serviceError(err)
	}

	response := echo.Map{
		"success": true,
		"data": echo.Map{
			"posts":   h.enrichPosts(feed),
			"section": strategy,
		},
	}
	if feed.NoFollowsYet {
		response["message"] = "Follow some users to see their posts here!"
	}
	return c.JSON(http.StatusOK, response)
}

func (h *FeedHandler) enrichPosts(feed *services.Feed) []EnrichedPost {
	liked := make(map[uint]bool, len(feed.LikedPostIDs))
	for _, id := range feed.LikedPostIDs {
		liked[id] = true
	}
	saved := make(map[uint]bool, len(feed.SavedPostIDs))
	for _, id := range feed.SavedPostIDs {
		saved[id] = true
	}

	authorCache := make(map[uint]models.UserCompact)
	enriched := make([]EnrichedPost, len(feed.Posts))
	for i, post := range feed.Posts {
		author, ok := authorCache[post.UserID]
		if !ok {
			if user, err := h.userRepository.GetUserByID(post.UserID); err == nil {
				author = user.ToCompact()
				authorCache[post.UserID] = author
			}
		}
		enriched[i] = EnrichedPost{
			Post:    post,
			Author:  author,
			IsLiked: liked[post.ID],
			IsSaved: saved[post.ID],
		}
	}
	return enriched
}
