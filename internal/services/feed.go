package services

import (
	"time"

	"github.com/lunaroak/driftfeed/backend/internal/models"
	"github.com/lunaroak/driftfeed/backend/internal/repositories"
)

// Feed strategies
const (
	StrategyForYou    = "for_you"
	StrategyFollowing = "following"
	StrategyTrending  = "trending"
)

// DefaultFeedLimit is applied when the caller does not bound the feed
const DefaultFeedLimit = 20

// TrendingWindow bounds the candidate set for the trending strategy
const TrendingWindow = 7 * 24 * time.Hour

// Feed is the composed read result: ordered posts plus the viewer's
// like/save state for those posts, so callers can render engagement
// state without a second round trip per post.
type Feed struct {
	Posts        []models.Post `json:"posts"`
	LikedPostIDs []uint        `json:"liked_post_ids"`
	SavedPostIDs []uint        `json:"saved_post_ids"`
	// NoFollowsYet signals that the following strategy came up empty
	// because the viewer follows nobody. Guidance for the caller, not
	// an error.
	NoFollowsYet bool `json:"no_follows_yet,omitempty"`
}

// FeedService composes a viewer's feed. Read-only: feed reads run
// without a transaction since approximate recency is acceptable.
type FeedService struct {
	posts   repositories.PostRepository
	follows repositories.FollowRepository
	likes   repositories.LikeRepository
	saved   repositories.SavedPostRepository

	now func() time.Time
}

// NewFeedService creates a new FeedService
func NewFeedService(
	postRepo repositories.PostRepository,
	followRepo repositories.FollowRepository,
	likeRepo repositories.LikeRepository,
	savedRepo repositories.SavedPostRepository,
) *FeedService {
	return &FeedService{
		posts:   postRepo,
		follows: followRepo,
		likes:   likeRepo,
		saved:   savedRepo,
		now:     time.Now,
	}
}

// Compose assembles the feed for a viewer under the given strategy.
// viewerID may be nil for anonymous readers; the following strategy
// requires one. Unknown strategies fall back to for_you.
func (s *FeedService) Compose(viewerID *uint, strategy string, limit int) (*Feed, error) {
	if limit < 1 {
		limit = DefaultFeedLimit
	}

	feed := &Feed{}

	switch strategy {
	case StrategyFollowing:
		if viewerID == nil {
			return nil, ErrUnauthorized
		}
		followingIDs, err := s.follows.GetFollowingIDs(*viewerID)
		if err != nil {
			return nil, err
		}
		if len(followingIDs) == 0 {
			feed.NoFollowsYet = true
			break
		}
		feed.Posts, err = s.posts.GetPostsByAuthors(followingIDs, limit)
		if err != nil {
			return nil, err
		}
	case StrategyTrending:
		var err error
		feed.Posts, err = s.posts.GetTrendingPosts(s.now().Add(-TrendingWindow), limit)
		if err != nil {
			return nil, err
		}
	default:
		var err error
		feed.Posts, err = s.posts.GetRecentPosts(limit)
		if err != nil {
			return nil, err
		}
	}

	if viewerID != nil && len(feed.Posts) > 0 {
		postIDs := make([]uint, len(feed.Posts))
		for i, p := range feed.Posts {
			postIDs[i] = p.ID
		}
		var err error
		feed.LikedPostIDs, err = s.likes.GetLikedPostIDs(*viewerID, postIDs)
		if err != nil {
			return nil, err
		}
		feed.SavedPostIDs, err = s.saved.GetSavedPostIDs(*viewerID, postIDs)
		if err != nil {
			return nil, err
		}
	}

	return feed, nil
}
