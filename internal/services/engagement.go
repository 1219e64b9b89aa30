package services

import (
	"fmt"

	"github.com/lunaroak/driftfeed/backend/internal/models"
	"github.com/lunaroak/driftfeed/backend/internal/repositories"
	"gorm.io/gorm"
)

// EngagementService implements the like, follow and save toggles. Each
// toggle runs as one transaction and uses a conflict-handled insert
// instead of an existence check, so two concurrent identical requests
// cannot both insert or both delete.
type EngagementService struct {
	db       *gorm.DB
	likes    repositories.LikeRepository
	follows  repositories.FollowRepository
	saved    repositories.SavedPostRepository
	posts    repositories.PostRepository
	users    repositories.UserRepository
	notifier *NotificationService
}

// NewEngagementService creates a new EngagementService
func NewEngagementService(
	db *gorm.DB,
	likeRepo repositories.LikeRepository,
	followRepo repositories.FollowRepository,
	savedRepo repositories.SavedPostRepository,
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	notifier *NotificationService,
) *EngagementService {
	return &EngagementService{
		db:       db,
		likes:    likeRepo,
		follows:  followRepo,
		saved:    savedRepo,
		posts:    postRepo,
		users:    userRepo,
		notifier: notifier,
	}
}

// ToggleLike likes the post if the user has not liked it, otherwise
// removes the like. On the transition to liked, the post author gets a
// notification unless they are the actor. Returns the resulting state
// and the post's like count.
func (s *EngagementService) ToggleLike(userID, postID uint) (liked bool, count int64, err error) {
	post, err := s.posts.GetPostByID(postID)
	if err != nil {
		return false, 0, asNotFound(err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		likes := s.likes.WithTx(tx)

		inserted, err := likes.InsertLike(&models.Like{UserID: userID, PostID: postID})
		if err != nil {
			return err
		}
		if inserted {
			liked = true
			if post.UserID != userID {
				actor, err := s.users.WithTx(tx).GetUserByID(userID)
				if err != nil {
					return err
				}
				title := fmt.Sprintf("%s liked your post", actor.Username)
				message := fmt.Sprintf("%s liked your post %q", actor.Username, post.Title)
				if err := s.notifier.Notify(tx, post.UserID, models.NotificationLike, title, message, post.ID); err != nil {
					return err
				}
			}
		} else {
			if err := likes.DeleteLike(userID, postID); err != nil {
				return err
			}
			liked = false
		}

		count, err = likes.GetLikesCountByPostID(postID)
		return err
	})
	if err != nil {
		return false, 0, err
	}
	return liked, count, nil
}

// ToggleFollow follows the user if no edge exists, otherwise unfollows.
// Self-follow is rejected before any write. Returns the resulting state
// and the followed user's follower count.
func (s *EngagementService) ToggleFollow(followerID, followedID uint) (following bool, count int64, err error) {
	if followerID == followedID {
		return false, 0, ErrSelfFollow
	}
	if _, err := s.users.GetUserByID(followedID); err != nil {
		return false, 0, asNotFound(err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		follows := s.follows.WithTx(tx)

		inserted, err := follows.InsertFollow(&models.Follow{FollowerID: followerID, FollowedID: followedID})
		if err != nil {
			return err
		}
		if inserted {
			following = true
			follower, err := s.users.WithTx(tx).GetUserByID(followerID)
			if err != nil {
				return err
			}
			title := fmt.Sprintf("%s started following you", follower.Username)
			if err := s.notifier.Notify(tx, followedID, models.NotificationFollow, title, title, follower.ID); err != nil {
				return err
			}
		} else {
			if err := follows.DeleteFollow(followerID, followedID); err != nil {
				return err
			}
			following = false
		}

		count, err = follows.GetFollowersCount(followedID)
		return err
	})
	if err != nil {
		return false, 0, err
	}
	return following, count, nil
}

// ToggleSave bookmarks the post for the user, or removes the bookmark
// if present. No notification is fanned out for saves.
func (s *EngagementService) ToggleSave(userID, postID uint) (savedNow bool, err error) {
	if _, err := s.posts.GetPostByID(postID); err != nil {
		return false, asNotFound(err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		saved := s.saved.WithTx(tx)

		inserted, err := saved.InsertSavedPost(&models.SavedPost{UserID: userID, PostID: postID})
		if err != nil {
			return err
		}
		if inserted {
			savedNow = true
			return nil
		}
		savedNow = false
		return saved.DeleteSavedPost(userID, postID)
	})
	if err != nil {
		return false, err
	}
	return savedNow, nil
}
