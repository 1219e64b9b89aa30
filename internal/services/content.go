package services

import (
	"fmt"
	"strings"

	"github.com/lunaroak/driftfeed/backend/internal/models"
	"github.com/lunaroak/driftfeed/backend/internal/repositories"
	"gorm.io/gorm"
)

// ContentService owns post and comment creation. Each creation commits
// the content row together with its hashtag links and mention records
// as one transaction; a post without its tags is a bug, not an
// acceptable interleaving.
type ContentService struct {
	db        *gorm.DB
	posts     repositories.PostRepository
	comments  repositories.CommentRepository
	users     repositories.UserRepository
	annotator *AnnotationService
	notifier  *NotificationService
}

// NewContentService creates a new ContentService
func NewContentService(
	db *gorm.DB,
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
	userRepo repositories.UserRepository,
	annotator *AnnotationService,
	notifier *NotificationService,
) *ContentService {
	return &ContentService{
		db:        db,
		posts:     postRepo,
		comments:  commentRepo,
		users:     userRepo,
		annotator: annotator,
		notifier:  notifier,
	}
}

// CreatePost creates a post and annotates its description in one
// transaction
func (s *ContentService) CreatePost(authorID uint, req models.CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		Title:       req.Title,
		Description: req.Description,
		MediaType:   req.MediaType,
		MediaURL:    req.MediaURL,
		UserID:      authorID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.posts.WithTx(tx).CreatePost(post); err != nil {
			return err
		}
		if post.Description == "" {
			return nil
		}
		return s.annotator.Annotate(tx, post, post.Description, nil)
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// AddComment creates a top-level comment, annotates its mentions and
// notifies the post author unless they wrote the comment themselves
func (s *ContentService) AddComment(postID, authorID uint, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	post, err := s.posts.GetPostByID(postID)
	if err != nil {
		return nil, asNotFound(err)
	}

	comment := &models.Comment{PostID: postID, UserID: authorID, Content: content}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.comments.WithTx(tx).CreateComment(comment); err != nil {
			return err
		}
		if err := s.annotator.Annotate(tx, post, content, &comment.ID); err != nil {
			return err
		}
		if post.UserID != authorID {
			actor, err := s.users.WithTx(tx).GetUserByID(authorID)
			if err != nil {
				return err
			}
			title := fmt.Sprintf("%s commented on your post", actor.Username)
			message := fmt.Sprintf("%s commented: %q", actor.Username, preview(content, 50))
			if err := s.notifier.Notify(tx, post.UserID, models.NotificationComment, title, message, post.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// ReplyToComment creates a reply under the parent comment. Mentions in
// the reply are annotated and still resolved against the post author.
func (s *ContentService) ReplyToComment(parentID, authorID uint, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	parent, err := s.comments.GetCommentByID(parentID)
	if err != nil {
		return nil, asNotFound(err)
	}
	post, err := s.posts.GetPostByID(parent.PostID)
	if err != nil {
		return nil, asNotFound(err)
	}

	reply := &models.Comment{
		PostID:   parent.PostID,
		UserID:   authorID,
		Content:  content,
		ParentID: &parent.ID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.comments.WithTx(tx).CreateComment(reply); err != nil {
			return err
		}
		return s.annotator.Annotate(tx, post, content, &reply.ID)
	})
	if err != nil {
		return nil, err
	}
	return reply, nil
}

// DeleteComment deletes a comment. Only the comment author or the post
// author may delete it.
func (s *ContentService) DeleteComment(commentID, actorID uint) error {
	comment, err := s.comments.GetCommentByID(commentID)
	if err != nil {
		return asNotFound(err)
	}
	post, err := s.posts.GetPostByID(comment.PostID)
	if err != nil {
		return asNotFound(err)
	}
	if comment.UserID != actorID && post.UserID != actorID {
		return ErrUnauthorized
	}
	return s.comments.DeleteComment(commentID)
}

// ViewPost returns the post and bumps its view counter
func (s *ContentService) ViewPost(postID uint) (*models.Post, error) {
	post, err := s.posts.GetPostByID(postID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if err := s.posts.IncrementViewCount(postID); err != nil {
		return nil, err
	}
	post.ViewCount++
	return post, nil
}

// CommentsForPost lists a post's comments for tree rebuilding by the
// caller
func (s *ContentService) CommentsForPost(postID uint) ([]models.Comment, error) {
	if _, err := s.posts.GetPostByID(postID); err != nil {
		return nil, asNotFound(err)
	}
	return s.comments.GetCommentsByPostID(postID)
}

// preview truncates comment content for notification copy, on a rune
// boundary so multi-byte text stays valid UTF-8
func preview(content string, max int) string {
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}
	return string(runes[:max]) + "..."
}
