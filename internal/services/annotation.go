package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/lunaroak/driftfeed/backend/internal/models"
	"github.com/lunaroak/driftfeed/backend/internal/repositories"
	"gorm.io/gorm"
)

var (
	hashtagPattern = regexp.MustCompile(`#(\w+)`)
	mentionPattern = regexp.MustCompile(`@(\w+)`)
)

// AnnotationService extracts hashtags and mentions from free text and
// links them to content. Annotate always runs inside the transaction
// that created the content row: a post must never become visible
// without its tags.
type AnnotationService struct {
	users    repositories.UserRepository
	hashtags repositories.HashtagRepository
	mentions repositories.MentionRepository
	notifier *NotificationService
}

// NewAnnotationService creates a new AnnotationService
func NewAnnotationService(
	userRepo repositories.UserRepository,
	hashtagRepo repositories.HashtagRepository,
	mentionRepo repositories.MentionRepository,
	notifier *NotificationService,
) *AnnotationService {
	return &AnnotationService{
		users:    userRepo,
		hashtags: hashtagRepo,
		mentions: mentionRepo,
		notifier: notifier,
	}
}

// ExtractHashtags returns the normalized hashtag names in the text:
// lowercased, deduplicated, first-seen order. A tag repeated in one
// text counts once.
func (s *AnnotationService) ExtractHashtags(text string) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, match := range hashtagPattern.FindAllStringSubmatch(text, -1) {
		name := strings.ToLower(match[1])
		if !seen[name] {
			seen[name] = true
			tags = append(tags, name)
		}
	}
	return tags
}

// ExtractMentions returns the raw mentioned usernames in encounter
// order. Extraction does not deduplicate; linking does.
func (s *AnnotationService) ExtractMentions(text string) []string {
	var usernames []string
	for _, match := range mentionPattern.FindAllStringSubmatch(text, -1) {
		usernames = append(usernames, match[1])
	}
	return usernames
}

// Annotate links the text's hashtags to the post and resolves its
// mentions, inside the caller's transaction. commentID is set when the
// text is a comment on the post; comment text gets mentions only, so a
// commenter cannot attach hashtags to someone else's post.
func (s *AnnotationService) Annotate(tx *gorm.DB, post *models.Post, text string, commentID *uint) error {
	if commentID == nil {
		if err := s.linkHashtags(tx, post.ID, s.ExtractHashtags(text)); err != nil {
			return err
		}
	}
	return s.resolveMentions(tx, post, s.ExtractMentions(text), commentID)
}

// linkHashtags get-or-creates each hashtag and links it to the post.
// post_count moves only when a link row was actually inserted, which is
// what keeps one post from counting twice for one tag.
func (s *AnnotationService) linkHashtags(tx *gorm.DB, postID uint, names []string) error {
	hashtags := s.hashtags.WithTx(tx)
	for _, name := range names {
		tag, err := hashtags.GetOrCreate(name)
		if err != nil {
			return fmt.Errorf("get or create hashtag %q: %w", name, err)
		}
		linked, err := hashtags.LinkPost(postID, tag.ID)
		if err != nil {
			return fmt.Errorf("link hashtag %q: %w", name, err)
		}
		if linked {
			if err := hashtags.IncrementPostCount(tag.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolveMentions creates a Mention row and a notification per resolved
// user. Unknown usernames are skipped silently. The post author is
// excluded even when the mention sits in a comment reply: mentions are
// resolved against the post author, not the comment author.
func (s *AnnotationService) resolveMentions(tx *gorm.DB, post *models.Post, usernames []string, commentID *uint) error {
	if len(usernames) == 0 {
		return nil
	}

	users := s.users.WithTx(tx)
	mentions := s.mentions.WithTx(tx)

	author, err := users.GetUserByID(post.UserID)
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	for _, username := range usernames {
		if seen[username] {
			continue
		}
		seen[username] = true

		user, err := users.GetUserByUsername(username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return err
		}
		if user.ID == post.UserID {
			continue
		}

		inserted, err := mentions.InsertMention(&models.Mention{
			PostID:          post.ID,
			CommentID:       commentID,
			MentionedUserID: user.ID,
		})
		if err != nil {
			return err
		}
		if !inserted {
			continue
		}

		title := fmt.Sprintf("You were mentioned in a post by %s", author.Username)
		message := fmt.Sprintf("%s mentioned you in their post %q", author.Username, post.Title)
		if err := s.notifier.Notify(tx, user.ID, models.NotificationMention, title, message, post.ID); err != nil {
			return err
		}
	}
	return nil
}
