package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lunaroak/driftfeed/backend/internal/models"
	"github.com/lunaroak/driftfeed/backend/internal/repositories"
)

// testEnv wires the full engine against an in-memory SQLite database so
// tests exercise the real GORM query and transaction paths.
type testEnv struct {
	db *gorm.DB

	users    repositories.UserRepository
	posts    repositories.PostRepository
	likes    repositories.LikeRepository
	follows  repositories.FollowRepository
	hashtags repositories.HashtagRepository
	mentions repositories.MentionRepository

	notifier   *NotificationService
	engagement *EngagementService
	annotator  *AnnotationService
	content    *ContentService
	feed       *FeedService
	support    *SupportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	// One connection so every session sees the same :memory: database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
		&models.SavedPost{},
		&models.Hashtag{},
		&models.PostHashtag{},
		&models.Mention{},
		&models.Notification{},
		&models.SupportTicket{},
		&models.Report{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	env := &testEnv{db: db}
	env.users = repositories.NewPostgresUserRepository(db)
	env.posts = repositories.NewPostgresPostRepository(db)
	env.likes = repositories.NewPostgresLikeRepository(db)
	env.follows = repositories.NewPostgresFollowRepository(db)
	env.hashtags = repositories.NewPostgresHashtagRepository(db)
	env.mentions = repositories.NewPostgresMentionRepository(db)
	savedRepo := repositories.NewPostgresSavedPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	notifRepo := repositories.NewPostgresNotificationRepository(db)
	supportRepo := repositories.NewPostgresSupportRepository(db)

	env.notifier = NewNotificationService(notifRepo)
	env.engagement = NewEngagementService(db, env.likes, env.follows, savedRepo, env.posts, env.users, env.notifier)
	env.annotator = NewAnnotationService(env.users, env.hashtags, env.mentions, env.notifier)
	env.content = NewContentService(db, env.posts, commentRepo, env.users, env.annotator, env.notifier)
	env.feed = NewFeedService(env.posts, env.follows, env.likes, savedRepo)
	env.support = NewSupportService(supportRepo, env.posts, env.users, commentRepo)
	return env
}

func (e *testEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:    username,
		Email:       username + "@example.com",
		TosAccepted: true,
	}
	if err := e.users.CreateUser(user); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func (e *testEnv) createPost(t *testing.T, authorID uint, title, description string) *models.Post {
	t.Helper()
	post, err := e.content.CreatePost(authorID, models.CreatePostRequest{
		Title:       title,
		Description: description,
		MediaType:   "image",
		MediaURL:    "https://cdn.example.com/" + title + ".jpg",
	})
	if err != nil {
		t.Fatalf("create post %s: %v", title, err)
	}
	return post
}

// createPostAt inserts a post row directly with a fixed creation time,
// bypassing annotation, for feed-ordering tests.
func (e *testEnv) createPostAt(t *testing.T, authorID uint, title string, createdAt time.Time) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:     title,
		MediaType: "image",
		MediaURL:  "https://cdn.example.com/" + title + ".jpg",
		UserID:    authorID,
		CreatedAt: createdAt,
	}
	if err := e.db.Create(post).Error; err != nil {
		t.Fatalf("create post %s: %v", title, err)
	}
	return post
}

func (e *testEnv) likePostAs(t *testing.T, userID, postID uint) {
	t.Helper()
	if err := e.db.Create(&models.Like{UserID: userID, PostID: postID}).Error; err != nil {
		t.Fatalf("like post %d as %d: %v", postID, userID, err)
	}
}

func (e *testEnv) notificationsFor(t *testing.T, userID uint) []models.Notification {
	t.Helper()
	var notifications []models.Notification
	if err := e.db.Where("user_id = ?", userID).Order("id").Find(&notifications).Error; err != nil {
		t.Fatalf("load notifications for %d: %v", userID, err)
	}
	return notifications
}

func (e *testEnv) mentionRows(t *testing.T, postID uint) []models.Mention {
	t.Helper()
	var mentions []models.Mention
	if err := e.db.Where("post_id = ?", postID).Find(&mentions).Error; err != nil {
		t.Fatalf("load mentions for %d: %v", postID, err)
	}
	return mentions
}
