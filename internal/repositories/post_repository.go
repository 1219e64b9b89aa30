package repositories

import (
	"time"

	"github.com/lunaroak/driftfeed/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	WithTx(tx *gorm.DB) PostRepository
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetRecentPosts(limit int) ([]models.Post, error)
	GetPostsByAuthors(authorIDs []uint, limit int) ([]models.Post, error)
	GetTrendingPosts(since time.Time, limit int) ([]models.Post, error)
	GetPostsByUser(userID uint) ([]models.Post, error)
	GetPostsByHashtag(hashtagID uint) ([]models.Post, error)
	SearchPosts(query string, limit int) ([]models.Post, error)
	IncrementViewCount(id uint) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *PostgresPostRepository) WithTx(tx *gorm.DB) PostRepository {
	return &PostgresPostRepository{db: tx}
}

// CreatePost creates a new post
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post by ID
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetRecentPosts retrieves the newest posts across all users
func (r *PostgresPostRepository) GetRecentPosts(limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Order("created_at DESC").Limit(limit).Find(&posts).Error
	return posts, err
}

// GetPostsByAuthors retrieves the newest posts authored by the given users
func (r *PostgresPostRepository) GetPostsByAuthors(authorIDs []uint, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("user_id IN ?", authorIDs).
		Order("created_at DESC").Limit(limit).Find(&posts).Error
	return posts, err
}

// GetTrendingPosts ranks posts created since the given time by distinct
// like count descending. Ties are broken by more recent creation time
// first. Posts without any like are not candidates.
func (r *PostgresPostRepository) GetTrendingPosts(since time.Time, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Model(&models.Post{}).
		Joins("JOIN likes ON likes.post_id = posts.id").
		Where("posts.created_at >= ?", since).
		Group("posts.id").
		Order("COUNT(DISTINCT likes.id) DESC").
		Order("posts.created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// GetPostsByUser retrieves all posts by a user, newest first
func (r *PostgresPostRepository) GetPostsByUser(userID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// GetPostsByHashtag retrieves posts linked to a hashtag, newest first
func (r *PostgresPostRepository) GetPostsByHashtag(hashtagID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("id IN (?)",
		r.db.Model(&models.PostHashtag{}).Select("post_id").Where("hashtag_id = ?", hashtagID),
	).Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// SearchPosts searches posts by title or description (case-insensitive)
func (r *PostgresPostRepository) SearchPosts(query string, limit int) ([]models.Post, error) {
	var posts []models.Post
	pattern := "%" + query + "%"
	err := r.db.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern).
		Order("created_at DESC").Limit(limit).Find(&posts).Error
	return posts, err
}

// IncrementViewCount bumps the view counter in a single atomic update
func (r *PostgresPostRepository) IncrementViewCount(id uint) error {
	return r.db.Model(&models.Post{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}
