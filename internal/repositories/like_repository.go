package repositories

import (
	"github.com/lunaroak/driftfeed/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	WithTx(tx *gorm.DB) LikeRepository
	// InsertLike inserts a like unless the (user, post) pair already
	// exists. Reports whether a row was actually inserted, in a single
	// conflict-handled write rather than a check followed by an insert.
	InsertLike(like *models.Like) (bool, error)
	DeleteLike(userID, postID uint) error
	GetLikesCountByPostID(postID uint) (int64, error)
	GetLikedPostIDs(userID uint, postIDs []uint) ([]uint, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *PostgresLikeRepository) WithTx(tx *gorm.DB) LikeRepository {
	return &PostgresLikeRepository{db: tx}
}

// InsertLike inserts a like, relying on the unique (user_id, post_id)
// index to absorb duplicates
func (r *PostgresLikeRepository) InsertLike(like *models.Like) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteLike removes the like for the (user, post) pair if present
func (r *PostgresLikeRepository) DeleteLike(userID, postID uint) error {
	return r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Like{}).Error
}

// GetLikesCountByPostID retrieves the count of likes for a post
func (r *PostgresLikeRepository) GetLikesCountByPostID(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

// GetLikedPostIDs returns which of the given posts the user has liked
func (r *PostgresLikeRepository) GetLikedPostIDs(userID uint, postIDs []uint) ([]uint, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	err := r.db.Model(&models.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	return ids, err
}
