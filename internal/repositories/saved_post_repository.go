package repositories

import (
	"github.com/lunaroak/driftfeed/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SavedPostRepository defines the interface for bookmark operations
type SavedPostRepository interface {
	WithTx(tx *gorm.DB) SavedPostRepository
	InsertSavedPost(saved *models.SavedPost) (bool, error)
	DeleteSavedPost(userID, postID uint) error
	GetSavedPostIDs(userID uint, postIDs []uint) ([]uint, error)
}

// PostgresSavedPostRepository implements SavedPostRepository for PostgreSQL
type PostgresSavedPostRepository struct {
	db *gorm.DB
}

// NewPostgresSavedPostRepository creates a new PostgresSavedPostRepository
func NewPostgresSavedPostRepository(db *gorm.DB) *PostgresSavedPostRepository {
	return &PostgresSavedPostRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *PostgresSavedPostRepository) WithTx(tx *gorm.DB) SavedPostRepository {
	return &PostgresSavedPostRepository{db: tx}
}

func (r *PostgresSavedPostRepository) InsertSavedPost(saved *models.SavedPost) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(saved)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *PostgresSavedPostRepository) DeleteSavedPost(userID, postID uint) error {
	return r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.SavedPost{}).Error
}

func (r *PostgresSavedPostRepository) GetSavedPostIDs(userID uint, postIDs []uint) ([]uint, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	err := r.db.Model(&models.SavedPost{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	return ids, err
}
