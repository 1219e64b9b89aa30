package repositories

import (
	"github.com/lunaroak/driftfeed/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MentionRepository defines the interface for mention data operations
type MentionRepository interface {
	WithTx(tx *gorm.DB) MentionRepository
	// InsertMention records a mention unless the same user is already
	// recorded for the same post/comment, reporting whether a row was
	// actually inserted. The notification fan-out keys off that result.
	InsertMention(mention *models.Mention) (bool, error)
	GetMentionsByPostID(postID uint) ([]models.Mention, error)
}

// PostgresMentionRepository implements MentionRepository for PostgreSQL
type PostgresMentionRepository struct {
	db *gorm.DB
}

// NewPostgresMentionRepository creates a new PostgresMentionRepository
func NewPostgresMentionRepository(db *gorm.DB) *PostgresMentionRepository {
	return &PostgresMentionRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *PostgresMentionRepository) WithTx(tx *gorm.DB) MentionRepository {
	return &PostgresMentionRepository{db: tx}
}

func (r *PostgresMentionRepository) InsertMention(mention *models.Mention) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(mention)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *PostgresMentionRepository) GetMentionsByPostID(postID uint) ([]models.Mention, error) {
	var mentions []models.Mention
	err := r.db.Where("post_id = ?", postID).Find(&mentions).Error
	return mentions, err
}
