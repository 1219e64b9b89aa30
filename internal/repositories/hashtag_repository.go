package repositories

import (
	"github.com/lunaroak/driftfeed/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HashtagRepository defines the interface for hashtag data operations
type HashtagRepository interface {
	WithTx(tx *gorm.DB) HashtagRepository
	// GetOrCreate returns the hashtag with the given normalized name,
	// creating it if absent. The insert uses a conflict clause keyed on
	// the unique name so two concurrent callers converge on one row.
	GetOrCreate(name string) (*models.Hashtag, error)
	// LinkPost links a hashtag to a post unless already linked,
	// reporting whether a link row was actually inserted.
	LinkPost(postID, hashtagID uint) (bool, error)
	IncrementPostCount(hashtagID uint) error
	GetByName(name string) (*models.Hashtag, error)
	GetTrendingHashtags(limit int) ([]models.Hashtag, error)
	SearchHashtags(query string, limit int) ([]models.Hashtag, error)
}

// PostgresHashtagRepository implements HashtagRepository for PostgreSQL
type PostgresHashtagRepository struct {
	db *gorm.DB
}

// NewPostgresHashtagRepository creates a new PostgresHashtagRepository
func NewPostgresHashtagRepository(db *gorm.DB) *PostgresHashtagRepository {
	return &PostgresHashtagRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *PostgresHashtagRepository) WithTx(tx *gorm.DB) HashtagRepository {
	return &PostgresHashtagRepository{db: tx}
}

func (r *PostgresHashtagRepository) GetOrCreate(name string) (*models.Hashtag, error) {
	tag := models.Hashtag{Name: name}
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&tag)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Lost the race or the tag predates this call; fetch the winner.
		if err := r.db.Where("name = ?", name).First(&tag).Error; err != nil {
			return nil, err
		}
	}
	return &tag, nil
}

func (r *PostgresHashtagRepository) LinkPost(postID, hashtagID uint) (bool, error) {
	link := models.PostHashtag{PostID: postID, HashtagID: hashtagID}
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *PostgresHashtagRepository) IncrementPostCount(hashtagID uint) error {
	return r.db.Model(&models.Hashtag{}).Where("id = ?", hashtagID).
		UpdateColumn("post_count", gorm.Expr("post_count + 1")).Error
}

func (r *PostgresHashtagRepository) GetByName(name string) (*models.Hashtag, error) {
	var tag models.Hashtag
	if err := r.db.Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *PostgresHashtagRepository) GetTrendingHashtags(limit int) ([]models.Hashtag, error) {
	var tags []models.Hashtag
	err := r.db.Order("post_count DESC").Limit(limit).Find(&tags).Error
	return tags, err
}

func (r *PostgresHashtagRepository) SearchHashtags(query string, limit int) ([]models.Hashtag, error) {
	var tags []models.Hashtag
	err := r.db.Where("name LIKE ?", "%"+query+"%").Limit(limit).Find(&tags).Error
	return tags, err
}
