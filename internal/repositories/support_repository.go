package repositories

import (
	"github.com/lunaroak/driftfeed/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SupportRepository defines the interface for support tickets and reports
type SupportRepository interface {
	WithTx(tx *gorm.DB) SupportRepository
	CreateTicket(ticket *models.SupportTicket) error
	GetTicketByID(id uint) (*models.SupportTicket, error)
	GetTicketsByUser(userID uint) ([]models.SupportTicket, error)
	// InsertReport files a report unless the reporter has already
	// reported the same content, reporting whether a row was inserted.
	InsertReport(report *models.Report) (bool, error)
}

// PostgresSupportRepository implements SupportRepository for PostgreSQL
type PostgresSupportRepository struct {
	db *gorm.DB
}

// NewPostgresSupportRepository creates a new PostgresSupportRepository
func NewPostgresSupportRepository(db *gorm.DB) *PostgresSupportRepository {
	return &PostgresSupportRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *PostgresSupportRepository) WithTx(tx *gorm.DB) SupportRepository {
	return &PostgresSupportRepository{db: tx}
}

func (r *PostgresSupportRepository) CreateTicket(ticket *models.SupportTicket) error {
	return r.db.Create(ticket).Error
}

func (r *PostgresSupportRepository) GetTicketByID(id uint) (*models.SupportTicket, error) {
	var ticket models.SupportTicket
	if err := r.db.First(&ticket, id).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *PostgresSupportRepository) GetTicketsByUser(userID uint) ([]models.SupportTicket, error) {
	var tickets []models.SupportTicket
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&tickets).Error
	return tickets, err
}

func (r *PostgresSupportRepository) InsertReport(report *models.Report) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(report)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
