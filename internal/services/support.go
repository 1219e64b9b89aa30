package services

import (
	"github.com/lunaroak/driftfeed/backend/internal/models"
	"github.com/lunaroak/driftfeed/backend/internal/repositories"
)

// SupportService handles support tickets and moderation reports
type SupportService struct {
	support  repositories.SupportRepository
	posts    repositories.PostRepository
	users    repositories.UserRepository
	comments repositories.CommentRepository
}

// NewSupportService creates a new SupportService
func NewSupportService(
	supportRepo repositories.SupportRepository,
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	commentRepo repositories.CommentRepository,
) *SupportService {
	return &SupportService{
		support:  supportRepo,
		posts:    postRepo,
		users:    userRepo,
		comments: commentRepo,
	}
}

// CreateTicket opens a support ticket for the user
func (s *SupportService) CreateTicket(userID uint, req models.CreateTicketRequest) (*models.SupportTicket, error) {
	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}
	ticket := &models.SupportTicket{
		UserID:   userID,
		Subject:  req.Subject,
		Message:  req.Message,
		Category: req.Category,
		Priority: priority,
		Status:   "open",
	}
	if err := s.support.CreateTicket(ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// ListTickets returns the user's own tickets, newest first
func (s *SupportService) ListTickets(userID uint) ([]models.SupportTicket, error) {
	return s.support.GetTicketsByUser(userID)
}

// GetTicket returns a ticket the user owns
func (s *SupportService) GetTicket(ticketID, userID uint) (*models.SupportTicket, error) {
	ticket, err := s.support.GetTicketByID(ticketID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if ticket.UserID != userID {
		return nil, ErrUnauthorized
	}
	return ticket, nil
}

// FileReport files a moderation report. The reported content must
// exist, and a reporter can report the same content only once.
func (s *SupportService) FileReport(reporterID uint, req models.CreateReportRequest) (*models.Report, error) {
	var err error
	switch req.ReportedType {
	case "post":
		_, err = s.posts.GetPostByID(req.ReportedID)
	case "user":
		_, err = s.users.GetUserByID(req.ReportedID)
	case "comment":
		_, err = s.comments.GetCommentByID(req.ReportedID)
	}
	if err != nil {
		return nil, asNotFound(err)
	}

	report := &models.Report{
		ReporterID:   reporterID,
		ReportedType: req.ReportedType,
		ReportedID:   req.ReportedID,
		Reason:       req.Reason,
		Description:  req.Description,
		Status:       "pending",
	}
	inserted, err := s.support.InsertReport(report)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, ErrDuplicateReport
	}
	return report, nil
}
