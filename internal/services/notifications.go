package services

import (
	"github.com/lunaroak/driftfeed/backend/internal/models"
	"github.com/lunaroak/driftfeed/backend/internal/repositories"
	"gorm.io/gorm"
)

// NotificationService creates and serves notification records. Notify is
// a plain create: the no-self-notify rule is enforced by every caller
// before dispatching, not here.
type NotificationService struct {
	notifications repositories.NotificationRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notifRepo repositories.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifRepo}
}

// Notify creates a notification for the recipient. When tx is non-nil
// the write joins the caller's transaction, so a failed enclosing action
// never leaves a stray notification behind.
func (s *NotificationService) Notify(tx *gorm.DB, recipientID uint, ntype, title, message string, relatedID uint) error {
	repo := s.notifications
	if tx != nil {
		repo = repo.WithTx(tx)
	}
	return repo.CreateNotification(&models.Notification{
		UserID:    recipientID,
		Type:      ntype,
		Title:     title,
		Message:   message,
		RelatedID: relatedID,
	})
}

// ListForUser returns the user's notifications newest-first with the
// total count for pagination
func (s *NotificationService) ListForUser(userID uint, page, limit int) ([]models.Notification, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}
	return s.notifications.GetByRecipientID(userID, page, limit)
}

// UnreadCount returns the number of unread notifications for the user
func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	return s.notifications.GetUnreadCount(userID)
}

// MarkRead flips the read flag of a single notification. Fails with
// ErrUnauthorized when the notification belongs to someone else.
func (s *NotificationService) MarkRead(notificationID, requestingUserID uint) error {
	notification, err := s.notifications.GetNotificationByID(notificationID)
	if err != nil {
		return asNotFound(err)
	}
	if notification.UserID != requestingUserID {
		return ErrUnauthorized
	}
	return s.notifications.MarkAsRead(notificationID)
}

// MarkAllRead marks every unread notification of the user as read and
// returns the number updated
func (s *NotificationService) MarkAllRead(userID uint) (int64, error) {
	return s.notifications.MarkAllAsRead(userID)
}
