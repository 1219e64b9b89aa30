package models

import "time"

// Notification types fanned out by the engine
const (
	NotificationLike    = "like"
	NotificationComment = "comment"
	NotificationFollow  = "follow"
	NotificationMention = "mention"
)

// Notification represents a user notification
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index"` // recipient
	Type      string    `json:"type" gorm:"size:50"`
	Title     string    `json:"title" gorm:"size:200"`
	Message   string    `json:"message"`
	RelatedID uint      `json:"related_id,omitempty"` // ID of related post, comment, or user
	IsRead    bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}
