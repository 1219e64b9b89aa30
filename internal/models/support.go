package models

import "time"

// SupportTicket represents a user-submitted support request
type SupportTicket struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"user_id" gorm:"index"`
	Subject       string    `json:"subject" gorm:"size:200"`
	Message       string    `json:"message"`
	Category      string    `json:"category" gorm:"size:50"`                    // bug, feature, account, other
	Status        string    `json:"status" gorm:"size:20;default:'open'"`       // open, in_progress, resolved, closed
	Priority      string    `json:"priority" gorm:"size:20;default:'medium'"`   // low, medium, high, urgent
	AdminResponse string    `json:"admin_response,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateTicketRequest defines the request body for opening a support ticket
type CreateTicketRequest struct {
	Subject  string `json:"subject" validate:"required,min=1,max=200"`
	Message  string `json:"message" validate:"required,min=1"`
	Category string `json:"category" validate:"required,oneof=bug feature account other"`
	Priority string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
}

// Report represents a moderation report filed against content or a user
type Report struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ReporterID   uint      `json:"reporter_id" gorm:"index;uniqueIndex:idx_reporter_target"`
	ReportedType string    `json:"reported_type" gorm:"size:20;uniqueIndex:idx_reporter_target"` // post, user, comment
	ReportedID   uint      `json:"reported_id" gorm:"uniqueIndex:idx_reporter_target"`
	Reason       string    `json:"reason" gorm:"size:100"`
	Description  string    `json:"description,omitempty"`
	Status       string    `json:"status" gorm:"size:20;default:'pending'"` // pending, reviewed, resolved, dismissed
	CreatedAt    time.Time `json:"created_at"`
}

// CreateReportRequest defines the request body for reporting content
type CreateReportRequest struct {
	ReportedType string `json:"reported_type" validate:"required,oneof=post user comment"`
	ReportedID   uint   `json:"reported_id" validate:"required"`
	Reason       string `json:"reason" validate:"required,oneof=inappropriate spam harassment copyright other"`
	Description  string `json:"description,omitempty" validate:"omitempty,max=2000"`
}
