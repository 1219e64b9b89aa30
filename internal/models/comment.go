package models

import "time"

// Comment represents a comment on a post. ParentID links replies to
// their parent comment, forming a tree per post; trees are rebuilt by
// id lookup, never by in-memory back-pointers.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index"`
	UserID    uint      `json:"user_id" gorm:"index"`
	Content   string    `json:"content"`
	ParentID  *uint     `json:"parent_id,omitempty" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommentRequest defines the request body for commenting on a post
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}
