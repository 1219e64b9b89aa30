package models

import "time"

// Mention records that a user was referenced in a post, or in a comment
// on that post when CommentID is set.
type Mention struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	PostID          uint      `json:"post_id" gorm:"index;uniqueIndex:idx_post_comment_mention"`
	CommentID       *uint     `json:"comment_id,omitempty" gorm:"uniqueIndex:idx_post_comment_mention"`
	MentionedUserID uint      `json:"mentioned_user_id" gorm:"index;uniqueIndex:idx_post_comment_mention"`
	CreatedAt       time.Time `json:"created_at"`
}
