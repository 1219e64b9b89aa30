package models

import "time"

// Post represents an uploaded piece of content
type Post struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:200"`
	Description string    `json:"description"`
	MediaType   string    `json:"media_type" gorm:"size:10"` // "image" or "video"
	MediaURL    string    `json:"media_url" gorm:"size:200"`
	UserID      uint      `json:"user_id" gorm:"index"`
	ViewCount   int64     `json:"view_count" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description,omitempty" validate:"omitempty,max=2000"`
	MediaType   string `json:"media_type" validate:"required,oneof=image video"`
	MediaURL    string `json:"media_url" validate:"required,url"`
}
