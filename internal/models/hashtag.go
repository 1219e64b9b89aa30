package models

import "time"

// Hashtag is a normalized (lowercased) tag. PostCount tracks the number
// of distinct posts linked to it and only moves when a link row is
// actually inserted.
type Hashtag struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:50;uniqueIndex"`
	PostCount int64     `json:"post_count" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
}

// PostHashtag links a post to a hashtag, at most once per pair
type PostHashtag struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	PostID    uint `json:"post_id" gorm:"index;uniqueIndex:idx_post_hashtag"`
	HashtagID uint `json:"hashtag_id" gorm:"index;uniqueIndex:idx_post_hashtag"`
}
