package models

import "time"

// Follow represents a directed follow edge: follower receives the
// followed user's posts in the following feed. At most one edge per
// ordered pair, enforced by the composite unique index.
type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_followed"`
	FollowedID uint      `json:"followed_id" gorm:"index;uniqueIndex:idx_follower_followed"`
	CreatedAt  time.Time `json:"created_at"`
}
