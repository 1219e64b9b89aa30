package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User represents a registered account
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:80;uniqueIndex"`
	Email        string    `json:"email" gorm:"size:120;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"size:120"`
	Avatar       string    `json:"avatar,omitempty" gorm:"size:200"`
	Bio          string    `json:"bio,omitempty"`
	TosAccepted  bool      `json:"tos_accepted" gorm:"default:false"` // Terms of Service acceptance
	CreatedAt    time.Time `json:"created_at"`
}

// UserCompact is the author payload embedded in feed items and search results
type UserCompact struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

// ToCompact converts a User into its compact representation
func (u *User) ToCompact() UserCompact {
	return UserCompact{ID: u.ID, Username: u.Username, Avatar: u.Avatar}
}

// RegisterRequest defines the request body for user registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=2,max=80"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest defines the request body for signing in
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest defines the request body for editing a profile
type UpdateProfileRequest struct {
	Avatar string `json:"avatar,omitempty" validate:"omitempty,url"`
	Bio    string `json:"bio,omitempty" validate:"omitempty,max=500"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
