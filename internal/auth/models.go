package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a portal account. Sellers get one at registration; their profile
// row hangs off UserID.
type User struct {
	ID           uuid.UUID  `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email        string     `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash string     `json:"-" gorm:"not null"`
	FullName     string     `json:"full_name" gorm:""`
	Phone        string     `json:"phone" gorm:""`
	Role         string     `json:"role" gorm:"default:seller"`
	LastLoginAt  *time.Time `json:"last_login_at" gorm:""`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	User        *User     `json:"user"`
}
