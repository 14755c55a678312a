package identity

import (
	"time"

	"github.com/google/uuid"
)

// RegisterInput contains input for organization onboarding
type RegisterInput struct {
	OrgName  string `json:"org_name" binding:"required,min=2,max=200"`
	OrgSlug  string `json:"org_slug" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	FullName string `json:"full_name" binding:"required,min=1,max=200"`
}

// LoginInput contains input for login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenInput contains input for token refresh
type RefreshTokenInput struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutInput contains input for logout
type LogoutInput struct {
	AccessToken  string
	RefreshToken string `json:"refresh_token"`
}

// UserInfo is the user payload returned by auth operations
type UserInfo struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	OrgID    uuid.UUID `json:"org_id"`
	OrgName  string    `json:"org_name"`
	OrgSlug  string    `json:"org_slug"`
	Role     string    `json:"role"`
}

// AuthResult is returned by register, login and refresh
type AuthResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
	User                  UserInfo  `json:"user"`
}
