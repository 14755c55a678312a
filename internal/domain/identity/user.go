package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/fiberops/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User represents an account holder. Users are global; organization
// membership is modeled separately by OrgMember.
type User struct {
	shared.BaseAggregateRoot
	Email        string
	PasswordHash string
	FullName     string
	Phone        string
	IsActive     bool
	LastLoginAt  *time.Time
}

// NewUser creates a new active user with a hashed password
func NewUser(email, password, fullName string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		PasswordHash:      hash,
		FullName:          strings.TrimSpace(fullName),
		IsActive:          true,
	}, nil
}

// VerifyPassword checks a plaintext password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword changes the user's password after verifying the current one
func (u *User) ChangePassword(oldPassword, newPassword string) error {
	if !u.VerifyPassword(oldPassword) {
		return shared.NewDomainError("INVALID_PASSWORD", "Current password is incorrect")
	}
	return u.SetPassword(newPassword)
}

// SetPassword sets a new password without checking the old one
func (u *User) SetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	u.PasswordHash = hash
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// SetFullName sets the user's display name
func (u *User) SetFullName(fullName string) error {
	if len(fullName) > 200 {
		return shared.NewDomainError("INVALID_FULL_NAME", "Full name cannot exceed 200 characters")
	}
	u.FullName = strings.TrimSpace(fullName)
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// RecordLogin records a successful login
func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLoginAt = &now
	u.UpdatedAt = now
}

// Deactivate disables the account
func (u *User) Deactivate() {
	u.IsActive = false
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 255 || !emailPattern.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Email format is invalid")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 72 {
		// bcrypt truncates beyond 72 bytes
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 72 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
