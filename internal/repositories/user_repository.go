// Package repositories provides the data access layer. Interfaces are
// defined here; GORM-backed implementations live in the *_impl.go files
// and in-memory ones under repositories/memory.
package repositories

import (
	"errors"

	"coinkeep/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already taken")
)

// UserRepository defines the interface for user-related store operations.
// Users are keyed by their API key.
type UserRepository interface {
	// Create creates a new user. Returns ErrEmailTaken on duplicates.
	Create(user *models.User) error

	// GetByAPIKey retrieves a user by API key.
	GetByAPIKey(apiKey string) (*models.User, error)

	// GetByEmail retrieves a user by email address.
	GetByEmail(email string) (*models.User, error)

	// Delete removes a user.
	Delete(apiKey string) error

	// List retrieves all users.
	List() ([]*models.User, error)
}
