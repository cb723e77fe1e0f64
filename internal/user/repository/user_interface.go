package repository

import (
	"time"

	userdomain "hafez-backend/internal/user/domain"
)

// UserRepository defines the interface for user identity operations
type UserRepository interface {
	// Find a user by email, nil if absent
	FindByEmail(email string) (*userdomain.User, error)
	// Find a user by email, creating one with default preferences if absent
	ResolveOrCreate(email string) (*userdomain.User, error)
	// Bump last_active for the email, creating the user row if absent.
	// Must be a single atomic upsert, never a read-then-write.
	TouchLastActive(email string, at time.Time) error
}
