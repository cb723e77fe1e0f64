package repository

import (
	progressdomain "hafez-backend/internal/progress/domain"
	userdomain "hafez-backend/internal/user/domain"
)

// ProgressRepository defines the interface for progress persistence
type ProgressRepository interface {
	// Replace overwrites the user's preference fields and swaps the entire
	// verse/page state for the reconciled rows, all inside one transaction.
	Replace(user *userdomain.User, verses []progressdomain.VerseProgress, pages []progressdomain.RecitedPage) error
	// Load returns all verse and page rows for a user
	Load(userID string) ([]progressdomain.VerseProgress, []progressdomain.RecitedPage, error)
}
