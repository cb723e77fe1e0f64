package repository

import (
	activitydomain "hafez-backend/internal/activity/domain"
)

// ActivityRepository defines the interface for the append-only activity log
type ActivityRepository interface {
	// Insert appends one activity event; events are never updated or deleted
	Insert(log *activitydomain.ActivityLog) error
}
