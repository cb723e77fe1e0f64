package repository

import (
	"time"

	activitydomain "hafez-backend/internal/activity/domain"
	"hafez-backend/internal/analytics/dto"
)

// AnalyticsRepository defines the read-only rollup queries. Every call
// recomputes from the current stored state; nothing is cached.
type AnalyticsRepository interface {
	// Count of all user rows
	TotalUsers() (int64, error)
	// Count of distinct emails with an activity event at or after since
	ActiveSince(since time.Time) (int64, error)
	// Most recent events newest-first, optionally bounded below by since
	RecentActivity(since *time.Time, limit int) ([]activitydomain.ActivityLog, error)
	// One summary row per known user, last-active descending, never-active last
	UserSummaries() ([]dto.UserProgressSummary, error)
}
