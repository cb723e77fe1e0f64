package repository

import (
	"time"

	activitydomain "hafez-backend/internal/activity/domain"
	"hafez-backend/internal/analytics/dto"

	"gorm.io/gorm"
)

// analyticsRepository implements AnalyticsRepository interface
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new instance of analyticsRepository
func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

func (r *analyticsRepository) TotalUsers() (int64, error) {
	var count int64
	err := r.db.Table("users").Count(&count).Error
	return count, err
}

func (r *analyticsRepository) ActiveSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&activitydomain.ActivityLog{}).
		Where("occurred_at >= ?", since).
		Distinct("email").
		Count(&count).Error
	return count, err
}

func (r *analyticsRepository) RecentActivity(since *time.Time, limit int) ([]activitydomain.ActivityLog, error) {
	query := r.db.Model(&activitydomain.ActivityLog{})
	if since != nil {
		query = query.Where("occurred_at >= ?", *since)
	}

	var logs []activitydomain.ActivityLog
	err := query.Order("occurred_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}

func (r *analyticsRepository) UserSummaries() ([]dto.UserProgressSummary, error) {
	var summaries []dto.UserProgressSummary
	err := r.db.Raw(`
		SELECT u.email,
		       (SELECT COUNT(*) FROM verse_progress vp WHERE vp.user_id = u.id AND vp.memorized) AS memorized_count,
		       (SELECT COUNT(DISTINCT rp.page) FROM recited_pages rp WHERE rp.user_id = u.id) AS recited_pages,
		       (SELECT COUNT(*) FROM verse_progress vp WHERE vp.user_id = u.id AND vp.bookmarked) AS bookmark_count,
		       u.last_active
		FROM users u
		ORDER BY u.last_active DESC NULLS LAST, u.email`).
		Scan(&summaries).Error
	return summaries, err
}
