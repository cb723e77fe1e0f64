package usecase

import (
	"encoding/json"
	"time"

	"hafez-backend/internal/analytics/dto"
	"hafez-backend/internal/analytics/repository"
	"hafez-backend/pkg/apperr"
)

// recentActivityCap bounds the recent-events list regardless of timeframe.
const recentActivityCap = 50

// analyticsUsecase implements AnalyticsUsecase interface
type analyticsUsecase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewAnalyticsUsecase creates a new instance of analyticsUsecase
func NewAnalyticsUsecase(analyticsRepo repository.AnalyticsRepository) AnalyticsUsecase {
	return &analyticsUsecase{
		analyticsRepo: analyticsRepo,
		now:           time.Now,
	}
}

func (u *analyticsUsecase) Overview(timeframe string) (*dto.OverviewResponse, error) {
	now := u.now()

	totalUsers, err := u.analyticsRepo.TotalUsers()
	if err != nil {
		return nil, apperr.Storage(err)
	}

	activeToday, err := u.analyticsRepo.ActiveSince(startOfDay(now))
	if err != nil {
		return nil, apperr.Storage(err)
	}

	activeWeek, err := u.analyticsRepo.ActiveSince(now.AddDate(0, 0, -7))
	if err != nil {
		return nil, apperr.Storage(err)
	}

	logs, err := u.analyticsRepo.RecentActivity(timeframeStart(timeframe, now), recentActivityCap)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	recent := make([]dto.RecentActivity, 0, len(logs))
	for _, l := range logs {
		recent = append(recent, dto.RecentActivity{
			Email:        l.Email,
			ActivityType: l.ActivityType,
			Metadata:     json.RawMessage(l.Metadata),
			OccurredAt:   l.OccurredAt,
		})
	}

	summaries, err := u.analyticsRepo.UserSummaries()
	if err != nil {
		return nil, apperr.Storage(err)
	}

	return &dto.OverviewResponse{
		Success:        true,
		TotalUsers:     totalUsers,
		ActiveToday:    activeToday,
		ActiveWeek:     activeWeek,
		RecentActivity: recent,
		UserProgress:   summaries,
	}, nil
}

// timeframeStart maps a filter name to its lower time bound. Unrecognized
// or empty values mean no filter.
func timeframeStart(timeframe string, now time.Time) *time.Time {
	var since time.Time
	switch timeframe {
	case "today":
		since = startOfDay(now)
	case "week":
		since = now.AddDate(0, 0, -7)
	case "month":
		since = now.AddDate(0, 0, -30)
	default:
		return nil
	}
	return &since
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
