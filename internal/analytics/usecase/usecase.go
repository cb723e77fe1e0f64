package usecase

import "hafez-backend/internal/analytics/dto"

// AnalyticsUsecase computes read-only rollups over users and activity
type AnalyticsUsecase interface {
	// Overview returns all dashboard rollups; timeframe filters the recent
	// activity list ("today", "week", "month"; anything else means no filter)
	Overview(timeframe string) (*dto.OverviewResponse, error)
}
