package usecase

import "hafez-backend/internal/activity/dto"

// ActivityUsecase records usage events and maintains the per-user
// last-active watermark
type ActivityUsecase interface {
	Log(req *dto.LogActivityRequest) error
}
