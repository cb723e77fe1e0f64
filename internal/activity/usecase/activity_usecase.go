package usecase

import (
	"time"

	activitydomain "hafez-backend/internal/activity/domain"
	"hafez-backend/internal/activity/dto"
	"hafez-backend/internal/activity/repository"
	userRepo "hafez-backend/internal/user/repository"
	"hafez-backend/pkg/apperr"

	"gorm.io/datatypes"
)

// activityUsecase implements ActivityUsecase interface
type activityUsecase struct {
	activityRepo repository.ActivityRepository
	userRepo     userRepo.UserRepository
}

// NewActivityUsecase creates a new instance of activityUsecase
func NewActivityUsecase(activityRepo repository.ActivityRepository, userRepo userRepo.UserRepository) ActivityUsecase {
	return &activityUsecase{
		activityRepo: activityRepo,
		userRepo:     userRepo,
	}
}

func (u *activityUsecase) Log(req *dto.LogActivityRequest) error {
	if req.Email == "" {
		return apperr.Validation("email is required")
	}
	if req.ActivityType == "" {
		return apperr.Validation("activityType is required")
	}

	occurredAt := time.Now()
	if req.Timestamp != nil {
		occurredAt = *req.Timestamp
	}

	metadata := datatypes.JSON(req.Metadata)
	if len(metadata) == 0 {
		metadata = datatypes.JSON([]byte("{}"))
	}

	entry := &activitydomain.ActivityLog{
		Email:        req.Email,
		ActivityType: req.ActivityType,
		Metadata:     metadata,
		OccurredAt:   occurredAt,
	}
	if err := u.activityRepo.Insert(entry); err != nil {
		return apperr.Storage(err)
	}

	// The log row is authoritative; last_active is a denormalized hint. A
	// failure here leaves the event recorded and the watermark stale.
	if err := u.userRepo.TouchLastActive(req.Email, occurredAt); err != nil {
		return apperr.Storage(err)
	}
	return nil
}
