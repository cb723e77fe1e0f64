package repository

import (
	"time"

	activitydomain "hafez-backend/internal/activity/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// activityRepository implements ActivityRepository interface
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new instance of activityRepository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

func (r *activityRepository) Insert(log *activitydomain.ActivityLog) error {
	log.ID = uuid.New().String()
	log.CreatedAt = time.Now()
	return r.db.Create(log).Error
}
