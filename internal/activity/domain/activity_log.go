package domain

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityLog is an append-only usage event. It is keyed by email rather
// than a user foreign key, so events can be logged before the user row
// exists; the insert path creates the user via the last-active upsert.
type ActivityLog struct {
	ID           string         `json:"id" gorm:"primaryKey"`
	Email        string         `json:"email" gorm:"index;not null"`
	ActivityType string         `json:"activity_type" gorm:"not null"`
	Metadata     datatypes.JSON `json:"metadata"`
	OccurredAt   time.Time      `json:"occurred_at" gorm:"index"`
	CreatedAt    time.Time      `json:"created_at"`
}
