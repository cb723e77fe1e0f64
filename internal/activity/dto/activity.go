package dto

import (
	"encoding/json"
	"time"
)

type LogActivityRequest struct {
	Email        string          `json:"email"`
	ActivityType string          `json:"activityType"`
	Metadata     json.RawMessage `json:"metadata"`
	Timestamp    *time.Time      `json:"timestamp"`
}
