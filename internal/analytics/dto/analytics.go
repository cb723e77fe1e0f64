package dto

import (
	"encoding/json"
	"time"
)

type RecentActivity struct {
	Email        string          `json:"email"`
	ActivityType string          `json:"activityType"`
	Metadata     json.RawMessage `json:"metadata"`
	OccurredAt   time.Time       `json:"timestamp"`
}

type UserProgressSummary struct {
	Email          string     `json:"email"`
	MemorizedCount int        `json:"memorizedCount"`
	RecitedPages   int        `json:"recitedPages"`
	BookmarkCount  int        `json:"bookmarkCount"`
	LastActive     *time.Time `json:"lastActive"`
}

type OverviewResponse struct {
	Success        bool                  `json:"success"`
	TotalUsers     int64                 `json:"totalUsers"`
	ActiveToday    int64                 `json:"activeToday"`
	ActiveWeek     int64                 `json:"activeWeek"`
	RecentActivity []RecentActivity      `json:"recentActivity"`
	UserProgress   []UserProgressSummary `json:"userProgress"`
}
