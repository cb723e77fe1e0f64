package database

import (
	"fmt"

	activitydomain "hafez-backend/internal/activity/domain"
	progressdomain "hafez-backend/internal/progress/domain"
	userdomain "hafez-backend/internal/user/domain"

	"gorm.io/gorm"
)

type migration struct {
	name  string
	model interface{}
}

// migrations run in dependency order: users first, then the tables that
// cascade from it, then the standalone activity log. Each step is
// idempotent, so the list is safe to replay at every startup.
var migrations = []migration{
	{"users", &userdomain.User{}},
	{"verse_progress", &progressdomain.VerseProgress{}},
	{"recited_pages", &progressdomain.RecitedPage{}},
	{"activity_logs", &activitydomain.ActivityLog{}},
}

func Migrate(db *gorm.DB) error {
	for _, m := range migrations {
		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("migrate %s: %w", m.name, err)
		}
	}
	return nil
}
