package domain

import "time"

// Default preference values applied when a client omits a field or a user
// has never saved progress.
const (
	DefaultLanguage   = "en"
	DefaultReciter    = "ar.alafasy"
	DefaultViewMode   = "surah"
	DefaultVerseIndex = 0
)

type User struct {
	ID             string     `json:"id" gorm:"primaryKey"`
	Email          string     `json:"email" gorm:"uniqueIndex;not null"`
	Language       string     `json:"language"`
	Reciter        string     `json:"reciter"`
	LastViewMode   string     `json:"last_view_mode"`
	LastVerseIndex int        `json:"last_verse_index"`
	LastActive     *time.Time `json:"last_active,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
