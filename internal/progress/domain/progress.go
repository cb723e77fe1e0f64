package domain

import (
	"time"

	userdomain "hafez-backend/internal/user/domain"
)

// VerseProgress holds the memorization flags for one verse of one user.
// The three flags are the union view of the client's memorized, reviewed
// and bookmarked sets; a verse appearing in several sets gets one row with
// several flags set.
type VerseProgress struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	UserID     string    `json:"user_id" gorm:"index;not null;uniqueIndex:idx_user_verse"`
	VerseKey   string    `json:"verse_key" gorm:"not null;uniqueIndex:idx_user_verse"`
	Memorized  bool      `json:"memorized"`
	Reviewed   bool      `json:"reviewed"`
	Bookmarked bool      `json:"bookmarked"`
	UpdatedAt  time.Time `json:"updated_at"`

	User userdomain.User `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (VerseProgress) TableName() string {
	return "verse_progress"
}

// RecitedPage is a boolean existence record: a row means the page has been
// recited.
type RecitedPage struct {
	ID     string `json:"id" gorm:"primaryKey"`
	UserID string `json:"user_id" gorm:"index;not null;uniqueIndex:idx_user_page"`
	Page   int    `json:"page" gorm:"not null;uniqueIndex:idx_user_page"`

	User userdomain.User `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
