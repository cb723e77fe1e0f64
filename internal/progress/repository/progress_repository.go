package repository

import (
	"time"

	progressdomain "hafez-backend/internal/progress/domain"
	userdomain "hafez-backend/internal/user/domain"

	"gorm.io/gorm"
)

// progressRepository implements ProgressRepository interface
type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository creates a new instance of progressRepository
func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{
		db: db,
	}
}

// Replace runs the full-overwrite sync in one transaction: a reader never
// observes the transient empty state between delete and reinsert, and a
// failed save leaves the previous snapshot intact.
func (r *progressRepository) Replace(user *userdomain.User, verses []progressdomain.VerseProgress, pages []progressdomain.RecitedPage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		user.UpdatedAt = time.Now()
		if err := tx.Save(user).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", user.ID).Delete(&progressdomain.VerseProgress{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&progressdomain.RecitedPage{}).Error; err != nil {
			return err
		}

		if len(verses) > 0 {
			if err := tx.Create(&verses).Error; err != nil {
				return err
			}
		}
		if len(pages) > 0 {
			if err := tx.Create(&pages).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *progressRepository) Load(userID string) ([]progressdomain.VerseProgress, []progressdomain.RecitedPage, error) {
	var verses []progressdomain.VerseProgress
	if err := r.db.Where("user_id = ?", userID).Find(&verses).Error; err != nil {
		return nil, nil, err
	}

	var pages []progressdomain.RecitedPage
	if err := r.db.Where("user_id = ?", userID).Order("page").Find(&pages).Error; err != nil {
		return nil, nil, err
	}
	return verses, pages, nil
}
