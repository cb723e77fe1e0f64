package repository

import (
	"errors"
	"time"

	userdomain "hafez-backend/internal/user/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) FindByEmail(email string) (*userdomain.User, error) {
	var user userdomain.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ResolveOrCreate(email string) (*userdomain.User, error) {
	user, err := r.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	now := time.Now()
	user = &userdomain.User{
		ID:             uuid.New().String(),
		Email:          email,
		Language:       userdomain.DefaultLanguage,
		Reciter:        userdomain.DefaultReciter,
		LastViewMode:   userdomain.DefaultViewMode,
		LastVerseIndex: userdomain.DefaultVerseIndex,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := r.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// TouchLastActive inserts a user row carrying only last_active, or bumps
// last_active on conflict with the email unique index. A single statement,
// so two concurrent first-time requests for the same email cannot both
// insert.
func (r *userRepository) TouchLastActive(email string, at time.Time) error {
	now := time.Now()
	user := &userdomain.User{
		ID:             uuid.New().String(),
		Email:          email,
		Language:       userdomain.DefaultLanguage,
		Reciter:        userdomain.DefaultReciter,
		LastViewMode:   userdomain.DefaultViewMode,
		LastVerseIndex: userdomain.DefaultVerseIndex,
		LastActive:     &at,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"last_active": at,
			"updated_at":  now,
		}),
	}).Create(user).Error
}
