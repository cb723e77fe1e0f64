package usecase

import "hafez-backend/internal/progress/dto"

// ProgressUsecase is the save/load contract for a user's memorization state
type ProgressUsecase interface {
	// Save replaces the user's entire progress snapshot with the request payload
	Save(req *dto.SaveProgressRequest) error
	// Load returns the current snapshot, or defaults for an unknown email
	Load(email string) (*dto.LoadProgressResponse, error)
}
