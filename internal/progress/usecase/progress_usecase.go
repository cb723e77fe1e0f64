package usecase

import (
	"sort"
	"strings"
	"time"

	progressdomain "hafez-backend/internal/progress/domain"
	"hafez-backend/internal/progress/dto"
	"hafez-backend/internal/progress/repository"
	userdomain "hafez-backend/internal/user/domain"
	userRepo "hafez-backend/internal/user/repository"
	"hafez-backend/pkg/apperr"

	"github.com/google/uuid"
)

// progressUsecase implements ProgressUsecase interface
type progressUsecase struct {
	userRepo     userRepo.UserRepository
	progressRepo repository.ProgressRepository
}

// NewProgressUsecase creates a new instance of progressUsecase
func NewProgressUsecase(userRepo userRepo.UserRepository, progressRepo repository.ProgressRepository) ProgressUsecase {
	return &progressUsecase{
		userRepo:     userRepo,
		progressRepo: progressRepo,
	}
}

func (u *progressUsecase) Save(req *dto.SaveProgressRequest) error {
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	for _, set := range []struct {
		name   string
		verses []string
	}{
		{"memorized", req.Memorized},
		{"reviewed", req.Reviewed},
		{"bookmarked", req.Bookmarked},
	} {
		if key, ok := findDuplicateVerse(set.verses); ok {
			return apperr.Validation("duplicate verse %q in %s list", key, set.name)
		}
	}
	if page, ok := findDuplicatePage(req.Recited); ok {
		return apperr.Validation("duplicate page %d in recited list", page)
	}

	user, err := u.userRepo.ResolveOrCreate(req.Email)
	if err != nil {
		return apperr.Storage(err)
	}

	// Full overwrite of all four preference fields, never a partial merge
	user.Language = defaultString(req.Language, userdomain.DefaultLanguage)
	user.Reciter = defaultString(req.Reciter, userdomain.DefaultReciter)
	user.LastViewMode = defaultString(req.LastViewMode, userdomain.DefaultViewMode)
	if req.LastVerseIndex != nil {
		user.LastVerseIndex = *req.LastVerseIndex
	} else {
		user.LastVerseIndex = userdomain.DefaultVerseIndex
	}

	verses := ReconcileVerseSets(user.ID, req.Memorized, req.Reviewed, req.Bookmarked)

	pages := make([]progressdomain.RecitedPage, 0, len(req.Recited))
	for _, page := range req.Recited {
		pages = append(pages, progressdomain.RecitedPage{
			ID:     uuid.New().String(),
			UserID: user.ID,
			Page:   page,
		})
	}

	if err := u.progressRepo.Replace(user, verses, pages); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

func (u *progressUsecase) Load(email string) (*dto.LoadProgressResponse, error) {
	if email == "" {
		return nil, apperr.Validation("email is required")
	}

	resp := &dto.LoadProgressResponse{
		Success:        true,
		Memorized:      []string{},
		Reviewed:       []string{},
		Bookmarked:     []string{},
		Recited:        []int{},
		Language:       userdomain.DefaultLanguage,
		Reciter:        userdomain.DefaultReciter,
		LastViewMode:   userdomain.DefaultViewMode,
		LastVerseIndex: userdomain.DefaultVerseIndex,
	}

	user, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if user == nil {
		// Absence is not a failure; the client starts from the empty state
		return resp, nil
	}

	verses, pages, err := u.progressRepo.Load(user.ID)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	for _, v := range verses {
		if v.Memorized {
			resp.Memorized = append(resp.Memorized, v.VerseKey)
		}
		if v.Reviewed {
			resp.Reviewed = append(resp.Reviewed, v.VerseKey)
		}
		if v.Bookmarked {
			resp.Bookmarked = append(resp.Bookmarked, v.VerseKey)
		}
	}
	for _, p := range pages {
		resp.Recited = append(resp.Recited, p.Page)
	}

	resp.Language = defaultString(user.Language, userdomain.DefaultLanguage)
	resp.Reciter = defaultString(user.Reciter, userdomain.DefaultReciter)
	resp.LastViewMode = defaultString(user.LastViewMode, userdomain.DefaultViewMode)
	resp.LastVerseIndex = user.LastVerseIndex
	return resp, nil
}

// ReconcileVerseSets folds the three client sets into one row per distinct
// verse, flags reflecting every set the verse appears in. Filtering the
// rows by each flag reconstructs the original sets exactly.
func ReconcileVerseSets(userID string, memorized, reviewed, bookmarked []string) []progressdomain.VerseProgress {
	byKey := make(map[string]*progressdomain.VerseProgress)
	touch := func(key string) *progressdomain.VerseProgress {
		if v, ok := byKey[key]; ok {
			return v
		}
		v := &progressdomain.VerseProgress{
			ID:        uuid.New().String(),
			UserID:    userID,
			VerseKey:  key,
			UpdatedAt: time.Now(),
		}
		byKey[key] = v
		return v
	}

	for _, key := range memorized {
		touch(key).Memorized = true
	}
	for _, key := range reviewed {
		touch(key).Reviewed = true
	}
	for _, key := range bookmarked {
		touch(key).Bookmarked = true
	}

	keys := make([]string, 0, len(byKey))
	for key := range byKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	verses := make([]progressdomain.VerseProgress, 0, len(keys))
	for _, key := range keys {
		verses = append(verses, *byKey[key])
	}
	return verses
}

func validateEmail(email string) error {
	if email == "" {
		return apperr.Validation("email is required")
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return apperr.Validation("invalid email address")
	}
	return nil
}

func findDuplicateVerse(keys []string) (string, bool) {
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			return key, true
		}
		seen[key] = struct{}{}
	}
	return "", false
}

func findDuplicatePage(pages []int) (int, bool) {
	seen := make(map[int]struct{}, len(pages))
	for _, page := range pages {
		if _, ok := seen[page]; ok {
			return page, true
		}
		seen[page] = struct{}{}
	}
	return 0, false
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
