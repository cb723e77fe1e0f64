package repository

import (
	"sync"
	"testing"

	progressdomain "hafez-backend/internal/progress/domain"
	"hafez-backend/internal/testutil"
	userdomain "hafez-backend/internal/user/domain"
	userRepo "hafez-backend/internal/user/repository"

	"github.com/google/uuid"
)

func TestReplace_SwapsEntireSnapshot(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	users := userRepo.NewUserRepository(tx)
	repo := NewProgressRepository(tx)

	user, err := users.ResolveOrCreate("swap@example.com")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	first := []progressdomain.VerseProgress{
		{ID: uuid.New().String(), UserID: user.ID, VerseKey: "1:1", Memorized: true},
		{ID: uuid.New().String(), UserID: user.ID, VerseKey: "1:2", Reviewed: true},
	}
	if err := repo.Replace(user, first, []progressdomain.RecitedPage{
		{ID: uuid.New().String(), UserID: user.ID, Page: 1},
	}); err != nil {
		t.Fatalf("first replace: %v", err)
	}

	second := []progressdomain.VerseProgress{
		{ID: uuid.New().String(), UserID: user.ID, VerseKey: "9:9", Bookmarked: true},
	}
	if err := repo.Replace(user, second, nil); err != nil {
		t.Fatalf("second replace: %v", err)
	}

	verses, pages, err := repo.Load(user.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(verses) != 1 || verses[0].VerseKey != "9:9" {
		t.Errorf("verses = %+v, want only the new snapshot", verses)
	}
	if len(pages) != 0 {
		t.Errorf("pages = %+v, want the old rows gone", pages)
	}
}

func TestReplace_OverwritesUserPreferences(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	users := userRepo.NewUserRepository(tx)
	repo := NewProgressRepository(tx)

	user, err := users.ResolveOrCreate("owner@example.com")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	user.Language = "ar"
	user.LastVerseIndex = 12

	if err := repo.Replace(user, nil, nil); err != nil {
		t.Fatalf("replace: %v", err)
	}

	stored, err := users.FindByEmail("owner@example.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if stored.Language != "ar" || stored.LastVerseIndex != 12 {
		t.Errorf("preferences not persisted, got language=%q index=%d", stored.Language, stored.LastVerseIndex)
	}
}

func TestReplace_DuplicateVerseKeyFailsWholeSave(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	users := userRepo.NewUserRepository(tx)
	repo := NewProgressRepository(tx)

	user, err := users.ResolveOrCreate("atomic@example.com")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	good := []progressdomain.VerseProgress{
		{ID: uuid.New().String(), UserID: user.ID, VerseKey: "1:1", Memorized: true},
	}
	if err := repo.Replace(user, good, nil); err != nil {
		t.Fatalf("seed replace: %v", err)
	}

	// Two rows with the same (user, verse) violate the unique index; the
	// transaction must roll back leaving the previous snapshot intact.
	bad := []progressdomain.VerseProgress{
		{ID: uuid.New().String(), UserID: user.ID, VerseKey: "2:2", Memorized: true},
		{ID: uuid.New().String(), UserID: user.ID, VerseKey: "2:2", Reviewed: true},
	}
	if err := repo.Replace(user, bad, nil); err == nil {
		t.Fatal("expected unique violation")
	}

	verses, _, err := repo.Load(user.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(verses) != 1 || verses[0].VerseKey != "1:1" {
		t.Errorf("failed save must leave previous snapshot, got %+v", verses)
	}
}

// Characterizes racing saves for the same user: with the transactional
// replace, the final state is always exactly one complete snapshot, never a
// merge of the two.
func TestReplace_ConcurrentSavesEndConsistent(t *testing.T) {
	db := testutil.DB(t)
	users := userRepo.NewUserRepository(db)
	repo := NewProgressRepository(db)

	const email = "race@example.com"
	t.Cleanup(func() {
		_ = db.Where("email = ?", email).Delete(&userdomain.User{}).Error
	})

	user, err := users.ResolveOrCreate(email)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	snapshot := func(keys ...string) []progressdomain.VerseProgress {
		verses := make([]progressdomain.VerseProgress, 0, len(keys))
		for _, key := range keys {
			verses = append(verses, progressdomain.VerseProgress{
				ID: uuid.New().String(), UserID: user.ID, VerseKey: key, Memorized: true,
			})
		}
		return verses
	}
	setA := snapshot("1:1", "1:2")
	setB := snapshot("2:1", "2:2", "2:3")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, verses := range [][]progressdomain.VerseProgress{setA, setB} {
		wg.Add(1)
		go func(i int, verses []progressdomain.VerseProgress) {
			defer wg.Done()
			u := *user
			errs[i] = repo.Replace(&u, verses, nil)
		}(i, verses)
	}
	wg.Wait()

	if errs[0] != nil && errs[1] != nil {
		t.Fatalf("both saves failed: %v / %v", errs[0], errs[1])
	}

	verses, _, err := repo.Load(user.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	switch len(verses) {
	case len(setA), len(setB):
		// one writer won cleanly
	default:
		t.Errorf("final state is %d rows, want a complete snapshot from one writer", len(verses))
	}
}
