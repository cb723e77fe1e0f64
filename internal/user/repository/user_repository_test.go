package repository

import (
	"testing"
	"time"

	userdomain "hafez-backend/internal/user/domain"
	"hafez-backend/internal/testutil"
)

func TestResolveOrCreate_NewUserGetsDefaults(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewUserRepository(tx)

	user, err := repo.ResolveOrCreate("first@example.com")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected generated user ID")
	}
	if user.Language != userdomain.DefaultLanguage {
		t.Errorf("language = %q, want %q", user.Language, userdomain.DefaultLanguage)
	}
	if user.Reciter != userdomain.DefaultReciter {
		t.Errorf("reciter = %q, want %q", user.Reciter, userdomain.DefaultReciter)
	}
	if user.LastViewMode != userdomain.DefaultViewMode {
		t.Errorf("view mode = %q, want %q", user.LastViewMode, userdomain.DefaultViewMode)
	}
	if user.LastActive != nil {
		t.Error("new user should not have last_active set")
	}
}

func TestResolveOrCreate_ExistingUserUnchanged(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewUserRepository(tx)

	created, err := repo.ResolveOrCreate("stable@example.com")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	created.Language = "ar"
	if err := tx.Save(created).Error; err != nil {
		t.Fatalf("save: %v", err)
	}

	resolved, err := repo.ResolveOrCreate("stable@example.com")
	if err != nil {
		t.Fatalf("resolve again: %v", err)
	}
	if resolved.ID != created.ID {
		t.Errorf("resolved ID %q, want %q", resolved.ID, created.ID)
	}
	if resolved.Language != "ar" {
		t.Errorf("resolve must be read-only for existing users, language = %q", resolved.Language)
	}
}

func TestTouchLastActive_CreatesThenBumps(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewUserRepository(tx)

	first := time.Now().Add(-time.Hour).Truncate(time.Millisecond)
	if err := repo.TouchLastActive("touch@example.com", first); err != nil {
		t.Fatalf("first touch: %v", err)
	}

	user, err := repo.FindByEmail("touch@example.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if user == nil {
		t.Fatal("touch must create the user row")
	}
	if user.LastActive == nil || !user.LastActive.Equal(first) {
		t.Fatalf("last_active = %v, want %v", user.LastActive, first)
	}

	second := time.Now().Truncate(time.Millisecond)
	if err := repo.TouchLastActive("touch@example.com", second); err != nil {
		t.Fatalf("second touch: %v", err)
	}

	again, err := repo.FindByEmail("touch@example.com")
	if err != nil {
		t.Fatalf("find again: %v", err)
	}
	if again.ID != user.ID {
		t.Error("touch must not create a second row for the same email")
	}
	if again.LastActive == nil || !again.LastActive.Equal(second) {
		t.Fatalf("last_active = %v, want %v", again.LastActive, second)
	}

	var count int64
	if err := tx.Model(&userdomain.User{}).Where("email = ?", "touch@example.com").Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("user rows = %d, want 1", count)
	}
}

func TestTouchLastActive_DoesNotOverwritePreferences(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewUserRepository(tx)

	user, err := repo.ResolveOrCreate("prefs@example.com")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	user.Language = "ar"
	user.LastVerseIndex = 42
	if err := tx.Save(user).Error; err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := repo.TouchLastActive("prefs@example.com", time.Now()); err != nil {
		t.Fatalf("touch: %v", err)
	}

	after, err := repo.FindByEmail("prefs@example.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if after.Language != "ar" || after.LastVerseIndex != 42 {
		t.Errorf("touch must only bump last_active, got language=%q index=%d", after.Language, after.LastVerseIndex)
	}
}
