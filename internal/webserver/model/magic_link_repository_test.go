package model_test

import (
	"testing"
	"time"

	"github.com/feedbox/feedbox/internal/webserver/infrastructure"
	"github.com/feedbox/feedbox/internal/webserver/model"
	"github.com/google/uuid"
)

func TestMagicLinkRepository(t *testing.T) {
	db := infrastructure.Connect("file::memory:")
	repository := &model.MagicLinkRepository{DB: db}

	save := func(t *testing.T, email, token string, expiresAt time.Time, used bool) *model.MagicLink {
		t.Helper()

		link := &model.MagicLink{
			Uuid:      uuid.NewString(),
			Email:     email,
			Token:     token,
			ExpiresAt: expiresAt,
			Used:      used,
		}
		if err := repository.Save(link); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		return link
	}

	t.Run("An expired link is unredeemable before any sweep runs", func(t *testing.T) {
		save(t, "late@example.com", "token-late", time.Now().UTC().Add(-time.Minute), false)

		link, err := repository.FindActiveByEmailAndToken("late@example.com", "token-late")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if link != nil {
			t.Error("Expired link reported as active")
		}
	})

	t.Run("A used link is unredeemable", func(t *testing.T) {
		save(t, "done@example.com", "token-done", time.Now().UTC().Add(time.Hour), true)

		link, err := repository.FindActiveByEmailAndToken("done@example.com", "token-done")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if link != nil {
			t.Error("Used link reported as active")
		}
	})

	t.Run("MarkUsed is a terminal, idempotent transition", func(t *testing.T) {
		link := save(t, "once@example.com", "token-once", time.Now().UTC().Add(time.Hour), false)

		if err := repository.MarkUsed(link); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if err := repository.MarkUsed(link); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		found, err := repository.FindActiveByEmail("once@example.com")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if found != nil {
			t.Error("Used link reported as active")
		}
	})

	t.Run("DeleteExpired removes only stale links and reports how many", func(t *testing.T) {
		now := time.Now().UTC()
		save(t, "a@example.com", "token-a", now.Add(-2*time.Hour), false)
		save(t, "b@example.com", "token-b", now.Add(-time.Second), true)
		live := save(t, "c@example.com", "token-c", now.Add(time.Hour), false)

		removed, err := repository.DeleteExpired(now)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		// token-late from a previous subtest is stale too
		if removed != 3 {
			t.Errorf("Expected 3 removed links, got %d", removed)
		}

		found, err := repository.FindActiveByEmailAndToken("c@example.com", live.Token)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if found == nil {
			t.Error("Live link was swept away")
		}

		removed, err = repository.DeleteExpired(now)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if removed != 0 {
			t.Errorf("Expected an empty second sweep, got %d", removed)
		}
	})
}
