// ABOUTME: Tests for the storage facade, seeding, transactions, and wipe
// ABOUTME: Verifies idempotent seed and atomic rollback behavior
package sqlite

import (
	"errors"
	"testing"

	"allergentrack/internal/models"
	"allergentrack/internal/util"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	store, err := NewStorageInMemory()
	if err != nil {
		t.Fatalf("NewStorageInMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSeedCreatesFixedRows(t *testing.T) {
	store := newTestStorage(t)

	allergens, err := store.Allergens.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(allergens) != 9 {
		t.Fatalf("seeded %d allergens, want 9", len(allergens))
	}

	settings, err := store.Settings.Get()
	if err != nil {
		t.Fatalf("Settings.Get() error = %v", err)
	}
	if settings == nil {
		t.Fatal("settings not seeded")
	}
	if settings.ThresholdDays != 7 {
		t.Errorf("ThresholdDays = %d, want 7", settings.ThresholdDays)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	store := newTestStorage(t)

	// Seed again, twice
	if err := store.Seed(); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if err := store.Seed(); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	allergens, err := store.Allergens.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(allergens) != 9 {
		t.Errorf("after reseeding got %d allergens, want 9", len(allergens))
	}

	var settingsCount int
	if err := store.db.QueryRow(`SELECT COUNT(*) FROM settings`).Scan(&settingsCount); err != nil {
		t.Fatalf("counting settings: %v", err)
	}
	if settingsCount != 1 {
		t.Errorf("settings rows = %d, want 1", settingsCount)
	}
}

func TestSeedPreservesUserState(t *testing.T) {
	store := newTestStorage(t)

	if err := store.Allergens.SetPaused(models.KindPeanut, true); err != nil {
		t.Fatalf("SetPaused() error = %v", err)
	}

	if err := store.Seed(); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	allergen, err := store.Allergens.GetByKind(models.KindPeanut)
	if err != nil {
		t.Fatalf("GetByKind() error = %v", err)
	}
	if !allergen.Paused {
		t.Error("reseeding should not reset the pause flag")
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	store := newTestStorage(t)

	date, _ := util.ParseCivil("2025-11-03")
	boom := errors.New("boom")

	err := store.WithTx(func(tx *TxStores) error {
		event := &models.FeedingEvent{
			ID:       "log-tx-1",
			Allergen: models.KindEgg,
			Date:     date,
		}
		if err := tx.Events.Insert(event); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithTx() error = %v, want boom", err)
	}

	event, err := store.Events.GetByID("log-tx-1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if event != nil {
		t.Error("insert should have been rolled back")
	}
}

func TestWipeResetsEverything(t *testing.T) {
	store := newTestStorage(t)

	date, _ := util.ParseCivil("2025-11-03")
	if err := store.Events.Insert(&models.FeedingEvent{ID: "log-w-1", Allergen: models.KindEgg, Date: date}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if err := store.Profile.Save(&models.Profile{Name: "Mochi", Birthdate: date}); err != nil {
		t.Fatalf("Profile.Save() error = %v", err)
	}
	if err := store.Allergens.SetPaused(models.KindEgg, true); err != nil {
		t.Fatalf("SetPaused() error = %v", err)
	}

	if err := store.Wipe(); err != nil {
		t.Fatalf("Wipe() error = %v", err)
	}

	count, err := store.Events.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 0 {
		t.Errorf("events after wipe = %d, want 0", count)
	}

	profile, err := store.Profile.Get()
	if err != nil {
		t.Fatalf("Profile.Get() error = %v", err)
	}
	if profile != nil {
		t.Error("profile should be gone after wipe")
	}

	allergens, err := store.Allergens.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(allergens) != 9 {
		t.Errorf("allergens after wipe = %d, want 9 reseeded", len(allergens))
	}
	for _, allergen := range allergens {
		if allergen.Paused {
			t.Errorf("allergen %s should be reseeded unpaused", allergen.Kind)
		}
	}

	settings, err := store.Settings.Get()
	if err != nil {
		t.Fatalf("Settings.Get() error = %v", err)
	}
	if settings == nil || settings.ThresholdDays != 7 {
		t.Error("settings should be reseeded to defaults after wipe")
	}
}
