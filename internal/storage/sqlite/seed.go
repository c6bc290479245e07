// ABOUTME: Idempotent first-run seeding of allergen rows and default settings
// ABOUTME: Checked by presence so repeated startup never duplicates seed data
package sqlite

import (
	"fmt"
	"time"

	"allergentrack/internal/models"
)

// Seed inserts the 9 fixed allergen rows and the default settings when
// absent. Safe to invoke on every application start.
func (s *Storage) Seed() error {
	var allergenCount int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM allergens`).Scan(&allergenCount); err != nil {
		return fmt.Errorf("counting allergens: %w", err)
	}

	if allergenCount == 0 {
		now := time.Now()
		for _, allergen := range models.DefaultAllergens() {
			_, err := s.db.Exec(`
				INSERT INTO allergens (id, kind, name, emoji, paused, created_at, modified_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, allergen.ID, string(allergen.Kind), allergen.Name, allergen.Emoji,
				allergen.Paused, now, now)
			if err != nil {
				return fmt.Errorf("seeding allergen %s: %w", allergen.Kind, err)
			}
		}
	}

	var settingsCount int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM settings`).Scan(&settingsCount); err != nil {
		return fmt.Errorf("counting settings: %w", err)
	}

	if settingsCount == 0 {
		if err := s.Settings.Save(models.DefaultSettings()); err != nil {
			return fmt.Errorf("seeding settings: %w", err)
		}
	}

	return nil
}
