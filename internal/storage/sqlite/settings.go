// ABOUTME: Settings storage operations for SQLite
// ABOUTME: Implements the singleton settings row with upsert semantics
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"allergentrack/internal/models"
)

// SettingsStore handles settings persistence
type SettingsStore struct {
	q Execer
}

// NewSettingsStore creates a new SettingsStore
func NewSettingsStore(q Execer) *SettingsStore {
	return &SettingsStore{q: q}
}

// Get retrieves the settings, returning nil if not yet seeded
func (s *SettingsStore) Get() (*models.Settings, error) {
	var (
		settings models.Settings
		theme    string
		language string
	)

	err := s.q.QueryRow(`
		SELECT theme, language, notifications_enabled, threshold_days, notification_time, modified_at
		FROM settings
		WHERE id = ?
	`, models.SettingsID).Scan(&theme, &language, &settings.NotificationsEnabled,
		&settings.ThresholdDays, &settings.NotificationTime, &settings.ModifiedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	settings.Theme = models.Theme(theme)
	settings.Language = models.Language(language)
	return &settings, nil
}

// Save validates and persists the settings (upsert)
func (s *SettingsStore) Save(settings *models.Settings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	settings.ModifiedAt = time.Now()

	_, err := s.q.Exec(`
		INSERT INTO settings (id, theme, language, notifications_enabled, threshold_days, notification_time, modified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			theme = excluded.theme,
			language = excluded.language,
			notifications_enabled = excluded.notifications_enabled,
			threshold_days = excluded.threshold_days,
			notification_time = excluded.notification_time,
			modified_at = excluded.modified_at
	`, models.SettingsID, string(settings.Theme), string(settings.Language),
		settings.NotificationsEnabled, settings.ThresholdDays,
		settings.NotificationTime, settings.ModifiedAt)

	return err
}
