// ABOUTME: Settings is the singleton application settings row
// ABOUTME: Validates theme, language, threshold bounds, and notification time
package models

import (
	"fmt"
	"time"
)

// Theme is the UI theme choice
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Language is the UI language choice
type Language string

const (
	LanguageEnglish  Language = "en"
	LanguageJapanese Language = "ja"
)

// Bounds for the overdue threshold in days
const (
	MinThresholdDays = 3
	MaxThresholdDays = 14
)

// SettingsID is the fixed row id of the singleton settings
const SettingsID = "app-settings"

// Settings holds user preferences. Mutated in place, never deleted;
// a full data wipe reseeds it to defaults.
type Settings struct {
	Theme                Theme     `json:"theme"`
	Language             Language  `json:"language"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	ThresholdDays        int       `json:"threshold_days"`
	NotificationTime     string    `json:"notification_time"`
	ModifiedAt           time.Time `json:"modified_at"`
}

// DefaultSettings returns the settings seeded on first run
func DefaultSettings() *Settings {
	return &Settings{
		Theme:                ThemeLight,
		Language:             LanguageEnglish,
		NotificationsEnabled: false,
		ThresholdDays:        7,
		NotificationTime:     "09:00",
	}
}

// Validate checks all settings fields
func (s *Settings) Validate() error {
	if s.Theme != ThemeLight && s.Theme != ThemeDark {
		return fmt.Errorf("theme must be %q or %q, got %q", ThemeLight, ThemeDark, s.Theme)
	}
	if s.Language != LanguageEnglish && s.Language != LanguageJapanese {
		return fmt.Errorf("language must be %q or %q, got %q", LanguageEnglish, LanguageJapanese, s.Language)
	}
	if s.ThresholdDays < MinThresholdDays || s.ThresholdDays > MaxThresholdDays {
		return fmt.Errorf("threshold days must be %d-%d, got %d", MinThresholdDays, MaxThresholdDays, s.ThresholdDays)
	}
	if _, err := time.Parse("15:04", s.NotificationTime); err != nil {
		return fmt.Errorf("notification time must be HH:MM, got %q", s.NotificationTime)
	}
	return nil
}
