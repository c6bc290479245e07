// ABOUTME: Full-backup export of all tracker data
// ABOUTME: Supports YAML and JSON export formats
package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"allergentrack/internal/util"
)

// ExportData represents the complete exportable data structure
type ExportData struct {
	Version    string           `yaml:"version" json:"version"`
	ExportedAt string           `yaml:"exported_at" json:"exported_at"`
	Tool       string           `yaml:"tool" json:"tool"`
	Profile    *ExportProfile   `yaml:"profile,omitempty" json:"profile,omitempty"`
	Allergens  []ExportAllergen `yaml:"allergens" json:"allergens"`
	Events     []ExportEvent    `yaml:"events" json:"events"`
	Settings   *ExportSettings  `yaml:"settings,omitempty" json:"settings,omitempty"`
}

// ExportProfile represents the child profile for export
type ExportProfile struct {
	Name      string `yaml:"name" json:"name"`
	Birthdate string `yaml:"birthdate" json:"birthdate"`
}

// ExportAllergen represents an allergen row for export
type ExportAllergen struct {
	Kind           string `yaml:"kind" json:"kind"`
	Name           string `yaml:"name" json:"name"`
	Paused         bool   `yaml:"paused" json:"paused"`
	FirstExposedAt string `yaml:"first_exposed_at,omitempty" json:"first_exposed_at,omitempty"`
	LastExposedAt  string `yaml:"last_exposed_at,omitempty" json:"last_exposed_at,omitempty"`
}

// ExportEvent represents a feeding event for export
type ExportEvent struct {
	EventID     string `yaml:"event_id" json:"event_id"`
	Allergen    string `yaml:"allergen" json:"allergen"`
	Date        string `yaml:"date" json:"date"`
	Amount      string `yaml:"amount,omitempty" json:"amount,omitempty"`
	HadReaction bool   `yaml:"had_reaction" json:"had_reaction"`
	Severity    string `yaml:"severity,omitempty" json:"severity,omitempty"`
	Notes       string `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// ExportSettings represents the settings row for export
type ExportSettings struct {
	Theme                string `yaml:"theme" json:"theme"`
	Language             string `yaml:"language" json:"language"`
	NotificationsEnabled bool   `yaml:"notifications_enabled" json:"notifications_enabled"`
	ThresholdDays        int    `yaml:"threshold_days" json:"threshold_days"`
	NotificationTime     string `yaml:"notification_time" json:"notification_time"`
}

// Export assembles all data from storage. Fails as a whole on any read error.
func (s *Storage) Export() (*ExportData, error) {
	data := &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().Format(time.RFC3339),
		Tool:       "allergentrack",
	}

	profile, err := s.Profile.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile != nil {
		data.Profile = &ExportProfile{
			Name:      profile.Name,
			Birthdate: util.FormatCivil(profile.Birthdate),
		}
	}

	allergens, err := s.Allergens.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list allergens: %w", err)
	}
	for _, allergen := range allergens {
		exp := ExportAllergen{
			Kind:   string(allergen.Kind),
			Name:   allergen.Name,
			Paused: allergen.Paused,
		}
		if allergen.FirstExposedAt != nil {
			exp.FirstExposedAt = util.FormatCivil(*allergen.FirstExposedAt)
		}
		if allergen.LastExposedAt != nil {
			exp.LastExposedAt = util.FormatCivil(*allergen.LastExposedAt)
		}
		data.Allergens = append(data.Allergens, exp)
	}

	events, err := s.Events.List(EventFilter{Ascending: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	for _, event := range events {
		data.Events = append(data.Events, ExportEvent{
			EventID:     event.ID,
			Allergen:    string(event.Allergen),
			Date:        util.FormatCivil(event.Date),
			Amount:      event.Amount,
			HadReaction: event.HadReaction,
			Severity:    string(event.Severity),
			Notes:       event.Notes,
		})
	}

	settings, err := s.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	if settings != nil {
		data.Settings = &ExportSettings{
			Theme:                string(settings.Theme),
			Language:             string(settings.Language),
			NotificationsEnabled: settings.NotificationsEnabled,
			ThresholdDays:        settings.ThresholdDays,
			NotificationTime:     settings.NotificationTime,
		}
	}

	return data, nil
}

// ToYAML serializes the export data as YAML
func (d *ExportData) ToYAML() ([]byte, error) {
	return yaml.Marshal(d)
}

// ToJSON serializes the export data as indented JSON
func (d *ExportData) ToJSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}
