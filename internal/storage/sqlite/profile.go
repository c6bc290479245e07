// ABOUTME: Child profile storage operations for SQLite
// ABOUTME: Implements the singleton profile pattern with upsert semantics
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"allergentrack/internal/models"
	"allergentrack/internal/util"
)

// ProfileStore handles child profile persistence
type ProfileStore struct {
	q Execer
}

// NewProfileStore creates a new ProfileStore
func NewProfileStore(q Execer) *ProfileStore {
	return &ProfileStore{q: q}
}

// Get retrieves the profile, returning nil if onboarding has not completed
func (s *ProfileStore) Get() (*models.Profile, error) {
	var (
		profile   models.Profile
		birthdate string
	)

	err := s.q.QueryRow(`
		SELECT id, name, birthdate, created_at, modified_at
		FROM profiles
		WHERE id = ?
	`, models.ProfileID).Scan(&profile.ID, &profile.Name, &birthdate,
		&profile.CreatedAt, &profile.ModifiedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	profile.Birthdate, err = util.ParseCivil(birthdate)
	if err != nil {
		return nil, fmt.Errorf("malformed birthdate %q: %w", birthdate, err)
	}

	return &profile, nil
}

// Save creates or updates the profile (upsert)
func (s *ProfileStore) Save(profile *models.Profile) error {
	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.ModifiedAt = now
	profile.ID = models.ProfileID

	_, err := s.q.Exec(`
		INSERT INTO profiles (id, name, birthdate, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			birthdate = excluded.birthdate,
			modified_at = excluded.modified_at
	`, profile.ID, profile.Name, util.FormatCivil(profile.Birthdate),
		profile.CreatedAt, profile.ModifiedAt)

	return err
}
