// ABOUTME: Allergen storage operations for SQLite
// ABOUTME: Reads the 9 fixed rows and persists pause flag and derived dates
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"allergentrack/internal/models"
	"allergentrack/internal/util"
)

// AllergenStore handles allergen persistence
type AllergenStore struct {
	q Execer
}

// NewAllergenStore creates a new AllergenStore
func NewAllergenStore(q Execer) *AllergenStore {
	return &AllergenStore{q: q}
}

// List retrieves all allergens in seed order
func (s *AllergenStore) List() ([]models.Allergen, error) {
	rows, err := s.q.Query(`
		SELECT id, kind, name, emoji, paused, first_exposed_at, last_exposed_at, created_at, modified_at
		FROM allergens
		ORDER BY rowid
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var allergens []models.Allergen
	for rows.Next() {
		allergen, err := scanAllergen(rows)
		if err != nil {
			return nil, err
		}
		allergens = append(allergens, *allergen)
	}
	return allergens, rows.Err()
}

// GetByKind retrieves an allergen by kind, returning nil if not found
func (s *AllergenStore) GetByKind(kind models.AllergenKind) (*models.Allergen, error) {
	row := s.q.QueryRow(`
		SELECT id, kind, name, emoji, paused, first_exposed_at, last_exposed_at, created_at, modified_at
		FROM allergens
		WHERE kind = ?
	`, string(kind))

	allergen, err := scanAllergen(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return allergen, nil
}

// SetPaused updates the user-controlled pause flag for a kind
func (s *AllergenStore) SetPaused(kind models.AllergenKind, paused bool) error {
	res, err := s.q.Exec(`
		UPDATE allergens SET paused = ?, modified_at = ? WHERE kind = ?
	`, paused, time.Now(), string(kind))
	if err != nil {
		return fmt.Errorf("updating pause flag: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("allergen %s: %w", kind, ErrNotFound)
	}
	return nil
}

// SetDerived persists the recomputed exposure dates for a kind.
// Nil values clear the fields (no events remain for the kind).
// Only the stat projector may call this.
func (s *AllergenStore) SetDerived(kind models.AllergenKind, first, last *time.Time) error {
	var firstStr, lastStr any
	if first != nil {
		firstStr = util.FormatCivil(*first)
	}
	if last != nil {
		lastStr = util.FormatCivil(*last)
	}

	res, err := s.q.Exec(`
		UPDATE allergens SET first_exposed_at = ?, last_exposed_at = ?, modified_at = ? WHERE kind = ?
	`, firstStr, lastStr, time.Now(), string(kind))
	if err != nil {
		return fmt.Errorf("updating derived fields: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("allergen %s: %w", kind, ErrNotFound)
	}
	return nil
}

func scanAllergen(row rowScanner) (*models.Allergen, error) {
	var (
		allergen models.Allergen
		kind     string
		first    sql.NullString
		last     sql.NullString
	)

	err := row.Scan(&allergen.ID, &kind, &allergen.Name, &allergen.Emoji, &allergen.Paused,
		&first, &last, &allergen.CreatedAt, &allergen.ModifiedAt)
	if err != nil {
		return nil, err
	}

	allergen.Kind = models.AllergenKind(kind)
	if first.Valid {
		t, err := util.ParseCivil(first.String)
		if err != nil {
			return nil, fmt.Errorf("malformed first exposure date %q: %w", first.String, err)
		}
		allergen.FirstExposedAt = &t
	}
	if last.Valid {
		t, err := util.ParseCivil(last.String)
		if err != nil {
			return nil, fmt.Errorf("malformed last exposure date %q: %w", last.String, err)
		}
		allergen.LastExposedAt = &t
	}

	return &allergen, nil
}
