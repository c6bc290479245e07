// ABOUTME: Feeding event storage operations for SQLite
// ABOUTME: Implements CRUD and range queries ordered by event date
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"allergentrack/internal/models"
	"allergentrack/internal/util"
)

// EventStore handles feeding event persistence
type EventStore struct {
	q Execer
}

// NewEventStore creates a new EventStore
func NewEventStore(q Execer) *EventStore {
	return &EventStore{q: q}
}

// EventFilter narrows event list queries
type EventFilter struct {
	Kind          models.AllergenKind // empty matches all kinds
	ReactionsOnly bool
	Ascending     bool // default is event date descending
}

// Insert saves a new feeding event
func (s *EventStore) Insert(event *models.FeedingEvent) error {
	now := time.Now()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = now
	}
	event.ModifiedAt = now

	_, err := s.q.Exec(`
		INSERT INTO feeding_events (id, allergen_kind, event_date, amount, had_reaction, severity, notes, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, event.ID, string(event.Allergen), util.FormatCivil(event.Date),
		nullString(event.Amount), event.HadReaction, nullString(string(event.Severity)),
		nullString(event.Notes), event.CreatedAt, event.ModifiedAt)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

// Update rewrites an existing feeding event by id
func (s *EventStore) Update(event *models.FeedingEvent) error {
	event.ModifiedAt = time.Now()

	res, err := s.q.Exec(`
		UPDATE feeding_events
		SET allergen_kind = ?, event_date = ?, amount = ?, had_reaction = ?, severity = ?, notes = ?, modified_at = ?
		WHERE id = ?
	`, string(event.Allergen), util.FormatCivil(event.Date),
		nullString(event.Amount), event.HadReaction, nullString(string(event.Severity)),
		nullString(event.Notes), event.ModifiedAt, event.ID)
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("event %s: %w", event.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a feeding event by id
func (s *EventStore) Delete(id string) error {
	res, err := s.q.Exec(`DELETE FROM feeding_events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("event %s: %w", id, ErrNotFound)
	}
	return nil
}

// GetByID retrieves an event by its id, returning nil if not found
func (s *EventStore) GetByID(id string) (*models.FeedingEvent, error) {
	row := s.q.QueryRow(`
		SELECT id, allergen_kind, event_date, amount, had_reaction, severity, notes, created_at, modified_at
		FROM feeding_events
		WHERE id = ?
	`, id)

	event, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return event, nil
}

// ListByKind retrieves all events for an allergen kind ordered by event date ascending
func (s *EventStore) ListByKind(kind models.AllergenKind) ([]models.FeedingEvent, error) {
	rows, err := s.q.Query(`
		SELECT id, allergen_kind, event_date, amount, had_reaction, severity, notes, created_at, modified_at
		FROM feeding_events
		WHERE allergen_kind = ?
		ORDER BY event_date ASC, created_at ASC
	`, string(kind))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return collectEvents(rows)
}

// List retrieves events matching the filter, ordered by event date
// (descending by default for history display)
func (s *EventStore) List(filter EventFilter) ([]models.FeedingEvent, error) {
	query := `
		SELECT id, allergen_kind, event_date, amount, had_reaction, severity, notes, created_at, modified_at
		FROM feeding_events
		WHERE 1=1`
	args := []any{}

	if filter.Kind != "" {
		query += ` AND allergen_kind = ?`
		args = append(args, string(filter.Kind))
	}
	if filter.ReactionsOnly {
		query += ` AND had_reaction = 1`
	}
	if filter.Ascending {
		query += ` ORDER BY event_date ASC, created_at ASC`
	} else {
		query += ` ORDER BY event_date DESC, created_at DESC`
	}

	rows, err := s.q.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return collectEvents(rows)
}

// Count returns the total number of stored events
func (s *EventStore) Count() (int, error) {
	var n int
	err := s.q.QueryRow(`SELECT COUNT(*) FROM feeding_events`).Scan(&n)
	return n, err
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*models.FeedingEvent, error) {
	var (
		event    models.FeedingEvent
		kind     string
		dateStr  string
		amount   sql.NullString
		severity sql.NullString
		notes    sql.NullString
	)

	err := row.Scan(&event.ID, &kind, &dateStr, &amount, &event.HadReaction,
		&severity, &notes, &event.CreatedAt, &event.ModifiedAt)
	if err != nil {
		return nil, err
	}

	event.Allergen = models.AllergenKind(kind)
	event.Date, err = util.ParseCivil(dateStr)
	if err != nil {
		return nil, fmt.Errorf("malformed event date %q: %w", dateStr, err)
	}
	if amount.Valid {
		event.Amount = amount.String
	}
	if severity.Valid {
		event.Severity = models.Severity(severity.String)
	}
	if notes.Valid {
		event.Notes = notes.String
	}

	return &event, nil
}

func collectEvents(rows *sql.Rows) ([]models.FeedingEvent, error) {
	var events []models.FeedingEvent
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}
	return events, rows.Err()
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
