// ABOUTME: Tracker is the orchestration point for feeding event mutations
// ABOUTME: Runs validate, write, and stat recompute as one explicit pipeline
package core

import (
	"fmt"
	"time"

	"allergentrack/internal/models"
	"allergentrack/internal/storage/sqlite"
	"allergentrack/internal/util"
)

// Tracker coordinates the validator, record store, and stat projector.
// Every event mutation and its recompute commit as a single transaction,
// so readers never observe an event whose allergen stats predate it.
type Tracker struct {
	store *sqlite.Storage
}

// NewTracker creates a Tracker over the given storage
func NewTracker(store *sqlite.Storage) *Tracker {
	return &Tracker{store: store}
}

// SubmitEvent validates a candidate, persists it, and recomputes the
// affected allergen's derived fields. Returns ValidationErrors (as error)
// when the candidate is rejected; rejected candidates never reach storage.
func (t *Tracker) SubmitEvent(c EventCandidate) (*models.FeedingEvent, error) {
	event, verrs := ValidateEvent(c, time.Now())
	if verrs != nil {
		return nil, verrs
	}
	event.ID = models.NewEventID()

	err := t.store.WithTx(func(tx *sqlite.TxStores) error {
		if err := tx.Events.Insert(event); err != nil {
			return err
		}
		return Recompute(tx, event.Allergen)
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

// EventPatch is a partial update to an existing feeding event.
// Nil fields keep the stored value.
type EventPatch struct {
	Allergen    *string
	Date        *string
	Amount      *string
	HadReaction *bool
	Severity    *string
	Notes       *string
}

// UpdateEvent merges a patch over an existing event, revalidates the merged
// record, and persists it. When the patch moves the event to another
// allergen kind, both the old and the new kind are recomputed.
func (t *Tracker) UpdateEvent(id string, p EventPatch) (*models.FeedingEvent, error) {
	existing, err := t.store.Events.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("fetching event: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("event %s: %w", id, sqlite.ErrNotFound)
	}

	c := EventCandidate{
		Allergen:    string(existing.Allergen),
		Date:        util.FormatCivil(existing.Date),
		Amount:      existing.Amount,
		HadReaction: existing.HadReaction,
		Severity:    string(existing.Severity),
		Notes:       existing.Notes,
	}
	if p.Allergen != nil {
		c.Allergen = *p.Allergen
	}
	if p.Date != nil {
		c.Date = *p.Date
	}
	if p.Amount != nil {
		c.Amount = *p.Amount
	}
	if p.HadReaction != nil {
		c.HadReaction = *p.HadReaction
	}
	if p.Severity != nil {
		c.Severity = *p.Severity
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	// Turning the reaction off drops the stored severity unless the patch
	// sets one explicitly (which the validator then rejects)
	if !c.HadReaction && p.Severity == nil {
		c.Severity = ""
	}

	event, verrs := ValidateEvent(c, time.Now())
	if verrs != nil {
		return nil, verrs
	}
	event.ID = existing.ID
	event.CreatedAt = existing.CreatedAt

	err = t.store.WithTx(func(tx *sqlite.TxStores) error {
		if err := tx.Events.Update(event); err != nil {
			return err
		}
		if err := Recompute(tx, existing.Allergen); err != nil {
			return err
		}
		if event.Allergen != existing.Allergen {
			return Recompute(tx, event.Allergen)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent removes an event and recomputes its allergen's derived
// fields. Deleting the last event for a kind clears them.
func (t *Tracker) DeleteEvent(id string) error {
	existing, err := t.store.Events.GetByID(id)
	if err != nil {
		return fmt.Errorf("fetching event: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("event %s: %w", id, sqlite.ErrNotFound)
	}

	return t.store.WithTx(func(tx *sqlite.TxStores) error {
		if err := tx.Events.Delete(id); err != nil {
			return err
		}
		return Recompute(tx, existing.Allergen)
	})
}

// Allergens returns all allergens with days-since filled at read time
func (t *Tracker) Allergens(now time.Time) ([]models.Allergen, error) {
	allergens, err := t.store.Allergens.List()
	if err != nil {
		return nil, fmt.Errorf("listing allergens: %w", err)
	}
	return WithDaysSince(allergens, now), nil
}

// Overdue returns unpaused allergens whose days since last exposure meets
// or exceeds the configured threshold. Never-exposed allergens are not
// overdue; they have no exposure to be overdue from.
func (t *Tracker) Overdue(now time.Time) ([]models.Allergen, int, error) {
	settings, err := t.store.Settings.Get()
	if err != nil {
		return nil, 0, fmt.Errorf("reading settings: %w", err)
	}
	if settings == nil {
		settings = models.DefaultSettings()
	}

	allergens, err := t.Allergens(now)
	if err != nil {
		return nil, 0, err
	}

	var overdue []models.Allergen
	for _, allergen := range allergens {
		if allergen.Paused || allergen.DaysSinceLastExposure == nil {
			continue
		}
		if *allergen.DaysSinceLastExposure >= settings.ThresholdDays {
			overdue = append(overdue, allergen)
		}
	}
	return overdue, settings.ThresholdDays, nil
}

// SaveProfile validates and persists the singleton child profile
func (t *Tracker) SaveProfile(name, birthdate string) (*models.Profile, error) {
	profile, verrs := ValidateProfile(name, birthdate, time.Now())
	if verrs != nil {
		return nil, verrs
	}

	existing, err := t.store.Profile.Get()
	if err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}
	if existing != nil {
		profile.CreatedAt = existing.CreatedAt
	}

	if err := t.store.Profile.Save(profile); err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}
	return profile, nil
}
