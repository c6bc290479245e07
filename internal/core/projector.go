// ABOUTME: Stat projector recomputes derived allergen exposure fields
// ABOUTME: A pure projection over the event history, never patched in place
package core

import (
	"fmt"
	"time"

	"allergentrack/internal/models"
	"allergentrack/internal/storage/sqlite"
	"allergentrack/internal/util"
)

// Recompute rebuilds the derived exposure dates for one allergen kind from
// its full event history. An empty history clears both fields. Runs against
// whatever store scope it is given, so callers can place it inside the same
// transaction as the triggering event mutation.
func Recompute(tx *sqlite.TxStores, kind models.AllergenKind) error {
	events, err := tx.Events.ListByKind(kind)
	if err != nil {
		return fmt.Errorf("listing events for %s: %w", kind, err)
	}

	if len(events) == 0 {
		return tx.Allergens.SetDerived(kind, nil, nil)
	}

	first := events[0].Date
	last := events[len(events)-1].Date
	return tx.Allergens.SetDerived(kind, &first, &last)
}

// DaysSince returns the whole-day floor between a last exposure date and
// now, in the local calendar
func DaysSince(last, now time.Time) int {
	return util.DaysBetween(last, now)
}

// WithDaysSince fills DaysSinceLastExposure on each allergen at read time,
// so the value is current even when no write has occurred since midnight
func WithDaysSince(allergens []models.Allergen, now time.Time) []models.Allergen {
	out := make([]models.Allergen, len(allergens))
	for i, allergen := range allergens {
		if allergen.LastExposedAt != nil {
			days := DaysSince(*allergen.LastExposedAt, now)
			allergen.DaysSinceLastExposure = &days
		}
		out[i] = allergen
	}
	return out
}
