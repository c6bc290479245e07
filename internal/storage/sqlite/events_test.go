// ABOUTME: Tests for feeding event storage operations
// ABOUTME: Verifies CRUD, not-found errors, ordering, and filters
package sqlite

import (
	"errors"
	"testing"

	"allergentrack/internal/models"
	"allergentrack/internal/util"
)

func TestEventCRUD(t *testing.T) {
	store := newTestStorage(t)

	date, _ := util.ParseCivil("2025-11-07")
	event := &models.FeedingEvent{
		ID:          "log-1700000000000-abcd1234",
		Allergen:    models.KindPeanut,
		Date:        date,
		Amount:      "1 tsp peanut butter",
		HadReaction: true,
		Severity:    models.SeverityMild,
		Notes:       "small rash on cheek",
	}

	if err := store.Events.Insert(event); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	retrieved, err := store.Events.GetByID(event.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if retrieved == nil {
		t.Fatal("GetByID() returned nil")
	}
	if retrieved.Allergen != models.KindPeanut {
		t.Errorf("Allergen = %v, want peanut", retrieved.Allergen)
	}
	if util.FormatCivil(retrieved.Date) != "2025-11-07" {
		t.Errorf("Date = %v, want 2025-11-07", retrieved.Date)
	}
	if !retrieved.HadReaction || retrieved.Severity != models.SeverityMild {
		t.Errorf("reaction fields not persisted: %+v", retrieved)
	}
	if retrieved.Amount != "1 tsp peanut butter" {
		t.Errorf("Amount = %q", retrieved.Amount)
	}

	// Update
	retrieved.Notes = "rash cleared quickly"
	if err := store.Events.Update(retrieved); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	updated, err := store.Events.GetByID(event.ID)
	if err != nil {
		t.Fatalf("GetByID() after update error = %v", err)
	}
	if updated.Notes != "rash cleared quickly" {
		t.Errorf("Notes = %q, want updated note", updated.Notes)
	}

	// Delete
	if err := store.Events.Delete(event.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	deleted, err := store.Events.GetByID(event.ID)
	if err != nil {
		t.Fatalf("GetByID() after delete error = %v", err)
	}
	if deleted != nil {
		t.Error("GetByID() should return nil after delete")
	}
}

func TestEventOptionalFieldsStayEmpty(t *testing.T) {
	store := newTestStorage(t)

	date, _ := util.ParseCivil("2025-11-03")
	event := &models.FeedingEvent{ID: "log-plain", Allergen: models.KindEgg, Date: date}
	if err := store.Events.Insert(event); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	retrieved, err := store.Events.GetByID("log-plain")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if retrieved.Amount != "" || retrieved.Severity != "" || retrieved.Notes != "" {
		t.Errorf("optional fields should be empty: %+v", retrieved)
	}
	if retrieved.HadReaction {
		t.Error("HadReaction should default to false")
	}
}

func TestEventNotFoundErrors(t *testing.T) {
	store := newTestStorage(t)

	date, _ := util.ParseCivil("2025-11-03")
	ghost := &models.FeedingEvent{ID: "log-ghost", Allergen: models.KindEgg, Date: date}

	if err := store.Events.Update(ghost); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(missing) error = %v, want ErrNotFound", err)
	}
	if err := store.Events.Delete("log-ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(missing) error = %v, want ErrNotFound", err)
	}
}

func TestListByKindOrdersAscending(t *testing.T) {
	store := newTestStorage(t)

	for i, day := range []string{"2025-11-10", "2025-11-03", "2025-11-07"} {
		date, _ := util.ParseCivil(day)
		event := &models.FeedingEvent{
			ID:       "log-order-" + string(rune('a'+i)),
			Allergen: models.KindPeanut,
			Date:     date,
		}
		if err := store.Events.Insert(event); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	// A different kind must not leak in
	other, _ := util.ParseCivil("2025-11-01")
	if err := store.Events.Insert(&models.FeedingEvent{ID: "log-egg", Allergen: models.KindEgg, Date: other}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	events, err := store.Events.ListByKind(models.KindPeanut)
	if err != nil {
		t.Fatalf("ListByKind() error = %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("ListByKind() returned %d events, want 3", len(events))
	}

	want := []string{"2025-11-03", "2025-11-07", "2025-11-10"}
	for i, event := range events {
		if got := util.FormatCivil(event.Date); got != want[i] {
			t.Errorf("event %d date = %s, want %s", i, got, want[i])
		}
	}
}

func TestListFilters(t *testing.T) {
	store := newTestStorage(t)

	rows := []struct {
		id       string
		kind     models.AllergenKind
		day      string
		reaction bool
	}{
		{"log-f1", models.KindPeanut, "2025-11-03", false},
		{"log-f2", models.KindPeanut, "2025-11-07", true},
		{"log-f3", models.KindEgg, "2025-11-05", true},
	}
	for _, r := range rows {
		date, _ := util.ParseCivil(r.day)
		event := &models.FeedingEvent{ID: r.id, Allergen: r.kind, Date: date, HadReaction: r.reaction}
		if r.reaction {
			event.Severity = models.SeverityMild
		}
		if err := store.Events.Insert(event); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	// Default: all events, newest first
	all, err := store.Events.List(EventFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List() returned %d events, want 3", len(all))
	}
	if all[0].ID != "log-f2" {
		t.Errorf("newest first: got %s, want log-f2", all[0].ID)
	}

	// Kind filter
	peanut, err := store.Events.List(EventFilter{Kind: models.KindPeanut})
	if err != nil {
		t.Fatalf("List(kind) error = %v", err)
	}
	if len(peanut) != 2 {
		t.Errorf("List(kind=peanut) returned %d events, want 2", len(peanut))
	}

	// Reactions only
	reactions, err := store.Events.List(EventFilter{ReactionsOnly: true})
	if err != nil {
		t.Fatalf("List(reactions) error = %v", err)
	}
	if len(reactions) != 2 {
		t.Errorf("List(reactions) returned %d events, want 2", len(reactions))
	}
	for _, event := range reactions {
		if !event.HadReaction {
			t.Errorf("event %s has no reaction", event.ID)
		}
	}

	// Ascending order for export
	asc, err := store.Events.List(EventFilter{Ascending: true})
	if err != nil {
		t.Fatalf("List(asc) error = %v", err)
	}
	if asc[0].ID != "log-f1" {
		t.Errorf("oldest first: got %s, want log-f1", asc[0].ID)
	}
}
