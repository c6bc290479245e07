// ABOUTME: Tests for candidate validation rules
// ABOUTME: Verifies violation accumulation and the severity/reaction binding
package core

import (
	"testing"
	"time"

	"allergentrack/internal/util"
)

var validatorNow = time.Date(2025, 11, 15, 12, 0, 0, 0, time.Local)

func fieldsOf(errs ValidationErrors) map[string]bool {
	fields := map[string]bool{}
	for _, fe := range errs {
		fields[fe.Field] = true
	}
	return fields
}

func TestValidateEventAccepts(t *testing.T) {
	event, errs := ValidateEvent(EventCandidate{
		Allergen:    "peanut",
		Date:        "2025-11-07",
		Amount:      " 1 tsp ",
		HadReaction: true,
		Severity:    "mild",
		Notes:       "small rash",
	}, validatorNow)

	if errs != nil {
		t.Fatalf("ValidateEvent() errors = %v", errs)
	}
	if event.Allergen != "peanut" {
		t.Errorf("Allergen = %s", event.Allergen)
	}
	if util.FormatCivil(event.Date) != "2025-11-07" {
		t.Errorf("Date = %v", event.Date)
	}
	if event.Amount != "1 tsp" {
		t.Errorf("Amount = %q, want trimmed", event.Amount)
	}
}

func TestValidateEventRejects(t *testing.T) {
	tests := []struct {
		name      string
		candidate EventCandidate
		wantField string
	}{
		{"missing date", EventCandidate{Allergen: "egg"}, "date"},
		{"garbage date", EventCandidate{Allergen: "egg", Date: "yesterday"}, "date"},
		{"future date", EventCandidate{Allergen: "egg", Date: "2025-11-16"}, "date"},
		{"missing allergen", EventCandidate{Date: "2025-11-07"}, "allergen"},
		{"unknown allergen", EventCandidate{Allergen: "chocolate", Date: "2025-11-07"}, "allergen"},
		{"reaction without severity", EventCandidate{Allergen: "egg", Date: "2025-11-07", HadReaction: true}, "severity"},
		{"unknown severity", EventCandidate{Allergen: "egg", Date: "2025-11-07", HadReaction: true, Severity: "fatal"}, "severity"},
		{"severity without reaction", EventCandidate{Allergen: "egg", Date: "2025-11-07", Severity: "mild"}, "severity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, errs := ValidateEvent(tt.candidate, validatorNow)
			if event != nil {
				t.Fatal("rejected candidate should not produce an event")
			}
			if !fieldsOf(errs)[tt.wantField] {
				t.Errorf("errors = %v, want violation on %q", errs, tt.wantField)
			}
		})
	}
}

func TestValidateEventAccumulatesAllViolations(t *testing.T) {
	_, errs := ValidateEvent(EventCandidate{
		Date:        "not-a-date",
		HadReaction: true,
	}, validatorNow)

	fields := fieldsOf(errs)
	for _, want := range []string{"date", "allergen", "severity"} {
		if !fields[want] {
			t.Errorf("missing violation on %q, got %v", want, errs)
		}
	}
}

func TestValidateEventTomorrowScenario(t *testing.T) {
	tomorrow := util.FormatCivil(validatorNow.AddDate(0, 0, 1))
	_, errs := ValidateEvent(EventCandidate{
		Allergen: "egg",
		Date:     tomorrow,
	}, validatorNow)

	if len(errs) != 1 || errs[0].Field != "date" {
		t.Errorf("want exactly one date-in-future violation, got %v", errs)
	}
}

func TestValidateProfile(t *testing.T) {
	profile, errs := ValidateProfile("Mochi", "2025-04-01", validatorNow)
	if errs != nil {
		t.Fatalf("ValidateProfile() errors = %v", errs)
	}
	if profile.Name != "Mochi" {
		t.Errorf("Name = %q", profile.Name)
	}

	longName := ""
	for i := 0; i < 51; i++ {
		longName += "a"
	}

	tests := []struct {
		name      string
		pname     string
		birthdate string
		wantField string
	}{
		{"empty name", "", "2025-04-01", "name"},
		{"whitespace name", "   ", "2025-04-01", "name"},
		{"too long name", longName, "2025-04-01", "name"},
		{"missing birthdate", "Mochi", "", "birthdate"},
		{"garbage birthdate", "Mochi", "soon", "birthdate"},
		{"future birthdate", "Mochi", "2025-12-01", "birthdate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := ValidateProfile(tt.pname, tt.birthdate, validatorNow)
			if !fieldsOf(errs)[tt.wantField] {
				t.Errorf("errors = %v, want violation on %q", errs, tt.wantField)
			}
		})
	}
}
