// ABOUTME: Field-level validation for candidate records before storage
// ABOUTME: Accumulates every violation rather than stopping at the first
package core

import (
	"fmt"
	"strings"
	"time"

	"allergentrack/internal/models"
	"allergentrack/internal/util"
)

// FieldError is a single (field, reason) validation violation
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects all violations for one candidate
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// EventCandidate is a feeding event as submitted, before validation.
// Date and severity arrive as raw strings so parse failures surface as
// field violations instead of errors upstream.
type EventCandidate struct {
	Allergen    string
	Date        string
	Amount      string
	HadReaction bool
	Severity    string
	Notes       string
}

// ValidateEvent checks a candidate against all rules and returns the
// normalized event when it passes. Rules are independent; every violation
// is reported. Nothing that fails here may reach the record store.
func ValidateEvent(c EventCandidate, now time.Time) (*models.FeedingEvent, ValidationErrors) {
	var errs ValidationErrors
	var date time.Time

	if c.Date == "" {
		errs = append(errs, FieldError{Field: "date", Message: "date is required"})
	} else {
		parsed, err := util.ParseCivil(c.Date)
		if err != nil {
			errs = append(errs, FieldError{Field: "date", Message: fmt.Sprintf("invalid date %q, want YYYY-MM-DD", c.Date)})
		} else {
			date = parsed
			if util.IsFuture(date, now) {
				errs = append(errs, FieldError{Field: "date", Message: "date cannot be in the future"})
			}
		}
	}

	kind := models.AllergenKind(c.Allergen)
	if c.Allergen == "" {
		errs = append(errs, FieldError{Field: "allergen", Message: "allergen is required"})
	} else if !models.ValidKind(kind) {
		errs = append(errs, FieldError{Field: "allergen", Message: fmt.Sprintf("unknown allergen %q", c.Allergen)})
	}

	severity := models.Severity(c.Severity)
	if c.HadReaction {
		if c.Severity == "" {
			errs = append(errs, FieldError{Field: "severity", Message: "severity is required when a reaction is reported"})
		} else if !models.ValidSeverity(severity) {
			errs = append(errs, FieldError{Field: "severity", Message: fmt.Sprintf("unknown severity %q", c.Severity)})
		}
	} else if c.Severity != "" {
		errs = append(errs, FieldError{Field: "severity", Message: "severity must be absent when no reaction is reported"})
	}

	if errs != nil {
		return nil, errs
	}

	return &models.FeedingEvent{
		Allergen:    kind,
		Date:        date,
		Amount:      strings.TrimSpace(c.Amount),
		HadReaction: c.HadReaction,
		Severity:    severity,
		Notes:       strings.TrimSpace(c.Notes),
	}, nil
}

// ValidateProfile checks onboarding input and returns the normalized profile
func ValidateProfile(name, birthdate string, now time.Time) (*models.Profile, ValidationErrors) {
	var errs ValidationErrors
	var born time.Time

	name = strings.TrimSpace(name)
	if name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	} else if len([]rune(name)) > models.MaxProfileNameLen {
		errs = append(errs, FieldError{Field: "name", Message: fmt.Sprintf("name must be at most %d characters", models.MaxProfileNameLen)})
	}

	if birthdate == "" {
		errs = append(errs, FieldError{Field: "birthdate", Message: "birthdate is required"})
	} else {
		parsed, err := util.ParseCivil(birthdate)
		if err != nil {
			errs = append(errs, FieldError{Field: "birthdate", Message: fmt.Sprintf("invalid birthdate %q, want YYYY-MM-DD", birthdate)})
		} else {
			born = parsed
			if util.IsFuture(born, now) {
				errs = append(errs, FieldError{Field: "birthdate", Message: "birthdate cannot be in the future"})
			}
		}
	}

	if errs != nil {
		return nil, errs
	}

	return &models.Profile{Name: name, Birthdate: born}, nil
}
