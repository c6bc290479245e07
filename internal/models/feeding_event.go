// ABOUTME: FeedingEvent represents a single logged feeding attempt
// ABOUTME: Severity is present if and only if the event had a reaction
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Severity is the reaction severity scale, ordered mild < moderate < severe
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Severities returns the fixed severity values in order
func Severities() []Severity {
	return []Severity{SeverityMild, SeverityModerate, SeveritySevere}
}

// ValidSeverity reports whether s is one of the fixed severities
func ValidSeverity(s Severity) bool {
	return s == SeverityMild || s == SeverityModerate || s == SeveritySevere
}

// FeedingEvent represents one recorded feeding attempt of an allergen.
// Date is a civil date (local midnight, no time component).
type FeedingEvent struct {
	ID          string       `json:"id"`
	Allergen    AllergenKind `json:"allergen"`
	Date        time.Time    `json:"date"`
	Amount      string       `json:"amount,omitempty"`
	HadReaction bool         `json:"had_reaction"`
	Severity    Severity     `json:"severity,omitempty"`
	Notes       string       `json:"notes,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	ModifiedAt  time.Time    `json:"modified_at"`
}

// NewEventID generates a unique feeding event id
func NewEventID() string {
	return fmt.Sprintf("log-%d-%s", time.Now().UnixMilli(), uuid.New().String()[:8])
}
