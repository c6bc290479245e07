// ABOUTME: Tests for shared command utilities
// ABOUTME: Verifies display formatting helpers and validation reporting
package commands

import (
	"errors"
	"testing"
	"time"

	"allergentrack/internal/core"
	"allergentrack/internal/util"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"this is far too long", 10, "this is..."},
		{"", 5, ""},
		{"abc", 3, "abc"},
		{"🥜🥚🥛🌾", 2, "🥜🥚"},
		{"🥜🥚🥛🌾🐟🦐", 5, "🥜🥚..."},
	}

	for _, tt := range tests {
		if got := truncate(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}

func TestFormatDaysOrDash(t *testing.T) {
	zero, one, many := 0, 1, 12

	tests := []struct {
		days *int
		want string
	}{
		{nil, "-"},
		{&zero, "today"},
		{&one, "1 day ago"},
		{&many, "12 days ago"},
	}

	for _, tt := range tests {
		if got := formatDaysOrDash(tt.days); got != tt.want {
			t.Errorf("formatDaysOrDash(%v) = %q, want %q", tt.days, got, tt.want)
		}
	}
}

func TestFormatCivilOrDash(t *testing.T) {
	if got := formatCivilOrDash(nil); got != "-" {
		t.Errorf("formatCivilOrDash(nil) = %q, want -", got)
	}

	date, _ := util.ParseCivil("2025-11-07")
	if got := formatCivilOrDash(&date); got != "2025-11-07" {
		t.Errorf("formatCivilOrDash() = %q, want 2025-11-07", got)
	}

	var notCivil = time.Date(2025, 11, 7, 18, 45, 0, 0, time.Local)
	if got := formatCivilOrDash(&notCivil); got != "2025-11-07" {
		t.Errorf("formatCivilOrDash() = %q, want date portion only", got)
	}
}

func TestReportValidation(t *testing.T) {
	verrs := core.ValidationErrors{
		{Field: "date", Message: "must not be in the future"},
	}

	err := reportValidation(verrs)
	if err == nil || err.Error() != "validation failed" {
		t.Errorf("reportValidation(ValidationErrors) = %v, want terse failure", err)
	}

	plain := errors.New("disk full")
	if err := reportValidation(plain); !errors.Is(err, plain) {
		t.Errorf("reportValidation(plain) = %v, want the error passed through", err)
	}
}
