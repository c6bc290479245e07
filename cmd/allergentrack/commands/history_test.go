// ABOUTME: Tests for the history command
// ABOUTME: Verifies filters and empty-state output through the CLI
package commands

import (
	"strings"
	"testing"
)

func TestNewHistoryCmd(t *testing.T) {
	cmd := NewHistoryCmd()

	if cmd.Use != "history" {
		t.Errorf("Use = %q, want %q", cmd.Use, "history")
	}

	tests := []struct {
		flagName string
		defValue string
	}{
		{"allergen", ""},
		{"reactions-only", "false"},
	}
	for _, tt := range tests {
		flag := cmd.Flags().Lookup(tt.flagName)
		if flag == nil {
			t.Fatalf("--%s flag not found", tt.flagName)
		}
		if flag.DefValue != tt.defValue {
			t.Errorf("--%s default = %q, want %q", tt.flagName, flag.DefValue, tt.defValue)
		}
	}
}

func TestHistoryEmpty(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "history")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "No feeding events found") {
		t.Errorf("output = %q, want empty-state message", out)
	}
}

func TestHistoryFilters(t *testing.T) {
	dir := t.TempDir()

	seed := [][]string{
		{"log", "add", "--allergen", "peanut", "--date", "2025-11-03"},
		{"log", "add", "--allergen", "egg", "--date", "2025-11-05", "--reaction", "--severity", "mild"},
	}
	for _, args := range seed {
		if _, err := runCLI(t, dir, args...); err != nil {
			t.Fatalf("seeding %v: %v", args, err)
		}
	}

	out, err := runCLI(t, dir, "history", "--allergen", "peanut")
	if err != nil {
		t.Fatalf("history --allergen error = %v", err)
	}
	if !strings.Contains(out, "peanut") || strings.Contains(out, "2025-11-05") {
		t.Errorf("allergen filter not applied:\n%s", out)
	}

	out, err = runCLI(t, dir, "history", "--reactions-only")
	if err != nil {
		t.Fatalf("history --reactions-only error = %v", err)
	}
	if !strings.Contains(out, "egg") || strings.Contains(out, "2025-11-03") {
		t.Errorf("reactions filter not applied:\n%s", out)
	}

	if _, err := runCLI(t, dir, "history", "--allergen", "chocolate"); err == nil {
		t.Error("history should reject an unknown allergen filter")
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	dir := t.TempDir()

	for _, day := range []string{"2025-11-03", "2025-11-10"} {
		if _, err := runCLI(t, dir, "log", "add", "--allergen", "peanut", "--date", day); err != nil {
			t.Fatalf("seeding %s: %v", day, err)
		}
	}

	out, err := runCLI(t, dir, "history")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.Index(out, "2025-11-10") > strings.Index(out, "2025-11-03") {
		t.Errorf("events not newest first:\n%s", out)
	}
}
