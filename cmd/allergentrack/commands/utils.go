// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Storage setup, validation error printing, and display formatting
package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"allergentrack/internal/config"
	"allergentrack/internal/core"
	"allergentrack/internal/storage/sqlite"
	"allergentrack/internal/util"
)

// openStorage opens the configured database, honoring the --data-dir flag
func openStorage() (*sqlite.Storage, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Using database %s\n", cfg.DBPath())
	}
	return sqlite.NewStorageWithPath(cfg.DBPath())
}

// reportValidation prints each field violation on its own line and returns
// a terse error so the command exits non-zero
func reportValidation(err error) error {
	var verrs core.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", fe.Field, fe.Message)
		}
		return fmt.Errorf("validation failed")
	}
	return err
}

// formatCivilOrDash renders an optional civil date for table output
func formatCivilOrDash(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return util.FormatCivil(*t)
}

// formatDaysOrDash renders an optional day count for table output
func formatDaysOrDash(days *int) string {
	if days == nil {
		return "-"
	}
	switch *days {
	case 0:
		return "today"
	case 1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", *days)
	}
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
