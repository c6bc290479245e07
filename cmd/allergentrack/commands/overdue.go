// ABOUTME: CLI command listing allergens due for another exposure
// ABOUTME: Reads the threshold from settings; paused allergens are skipped
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"allergentrack/internal/core"
)

// NewOverdueCmd creates the overdue command
func NewOverdueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overdue",
		Short: "List allergens past the exposure threshold",
		Long: `List unpaused allergens whose last exposure is at least the
configured threshold of days ago (settings, default 7).

Examples:
  allergentrack overdue
  allergentrack overdue --format json`,
		RunE: runOverdue,
	}

	return cmd
}

func runOverdue(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	store, err := openStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	tracker := core.NewTracker(store)
	overdue, threshold, err := tracker.Overdue(time.Now())
	if err != nil {
		return err
	}

	if len(overdue) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "Nothing overdue (threshold %d days)\n", threshold)
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(overdue, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "KIND\tNAME\tLAST FED\n")
	fmt.Fprintf(w, "----\t----\t--------\n")
	for _, allergen := range overdue {
		fmt.Fprintf(w, "%s\t%s %s\t%s\n",
			allergen.Kind, allergen.Emoji, allergen.Name,
			formatDaysOrDash(allergen.DaysSinceLastExposure))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nThreshold: %d days\n", threshold)
	}
	return nil
}
