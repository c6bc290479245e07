// ABOUTME: CLI command to list allergens with derived exposure stats
// ABOUTME: Pause and resume subcommands control overdue reasoning per kind
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"allergentrack/internal/core"
	"allergentrack/internal/models"
)

// NewAllergensCmd creates the allergens command
func NewAllergensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allergens",
		Short: "List allergens with exposure stats",
		Long: `List the 9 tracked allergens with their exposure stats.

First and last exposure dates are derived from the feeding history;
"days ago" is computed live against the local calendar. Paused
allergens stay in the history but are excluded from overdue checks.

Examples:
  allergentrack allergens
  allergentrack allergens --format json
  allergentrack allergens pause peanut
  allergentrack allergens resume peanut`,
		RunE: runAllergensList,
	}

	pauseCmd := &cobra.Command{
		Use:   "pause <kind>",
		Short: "Exclude an allergen from overdue checks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetPaused(cmd, args[0], true)
		},
	}

	resumeCmd := &cobra.Command{
		Use:   "resume <kind>",
		Short: "Include an allergen in overdue checks again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetPaused(cmd, args[0], false)
		},
	}

	cmd.AddCommand(pauseCmd, resumeCmd)
	return cmd
}

func runAllergensList(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	store, err := openStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	tracker := core.NewTracker(store)
	allergens, err := tracker.Allergens(time.Now())
	if err != nil {
		return fmt.Errorf("listing allergens: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(allergens, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "KIND\tNAME\tFIRST\tLAST\tLAST FED\tPAUSED\n")
	fmt.Fprintf(w, "----\t----\t-----\t----\t--------\t------\n")
	for _, allergen := range allergens {
		paused := ""
		if allergen.Paused {
			paused = "yes"
		}
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\t%s\n",
			allergen.Kind,
			allergen.Emoji, allergen.Name,
			formatCivilOrDash(allergen.FirstExposedAt),
			formatCivilOrDash(allergen.LastExposedAt),
			formatDaysOrDash(allergen.DaysSinceLastExposure),
			paused)
	}
	return w.Flush()
}

func runSetPaused(cmd *cobra.Command, kindArg string, paused bool) error {
	_ = godotenv.Load()

	kind := models.AllergenKind(kindArg)
	if !models.ValidKind(kind) {
		return fmt.Errorf("unknown allergen %q", kindArg)
	}

	store, err := openStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Allergens.SetPaused(kind, paused); err != nil {
		return err
	}

	if !quiet {
		verb := "Resumed"
		if paused {
			verb = "Paused"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s %s\n", verb, kind)
	}
	return nil
}
