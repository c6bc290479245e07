// ABOUTME: CLI command to browse the feeding event history
// ABOUTME: Newest first, with allergen and reactions-only filters
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"allergentrack/internal/models"
	"allergentrack/internal/storage/sqlite"
	"allergentrack/internal/util"
)

var (
	historyAllergen      string
	historyReactionsOnly bool
)

// NewHistoryCmd creates the history command
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the feeding history",
		Long: `Show logged feeding events, newest first.

Examples:
  allergentrack history
  allergentrack history --allergen peanut
  allergentrack history --reactions-only
  allergentrack history --format json`,
		RunE: runHistory,
	}

	cmd.Flags().StringVar(&historyAllergen, "allergen", "", "Only events for this allergen kind")
	cmd.Flags().BoolVar(&historyReactionsOnly, "reactions-only", false, "Only events with a reaction")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	filter := sqlite.EventFilter{ReactionsOnly: historyReactionsOnly}
	if historyAllergen != "" {
		kind := models.AllergenKind(historyAllergen)
		if !models.ValidKind(kind) {
			return fmt.Errorf("unknown allergen %q", historyAllergen)
		}
		filter.Kind = kind
	}

	store, err := openStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	events, err := store.Events.List(filter)
	if err != nil {
		return fmt.Errorf("listing events: %w", err)
	}

	if len(events) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No feeding events found\n")
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(events, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "DATE\tALLERGEN\tREACTION\tSEVERITY\tAMOUNT\tNOTES\tID\n")
	fmt.Fprintf(w, "----\t--------\t--------\t--------\t------\t-----\t--\n")
	for _, event := range events {
		reaction := "no"
		if event.HadReaction {
			reaction = "YES"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			util.FormatCivil(event.Date),
			event.Allergen,
			reaction,
			string(event.Severity),
			truncate(event.Amount, 20),
			truncate(event.Notes, 30),
			event.ID)
	}
	return w.Flush()
}
