// ABOUTME: CLI commands to add, update, and delete feeding events
// ABOUTME: Candidates go through the validator; rejects never reach storage
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"allergentrack/internal/core"
	"allergentrack/internal/util"
)

var (
	logAllergen string
	logDate     string
	logAmount   string
	logReaction bool
	logSeverity string
	logNotes    string
)

// NewLogCmd creates the log command with its subcommands
func NewLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Manage feeding events",
		Long: `Add, update, or delete feeding events.

Each event records one feeding attempt of an allergen. Logging an event
immediately recomputes the allergen's exposure stats.

Examples:
  allergentrack log add --allergen peanut
  allergentrack log add --allergen egg --date 2025-11-07 --reaction --severity mild
  allergentrack log update log-123-abcd1234 --allergen egg --date 2025-11-08
  allergentrack log delete log-123-abcd1234`,
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Log a new feeding event",
		RunE:  runLogAdd,
	}
	addEventFlags(addCmd)

	updateCmd := &cobra.Command{
		Use:   "update <event-id>",
		Short: "Replace an existing feeding event",
		Args:  cobra.ExactArgs(1),
		RunE:  runLogUpdate,
	}
	addEventFlags(updateCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <event-id>",
		Short: "Delete a feeding event",
		Args:  cobra.ExactArgs(1),
		RunE:  runLogDelete,
	}

	cmd.AddCommand(addCmd, updateCmd, deleteCmd)
	return cmd
}

func addEventFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&logAllergen, "allergen", "", "Allergen kind (egg, dairy, soy, wheat, peanut, tree-nut, sesame, fish, seafood)")
	cmd.Flags().StringVar(&logDate, "date", "", "Event date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&logAmount, "amount", "", "Amount description (e.g. \"1 tsp peanut butter\")")
	cmd.Flags().BoolVar(&logReaction, "reaction", false, "The child had a reaction")
	cmd.Flags().StringVar(&logSeverity, "severity", "", "Reaction severity (mild, moderate, severe)")
	cmd.Flags().StringVar(&logNotes, "note", "", "Free-text note")
}

// eventCandidate assembles the candidate from flags. A severity given
// without --reaction is stripped here, at the form layer.
func eventCandidate() core.EventCandidate {
	date := logDate
	if date == "" {
		date = util.FormatCivil(util.Today())
	}
	severity := logSeverity
	if !logReaction {
		severity = ""
	}
	return core.EventCandidate{
		Allergen:    logAllergen,
		Date:        date,
		Amount:      logAmount,
		HadReaction: logReaction,
		Severity:    severity,
		Notes:       logNotes,
	}
}

func runLogAdd(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	store, err := openStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	tracker := core.NewTracker(store)
	event, err := tracker.SubmitEvent(eventCandidate())
	if err != nil {
		return reportValidation(err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Logged %s on %s (%s)\n",
			event.Allergen, util.FormatCivil(event.Date), event.ID)
	}
	return nil
}

// eventPatch assembles a partial update from the flags that were actually
// set, so an update touches only the fields the user named
func eventPatch(cmd *cobra.Command) core.EventPatch {
	var p core.EventPatch
	flags := cmd.Flags()
	if flags.Changed("allergen") {
		p.Allergen = &logAllergen
	}
	if flags.Changed("date") {
		p.Date = &logDate
	}
	if flags.Changed("amount") {
		p.Amount = &logAmount
	}
	if flags.Changed("reaction") {
		p.HadReaction = &logReaction
	}
	if flags.Changed("severity") {
		p.Severity = &logSeverity
	}
	if flags.Changed("note") {
		p.Notes = &logNotes
	}
	return p
}

func runLogUpdate(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	store, err := openStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	tracker := core.NewTracker(store)
	event, err := tracker.UpdateEvent(args[0], eventPatch(cmd))
	if err != nil {
		return reportValidation(err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Updated %s (%s on %s)\n",
			event.ID, event.Allergen, util.FormatCivil(event.Date))
	}
	return nil
}

func runLogDelete(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	store, err := openStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	tracker := core.NewTracker(store)
	if err := tracker.DeleteEvent(args[0]); err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted %s\n", args[0])
	}
	return nil
}
