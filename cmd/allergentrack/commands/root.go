// ABOUTME: Root CLI command and global flags for the allergen tracker
// ABOUTME: Wires all subcommands and persistent output options
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
	dataDir      string
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allergentrack",
		Short: "Track a child's exposure to common food allergens",
		Long: `Track a child's exposure to the 9 common food allergens.

Log feeding attempts, watch per-allergen exposure stats, browse the
history as a calendar, and export everything for your pediatrician.
All data stays in a local SQLite database.

Start with:
  allergentrack profile set --name "Mochi" --birthdate 2025-04-01
  allergentrack log add --allergen peanut --date 2025-11-03`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose diagnostic output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format (auto, table, json)")
	cmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Override the data directory")

	cmd.AddCommand(NewProfileCmd())
	cmd.AddCommand(NewLogCmd())
	cmd.AddCommand(NewAllergensCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewCalendarCmd())
	cmd.AddCommand(NewOverdueCmd())
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewSettingsCmd())
	cmd.AddCommand(NewWipeCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
