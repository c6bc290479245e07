// ABOUTME: CLI command for the full data wipe
// ABOUTME: Deletes everything and reseeds allergens and default settings
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var wipeForce bool

// NewWipeCmd creates the wipe command
func NewWipeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Delete all data and start over",
		Long: `Delete the profile, all feeding events, and settings, then reseed
the 9 allergens and default settings. This cannot be undone.

Examples:
  allergentrack wipe --force`,
		RunE: runWipe,
	}

	cmd.Flags().BoolVar(&wipeForce, "force", false, "Confirm the wipe")

	return cmd
}

func runWipe(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	if !wipeForce {
		return fmt.Errorf("refusing to wipe without --force")
	}

	store, err := openStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Wipe(); err != nil {
		return fmt.Errorf("wiping data: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ All data wiped\n")
	}
	return nil
}
