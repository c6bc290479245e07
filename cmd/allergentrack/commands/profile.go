// ABOUTME: CLI command to view and update the child profile
// ABOUTME: Creating the profile completes onboarding
package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"allergentrack/internal/core"
	"allergentrack/internal/util"
)

var (
	profileName      string
	profileBirthdate string
)

// NewProfileCmd creates the profile command
func NewProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and manage the child profile",
		Long: `View and manage the child profile.

Setting the profile for the first time completes onboarding.

Examples:
  allergentrack profile
  allergentrack profile --format json
  allergentrack profile set --name "Mochi" --birthdate 2025-04-01`,
		RunE: runProfileShow,
	}

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update the profile",
		RunE:  runProfileSet,
	}
	setCmd.Flags().StringVar(&profileName, "name", "", "Child's display name")
	setCmd.Flags().StringVar(&profileBirthdate, "birthdate", "", "Birth date YYYY-MM-DD")

	cmd.AddCommand(setCmd)
	return cmd
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	store, err := openStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	profile, err := store.Profile.Get()
	if err != nil {
		return fmt.Errorf("getting profile: %w", err)
	}

	if profile == nil {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No profile yet. Run: allergentrack profile set --name <name> --birthdate <YYYY-MM-DD>\n")
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Name:      %s\n", profile.Name)
	fmt.Fprintf(cmd.OutOrStdout(), "Birthdate: %s\n", util.FormatCivil(profile.Birthdate))
	days := util.DaysBetween(profile.Birthdate, time.Now())
	fmt.Fprintf(cmd.OutOrStdout(), "Age:       %d days\n", days)
	return nil
}

func runProfileSet(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	store, err := openStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	tracker := core.NewTracker(store)
	profile, err := tracker.SaveProfile(profileName, profileBirthdate)
	if err != nil {
		return reportValidation(err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Saved profile for %s (born %s)\n",
			profile.Name, util.FormatCivil(profile.Birthdate))
	}
	return nil
}
