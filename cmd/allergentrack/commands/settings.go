// ABOUTME: CLI command to view and update application settings
// ABOUTME: Settings are a singleton row with validated bounds
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"allergentrack/internal/models"
)

var (
	settingsTheme         string
	settingsLanguage      string
	settingsNotifications string
	settingsThreshold     int
	settingsTime          string
)

// NewSettingsCmd creates the settings command
func NewSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and manage settings",
		Long: `View and manage application settings.

The overdue threshold must be between 3 and 14 days.

Examples:
  allergentrack settings
  allergentrack settings set --theme dark
  allergentrack settings set --threshold-days 5
  allergentrack settings set --notifications on --notification-time 08:30`,
		RunE: runSettingsShow,
	}

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Update settings fields",
		RunE:  runSettingsSet,
	}
	setCmd.Flags().StringVar(&settingsTheme, "theme", "", "Theme (light, dark)")
	setCmd.Flags().StringVar(&settingsLanguage, "language", "", "Language (en, ja)")
	setCmd.Flags().StringVar(&settingsNotifications, "notifications", "", "Daily reminders (on, off)")
	setCmd.Flags().IntVar(&settingsThreshold, "threshold-days", 0, "Overdue threshold in days (3-14)")
	setCmd.Flags().StringVar(&settingsTime, "notification-time", "", "Daily reminder time HH:MM")

	cmd.AddCommand(setCmd)
	return cmd
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	store, err := openStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	settings, err := store.Settings.Get()
	if err != nil {
		return fmt.Errorf("getting settings: %w", err)
	}
	if settings == nil {
		settings = models.DefaultSettings()
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(settings, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	notifications := "off"
	if settings.NotificationsEnabled {
		notifications = "on"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Theme:             %s\n", settings.Theme)
	fmt.Fprintf(cmd.OutOrStdout(), "Language:          %s\n", settings.Language)
	fmt.Fprintf(cmd.OutOrStdout(), "Notifications:     %s\n", notifications)
	fmt.Fprintf(cmd.OutOrStdout(), "Overdue threshold: %d days\n", settings.ThresholdDays)
	fmt.Fprintf(cmd.OutOrStdout(), "Reminder time:     %s\n", settings.NotificationTime)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	store, err := openStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	settings, err := store.Settings.Get()
	if err != nil {
		return fmt.Errorf("getting settings: %w", err)
	}
	if settings == nil {
		settings = models.DefaultSettings()
	}

	if settingsTheme != "" {
		settings.Theme = models.Theme(settingsTheme)
	}
	if settingsLanguage != "" {
		settings.Language = models.Language(settingsLanguage)
	}
	switch settingsNotifications {
	case "":
	case "on":
		settings.NotificationsEnabled = true
	case "off":
		settings.NotificationsEnabled = false
	default:
		return fmt.Errorf("notifications must be on or off, got %q", settingsNotifications)
	}
	if cmd.Flags().Changed("threshold-days") {
		settings.ThresholdDays = settingsThreshold
	}
	if settingsTime != "" {
		settings.NotificationTime = settingsTime
	}

	if err := store.Settings.Save(settings); err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Settings saved\n")
	}
	return nil
}
