// ABOUTME: CLI command to render the feeding history as a month calendar
// ABOUTME: Day cells mark logged days and reaction days from day buckets
package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"allergentrack/internal/core"
	"allergentrack/internal/storage/sqlite"
	"allergentrack/internal/util"
)

var calendarMonth string

// NewCalendarCmd creates the calendar command
func NewCalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month calendar of feeding events",
		Long: `Show a month calendar of feeding events.

Days with events are marked with a dot; days where any event had a
reaction are marked with a star. Navigate months with --month.

Examples:
  allergentrack calendar
  allergentrack calendar --month 2025-11`,
		RunE: runCalendar,
	}

	cmd.Flags().StringVar(&calendarMonth, "month", "", "Target month YYYY-MM (default current)")

	return cmd
}

func runCalendar(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	target := util.Today()
	if calendarMonth != "" {
		parsed, err := time.ParseInLocation("2006-01", calendarMonth, time.Local)
		if err != nil {
			return fmt.Errorf("invalid month %q, want YYYY-MM", calendarMonth)
		}
		target = parsed
	}

	store, err := openStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	events, err := store.Events.List(sqlite.EventFilter{Ascending: true})
	if err != nil {
		return fmt.Errorf("listing events: %w", err)
	}

	buckets := core.GroupByDay(events)
	grid := core.NewMonthGrid(target.Year(), target.Month())

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %d\n", grid.Month, grid.Year)
	fmt.Fprintln(out, "Sun  Mon  Tue  Wed  Thu  Fri  Sat")

	var line strings.Builder
	for i := 0; i < grid.LeadingBlanks; i++ {
		line.WriteString("     ")
	}
	column := grid.LeadingBlanks

	for day := 1; day <= grid.DaysInMonth; day++ {
		marker := " "
		if bucket, ok := buckets[grid.DateKey(day)]; ok {
			marker = "•"
			if bucket.HasReaction {
				marker = "★"
			}
		}
		line.WriteString(fmt.Sprintf("%2d%s  ", day, marker))

		column++
		if column == 7 {
			fmt.Fprintln(out, strings.TrimRight(line.String(), " "))
			line.Reset()
			column = 0
		}
	}
	if line.Len() > 0 {
		fmt.Fprintln(out, strings.TrimRight(line.String(), " "))
	}

	if !quiet {
		fmt.Fprintln(out, "\n• logged   ★ reaction")
	}
	return nil
}
