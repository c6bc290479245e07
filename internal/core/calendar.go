// ABOUTME: Day aggregator groups feeding events into local calendar days
// ABOUTME: Month grid helpers derive the rendered dates independently of data
package core

import (
	"time"

	"allergentrack/internal/models"
	"allergentrack/internal/util"
)

// GroupByDay buckets events by their local calendar date. Bucket membership
// depends only on the event's date, never on input order; entries within a
// bucket keep the order they appeared in the input. The reaction flag is
// computed once per bucket.
func GroupByDay(events []models.FeedingEvent) map[string]*models.DayBucket {
	buckets := make(map[string]*models.DayBucket)
	for _, event := range events {
		key := util.FormatCivil(event.Date)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &models.DayBucket{Date: util.Midnight(event.Date)}
			buckets[key] = bucket
		}
		bucket.Events = append(bucket.Events, event)
		if event.HadReaction {
			bucket.HasReaction = true
		}
	}
	return buckets
}

// MonthGrid describes one calendar month for rendering. The grid is derived
// from (year, month) alone; cells with no bucket are empty calendar cells,
// which makes month navigation independent of the event set.
type MonthGrid struct {
	Year          int
	Month         time.Month
	DaysInMonth   int
	LeadingBlanks int // weekday offset of day 1, Sunday-first
}

// NewMonthGrid builds the grid for a target year and month
func NewMonthGrid(year int, month time.Month) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	lastDay := first.AddDate(0, 1, -1).Day()
	return MonthGrid{
		Year:          year,
		Month:         month,
		DaysInMonth:   lastDay,
		LeadingBlanks: int(first.Weekday()),
	}
}

// DateKey returns the bucket key for a day of this month
func (g MonthGrid) DateKey(day int) string {
	return time.Date(g.Year, g.Month, day, 0, 0, 0, 0, time.Local).Format(util.CivilDateLayout)
}
