// ABOUTME: DayBucket groups the feeding events that fall on one calendar date
// ABOUTME: Ephemeral output of the day aggregator, never persisted
package models

import "time"

// DayBucket holds all events on one local calendar date.
// Events keep the order they were appended in; HasReaction is true
// if any contained event had a reaction.
type DayBucket struct {
	Date        time.Time      `json:"date"`
	Events      []FeedingEvent `json:"events"`
	HasReaction bool           `json:"has_reaction"`
}
