// ABOUTME: CSV exporter for the full feeding history plus profile
// ABOUTME: BOM-prefixed so spreadsheet tools detect the UTF-8 encoding
package core

import (
	"encoding/csv"
	"fmt"
	"io"

	"allergentrack/internal/storage/sqlite"
	"allergentrack/internal/util"
)

// CSVHeader is the column layout of the tabular export
var CSVHeader = []string{
	"Baby Name", "Baby Birthdate", "Date", "Allergen",
	"Amount", "Reaction", "Severity", "Notes",
}

// utf8BOM lets spreadsheet tools detect the text encoding
const utf8BOM = "\uFEFF"

// ExportCSV writes the complete event history as CSV, one row per event
// ordered by event date ascending. All-or-nothing: any store read failure
// aborts before rows are flushed.
func ExportCSV(store *sqlite.Storage, w io.Writer) error {
	profile, err := store.Profile.Get()
	if err != nil {
		return fmt.Errorf("reading profile: %w", err)
	}

	events, err := store.Events.List(sqlite.EventFilter{Ascending: true})
	if err != nil {
		return fmt.Errorf("reading events: %w", err)
	}

	babyName, babyBirthdate := "", ""
	if profile != nil {
		babyName = profile.Name
		babyBirthdate = util.FormatCivil(profile.Birthdate)
	}

	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, event := range events {
		reaction := "No"
		if event.HadReaction {
			reaction = "Yes"
		}
		row := []string{
			babyName,
			babyBirthdate,
			util.FormatCivil(event.Date),
			string(event.Allergen),
			event.Amount,
			reaction,
			string(event.Severity),
			event.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
