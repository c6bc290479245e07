// ABOUTME: CLI command to export the full history and profile
// ABOUTME: CSV for spreadsheets; YAML or JSON for full backups
package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"allergentrack/internal/config"
	"allergentrack/internal/core"
)

var (
	exportOutput string
	exportFormat string
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the feeding history",
		Long: `Export the feeding history plus profile.

CSV contains one row per feeding event ordered by date, prefixed with
a UTF-8 byte-order marker so spreadsheet tools open it correctly.
YAML and JSON contain a full backup of all stored data.

Examples:
  allergentrack export
  allergentrack export --output history.csv
  allergentrack export --export-format yaml --output backup.yaml`,
		RunE: runExport,
	}

	cmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&exportFormat, "export-format", "", "Export format: csv, yaml, json (default from config)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	format := exportFormat
	if format == "" {
		format = cfg.ExportFormat
	}

	store, err := openStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	var payload []byte
	switch format {
	case "csv":
		var buf bytes.Buffer
		if err := core.ExportCSV(store, &buf); err != nil {
			return fmt.Errorf("exporting CSV: %w", err)
		}
		payload = buf.Bytes()
	case "yaml", "json":
		data, err := store.Export()
		if err != nil {
			return fmt.Errorf("exporting data: %w", err)
		}
		if format == "yaml" {
			payload, err = data.ToYAML()
		} else {
			payload, err = data.ToJSON()
		}
		if err != nil {
			return fmt.Errorf("marshaling export: %w", err)
		}
	default:
		return fmt.Errorf("unknown export format %q, want csv, yaml, or json", format)
	}

	if exportOutput == "" {
		_, err := cmd.OutOrStdout().Write(payload)
		return err
	}

	if err := os.WriteFile(exportOutput, payload, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", exportOutput, err)
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported to %s\n", exportOutput)
	}
	return nil
}
