// ABOUTME: CLI command for exporting a date range of sessions.
// ABOUTME: Supports JSON, YAML, CSV, and Markdown export formats.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lift/internal/metrics"
)

const defaultExportDays = 30

var (
	exportOutput  string
	exportFrom    string
	exportTo      string
	exportDays    int
	exportProfile string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export sessions in a date range",
	Long: `Export one profile's sessions in a date range.

FORMATS:

  json      Sessions with units, formula, and date range
  yaml      Same payload as YAML
  csv       One row per set with e1RM
  markdown  One table per session plus personal records

OPTIONS:

  --output, -o   Write to file instead of stdout
  --from, --to   Inclusive date range (YYYY-MM-DD, --to defaults to today)
  --days         Range length when --from is not set (default 30)

For a full backup of all profiles use 'lift backup'.

EXAMPLES:

  lift export json                          # Last 30 days as JSON
  lift export csv -o january.csv --from 2024-01-01 --to 2024-01-31
  lift export yaml --days 7`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "csv", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		profile, err := selectProfile(exportProfile)
		if err != nil {
			return err
		}
		window, err := dayWindow(exportFrom, exportTo, exportDays, liftStore.Now())
		if err != nil {
			return err
		}
		payload := metrics.ToExportPayload(liftStore.Sessions(), liftStore.Settings(), profile.ID, window, liftStore.Now())

		var data []byte
		switch format {
		case "json":
			data, err = payload.JSON()
		case "yaml":
			data, err = payload.YAML()
		case "csv":
			var out string
			out, err = metrics.ToCSV(payload.Sessions, payload.E1RMFormula)
			data = []byte(out)
		case "markdown", "md":
			data = []byte(payload.Markdown())
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, csv, or markdown)", format)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported %d sessions to %s", len(payload.Sessions), exportOutput)
		} else {
			fmt.Print(string(data))
			if !bytes.HasSuffix(data, []byte("\n")) {
				fmt.Println()
			}
		}

		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "first day (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "last day, inclusive (YYYY-MM-DD, default today)")
	exportCmd.Flags().IntVar(&exportDays, "days", defaultExportDays, "days ending at --to when --from is not set")
	exportCmd.Flags().StringVarP(&exportProfile, "profile", "p", "", "profile (default active)")
	rootCmd.AddCommand(exportCmd)
}
