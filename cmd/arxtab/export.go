package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matsen/arxtab/internal/harvest"
	"github.com/matsen/arxtab/internal/storage"
)

var (
	exportDB  string
	exportOut string
)

func init() {
	exportCmd.Flags().StringVar(&exportDB, "db", "", "SQLite database to export (default from config, else articles.db)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "arxiv.csv", "Destination CSV file")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored records to CSV",
	Long: `Export all records from a SQLite store to a CSV file.

An existing file at the destination is overwritten.

Examples:
  arxtab export --db articles.db -o articles.csv`,
	RunE: runExport,
}

// ExportResult is the JSON output of the export command.
type ExportResult struct {
	Total int    `json:"total"`
	CSV   string `json:"csv"`
}

func runExport(cmd *cobra.Command, args []string) error {
	db, err := storage.OpenDB(resolveDB(exportDB))
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}
	defer db.Close()

	records, err := db.ListAll()
	if err != nil {
		exitWithError(ExitDataError, "listing records: %v", err)
	}

	if err := harvest.SaveCSV(records, exportOut); err != nil {
		exitWithError(ExitError, "saving CSV: %v", err)
	}

	if humanOutput {
		fmt.Printf("Exported %d records to %s\n", len(records), exportOut)
	} else {
		outputJSON(ExportResult{Total: len(records), CSV: exportOut})
	}
	return nil
}
