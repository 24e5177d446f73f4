package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matsen/arxtab/internal/author"
	"github.com/matsen/arxtab/internal/storage"
)

var (
	authorsDB  string
	authorsMin int
)

func init() {
	authorsCmd.Flags().StringVar(&authorsDB, "db", "", "SQLite database to analyze (default from config, else articles.db)")
	authorsCmd.Flags().IntVar(&authorsMin, "min", 2, "Only report authors with more than this many articles")
	rootCmd.AddCommand(authorsCmd)
}

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "Report frequent authors in stored records",
	Long: `Count how many stored articles each author appears on and report the
frequent ones, most prolific first.

Examples:
  arxtab authors --db articles.db
  arxtab authors --db articles.db --min 5 --human`,
	RunE: runAuthors,
}

func runAuthors(cmd *cobra.Command, args []string) error {
	db, err := storage.OpenDB(resolveDB(authorsDB))
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}
	defer db.Close()

	records, err := db.ListAll()
	if err != nil {
		exitWithError(ExitDataError, "listing records: %v", err)
	}

	counts := author.Frequent(records, authorsMin)

	if humanOutput {
		if len(counts) == 0 {
			fmt.Println("No frequent authors found")
			return nil
		}
		for _, c := range counts {
			fmt.Printf("%4d  %s\n", c.Count, c.Name)
		}
	} else {
		if counts == nil {
			counts = []author.Count{}
		}
		outputJSON(counts)
	}
	return nil
}
