package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matsen/arxtab/internal/storage"
)

var (
	searchDB       string
	searchTitle    string
	searchAuthor   string
	searchCategory string
	searchYear     string
	searchLimit    int
)

func init() {
	searchCmd.Flags().StringVar(&searchDB, "db", "", "SQLite database to search (default from config, else articles.db)")
	searchCmd.Flags().StringVarP(&searchTitle, "title", "t", "", "Substring match on title")
	searchCmd.Flags().StringVarP(&searchAuthor, "author", "a", "", "Substring match on author names")
	searchCmd.Flags().StringVarP(&searchCategory, "category", "c", "", "Exact category code")
	searchCmd.Flags().StringVar(&searchYear, "year", "", "Filter by year: exact (2021), range (2019:2021), or open (2019: or :2021)")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 50, "Maximum results to return")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search stored records",
	Long: `Search records previously stored with 'arxtab fetch --db'.

Year syntax:
  --year 2021         - Exact year
  --year 2019:2021    - Range (inclusive)
  --year 2019:        - 2019 and later
  --year :2021        - 2021 and earlier

Examples:
  arxtab search --db articles.db -t "surface code"
  arxtab search --db articles.db -a Example --year 2020:
  arxtab search --db articles.db -c quant-ph --human`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	filters := storage.SearchFilters{
		Title:    searchTitle,
		Author:   searchAuthor,
		Category: searchCategory,
	}

	if searchYear != "" {
		from, to, err := parseYearRange(searchYear)
		if err != nil {
			exitWithError(ExitError, "invalid year format: %v", err)
		}
		filters.YearFrom = from
		filters.YearTo = to
	}

	db, err := storage.OpenDB(resolveDB(searchDB))
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}
	defer db.Close()

	records, err := db.Search(filters, searchLimit)
	if err != nil {
		exitWithError(ExitDataError, "searching: %v", err)
	}

	if humanOutput {
		if len(records) == 0 {
			fmt.Println("No records found")
			return nil
		}
		fmt.Printf("Found %d records:\n\n", len(records))
		for i, rec := range records {
			printRecordSummary(i+1, rec)
		}
	} else {
		outputJSON(records)
	}

	return nil
}

// parseYearRange parses a year specification into from/to values.
// Supported formats: "2021", "2019:2021", "2019:", ":2021"
func parseYearRange(spec string) (from, to int, err error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return 0, 0, nil
	}

	if strings.Contains(spec, ":") {
		parts := strings.SplitN(spec, ":", 2)

		if parts[0] != "" {
			from, err = strconv.Atoi(parts[0])
			if err != nil {
				return 0, 0, fmt.Errorf("invalid start year %q", parts[0])
			}
		}

		if parts[1] != "" {
			to, err = strconv.Atoi(parts[1])
			if err != nil {
				return 0, 0, fmt.Errorf("invalid end year %q", parts[1])
			}
		}

		return from, to, nil
	}

	year, err := strconv.Atoi(spec)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year %q", spec)
	}

	return year, year, nil
}
