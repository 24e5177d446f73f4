package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matsen/arxtab/internal/arxiv"
	"github.com/matsen/arxtab/internal/config"
	"github.com/matsen/arxtab/internal/harvest"
	"github.com/matsen/arxtab/internal/storage"
)

var (
	fetchQueries    []string
	fetchCategories []string
	fetchMaxResults int
	fetchOut        string
	fetchDB         string
	fetchKeepGoing  bool
)

func init() {
	fetchCmd.Flags().StringArrayVarP(&fetchQueries, "query", "q", nil, "Free-text title query (can be repeated)")
	fetchCmd.Flags().StringArrayVarP(&fetchCategories, "category", "c", nil, "arXiv category code (can be repeated)")
	fetchCmd.Flags().IntVarP(&fetchMaxResults, "max-results", "n", 0, "Maximum results per request (default 1000)")
	fetchCmd.Flags().StringVarP(&fetchOut, "out", "o", "", "Write the result table to this CSV file")
	fetchCmd.Flags().StringVar(&fetchDB, "db", "", "Store records in this SQLite database")
	fetchCmd.Flags().BoolVar(&fetchKeepGoing, "keep-going", false, "Skip failed fetches instead of aborting")
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch article metadata from arXiv",
	Long: `Fetch article metadata for every (query, category) pair.

Each query is tested against each category (full cross product). Records
appearing under more than one pair are kept once, first occurrence wins.
Derived columns (pages, figures, author count, title word count, publication
date parts) are computed before saving.

Examples:
  arxtab fetch -c quant-ph -o quant-ph.csv
  arxtab fetch -q "error correction" -q "surface code" -c quant-ph -c cond-mat.str-el -o out.csv
  arxtab fetch -c cs.LG -n 200 --db articles.db --verbose`,
	RunE: runFetch,
}

// FetchResult is the JSON output of the fetch command.
type FetchResult struct {
	Total  int    `json:"total"`
	CSV    string `json:"csv,omitempty"`
	DB     string `json:"db,omitempty"`
	Stored int    `json:"stored,omitempty"`
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	queries := fetchQueries
	categories := fetchCategories
	if len(categories) == 0 {
		categories = cfg.DefaultCategories
	}
	maxResults := fetchMaxResults
	if maxResults == 0 {
		maxResults = cfg.MaxResults
	}

	if fetchOut == "" && fetchDB == "" {
		return fmt.Errorf("must specify --out and/or --db")
	}

	log := progressLogger()
	client := arxiv.NewClient(arxiv.WithLogger(log))

	opts := []harvest.Option{harvest.WithLogger(log)}
	if fetchKeepGoing {
		opts = append(opts, harvest.WithKeepGoing())
	}
	h := harvest.New(client, opts...)

	records, err := h.Harvest(context.Background(), queries, categories, maxResults)
	if err != nil {
		exitWithError(ExitDataError, "harvesting: %v", err)
	}

	result := FetchResult{Total: len(records)}

	if fetchOut != "" {
		if err := harvest.SaveCSV(records, fetchOut); err != nil {
			exitWithError(ExitError, "saving CSV: %v", err)
		}
		result.CSV = fetchOut
	}

	if fetchDB != "" {
		db, err := storage.OpenDB(fetchDB)
		if err != nil {
			exitWithError(ExitError, "opening database: %v", err)
		}
		defer db.Close()

		stored, err := db.Upsert(records)
		if err != nil {
			exitWithError(ExitDataError, "storing records: %v", err)
		}
		result.DB = fetchDB
		result.Stored = stored
	}

	if humanOutput {
		fmt.Printf("Fetched %d records\n", result.Total)
		if result.CSV != "" {
			fmt.Printf("Saved as %s\n", result.CSV)
		}
		if result.DB != "" {
			fmt.Printf("Stored %d records in %s\n", result.Stored, result.DB)
		}
	} else {
		outputJSON(result)
	}

	return nil
}
