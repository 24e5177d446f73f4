// Package main provides the arxtab CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/matsen/arxtab/internal/config"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// verbose enables progress logging to stderr
var verbose bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arxtab",
	Short: "Harvest arXiv article metadata into a table",
	Long: `arxtab fetches article metadata from the arXiv search API, flattens it
into one record per article, derives secondary columns (page and figure
counts, author counts, publication date parts), and writes the result to
CSV or a local SQLite store.

Core features:
  - Fetch over the cross product of queries and categories, deduplicated
  - Derived columns parsed from the free-text comment field
  - Local SQLite store with search and CSV export
  - Best-effort citation counts from Semantic Scholar

All commands output JSON by default; use --human for readable text.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log fetch progress to stderr")
	rootCmd.Version = Version
}

// progressLogger returns the logger for fetch progress: a console writer on
// stderr when --verbose is set, a no-op logger otherwise.
func progressLogger() zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// resolveDB returns the database path to use: the flag value if given, then
// the configured db_path, then "articles.db".
func resolveDB(flag string) string {
	if flag != "" {
		return flag
	}
	if cfg, err := config.Load(); err == nil && cfg.DBPath != "" {
		return cfg.DBPath
	}
	return "articles.db"
}
