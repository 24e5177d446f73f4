package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matsen/arxtab/internal/pdf"
)

func init() {
	rootCmd.AddCommand(pagesCmd)
}

var pagesCmd = &cobra.Command{
	Use:   "pages <file.pdf>",
	Short: "Count the pages of a local PDF",
	Long: `Count the pages of a local PDF file.

Comment-derived page counts are whatever the authors wrote; this reports
what the document actually contains, for spot-checking.

Examples:
  arxtab pages paper.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runPages,
}

// PagesResult is the JSON output of the pages command.
type PagesResult struct {
	Path  string `json:"path"`
	Pages int    `json:"pages"`
}

func runPages(cmd *cobra.Command, args []string) error {
	count, err := pdf.PageCount(args[0])
	if err != nil {
		exitWithError(ExitDataError, "reading PDF: %v", err)
	}

	if humanOutput {
		fmt.Printf("%s: %d pages\n", args[0], count)
	} else {
		outputJSON(PagesResult{Path: args[0], Pages: count})
	}
	return nil
}
