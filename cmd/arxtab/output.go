package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/matsen/arxtab/internal/record"
)

// Title truncation length for human-readable listings.
const listTitleMaxLen = 70

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON)
// and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// printRecordSummary prints one record in human-readable list format.
func printRecordSummary(num int, rec record.Record) {
	fmt.Printf("[%d] %s\n", num, rec.ArXivID)
	fmt.Printf("    %s\n", truncateString(rec.Title, listTitleMaxLen))
	if len(rec.Authors) > 0 {
		fmt.Printf("    %s\n", formatAuthorsShort(rec.Authors, 3))
	}
	fmt.Printf("    published %04d-%02d-%02d", rec.PubYear, rec.PubMonth, rec.PubDay)
	if rec.Pages != nil {
		fmt.Printf(", %d pages", *rec.Pages)
	}
	if rec.Figures != nil {
		fmt.Printf(", %d figures", *rec.Figures)
	}
	fmt.Println()
	fmt.Println()
}

// formatAuthorsShort formats authors with "et al." for more than maxCount.
func formatAuthorsShort(authors []string, maxCount int) string {
	if len(authors) == 0 {
		return ""
	}
	out := ""
	for i, a := range authors {
		if i >= maxCount {
			out += ", et al."
			break
		}
		if i > 0 {
			out += ", "
		}
		out += a
	}
	return out
}
