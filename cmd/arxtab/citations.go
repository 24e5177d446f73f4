package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/matsen/arxtab/internal/citations"
	"github.com/matsen/arxtab/internal/config"
)

var citationsByTitle string

func init() {
	// Load .env file if present (for S2_API_KEY)
	_ = godotenv.Load()

	citationsCmd.Flags().StringVarP(&citationsByTitle, "title", "t", "", "Look up by title instead of arXiv id")
	rootCmd.AddCommand(citationsCmd)
}

var citationsCmd = &cobra.Command{
	Use:   "citations [arxiv-id]",
	Short: "Look up a citation count from Semantic Scholar",
	Long: `Look up the citation count of an article from the Semantic Scholar
Graph API. This is best effort: the lookup can miss papers that exist, and
a failure here never indicates a problem with harvested data.

A version suffix on the arXiv id ("v2") is ignored. With --title, the
article is located by a title search instead; the first hit whose title
matches is used.

Set S2_API_KEY (environment, .env, or s2_api_key in the config file) for
authenticated requests with higher rate limits.

Examples:
  arxtab citations 2101.00001
  arxtab citations --title "Quantum Error Correction with Surface Codes"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCitations,
}

// CitationsResult is the JSON output of the citations command.
type CitationsResult struct {
	ArXivID   string `json:"arxiv_id,omitempty"`
	Title     string `json:"title,omitempty"`
	Citations int    `json:"citations"`
}

func runCitations(cmd *cobra.Command, args []string) error {
	if (len(args) == 0) == (citationsByTitle == "") {
		return fmt.Errorf("must specify exactly one of an arXiv id or --title")
	}

	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	var opts []citations.ClientOption
	if cfg.S2APIKey != "" {
		opts = append(opts, citations.WithAPIKey(cfg.S2APIKey))
	}
	client := citations.NewClient(opts...)

	ctx := context.Background()
	result := CitationsResult{Title: citationsByTitle}

	if len(args) > 0 {
		result.ArXivID = args[0]
		result.Citations, err = client.CountByArXivID(ctx, args[0])
	} else {
		result.Citations, err = client.CountByTitle(ctx, citationsByTitle)
	}
	if err != nil {
		if citations.IsNotFound(err) {
			exitWithError(ExitNotFound, "no matching paper found")
		}
		exitWithError(ExitDataError, "citation lookup: %v", err)
	}

	if humanOutput {
		fmt.Printf("Cited by %d\n", result.Citations)
	} else {
		outputJSON(result)
	}
	return nil
}
