package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matsen/arxtab/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change global configuration",
	Long: `Show or change configuration stored in ~/.config/arxtab/config.yml.

Keys:
  s2_api_key          - Semantic Scholar API key
  default_categories  - comma-separated category codes used when fetch has no -c
  max_results         - default result limit per request
  db_path             - default SQLite database path`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// ConfigResponse is the JSON output for config show. The API key is
// reported as present/absent, never echoed.
type ConfigResponse struct {
	S2APIKeySet       bool     `json:"s2_api_key_set"`
	DefaultCategories []string `json:"default_categories,omitempty"`
	MaxResults        int      `json:"max_results,omitempty"`
	DBPath            string   `json:"db_path,omitempty"`
	Path              string   `json:"path"`
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	resp := ConfigResponse{
		S2APIKeySet:       cfg.S2APIKey != "",
		DefaultCategories: cfg.DefaultCategories,
		MaxResults:        cfg.MaxResults,
		DBPath:            cfg.DBPath,
		Path:              config.Path(),
	}

	if humanOutput {
		fmt.Printf("Config file: %s\n", resp.Path)
		fmt.Printf("  s2_api_key set:     %v\n", resp.S2APIKeySet)
		fmt.Printf("  default_categories: %s\n", strings.Join(resp.DefaultCategories, ", "))
		fmt.Printf("  max_results:        %d\n", resp.MaxResults)
		fmt.Printf("  db_path:            %s\n", resp.DBPath)
	} else {
		outputJSON(resp)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	switch key {
	case "s2_api_key":
		cfg.S2APIKey = value
	case "default_categories":
		var cats []string
		for _, c := range strings.Split(value, ",") {
			if c = strings.TrimSpace(c); c != "" {
				cats = append(cats, c)
			}
		}
		cfg.DefaultCategories = cats
	case "max_results":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			exitWithError(ExitError, "max_results must be a non-negative integer")
		}
		cfg.MaxResults = n
	case "db_path":
		cfg.DBPath = config.ExpandTilde(value)
	default:
		exitWithError(ExitError, "unknown config key %q", key)
	}

	if err := config.Save(cfg); err != nil {
		exitWithError(ExitConfigError, "saving config: %v", err)
	}

	if humanOutput {
		fmt.Printf("Set %s\n", key)
	} else {
		outputJSON(map[string]string{"status": "ok", "key": key})
	}
	return nil
}
