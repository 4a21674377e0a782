package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prateeks/prepdeck/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "prepdeck",
	Short: "Entrance exam prep from your terminal",
	Long:  "PrepDeck is a terminal client for JEE and NEET preparation: timed tests, scoring with topic analysis, study resources and an AI assistant.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: $XDG_CONFIG_HOME/prepdeck/config.yaml)")
	rootCmd.PersistentFlags().String("backend-url", "", "Backend base URL (overrides config and PREPDECK_BACKEND_URL)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(askCmd)
}

// loadConfig resolves the configuration using --config and --backend-url
// flags on top of the file and environment.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	if url, _ := cmd.Flags().GetString("backend-url"); url != "" {
		cfg.Backend.URL = url
	}
	return cfg, nil
}
