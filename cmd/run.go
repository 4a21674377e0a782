package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prateeks/prepdeck/internal/app"
	"github.com/prateeks/prepdeck/internal/assistant"
	"github.com/prateeks/prepdeck/internal/backend"
	"github.com/prateeks/prepdeck/internal/history"
	"github.com/prateeks/prepdeck/internal/resources"
)

// runApp loads configuration, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("configure: %w", err)
	}

	client := backend.NewClient(cfg.Backend.URL, backend.WithTimeout(cfg.Timeout()))

	opts := app.Options{
		Backend:   client,
		History:   history.NewStore(),
		Resources: resources.NewService(client, nil),
		Assistant: assistant.New(client),
	}

	return app.Run(opts)
}
