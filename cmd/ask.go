package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prateeks/prepdeck/internal/assistant"
	"github.com/prateeks/prepdeck/internal/backend"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the study assistant a one-off question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("configure: %w", err)
		}

		client := backend.NewClient(cfg.Backend.URL, backend.WithTimeout(cfg.Timeout()))
		bot := assistant.New(client)

		fmt.Println(bot.Reply(cmd.Context(), strings.Join(args, " ")))
		return nil
	},
}
