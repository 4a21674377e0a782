package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prateeks/prepdeck/internal/backend"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a personalized study plan",
	Long:  "Asks the backend for a study plan built from your exam target, subjects and available study hours, and prints it to stdout.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("configure: %w", err)
		}

		exam, _ := cmd.Flags().GetString("exam")
		subjects, _ := cmd.Flags().GetStringSlice("subjects")
		weekday, _ := cmd.Flags().GetInt("weekday-hours")
		weekend, _ := cmd.Flags().GetInt("weekend-hours")

		profile := map[string]any{
			"exam_type":           exam,
			"subjects":            subjects,
			"weekday_study_hours": weekday,
			"weekend_study_hours": weekend,
		}

		client := backend.NewClient(cfg.Backend.URL, backend.WithTimeout(cfg.Timeout()))
		plan, err := client.GenerateStudyPlan(cmd.Context(), profile)
		if err != nil {
			return fmt.Errorf("generate study plan: %w", err)
		}

		fmt.Println(plan)
		return nil
	},
}

func init() {
	planCmd.Flags().String("exam", "JEE", "Target exam (JEE or NEET)")
	planCmd.Flags().StringSlice("subjects", []string{"Physics", "Chemistry", "Mathematics"}, "Subjects to cover")
	planCmd.Flags().Int("weekday-hours", 3, "Study hours available on weekdays")
	planCmd.Flags().Int("weekend-hours", 6, "Study hours available on weekends")
}
