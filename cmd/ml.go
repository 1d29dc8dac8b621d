package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/verity-data/fixgen/internal/config"
	"github.com/verity-data/fixgen/internal/fixture"
	"github.com/verity-data/fixgen/internal/sink"
)

var mlCmd = &cobra.Command{
	Use:   "ml",
	Short: "Generate ML pipeline fixtures",
	Long: `
Generate the ML pipeline fixtures: users, user activity, model metadata,
and churn predictions.

Output files (under the configured output root):
  users.csv
  user_activity.csv
  model_metadata.csv
  predictions.csv

Every activity user_id and every prediction user_id/model_id resolves to a
generated row.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = cfg.ML.Out
		}

		r := newRand(cmd, cfg.Seed)
		if err := fixture.RunML(r, mlCounts(cfg), trackSink(sink.NewCSV(out), fixture.MLTableCount)); err != nil {
			return err
		}

		done("ML fixtures written to " + out)
		return nil
	},
}

func mlCounts(cfg *config.Config) fixture.MLCounts {
	return fixture.MLCounts{
		Users:       cfg.ML.Users,
		Activities:  cfg.ML.Activities,
		Models:      cfg.ML.Models,
		Predictions: cfg.ML.Predictions,
	}
}

func init() {
	rootCmd.AddCommand(mlCmd)
	mlCmd.Flags().String("out", "", "Output root directory (overrides config)")
}
