package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/verity-data/fixgen/internal/config"
	"github.com/verity-data/fixgen/internal/fixture"
	"github.com/verity-data/fixgen/internal/sink"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Generate fixtures for both pipelines",
	Long: `
Run the RAG volume pipeline and the ML pipeline in sequence, writing each
pipeline's tables under its own configured output root.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		r := newRand(cmd, cfg.Seed)

		if err := fixture.RunRAG(r, ragCounts(cfg), trackSink(sink.NewCSV(cfg.RAG.Out), fixture.RAGTableCount)); err != nil {
			return err
		}
		if err := fixture.RunML(r, mlCounts(cfg), trackSink(sink.NewCSV(cfg.ML.Out), fixture.MLTableCount)); err != nil {
			return err
		}

		done("All fixtures written")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(allCmd)
}
