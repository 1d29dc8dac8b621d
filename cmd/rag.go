package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/verity-data/fixgen/internal/config"
	"github.com/verity-data/fixgen/internal/fixture"
	"github.com/verity-data/fixgen/internal/sink"
)

var ragCmd = &cobra.Command{
	Use:   "rag",
	Short: "Generate RAG volume pipeline fixtures",
	Long: `
Generate the RAG volume pipeline fixtures: customer profiles, employees,
and documents with one embedding per document.

Output files (under the configured output root):
  customer/profiles.csv
  human_resources/employees.csv
  digital/documents.csv
  digital/embeddings.csv

Document author emails resolve to generated customer emails or the internal
sentinel address, split roughly 50/50.`,
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
			out = cfg.RAG.Out
		}

		r := newRand(cmd, cfg.Seed)
		if err := fixture.RunRAG(r, ragCounts(cfg), trackSink(sink.NewCSV(out), fixture.RAGTableCount)); err != nil {
			return err
		}

		done("RAG fixtures written to " + out)
		return nil
	},
}

func ragCounts(cfg *config.Config) fixture.RAGCounts {
	return fixture.RAGCounts{
		Customers: cfg.RAG.Customers,
		Employees: cfg.RAG.Employees,
		Documents: cfg.RAG.Documents,
	}
}

func init() {
	rootCmd.AddCommand(ragCmd)
	ragCmd.Flags().String("out", "", "Output root directory (overrides config)")
}
