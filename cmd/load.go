package cmd

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/verity-data/fixgen/internal/config"
	"github.com/verity-data/fixgen/internal/dbload"
	"github.com/verity-data/fixgen/internal/fixture"
	"github.com/verity-data/fixgen/internal/sink"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

var loadPipeline string

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Generate fixtures and load them into a database",
	Long: `
Generate a pipeline's tables and insert them into a database instead of
writing CSV files. Tables are created with TEXT columns and filled in
dependency order, so foreign references resolve in the database exactly as
they do in the files.

The connection URL is read from the environment variable named by
database.url_env in the config (default DATABASE_URL).

Examples:
  fixgen load --pipeline ml
  fixgen load --pipeline rag`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		r := newRand(cmd, cfg.Seed)
		mem := &sink.Memory{}

		switch loadPipeline {
		case "rag":
			err = fixture.RunRAG(r, ragCounts(cfg), mem)
		case "ml":
			err = fixture.RunML(r, mlCounts(cfg), mem)
		default:
			return fmt.Errorf("unknown pipeline: %s (expected rag or ml)", loadPipeline)
		}
		if err != nil {
			return err
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		db, err := openDB(cfg.Database.Provider, dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		if err := dbload.Load(cmd.Context(), db, cfg.Database.Provider, mem.Tables); err != nil {
			return err
		}

		done(fmt.Sprintf("%s fixtures loaded into %s database", loadPipeline, cfg.Database.Provider))
		return nil
	},
}

func openDB(provider, url string) (*sql.DB, error) {
	var driverName string
	switch provider {
	case "postgresql", "postgres":
		driverName = "pgx"
	case "mysql":
		driverName = "mysql"
	case "sqlite", "sqlite3":
		driverName = "sqlite3"
	default:
		driverName = "pgx"
	}

	db, err := sql.Open(driverName, url)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().StringVar(&loadPipeline, "pipeline", "ml", "Pipeline to load (rag or ml)")
}
