package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Seed     int64    `json:"seed" mapstructure:"seed"`
	RAG      RAG      `json:"rag" mapstructure:"rag"`
	ML       ML       `json:"ml" mapstructure:"ml"`
	Database Database `json:"database" mapstructure:"database"`
}

// RAG configures the RAG volume pipeline output root and record counts.
type RAG struct {
	Out       string `json:"out" mapstructure:"out"`
	Customers int    `json:"customers" mapstructure:"customers"`
	Employees int    `json:"employees" mapstructure:"employees"`
	Documents int    `json:"documents" mapstructure:"documents"`
}

// ML configures the ML pipeline output root and record counts.
type ML struct {
	Out         string `json:"out" mapstructure:"out"`
	Users       int    `json:"users" mapstructure:"users"`
	Activities  int    `json:"activities" mapstructure:"activities"`
	Models      int    `json:"models" mapstructure:"models"`
	Predictions int    `json:"predictions" mapstructure:"predictions"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Defaults match the fixed constants the pipelines shipped with.
	if cfg.RAG.Out == "" {
		cfg.RAG.Out = "data"
	}
	if cfg.RAG.Customers == 0 {
		cfg.RAG.Customers = 100000
	}
	if cfg.RAG.Employees == 0 {
		cfg.RAG.Employees = 1000
	}
	if cfg.RAG.Documents == 0 {
		cfg.RAG.Documents = 50000
	}
	if cfg.ML.Out == "" {
		cfg.ML.Out = "data/raw"
	}
	if cfg.ML.Users == 0 {
		cfg.ML.Users = 1000
	}
	if cfg.ML.Activities == 0 {
		cfg.ML.Activities = 5000
	}
	if cfg.ML.Models == 0 {
		cfg.ML.Models = 5
	}
	if cfg.ML.Predictions == 0 {
		cfg.ML.Predictions = 2000
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "postgresql"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}

	return &cfg, nil
}

// Validate catches configuration errors before any generator runs:
// negative counts, an unknown database provider, and count combinations
// that would leave a downstream generator sampling an empty pool.
func (c *Config) Validate() error {
	counts := map[string]int{
		"rag.customers":  c.RAG.Customers,
		"rag.employees":  c.RAG.Employees,
		"rag.documents":  c.RAG.Documents,
		"ml.users":       c.ML.Users,
		"ml.activities":  c.ML.Activities,
		"ml.models":      c.ML.Models,
		"ml.predictions": c.ML.Predictions,
	}
	for name, n := range counts {
		if n < 0 {
			return fmt.Errorf("%s cannot be negative (got %d)", name, n)
		}
	}

	if c.RAG.Documents > 0 && c.RAG.Customers == 0 {
		return fmt.Errorf("rag.documents requires at least one customer for authorship")
	}
	if c.ML.Activities > 0 && c.ML.Users == 0 {
		return fmt.Errorf("ml.activities requires at least one user")
	}
	if c.ML.Predictions > 0 && (c.ML.Users == 0 || c.ML.Models == 0) {
		return fmt.Errorf("ml.predictions requires at least one user and one model")
	}

	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	return nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}
