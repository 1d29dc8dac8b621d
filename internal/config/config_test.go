package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.RAG.Out != "data" {
		t.Errorf("Expected rag.out to be 'data', got '%s'", cfg.RAG.Out)
	}
	if cfg.RAG.Customers != 100000 {
		t.Errorf("Expected rag.customers to be 100000, got %d", cfg.RAG.Customers)
	}
	if cfg.RAG.Employees != 1000 {
		t.Errorf("Expected rag.employees to be 1000, got %d", cfg.RAG.Employees)
	}
	if cfg.RAG.Documents != 50000 {
		t.Errorf("Expected rag.documents to be 50000, got %d", cfg.RAG.Documents)
	}

	if cfg.ML.Out != "data/raw" {
		t.Errorf("Expected ml.out to be 'data/raw', got '%s'", cfg.ML.Out)
	}
	if cfg.ML.Users != 1000 {
		t.Errorf("Expected ml.users to be 1000, got %d", cfg.ML.Users)
	}
	if cfg.ML.Activities != 5000 {
		t.Errorf("Expected ml.activities to be 5000, got %d", cfg.ML.Activities)
	}
	if cfg.ML.Models != 5 {
		t.Errorf("Expected ml.models to be 5, got %d", cfg.ML.Models)
	}
	if cfg.ML.Predictions != 2000 {
		t.Errorf("Expected ml.predictions to be 2000, got %d", cfg.ML.Predictions)
	}

	if cfg.Database.Provider != "postgresql" {
		t.Errorf("Expected database provider to be 'postgresql', got '%s'", cfg.Database.Provider)
	}
	if cfg.Database.URLEnv != "DATABASE_URL" {
		t.Errorf("Expected database url_env to be 'DATABASE_URL', got '%s'", cfg.Database.URLEnv)
	}
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	viper.Set("ml.users", 50)
	viper.Set("ml.out", "fixtures")
	viper.Set("seed", 42)
	defer viper.Reset()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ML.Users != 50 {
		t.Errorf("Expected ml.users to be 50, got %d", cfg.ML.Users)
	}
	if cfg.ML.Out != "fixtures" {
		t.Errorf("Expected ml.out to be 'fixtures', got '%s'", cfg.ML.Out)
	}
	if cfg.Seed != 42 {
		t.Errorf("Expected seed to be 42, got %d", cfg.Seed)
	}
	if cfg.ML.Activities != 5000 {
		t.Errorf("Expected ml.activities default of 5000, got %d", cfg.ML.Activities)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		RAG:      RAG{Out: "data", Customers: 10, Employees: 5, Documents: 20},
		ML:       ML{Out: "data/raw", Users: 5, Activities: 20, Models: 2, Predictions: 10},
		Database: Database{Provider: "postgresql", URLEnv: "DATABASE_URL"},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid config to pass, got: %v", err)
	}

	negative := valid
	negative.ML.Users = -1
	if err := negative.Validate(); err == nil {
		t.Error("Expected negative count to fail validation")
	}

	badProvider := valid
	badProvider.Database.Provider = "oracle"
	if err := badProvider.Validate(); err == nil {
		t.Error("Expected unsupported provider to fail validation")
	}

	emptyAuthors := valid
	emptyAuthors.RAG.Customers = 0
	if err := emptyAuthors.Validate(); err == nil {
		t.Error("Expected documents without customers to fail validation")
	}

	emptyUsers := valid
	emptyUsers.ML.Users = 0
	if err := emptyUsers.Validate(); err == nil {
		t.Error("Expected activities without users to fail validation")
	}

	emptyModels := valid
	emptyModels.ML.Models = 0
	if err := emptyModels.Validate(); err == nil {
		t.Error("Expected predictions without models to fail validation")
	}
}
