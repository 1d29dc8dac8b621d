package fixture

import (
	"fmt"
	"math/rand"

	"github.com/fatih/color"
	"github.com/verity-data/fixgen/internal/sink"
)

// Table counts per pipeline, for progress reporting.
const (
	RAGTableCount = 4
	MLTableCount  = 4
)

// RAGCounts holds the record counts for the RAG volume pipeline.
type RAGCounts struct {
	Customers int
	Employees int
	Documents int
}

// MLCounts holds the record counts for the ML pipeline.
type MLCounts struct {
	Users       int
	Activities  int
	Models      int
	Predictions int
}

// RunRAG runs the RAG volume generators in dependency order, writing each
// table before the next generator runs: customers first (their emails feed
// document authorship), then employees, then documents with embeddings.
func RunRAG(r *rand.Rand, counts RAGCounts, out sink.Sink) error {
	color.Cyan("Generating %d customers...", counts.Customers)
	customers, emails := Customers(r, counts.Customers)
	if err := out.WriteTable(customers); err != nil {
		return fmt.Errorf("failed to write customers: %w", err)
	}

	color.Cyan("Generating %d employees...", counts.Employees)
	if err := out.WriteTable(Employees(r, counts.Employees)); err != nil {
		return fmt.Errorf("failed to write employees: %w", err)
	}

	color.Cyan("Generating %d documents and embeddings...", counts.Documents)
	docs, embeddings := Documents(r, counts.Documents, emails)
	if err := out.WriteTable(docs); err != nil {
		return fmt.Errorf("failed to write documents: %w", err)
	}
	if err := out.WriteTable(embeddings); err != nil {
		return fmt.Errorf("failed to write embeddings: %w", err)
	}

	return nil
}

// RunML runs the ML pipeline generators in dependency order: users and
// models produce the pools that activities and predictions sample from.
func RunML(r *rand.Rand, counts MLCounts, out sink.Sink) error {
	color.Cyan("Generating %d users...", counts.Users)
	users, userIDs := Users(r, counts.Users)
	if err := out.WriteTable(users); err != nil {
		return fmt.Errorf("failed to write users: %w", err)
	}

	color.Cyan("Generating %d activities...", counts.Activities)
	if err := out.WriteTable(Activities(r, counts.Activities, userIDs)); err != nil {
		return fmt.Errorf("failed to write user activity: %w", err)
	}

	color.Cyan("Generating %d models...", counts.Models)
	models, modelIDs := Models(r, counts.Models)
	if err := out.WriteTable(models); err != nil {
		return fmt.Errorf("failed to write model metadata: %w", err)
	}

	color.Cyan("Generating %d predictions...", counts.Predictions)
	if err := out.WriteTable(Predictions(r, counts.Predictions, modelIDs, userIDs)); err != nil {
		return fmt.Errorf("failed to write predictions: %w", err)
	}

	return nil
}
