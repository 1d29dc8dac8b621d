package fixture

import (
	"math/rand"
	"testing"

	"github.com/verity-data/fixgen/internal/sink"
)

func TestRunRAGOrderAndPaths(t *testing.T) {
	mem := &sink.Memory{}
	r := rand.New(rand.NewSource(5))

	counts := RAGCounts{Customers: 20, Employees: 5, Documents: 10}
	if err := RunRAG(r, counts, mem); err != nil {
		t.Fatalf("RunRAG failed: %v", err)
	}

	wantPaths := []string{
		"customer/profiles.csv",
		"human_resources/employees.csv",
		"digital/documents.csv",
		"digital/embeddings.csv",
	}
	if len(mem.Tables) != RAGTableCount {
		t.Fatalf("Expected %d tables, got %d", RAGTableCount, len(mem.Tables))
	}
	for i, want := range wantPaths {
		if mem.Tables[i].Path != want {
			t.Errorf("Table %d: expected path %s, got %s", i, want, mem.Tables[i].Path)
		}
	}
}

func TestRunMLOrderAndPaths(t *testing.T) {
	mem := &sink.Memory{}
	r := rand.New(rand.NewSource(5))

	counts := MLCounts{Users: 5, Activities: 20, Models: 2, Predictions: 10}
	if err := RunML(r, counts, mem); err != nil {
		t.Fatalf("RunML failed: %v", err)
	}

	wantPaths := []string{"users.csv", "user_activity.csv", "model_metadata.csv", "predictions.csv"}
	if len(mem.Tables) != MLTableCount {
		t.Fatalf("Expected %d tables, got %d", MLTableCount, len(mem.Tables))
	}
	for i, want := range wantPaths {
		if mem.Tables[i].Path != want {
			t.Errorf("Table %d: expected path %s, got %s", i, want, mem.Tables[i].Path)
		}
	}
}

// Two runs with different seeds must agree on headers and row counts even
// though the values differ.
func TestShapeIdempotence(t *testing.T) {
	first := &sink.Memory{}
	second := &sink.Memory{}
	counts := MLCounts{Users: 10, Activities: 40, Models: 3, Predictions: 15}

	if err := RunML(rand.New(rand.NewSource(1)), counts, first); err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	if err := RunML(rand.New(rand.NewSource(2)), counts, second); err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	for i := range first.Tables {
		a, b := first.Tables[i], second.Tables[i]
		if len(a.Rows) != len(b.Rows) {
			t.Errorf("Table %s: row counts differ (%d vs %d)", a.Name, len(a.Rows), len(b.Rows))
		}
		if len(a.Header) != len(b.Header) {
			t.Fatalf("Table %s: header lengths differ", a.Name)
		}
		for j := range a.Header {
			if a.Header[j] != b.Header[j] {
				t.Errorf("Table %s: header field %d differs (%s vs %s)", a.Name, j, a.Header[j], b.Header[j])
			}
		}
	}
}
