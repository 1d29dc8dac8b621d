package sink

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Table is an ordered, same-shaped record set ready for serialization.
// Rows hold already-formatted field values in header order.
type Table struct {
	Name   string
	Path   string // output path relative to the sink root
	Header []string
	Rows   [][]string
}

// Sink consumes generated tables. Generation order is the only mechanism
// enforcing referential consistency, so pipelines hand each table to the
// sink before the next generator runs.
type Sink interface {
	WriteTable(t Table) error
}

// CSV writes each table as a delimited file under Root, creating parent
// directories as needed and overwriting any existing file.
type CSV struct {
	Root string
}

func NewCSV(root string) *CSV {
	return &CSV{Root: root}
}

func (s *CSV) WriteTable(t Table) error {
	filePath := filepath.Join(s.Root, t.Path)

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", t.Name, err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file for %s: %w", t.Name, err)
	}

	writer := csv.NewWriter(file)

	if err := writer.Write(t.Header); err != nil {
		file.Close()
		return fmt.Errorf("failed to write header for %s: %w", t.Name, err)
	}

	for _, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			file.Close()
			return fmt.Errorf("failed to write row for %s: %w", t.Name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return fmt.Errorf("failed to flush %s: %w", t.Name, err)
	}

	return file.Close()
}

// Memory collects tables in order instead of writing them, for database
// loading and for tests.
type Memory struct {
	Tables []Table
}

func (m *Memory) WriteTable(t Table) error {
	m.Tables = append(m.Tables, t)
	return nil
}
