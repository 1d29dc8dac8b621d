package dbload

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/verity-data/fixgen/internal/sink"
)

// Load writes generated tables into a database instead of CSV files.
// Each table is dropped, recreated with all-TEXT columns and filled in
// generation order inside its own transaction, so foreign references
// resolve exactly as they do in the file output.
func Load(ctx context.Context, db *sql.DB, provider string, tables []sink.Table) error {
	for _, t := range tables {
		color.Cyan("Loading %d rows into %s...", len(t.Rows), t.Name)
		if err := loadTable(ctx, db, provider, t); err != nil {
			return fmt.Errorf("failed to load table %s: %w", t.Name, err)
		}
	}
	return nil
}

func loadTable(ctx context.Context, db *sql.DB, provider string, t sink.Table) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+t.Name); err != nil {
		return fmt.Errorf("failed to drop table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, createSQL(t.Name, t.Header)); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertSQL(provider, t.Name, t.Header))
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	args := make([]interface{}, len(t.Header))
	for _, row := range t.Rows {
		for i, v := range row {
			args[i] = v
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("failed to insert row: %w", err)
		}
	}

	return tx.Commit()
}

func createSQL(table string, columns []string) string {
	defs := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = col + " TEXT"
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", table, strings.Join(defs, ", "))
}

func insertSQL(provider, table string, columns []string) string {
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = placeholder(provider, i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)
}

// placeholder returns the parameter marker for the provider's driver:
// $N for postgres, ? elsewhere.
func placeholder(provider string, n int) string {
	switch provider {
	case "postgresql", "postgres":
		return fmt.Sprintf("$%d", n)
	default:
		return "?"
	}
}
