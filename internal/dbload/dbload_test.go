package dbload

import "testing"

func TestCreateSQL(t *testing.T) {
	got := createSQL("users", []string{"user_id", "email"})
	want := "CREATE TABLE users (user_id TEXT, email TEXT)"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestInsertSQLPostgres(t *testing.T) {
	got := insertSQL("postgresql", "users", []string{"user_id", "email", "region"})
	want := "INSERT INTO users (user_id, email, region) VALUES ($1, $2, $3)"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestInsertSQLQuestionMark(t *testing.T) {
	for _, provider := range []string{"mysql", "sqlite", "sqlite3"} {
		got := insertSQL(provider, "users", []string{"user_id", "email"})
		want := "INSERT INTO users (user_id, email) VALUES (?, ?)"
		if got != want {
			t.Errorf("%s: expected %q, got %q", provider, want, got)
		}
	}
}
