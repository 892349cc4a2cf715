package db

import (
	"path/filepath"
	"testing"
)

func TestPlaceholder(t *testing.T) {
	if got := Placeholder(DriverPostgres, 3); got != "$3" {
		t.Fatalf("postgres placeholder = %q, want $3", got)
	}
	if got := Placeholder(DriverSQLite, 3); got != "?" {
		t.Fatalf("sqlite placeholder = %q, want ?", got)
	}
}

func TestOpenSQLite(t *testing.T) {
	conn, err := Open(DriverSQLite, filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer conn.Close()

	if got := conn.Stats().MaxOpenConnections; got != 1 {
		t.Fatalf("MaxOpenConnections = %d, want 1", got)
	}
}

func TestOpenEmptyDSN(t *testing.T) {
	if _, err := Open(DriverSQLite, " "); err == nil {
		t.Fatal("expected an error for an empty dsn")
	}
}
