package main

import (
	"collection-dashboard/internal/adapters/repositories"
	"collection-dashboard/internal/config"
	"collection-dashboard/internal/platform/db"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTarget(t *testing.T) {
	cfg := &config.Config{DBPath: "data/app.db", DatabaseURL: "postgres://localhost/rge"}

	driver, dsn, err := resolveTarget(cfg, &options{target: "sqlite"})
	require.NoError(t, err)
	assert.Equal(t, db.DriverSQLite, driver)
	assert.Equal(t, "data/app.db", dsn)

	driver, dsn, err = resolveTarget(cfg, &options{target: "postgres", dsn: "postgres://other/rge"})
	require.NoError(t, err)
	assert.Equal(t, db.DriverPostgres, driver)
	assert.Equal(t, "postgres://other/rge", dsn)

	_, _, err = resolveTarget(&config.Config{}, &options{target: "postgres"})
	assert.Error(t, err)

	_, _, err = resolveTarget(cfg, &options{target: "mysql"})
	assert.Error(t, err)
}

func TestImportCommandFromFile(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "export.csv")
	dbPath := filepath.Join(dir, "mirror.db")

	content := "Code Zone de recensement,Numero de l'ilot,Nom et prenoms,Date debut collecte,Date fin collecte\n" +
		"Z01,1,Awa,2025-03-01,2025-03-02\n" +
		"Z02,2,Ali,2025-03-03,2025-03-05\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(content), 0o600))

	cfg := &config.Config{DBPath: dbPath}
	cmd := newRootCommand(context.Background(), logrus.NewEntry(logrus.New()), cfg)
	cmd.SetArgs([]string{"import", "--file", csvPath})
	require.NoError(t, cmd.Execute())

	conn, err := db.Open(db.DriverSQLite, dbPath)
	require.NoError(t, err)
	defer conn.Close()

	table, err := repositories.NewSQLRecordSource(conn).FetchTable(context.Background())
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Ali", table.Rows[1][2])
}

func TestImportCommandRequiresInput(t *testing.T) {
	cmd := newRootCommand(context.Background(), logrus.NewEntry(logrus.New()), &config.Config{DBPath: filepath.Join(t.TempDir(), "x.db")})
	cmd.SetArgs([]string{"import"})
	assert.Error(t, cmd.Execute())
}
