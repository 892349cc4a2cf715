package main

import (
	"collection-dashboard/internal/adapters/repositories"
	"collection-dashboard/internal/adapters/sheet"
	"collection-dashboard/internal/config"
	"collection-dashboard/internal/domain"
	"collection-dashboard/internal/platform/db"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	target    string
	dsn       string
	file      string
	fromSheet bool
	sheetURL  string
}

func newRootCommand(ctx context.Context, log *logrus.Entry, cfg *config.Config) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "dbtool",
		Short:         "Manage the collection records mirror database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.target, "target", config.SourceSQLite, "Mirror database kind: sqlite or postgres")
	cmd.PersistentFlags().StringVar(&opts.dsn, "dsn", "", "Database DSN; defaults to DB_PATH (sqlite) or DATABASE_URL (postgres)")

	cmd.AddCommand(newInitCommand(ctx, log, cfg, opts))
	cmd.AddCommand(newImportCommand(ctx, log, cfg, opts))
	return cmd
}

func newInitCommand(ctx context.Context, log *logrus.Entry, cfg *config.Config, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the mirror schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, _, err := openTarget(cfg, opts)
			if err != nil {
				return err
			}
			defer conn.Close()

			log.Info("Initializing database schema...")
			if err := repositories.InitSchema(ctx, conn); err != nil {
				return fmt.Errorf("schema initialization failed: %w", err)
			}
			log.Info("Schema ready.")
			return nil
		},
	}
}

func newImportCommand(ctx context.Context, log *logrus.Entry, cfg *config.Config, opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the mirror content with a CSV export",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := readImportTable(ctx, cfg, opts)
			if err != nil {
				return err
			}

			conn, driver, err := openTarget(cfg, opts)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := repositories.InitSchema(ctx, conn); err != nil {
				return fmt.Errorf("schema initialization failed: %w", err)
			}

			n, err := repositories.ImportTable(ctx, conn, driver, table)
			if err != nil {
				return err
			}
			log.WithField("rows", n).Info("Import complete.")
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.file, "file", "", "Path to a CSV export to import")
	cmd.Flags().BoolVar(&opts.fromSheet, "from-sheet", false, "Download the CSV export from SHEET_CSV_URL instead of reading a file")
	cmd.Flags().StringVar(&opts.sheetURL, "sheet-url", "", "Override SHEET_CSV_URL for --from-sheet")
	return cmd
}

func readImportTable(ctx context.Context, cfg *config.Config, opts *options) (*domain.RawTable, error) {
	switch {
	case opts.fromSheet && opts.file != "":
		return nil, errors.New("--file and --from-sheet are mutually exclusive")

	case opts.fromSheet:
		url := opts.sheetURL
		if url == "" {
			url = cfg.SheetURL
		}
		src, err := sheet.NewHTTPCSVSource(url, cfg.FetchTimeout)
		if err != nil {
			return nil, err
		}
		return src.FetchTable(ctx)

	case opts.file != "":
		f, err := os.Open(opts.file)
		if err != nil {
			return nil, fmt.Errorf("open %q: %w", opts.file, err)
		}
		defer f.Close()
		return sheet.ReadTable(f)

	default:
		return nil, errors.New("one of --file or --from-sheet is required")
	}
}

// openTarget resolves the driver and DSN from the flags, falling back to
// the environment configuration.
func openTarget(cfg *config.Config, opts *options) (*sql.DB, string, error) {
	driver, dsn, err := resolveTarget(cfg, opts)
	if err != nil {
		return nil, "", err
	}
	conn, err := db.Open(driver, dsn)
	if err != nil {
		return nil, "", err
	}
	return conn, driver, nil
}

func resolveTarget(cfg *config.Config, opts *options) (driver, dsn string, err error) {
	switch opts.target {
	case config.SourceSQLite:
		driver, dsn = db.DriverSQLite, cfg.DBPath
	case config.SourcePostgres:
		driver, dsn = db.DriverPostgres, cfg.DatabaseURL
	default:
		return "", "", fmt.Errorf("unknown --target %q (want %s or %s)", opts.target, config.SourceSQLite, config.SourcePostgres)
	}

	if opts.dsn != "" {
		dsn = opts.dsn
	}
	if dsn == "" {
		return "", "", fmt.Errorf("no DSN for target %s: set --dsn or the environment", opts.target)
	}
	return driver, dsn, nil
}
