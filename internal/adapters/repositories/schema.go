package repositories

import (
	"collection-dashboard/internal/domain"
	"collection-dashboard/internal/platform/db"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Initialize the mirror schema. The statements are portable between
// PostgreSQL and SQLite.
func InitSchema(ctx context.Context, conn *sql.DB) error {
	if conn == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRecordsQuery := `
	CREATE TABLE IF NOT EXISTS collection_records (
		row_num INTEGER PRIMARY KEY,
		zone_code TEXT NOT NULL,
		ilot_number TEXT NOT NULL,
		agent_name TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		latitude TEXT NOT NULL,
		longitude TEXT NOT NULL,
		extra TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_collection_records_agent
	ON collection_records(agent_name);
	`

	statements := []string{
		createRecordsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// ImportTable replaces the mirror content with table. Cells stay raw text;
// columns outside the mapped ones are stored in extra as a JSON object.
// It returns the number of inserted rows.
func ImportTable(ctx context.Context, conn *sql.DB, driver string, table *domain.RawTable) (int, error) {
	if conn == nil {
		return 0, errors.New("import records: DB is nil")
	}
	if table == nil {
		return 0, errors.New("import records: table is nil")
	}

	index := make(map[string]int, len(table.Header))
	for i, h := range table.Header {
		index[h] = i
	}
	for _, c := range domain.CoreColumns {
		if _, ok := index[c]; !ok {
			return 0, fmt.Errorf("import records: missing column %q", c)
		}
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("import records: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM collection_records;`); err != nil {
		return 0, fmt.Errorf("import records: clear table: %w", err)
	}

	ph := make([]string, 9)
	for i := range ph {
		ph[i] = db.Placeholder(driver, i+1)
	}
	query := fmt.Sprintf(`
	INSERT INTO collection_records (
		row_num,
		zone_code,
		ilot_number,
		agent_name,
		start_date,
		end_date,
		latitude,
		longitude,
		extra
	)
	VALUES (%s);
	`, strings.Join(ph, ", "))

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("import records: prepare insert: %w", err)
	}
	defer stmt.Close()

	cell := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	for n, row := range table.Rows {
		extra := make(map[string]string)
		for i, h := range table.Header {
			if mappedColumns[h] {
				continue
			}
			if i < len(row) {
				extra[h] = row[i]
			} else {
				extra[h] = ""
			}
		}
		extraJSON, err := json.Marshal(extra)
		if err != nil {
			return 0, fmt.Errorf("import records: encode extra for row %d: %w", n+1, err)
		}

		_, err = stmt.ExecContext(ctx,
			n+1,
			cell(row, domain.ColumnZoneCode),
			cell(row, domain.ColumnIlot),
			cell(row, domain.ColumnAgentName),
			cell(row, domain.ColumnStartDate),
			cell(row, domain.ColumnEndDate),
			cell(row, domain.ColumnLatitude),
			cell(row, domain.ColumnLongitude),
			string(extraJSON),
		)
		if err != nil {
			return 0, fmt.Errorf("import records: insert row %d: %w", n+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("import records: commit tx: %w", err)
	}

	return len(table.Rows), nil
}

var mappedColumns = map[string]bool{
	domain.ColumnZoneCode:  true,
	domain.ColumnIlot:      true,
	domain.ColumnAgentName: true,
	domain.ColumnStartDate: true,
	domain.ColumnEndDate:   true,
	domain.ColumnLatitude:  true,
	domain.ColumnLongitude: true,
}
