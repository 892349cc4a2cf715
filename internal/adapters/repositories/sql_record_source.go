package repositories

import (
	"collection-dashboard/internal/domain"
	"collection-dashboard/internal/platform/obs"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// SQL-backed implementation of the TableSource port, reading the mirror
// written by ImportTable.
type SQLRecordSource struct{ DB *sql.DB }

func NewSQLRecordSource(conn *sql.DB) *SQLRecordSource {
	return &SQLRecordSource{DB: conn}
}

// FetchTable rebuilds the sheet layout: the mapped columns first, then the
// extra columns in name order.
func (s *SQLRecordSource) FetchTable(ctx context.Context) (_ *domain.RawTable, err error) {
	defer obs.Time(ctx, "sql.FetchTable")(&err)

	if s.DB == nil {
		return nil, errors.New("sql record source: DB is nil")
	}

	query := `
	SELECT
		zone_code,
		ilot_number,
		agent_name,
		start_date,
		end_date,
		latitude,
		longitude,
		extra
	FROM collection_records
	ORDER BY row_num;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch records: query collection_records table: %w", err)
	}
	defer rows.Close()

	type scanned struct {
		cells []string
		extra map[string]string
	}

	var all []scanned
	extraKeys := map[string]struct{}{}
	for rows.Next() {
		cells := make([]string, 7)
		var extraJSON string
		err := rows.Scan(&cells[0], &cells[1], &cells[2], &cells[3], &cells[4], &cells[5], &cells[6], &extraJSON)
		if err != nil {
			return nil, fmt.Errorf("fetch records: scan row: %w", err)
		}

		extra := map[string]string{}
		if extraJSON != "" {
			if err := json.Unmarshal([]byte(extraJSON), &extra); err != nil {
				return nil, fmt.Errorf("fetch records: decode extra: %w", err)
			}
		}
		for k := range extra {
			extraKeys[k] = struct{}{}
		}
		all = append(all, scanned{cells: cells, extra: extra})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch records: row iteration: %w", err)
	}

	keys := make([]string, 0, len(extraKeys))
	for k := range extraKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	header := append(append([]string(nil), domain.CoreColumns...), domain.ColumnLatitude, domain.ColumnLongitude)
	header = append(header, keys...)

	table := &domain.RawTable{Header: header, Rows: make([][]string, 0, len(all))}
	for _, r := range all {
		row := r.cells
		for _, k := range keys {
			row = append(row, r.extra[k])
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
