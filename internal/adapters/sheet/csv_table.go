package sheet

import (
	"collection-dashboard/internal/domain"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReadTable parses CSV content into a raw table using the first row as header.
// Short rows are padded with empty cells and surplus cells are dropped so
// every row lines up with the header. Empty lines are skipped, but a row of
// empty cells is kept and counts as a record.
func ReadTable(r io.Reader) (*domain.RawTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("read csv: empty document")
		}
		return nil, fmt.Errorf("read csv: header: %w", err)
	}

	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		header[i] = strings.TrimSpace(h)
	}

	table := &domain.RawTable{Header: header, Rows: make([][]string, 0, 256)}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: line %d: %w", line, err)
		}
		row := make([]string, len(header))
		copy(row, rec)
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
