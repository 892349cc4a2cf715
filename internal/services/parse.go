package services

import (
	"collection-dashboard/internal/domain"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// BuildDataset turns a raw sheet into typed records.
// Missing core columns are the only error; every cell-level problem (bad
// date, short row) degrades to a missing value instead.
func BuildDataset(table *domain.RawTable, loadedAt time.Time) (*domain.Dataset, error) {
	if table == nil {
		return nil, fmt.Errorf("build dataset: table is nil")
	}

	index := make(map[string]int, len(table.Header))
	for i, h := range table.Header {
		index[h] = i
	}

	var missing []string
	for _, c := range domain.CoreColumns {
		if _, ok := index[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("build dataset: missing required column(s): %s", strings.Join(missing, ", "))
	}

	known := make(map[string]struct{}, len(domain.CoreColumns)+2)
	for _, c := range domain.CoreColumns {
		known[c] = struct{}{}
	}
	known[domain.ColumnLatitude] = struct{}{}
	known[domain.ColumnLongitude] = struct{}{}

	cell := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	records := make([]domain.CollectionRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		start := domain.ParseDate(cell(row, domain.ColumnStartDate))
		end := domain.ParseDate(cell(row, domain.ColumnEndDate))

		rec := domain.CollectionRecord{
			ZoneCode:     strings.TrimSpace(cell(row, domain.ColumnZoneCode)),
			IlotNumber:   strings.TrimSpace(cell(row, domain.ColumnIlot)),
			AgentName:    strings.TrimSpace(cell(row, domain.ColumnAgentName)),
			StartDate:    start,
			EndDate:      end,
			Latitude:     cell(row, domain.ColumnLatitude),
			Longitude:    cell(row, domain.ColumnLongitude),
			DurationDays: domain.DurationDays(start, end),
		}

		for i, h := range table.Header {
			if _, ok := known[h]; ok {
				continue
			}
			if rec.Extra == nil {
				rec.Extra = make(map[string]string)
			}
			if i < len(row) {
				rec.Extra[h] = row[i]
			} else {
				rec.Extra[h] = ""
			}
		}

		records = append(records, rec)
	}

	return &domain.Dataset{
		Columns:     append([]string(nil), table.Header...),
		Records:     records,
		Fingerprint: Fingerprint(table),
		LoadedAt:    loadedAt,
	}, nil
}

// Fingerprint hashes the raw table so two refreshes can be compared cheaply.
func Fingerprint(table *domain.RawTable) uint64 {
	h := xxhash.New()
	write := func(cells []string) {
		for _, c := range cells {
			_, _ = h.WriteString(c)
			_, _ = h.Write([]byte{0x1f})
		}
		_, _ = h.Write([]byte{0x1e})
	}

	write(table.Header)
	for _, row := range table.Rows {
		write(row)
	}
	return h.Sum64()
}
