package sheet

import (
	"collection-dashboard/internal/domain"
	"context"
	"sync"
)

// MockTableSource serves a fixed table (or error) and counts fetches.
type MockTableSource struct {
	mu    sync.Mutex
	table *domain.RawTable
	err   error
	calls int
}

func NewMockTableSource(header []string, rows [][]string) *MockTableSource {
	return &MockTableSource{table: &domain.RawTable{Header: header, Rows: rows}}
}

// Fail makes every following fetch return err.
func (m *MockTableSource) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// SetRows replaces the rows served by the next fetch.
func (m *MockTableSource) SetRows(rows [][]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.table = &domain.RawTable{Header: m.table.Header, Rows: rows}
}

func (m *MockTableSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *MockTableSource) FetchTable(ctx context.Context) (*domain.RawTable, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}

	rows := make([][]string, len(m.table.Rows))
	for i, r := range m.table.Rows {
		rows[i] = append([]string(nil), r...)
	}
	return &domain.RawTable{Header: append([]string(nil), m.table.Header...), Rows: rows}, nil
}
