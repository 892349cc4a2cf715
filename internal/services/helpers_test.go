package services

import (
	"collection-dashboard/internal/domain"
	"sync"
	"testing"
	"time"
)

var testHeader = []string{
	domain.ColumnZoneCode,
	domain.ColumnIlot,
	domain.ColumnAgentName,
	domain.ColumnStartDate,
	domain.ColumnEndDate,
	domain.ColumnLatitude,
	domain.ColumnLongitude,
	"Commune",
}

func row(zone, ilot, agent, start, end, lat, lon string) []string {
	return []string{zone, ilot, agent, start, end, lat, lon, "Cocody"}
}

func mustDataset(t *testing.T, rows ...[]string) *domain.Dataset {
	t.Helper()
	ds, err := BuildDataset(&domain.RawTable{Header: testHeader, Rows: rows}, time.Now())
	if err != nil {
		t.Fatalf("BuildDataset: %v", err)
	}
	return ds
}

func march(day int) time.Time {
	return time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
