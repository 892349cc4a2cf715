package services

import (
	"collection-dashboard/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDataset(t *testing.T) {
	table := &domain.RawTable{
		Header: testHeader,
		Rows: [][]string{
			row(" Z01 ", "12", "Kouassi Awa", "2025-03-01", "2025-03-04", "5.35", "-4.01"),
			{"Z02", "7", "Traore Ali", "pas de date"},
		},
	}

	ds, err := BuildDataset(table, time.Now())
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, testHeader, ds.Columns)

	first := ds.Records[0]
	assert.Equal(t, "Z01", first.ZoneCode)
	require.NotNil(t, first.DurationDays)
	assert.Equal(t, 3, *first.DurationDays)
	assert.Equal(t, map[string]string{"Commune": "Cocody"}, first.Extra)

	short := ds.Records[1]
	assert.Nil(t, short.StartDate, "unparseable date becomes missing")
	assert.Nil(t, short.EndDate)
	assert.Nil(t, short.DurationDays)
	assert.Equal(t, "", short.Latitude)
	assert.Equal(t, map[string]string{"Commune": ""}, short.Extra)
}

func TestBuildDatasetMissingColumn(t *testing.T) {
	table := &domain.RawTable{
		Header: []string{domain.ColumnZoneCode, domain.ColumnIlot, domain.ColumnAgentName, domain.ColumnStartDate},
	}

	_, err := BuildDataset(table, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ColumnEndDate)
}

func TestBuildDatasetWithoutCoordinates(t *testing.T) {
	table := &domain.RawTable{
		Header: domain.CoreColumns,
		Rows:   [][]string{{"Z01", "1", "A", "2025-03-01", "2025-03-02"}},
	}

	ds, err := BuildDataset(table, time.Now())
	require.NoError(t, err)
	assert.Empty(t, GeoPoints(ds, domain.DefaultFilter(march(31))))
}

func TestFingerprint(t *testing.T) {
	a := &domain.RawTable{Header: []string{"a", "b"}, Rows: [][]string{{"1", "2"}}}
	b := &domain.RawTable{Header: []string{"a", "b"}, Rows: [][]string{{"1", "2"}}}
	c := &domain.RawTable{Header: []string{"a", "b"}, Rows: [][]string{{"12", ""}}}

	assert.Equal(t, Fingerprint(a), Fingerprint(b))
	assert.NotEqual(t, Fingerprint(a), Fingerprint(c), "cell boundaries are part of the hash")
}
