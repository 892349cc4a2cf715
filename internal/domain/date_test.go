package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
		ok   bool
	}{
		{"2025-03-04", time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), true},
		{" 2025-03-04 ", time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), true},
		{"2025-03-04 14:30:00", time.Date(2025, 3, 4, 14, 30, 0, 0, time.UTC), true},
		{"2025-03-04T14:30:00", time.Date(2025, 3, 4, 14, 30, 0, 0, time.UTC), true},
		{"2025/03/04", time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), true},
		{"03/04/2025", time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), true},
		{"3/4/2025", time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), true},
		{"25/03/2025", time.Date(2025, 3, 25, 0, 0, 0, 0, time.UTC), true},
		{"25/03/2025 08:15", time.Date(2025, 3, 25, 8, 15, 0, 0, time.UTC), true},
		{"25.03.2025", time.Date(2025, 3, 25, 0, 0, 0, 0, time.UTC), true},
		{"3/4/2025 10:00:00", time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC), true},
		{"3/4/2025 10:00", time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC), true},
		{"25/3/2025 10:00:00", time.Date(2025, 3, 25, 10, 0, 0, 0, time.UTC), true},
		{"25/3/2025 10:00", time.Date(2025, 3, 25, 10, 0, 0, 0, time.UTC), true},
		{"04/03/2025 10:00:00", time.Date(2025, 4, 3, 10, 0, 0, 0, time.UTC), true},
		{"2025-03-04 10:00:00+00:00", time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC), true},
		{"2025-03-04 10:00:00+02:00", time.Date(2025, 3, 4, 8, 0, 0, 0, time.UTC), true},
		{"", time.Time{}, false},
		{"pas de date", time.Time{}, false},
		{"2025-13-45", time.Time{}, false},
	}

	for _, tt := range tests {
		got := ParseDate(tt.raw)
		if !tt.ok {
			assert.Nil(t, got, "ParseDate(%q)", tt.raw)
			continue
		}
		require.NotNil(t, got, "ParseDate(%q)", tt.raw)
		assert.True(t, got.Equal(tt.want), "ParseDate(%q) = %v, want %v", tt.raw, *got, tt.want)
	}
}

func TestDurationDays(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	partial := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)
	before := time.Date(2025, 2, 28, 12, 0, 0, 0, time.UTC)

	got := DurationDays(&start, &end)
	require.NotNil(t, got)
	assert.Equal(t, 3, *got)

	got = DurationDays(&start, &partial)
	require.NotNil(t, got)
	assert.Equal(t, 3, *got)

	got = DurationDays(&start, &before)
	require.NotNil(t, got)
	assert.Equal(t, -1, *got)

	assert.Nil(t, DurationDays(nil, &end))
	assert.Nil(t, DurationDays(&start, nil))
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"5.3456", 5.3456, true},
		{" -4.01 ", -4.01, true},
		{"7", 7, true},
		{"abc", 0, false},
		{"", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"5,34", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseCoordinate(tt.raw)
		assert.Equal(t, tt.ok, ok, "ParseCoordinate(%q)", tt.raw)
		assert.Equal(t, tt.want, got, "ParseCoordinate(%q)", tt.raw)
	}
}
