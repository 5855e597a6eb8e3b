package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthtracker/internal/domain"
)

func TestParseDay(t *testing.T) {
	d, err := domain.ParseDay("2025-03-09")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), d)

	_, err = domain.ParseDay("09/03/2025")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestDay_KeepsCalendarDateOfLocation(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*3600)
	late := time.Date(2025, 1, 31, 23, 30, 0, 0, loc)
	assert.Equal(t, "2025-01-31", domain.FormatDay(domain.Day(late)))
}

func TestDaysInclusive(t *testing.T) {
	tests := []struct {
		start, end string
		want       int
	}{
		{"2025-01-01", "2025-01-07", 7},
		{"2025-01-01", "2025-01-01", 1},
		{"2025-01-02", "2025-01-01", 0},
		{"2025-01-10", "2025-01-01", -8},
		{"2024-02-28", "2024-03-01", 3},
		{"2025-03-29", "2025-03-31", 3},
		{"1900-01-01", "2300-01-01", 146098},
		{"2300-01-01", "1900-01-01", -146096},
		{"0001-01-01", "9999-12-31", 3652059},
	}
	for _, tc := range tests {
		t.Run(tc.start+".."+tc.end, func(t *testing.T) {
			got := domain.DaysInclusive(domain.MustParseDay(tc.start), domain.MustParseDay(tc.end))
			assert.Equal(t, tc.want, got)
		})
	}
}
