package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodayUsesBusinessZone(t *testing.T) {
	// 18:30 UTC is already the next day in Jakarta.
	now := time.Date(2026, 3, 31, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-04-01", Today(now))
	assert.Equal(t, "2026-04", CurrentMonth(now))
}

func TestMonthBounds(t *testing.T) {
	start, end, err := MonthBounds("2026-12")
	require.NoError(t, err)
	assert.Equal(t, "2026-12-01", start)
	assert.Equal(t, "2027-01-01", end)

	_, _, err = MonthBounds("2026-13")
	assert.Error(t, err)
	_, _, err = MonthBounds("Desember")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-28", d)

	_, err = ParseDate("2026-02-30")
	assert.Error(t, err)
	_, err = ParseDate("28/02/2026")
	assert.Error(t, err)
}

func TestStartOfMonth(t *testing.T) {
	now := time.Date(2026, 7, 15, 10, 0, 0, 0, Location)
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, Location), StartOfMonth(now))
}
