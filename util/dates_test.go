package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodayFormat(t *testing.T) {
	today := Today()
	parsed, err := time.Parse(time.DateOnly, today)
	require.NoError(t, err)
	assert.Equal(t, today, parsed.Format(time.DateOnly))
}

func TestDaysAgo(t *testing.T) {
	base, err := time.Parse(time.DateOnly, Today())
	require.NoError(t, err)
	got, err := time.Parse(time.DateOnly, DaysAgo(30))
	require.NoError(t, err)
	assert.Equal(t, -30*24*time.Hour, got.Sub(base))
}

func TestParseDate(t *testing.T) {
	plain, err := ParseDate("2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, 2026, plain.Year())

	stamped, err := ParseDate("2026-08-30T14:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 14, stamped.Hour())

	_, err = ParseDate("08/30/2026")
	assert.Error(t, err)
}
