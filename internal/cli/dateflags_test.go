package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/bladr/internal/diary"
)

var testNow = time.Date(2026, 9, 1, 14, 45, 30, 0, time.Local)

func TestResolveTimestampQuickFlow(t *testing.T) {
	ts, err := resolveTimestamp(testNow, "", "")
	require.NoError(t, err)
	assert.True(t, ts.IsZero(), "quick-log leaves the timestamp for the editor")
}

func TestResolveTimestampDateOnly(t *testing.T) {
	ts, err := resolveTimestamp(testNow, "2026-08-30", "")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-30", diary.DayKey(ts))
	assert.Equal(t, 14, ts.Hour())
	assert.Equal(t, 45, ts.Minute())
	assert.Zero(t, ts.Second())
}

func TestResolveTimestampTimeOnly(t *testing.T) {
	ts, err := resolveTimestamp(testNow, "", "07:05")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", diary.DayKey(ts))
	assert.Equal(t, 7, ts.Hour())
	assert.Equal(t, 5, ts.Minute())
}

func TestResolveTimestampRejectsFuture(t *testing.T) {
	_, err := resolveTimestamp(testNow, "", "23:59")
	assert.ErrorContains(t, err, "future")

	_, err = resolveTimestamp(testNow, "2026-09-02", "08:00")
	assert.ErrorContains(t, err, "future")
}

func TestResolveTimestampRejectsBadInput(t *testing.T) {
	_, err := resolveTimestamp(testNow, "30/08/2026", "")
	assert.Error(t, err)

	_, err = resolveTimestamp(testNow, "", "7.45pm")
	assert.Error(t, err)
}

func TestParseViewDate(t *testing.T) {
	day, err := parseViewDate(testNow, "")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", diary.DayKey(day))

	day, err = parseViewDate(testNow, "2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-30", diary.DayKey(day))
}

func TestParseViewDateRejects(t *testing.T) {
	_, err := parseViewDate(testNow, "2026-09-02")
	assert.ErrorContains(t, err, "future")

	_, err = parseViewDate(testNow, "Aug 30")
	assert.ErrorContains(t, err, "YYYY-MM-DD")
}
