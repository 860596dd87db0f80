package diary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayKey(t *testing.T) {
	ts := time.Date(2026, 9, 1, 23, 59, 59, 0, time.Local)
	assert.Equal(t, "2026-09-01", DayKey(ts))
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	night := time.Date(2026, 9, 1, 23, 59, 0, 0, time.Local)
	nextDay := time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local)

	assert.True(t, SameDay(morning, night))
	assert.False(t, SameDay(night, nextDay))
}

func TestCombineDateTime(t *testing.T) {
	ts, err := CombineDateTime("2026-08-30", "07:45", time.Local)
	require.NoError(t, err)

	assert.Equal(t, 2026, ts.Year())
	assert.Equal(t, time.August, ts.Month())
	assert.Equal(t, 30, ts.Day())
	assert.Equal(t, 7, ts.Hour())
	assert.Equal(t, 45, ts.Minute())
	assert.Zero(t, ts.Second())
	assert.Zero(t, ts.Nanosecond())
}

func TestCombineDateTimeInvalid(t *testing.T) {
	_, err := CombineDateTime("30/08/2026", "07:45", time.Local)
	assert.Error(t, err)

	_, err = CombineDateTime("2026-08-30", "7.45pm", time.Local)
	assert.Error(t, err)
}

func TestCaffeineTable(t *testing.T) {
	tests := []struct {
		drink    string
		caffeine bool
	}{
		{"Water", false},
		{"Coffee", true},
		{"Tea", true},
		{"Juice", false},
		{"Soda", true},
		{"Alcohol", false},
		{"Milk", false},
	}
	for _, tt := range tests {
		t.Run(tt.drink, func(t *testing.T) {
			require.True(t, ValidDrinkType(tt.drink))
			assert.Equal(t, tt.caffeine, CaffeineFor(tt.drink))
		})
	}

	assert.False(t, ValidDrinkType("Kombucha"))
	assert.False(t, CaffeineFor("Kombucha"))
}

func TestTriggerVocabulary(t *testing.T) {
	assert.True(t, ValidTrigger("Sneezing"))
	assert.True(t, ValidTrigger("Other"))
	assert.False(t, ValidTrigger("sneezing")) // case-sensitive vocabulary
	assert.False(t, ValidTrigger("Skydiving"))
}
