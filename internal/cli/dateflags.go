package cli

import (
	"fmt"
	"time"

	"github.com/roach88/bladr/internal/diary"
)

// resolveTimestamp turns the optional --date/--time flag pair into one
// absolute timestamp with seconds zeroed. When neither flag is set it
// returns the zero time and the editor defaults to now (the quick-log
// flow). Backdating is allowed; future timestamps are not.
func resolveTimestamp(now time.Time, dateStr, timeStr string) (time.Time, error) {
	if dateStr == "" && timeStr == "" {
		return time.Time{}, nil
	}
	if dateStr == "" {
		dateStr = now.Format("2006-01-02")
	}
	if timeStr == "" {
		timeStr = now.Format("15:04")
	}
	ts, err := diary.CombineDateTime(dateStr, timeStr, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time: %w", err)
	}
	if ts.After(now) {
		return time.Time{}, fmt.Errorf("timestamp %s is in the future", ts.Format("2006-01-02 15:04"))
	}
	return ts, nil
}

// parseViewDate resolves the viewed date for day-keyed commands:
// today when arg is empty, never later than today.
func parseViewDate(now time.Time, arg string) (time.Time, error) {
	if arg == "" {
		return now, nil
	}
	day, err := time.ParseInLocation("2006-01-02", arg, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", arg)
	}
	if diary.DayKey(day) > diary.DayKey(now) {
		return time.Time{}, fmt.Errorf("date %s is in the future", arg)
	}
	return day, nil
}
