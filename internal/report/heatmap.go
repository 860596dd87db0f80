package report

import (
	"time"

	"github.com/roach88/bladr/internal/diary"
)

// WindowDays is the trailing leak-frequency window, anchored on the
// current real-world date (not the viewed date).
const WindowDays = 30

// Intensity is one of five discrete visual buckets for a day's leak
// count relative to the window's maximum.
type Intensity int

const (
	IntensityZero Intensity = iota
	IntensityLow
	IntensityMedium
	IntensityHigh
	IntensityMax
)

// String returns the bucket name for JSON output and tests.
func (i Intensity) String() string {
	switch i {
	case IntensityZero:
		return "zero"
	case IntensityLow:
		return "low"
	case IntensityMedium:
		return "medium"
	case IntensityHigh:
		return "high"
	case IntensityMax:
		return "max"
	default:
		return "unknown"
	}
}

// Day is one cell of the heatmap grid.
//
// InWindow is false for grid-filler days that only complete the first
// or last week row; those are excluded from counts and classification
// and rendered non-interactive.
type Day struct {
	Date      time.Time `json:"date"`
	LeakCount int       `json:"leakCount"`
	Intensity Intensity `json:"intensity"`
	InWindow  bool      `json:"inWindow"`
	Today     bool      `json:"today"`
}

// Heatmap is the full week-aligned grid plus the window totals.
type Heatmap struct {
	Weeks       [][]Day   `json:"weeks"` // rows of 7 days
	TotalLeaks  int       `json:"totalLeaks"`
	WindowStart time.Time `json:"windowStart"`
	WindowEnd   time.Time `json:"windowEnd"`
}

// BuildHeatmap computes the leak heatmap for the 30 calendar days
// ending on today, laid out on a week grid starting on weekStart.
// Pure function of its inputs; identical inputs produce an identical
// grid.
func BuildHeatmap(events []diary.Event, today time.Time, weekStart time.Weekday) Heatmap {
	end := startOfDay(today)
	start := end.AddDate(0, 0, -(WindowDays - 1))
	startKey, endKey := diary.DayKey(start), diary.DayKey(end)

	// Per-day leak counts inside the window, by calendar date.
	counts := make(map[string]int)
	total := 0
	for _, ev := range events {
		if ev.Type != diary.TypeLeak {
			continue
		}
		key := diary.DayKey(ev.Timestamp)
		if key < startKey || key > endKey {
			continue
		}
		counts[key]++
		total++
	}

	// Observed maximum daily count, floored at 1 so classification
	// never divides by zero when no leaks exist.
	max := 1
	for _, c := range counts {
		if c > max {
			max = c
		}
	}

	// Snap outward to full weeks so every row has 7 days.
	gridStart := start
	for gridStart.Weekday() != weekStart {
		gridStart = gridStart.AddDate(0, 0, -1)
	}
	weekEnd := time.Weekday((int(weekStart) + 6) % 7)
	gridEnd := end
	for gridEnd.Weekday() != weekEnd {
		gridEnd = gridEnd.AddDate(0, 0, 1)
	}

	hm := Heatmap{
		TotalLeaks:  total,
		WindowStart: start,
		WindowEnd:   end,
	}

	var week []Day
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		key := diary.DayKey(d)
		inWindow := key >= startKey && key <= endKey
		cell := Day{
			Date:     d,
			InWindow: inWindow,
			Today:    key == endKey,
		}
		if inWindow {
			cell.LeakCount = counts[key]
			cell.Intensity = classify(cell.LeakCount, max)
		}
		week = append(week, cell)
		if len(week) == 7 {
			hm.Weeks = append(hm.Weeks, week)
			week = nil
		}
	}
	return hm
}

// classify buckets a day's count against the window maximum. For any
// two days with counts a < b, a's bucket never exceeds b's.
func classify(count, max int) Intensity {
	if count == 0 {
		return IntensityZero
	}
	ratio := float64(count) / float64(max)
	switch {
	case ratio <= 0.25:
		return IntensityLow
	case ratio <= 0.5:
		return IntensityMedium
	case ratio <= 0.75:
		return IntensityHigh
	default:
		return IntensityMax
	}
}

// startOfDay truncates t to local midnight.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
