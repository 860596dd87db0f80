package report

import (
	"time"

	"github.com/roach88/bladr/internal/diary"
)

// Summary holds the daily aggregates for one calendar day.
//
// AvgUrgency is 0 when no urination event carries an urgency; renderers
// show that as an explicit "no data" marker, not a number.
// AvgVolumePercent and AvgSeverity are meaningful only when > 0.
type Summary struct {
	Day              string  `json:"day"`
	UrinationCount   int     `json:"urinationCount"`
	LeakCount        int     `json:"leakCount"`
	FluidTotalMl     int     `json:"fluidTotalMl"`
	AvgUrgency       float64 `json:"avgUrgency"`
	AvgVolumePercent float64 `json:"avgVolumePercent,omitempty"`
	AvgSeverity      float64 `json:"avgSeverity,omitempty"`
}

// FilterDay returns the events whose local calendar date equals day,
// preserving the collection's insertion order.
func FilterDay(events []diary.Event, day time.Time) []diary.Event {
	key := diary.DayKey(day)
	var out []diary.Event
	for _, ev := range events {
		if diary.DayKey(ev.Timestamp) == key {
			out = append(out, ev)
		}
	}
	return out
}

// Summarize computes the daily aggregates over events, all of which
// must belong to the given calendar day (the caller filters, normally
// via FilterDay, so summary and timeline describe the same set).
func Summarize(day time.Time, events []diary.Event) Summary {
	s := Summary{Day: diary.DayKey(day)}

	var urgencySum, urgencyN int
	var volumeSum, volumeN int
	var severitySum, severityN int

	for _, ev := range events {
		switch ev.Type {
		case diary.TypeUrination:
			s.UrinationCount++
			if ev.Urgency > 0 {
				urgencySum += ev.Urgency
				urgencyN++
			}
			if ev.Volume > 0 {
				volumeSum += ev.Volume
				volumeN++
			}
		case diary.TypeLeak:
			s.LeakCount++
			if ev.Severity > 0 {
				severitySum += ev.Severity
				severityN++
			}
		case diary.TypeFluid:
			s.FluidTotalMl += ev.Volume
		}
	}

	if urgencyN > 0 {
		s.AvgUrgency = float64(urgencySum) / float64(urgencyN)
	}
	if volumeN > 0 {
		s.AvgVolumePercent = float64(volumeSum) / float64(volumeN)
	}
	if severityN > 0 {
		s.AvgSeverity = float64(severitySum) / float64(severityN)
	}
	return s
}
