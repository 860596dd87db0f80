package report

import (
	"sort"
	"time"

	"github.com/roach88/bladr/internal/diary"
)

// IconCategory tags a timeline entry for the rendering layer.
type IconCategory string

const (
	IconDroplets IconCategory = "droplets"
	IconAlert    IconCategory = "alert"
	IconCoffee   IconCategory = "coffee"
)

// Entry is one row of the daily timeline: the event plus its display
// label and icon category. Purely a rendering aid.
type Entry struct {
	Event diary.Event  `json:"event"`
	Label string       `json:"label"`
	Icon  IconCategory `json:"icon"`
}

// BuildTimeline returns the events of the given calendar day in
// reverse-chronological order. The sort is stable: events with equal
// timestamps keep their original insertion order.
func BuildTimeline(events []diary.Event, day time.Time) []Entry {
	filtered := FilterDay(events, day)
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Timestamp.After(filtered[j].Timestamp)
	})

	entries := make([]Entry, len(filtered))
	for i, ev := range filtered {
		entries[i] = Entry{Event: ev, Label: label(ev), Icon: icon(ev)}
	}
	return entries
}

func label(ev diary.Event) string {
	switch ev.Type {
	case diary.TypeLeak:
		return "Leak Event"
	case diary.TypeFluid:
		if ev.DrinkType != "" {
			return ev.DrinkType
		}
		return "Fluid Intake"
	default:
		return "Urination"
	}
}

func icon(ev diary.Event) IconCategory {
	switch ev.Type {
	case diary.TypeLeak:
		return IconAlert
	case diary.TypeFluid:
		return IconCoffee
	default:
		return IconDroplets
	}
}
