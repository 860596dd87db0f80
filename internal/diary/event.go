package diary

import "time"

// EventType is the closed tag that determines which optional fields of
// an Event are meaningful.
type EventType string

const (
	TypeUrination EventType = "urination"
	TypeLeak      EventType = "leak"
	TypeFluid     EventType = "fluid"
)

// ValidTypes defines the allowed event type tags.
var ValidTypes = map[EventType]bool{
	TypeUrination: true,
	TypeLeak:      true,
	TypeFluid:     true,
}

// Event is a single logged diary entry.
//
// Volume is a percentage of typical capacity (0-100) for urination and
// leak events, and an absolute millilitre quantity (50-1000) for fluid
// events. Urgency is meaningful only for urination, Severity only for
// leaks, DrinkType and Caffeine only for fluids. Trigger is meaningful
// for leaks and urinations.
//
// Irrelevant fields are kept at their zero value and serialize away via
// omitempty; derived computations treat them as absent.
type Event struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Volume    int       `json:"volume,omitempty"`
	Urgency   int       `json:"urgency,omitempty"`
	Severity  int       `json:"severity,omitempty"`
	Trigger   string    `json:"trigger,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	DrinkType string    `json:"drinkType,omitempty"`
	Caffeine  bool      `json:"caffeine,omitempty"`
}

// DayKey returns the local calendar-date key for a timestamp.
//
// Summary, timeline and heatmap all restrict events to a day by
// comparing these keys, so the three views always describe the same
// set. This is an exact calendar-day match, not a 24h rolling window.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// SameDay reports whether two timestamps fall on the same local
// calendar date.
func SameDay(a, b time.Time) bool {
	return DayKey(a) == DayKey(b)
}

// CombineDateTime composes a calendar date ("2006-01-02") and a wall
// clock ("15:04") into one absolute timestamp in the given location.
// Seconds and sub-second components are zeroed.
func CombineDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, err
	}
	c, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0, loc), nil
}
