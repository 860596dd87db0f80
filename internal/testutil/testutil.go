// Package testutil provides deterministic stand-ins for the editor's
// injectable collaborators: a fixed clock, a sequential ID generator
// and an in-memory slot.
package testutil

import (
	"time"

	"github.com/roach88/bladr/internal/diary"
)

// FixedClock returns a Now func pinned to t. Tests that need the clock
// to move use AdvancingClock instead.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// AdvancingClock returns a Now func that starts at t and moves forward
// by step on every call. The first call returns t.
func AdvancingClock(t time.Time, step time.Duration) func() time.Time {
	next := t
	return func() time.Time {
		current := next
		next = next.Add(step)
		return current
	}
}

// SequentialIDs generates "evt-0001", "evt-0002", ... for stable IDs
// in tests and golden files.
type SequentialIDs struct {
	n int
}

// NewID returns the next sequential ID.
func (g *SequentialIDs) NewID() string {
	g.n++
	return formatID(g.n)
}

func formatID(n int) string {
	const digits = "0123456789"
	buf := []byte("evt-0000")
	for i := len(buf) - 1; n > 0 && i >= 4; i-- {
		buf[i] = digits[n%10]
		n /= 10
	}
	return string(buf)
}

// MemorySlot is an in-memory diary.Slot capturing every Save.
type MemorySlot struct {
	Events []diary.Event
	Saves  int
	// FailSave, when set, is returned by the next Save call.
	FailSave error
}

// Load returns a copy of the held collection; empty when never saved.
func (s *MemorySlot) Load() ([]diary.Event, error) {
	out := make([]diary.Event, len(s.Events))
	copy(out, s.Events)
	return out, nil
}

// Save replaces the held collection.
func (s *MemorySlot) Save(events []diary.Event) error {
	if s.FailSave != nil {
		err := s.FailSave
		s.FailSave = nil
		return err
	}
	s.Saves++
	s.Events = make([]diary.Event, len(events))
	copy(s.Events, events)
	return nil
}
