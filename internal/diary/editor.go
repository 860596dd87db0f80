package diary

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// Slot is the persistence contract the editor flushes to: a single
// named durable slot holding the whole event collection.
//
// Load on a missing or corrupt slot returns an empty collection, never
// an error (corruption is recovered locally, not surfaced). Save is
// whole-list-or-nothing.
type Slot interface {
	Load() ([]Event, error)
	Save([]Event) error
}

// IDGenerator produces opaque, unique event IDs.
// Implemented by UUIDv7Generator (production) and test generators.
type IDGenerator interface {
	NewID() string
}

// UUIDv7Generator generates time-ordered UUIDs for event identity.
type UUIDv7Generator struct{}

// NewID returns a new UUIDv7 string, falling back to UUIDv4 if the
// system clock source fails.
func (UUIDv7Generator) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Editor owns the in-memory event collection and mediates every
// mutation against the slot. All mutations are whole-collection
// replace operations; the flush after each mutation is synchronous.
//
// Single-threaded by design - there is no concurrent writer.
type Editor struct {
	slot   Slot
	events []Event

	// Gen and Now are injectable for deterministic tests.
	Gen IDGenerator
	Now func() time.Time
}

// NewEditor hydrates an editor from the slot's current contents.
func NewEditor(slot Slot) (*Editor, error) {
	events, err := slot.Load()
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	return &Editor{
		slot:   slot,
		events: events,
		Gen:    UUIDv7Generator{},
		Now:    time.Now,
	}, nil
}

// Snapshot returns a copy of the current event collection. The slice
// is unordered; callers derive their own views.
func (e *Editor) Snapshot() []Event {
	out := make([]Event, len(e.events))
	copy(out, e.events)
	return out
}

// Len returns the number of events in the collection.
func (e *Editor) Len() int {
	return len(e.events)
}

// Get returns the event with the given ID, or ErrNotFound.
func (e *Editor) Get(id string) (Event, error) {
	for _, ev := range e.events {
		if ev.ID == id {
			return ev, nil
		}
	}
	return Event{}, ErrNotFound
}

// Create assigns a fresh ID to the draft, defaults a zero timestamp to
// now, normalizes derived fields and appends the event, flushing the
// whole collection to the slot.
func (e *Editor) Create(draft Event) (Event, error) {
	draft.ID = e.Gen.NewID()
	if draft.Timestamp.IsZero() {
		draft.Timestamp = e.Now()
	}
	normalize(&draft)

	e.events = append(e.events, draft)
	if err := e.flush(); err != nil {
		// The event is part of the in-memory collection for the rest
		// of the session even when the write did not durably commit.
		return draft, err
	}
	return draft, nil
}

// Update replaces all mutable fields of the event with ev.ID wholesale.
// The ID itself is immutable; an unknown ID is ErrNotFound.
func (e *Editor) Update(ev Event) error {
	for i := range e.events {
		if e.events[i].ID == ev.ID {
			normalize(&ev)
			e.events[i] = ev
			return e.flush()
		}
	}
	return ErrNotFound
}

// Delete removes the event with the given ID. The operation is
// irreversible; any confirmation step belongs to the caller.
func (e *Editor) Delete(id string) error {
	for i := range e.events {
		if e.events[i].ID == id {
			e.events = append(e.events[:i], e.events[i+1:]...)
			return e.flush()
		}
	}
	return ErrNotFound
}

// ReplaceAll swaps the entire collection, e.g. after an import.
func (e *Editor) ReplaceAll(events []Event) error {
	e.events = events
	return e.flush()
}

// flush writes the whole collection to the slot. On failure the
// in-memory state stays authoritative for the session; the caller
// decides how to surface the write failure.
func (e *Editor) flush() error {
	if err := e.slot.Save(e.events); err != nil {
		return fmt.Errorf("save events: %w", err)
	}
	return nil
}

// normalize enforces the per-type field rules and derives caffeine.
// Free text is NFC normalized so the persisted form is byte-stable.
func normalize(ev *Event) {
	ev.Trigger = norm.NFC.String(ev.Trigger)
	ev.Notes = norm.NFC.String(ev.Notes)
	ev.DrinkType = norm.NFC.String(ev.DrinkType)

	switch ev.Type {
	case TypeUrination:
		ev.Severity = 0
		ev.DrinkType = ""
		ev.Caffeine = false
	case TypeLeak:
		ev.Urgency = 0
		ev.DrinkType = ""
		ev.Caffeine = false
	case TypeFluid:
		ev.Urgency = 0
		ev.Severity = 0
		ev.Trigger = ""
		ev.Caffeine = CaffeineFor(ev.DrinkType)
	}
}
