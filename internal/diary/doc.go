// Package diary defines the bladder diary event model and the editor
// contract that mediates all mutations.
//
// An Event is a single logged occurrence of urination, a leak, or fluid
// intake. The store holds an unordered collection of events; every
// ordering (timeline, heatmap rows) is a property of a derived view,
// never of the collection itself.
//
// The Editor owns the in-memory collection and flushes the whole list
// to its Slot after every mutation. It enforces the rules the store
// deliberately does not:
//   - IDs are assigned once at creation and never reassigned
//   - updates replace all mutable fields wholesale, keyed by ID
//   - the caffeine flag is derived from the drink type, never taken
//     from caller input
//   - free-text fields are NFC normalized so the serialized form is
//     byte-stable across platforms
//
// Semantic range checks (urgency 1-5, volume bounds, no future dates)
// belong to the input layer; the editor assumes them.
package diary
