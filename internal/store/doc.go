// Package store provides durable storage for the diary event
// collection.
//
// The contract is a single named slot holding the whole collection:
// Load returns every event, Save replaces every event. There is no
// partial write - the slot always holds the whole list or nothing.
//
// Two backends implement the contract:
//
//   - JSONFile (default): one pretty-printed JSON array in a file,
//     schema-identical to the export format. Writes go through a temp
//     file and rename so a crash never leaves a half-written slot.
//   - SQLite: one row per event in insertion order, replaced in a
//     single transaction. Useful when the diary shares a database with
//     other tooling.
//
// Both backends recover a missing or corrupt slot as an empty
// collection. Corruption is never surfaced to callers; the worst
// outcome is an empty view.
package store
