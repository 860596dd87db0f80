package store

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/bladr/internal/diary"
)

//go:embed schema.sql
var schemaSQL string

// SQLite stores the event collection in a SQLite database, one row per
// event. Save replaces the whole slot in a single transaction, keeping
// the whole-list-or-nothing contract of the JSON backend.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite creates or opens a SQLite database at the given path and
// applies the schema. Idempotent - safe to call on an existing file.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY on the replace-all write.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("execute %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Load reads the whole collection in insertion order. A corrupt row
// degrades the slot to an empty collection, matching the JSON backend.
func (s *SQLite) Load() ([]diary.Event, error) {
	rows, err := s.db.Query(`
		SELECT document FROM events
		WHERE slot = ?
		ORDER BY position ASC
	`, SlotName)
	if err != nil {
		return []diary.Event{}, nil
	}
	defer rows.Close()

	events := []diary.Event{}
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return []diary.Event{}, nil
		}
		var ev diary.Event
		if err := json.Unmarshal([]byte(doc), &ev); err != nil {
			return []diary.Event{}, nil
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return []diary.Event{}, nil
	}
	return events, nil
}

// Save replaces the whole slot in one transaction.
func (s *SQLite) Save(events []diary.Event) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("save events: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	if _, err := tx.Exec(`DELETE FROM events WHERE slot = ?`, SlotName); err != nil {
		return fmt.Errorf("save events: clear slot: %w", err)
	}

	for i, ev := range events {
		doc, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("save events: marshal event %s: %w", ev.ID, err)
		}
		if _, err := tx.Exec(`
			INSERT INTO events (slot, position, id, document)
			VALUES (?, ?, ?, ?)
		`, SlotName, i, ev.ID, string(doc)); err != nil {
			return fmt.Errorf("save events: insert event %s: %w", ev.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save events: commit: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
