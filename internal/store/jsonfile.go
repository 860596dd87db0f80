package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/roach88/bladr/internal/diary"
)

// JSONFile stores the whole event collection as one JSON array in a
// single file. Timestamps round-trip through RFC 3339 with sub-second
// precision preserved.
type JSONFile struct {
	path string
}

// OpenJSONFile returns a JSON file slot at path. The file is not
// touched until the first Save.
func OpenJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Path returns the slot's file path.
func (s *JSONFile) Path() string {
	return s.path
}

// Load reads the whole collection. A missing, unreadable or corrupt
// slot loads as an empty collection - never an error.
func (s *JSONFile) Load() ([]diary.Event, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []diary.Event{}, nil
	}

	var events []diary.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return []diary.Event{}, nil
	}
	if events == nil {
		events = []diary.Event{}
	}
	return events, nil
}

// Save atomically replaces the slot with the given collection. The
// document is written to a temp file in the same directory and renamed
// over the slot, so readers never observe a partial write.
func (s *JSONFile) Save(events []diary.Event) error {
	if events == nil {
		events = []diary.Event{}
	}
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal events: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write events: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace slot: %w", err)
	}
	return nil
}

// Clear removes the slot entirely. A missing slot is not an error.
func (s *JSONFile) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear slot: %w", err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (s *JSONFile) Close() error {
	return nil
}
