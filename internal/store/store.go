package store

import (
	"fmt"

	"github.com/roach88/bladr/internal/diary"
)

// SlotName is the fixed, versionless identifier for the event
// collection. The JSON backend uses it as the default file base name;
// the SQLite backend uses it as the slot key.
const SlotName = "bladder-buddy-events"

// Slot is the full store contract: the diary editor's Slot plus
// lifecycle management for backends that hold resources.
type Slot interface {
	diary.Slot
	Close() error
}

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// ValidBackends defines the allowed backend names.
var ValidBackends = []string{BackendJSON, BackendSQLite}

// Open opens the named backend at path.
func Open(backend, path string) (Slot, error) {
	switch backend {
	case BackendJSON:
		return OpenJSONFile(path), nil
	case BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown store backend %q: must be one of %v", backend, ValidBackends)
	}
}
