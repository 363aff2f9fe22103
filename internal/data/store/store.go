// Package store persists raw activity entries. Two backends exist: a
// flat JSON file matching the original .graphotimer.json layout, and a
// SQLite database for larger histories.
package store

import (
	"fmt"

	"graphotimer/internal/core/model"
)

// Store is the storage collaborator the engine reads raw entries from.
type Store interface {
	Append(entry model.Entry) error
	List() ([]model.Entry, error)
	Close() error
}

// Backend names accepted by Open and the --store flag.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Open builds the store for the requested backend at the given path.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendJSON, "":
		return NewJSONStore(path), nil
	case BackendSQLite:
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown store backend %q (expected %s or %s)",
			backend, BackendJSON, BackendSQLite)
	}
}
