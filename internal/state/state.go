// Package state persists small keyed JSON records under the ShopHub state
// directory, one file per key. It is the console equivalent of browser-local
// storage: reads fall back to defaults on missing or malformed data, and
// callers treat write failures as best-effort.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"shophub/internal/logging"
)

// Status reports how a Load resolved, so callers (and tests) can tell a
// restored record from a silent fallback.
type Status int

const (
	// Restored means the record existed and deserialized cleanly.
	Restored Status = iota
	// Missing means no record was stored under the key.
	Missing
	// Corrupt means a record existed but could not be parsed. The value
	// passed to Load is left untouched.
	Corrupt
)

func (s Status) String() string {
	switch s {
	case Restored:
		return "restored"
	case Missing:
		return "missing"
	case Corrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

// Store reads and writes keyed JSON records in a single directory.
type Store struct {
	dir string
}

// NewStore creates the state directory if needed and returns a store over it.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("state directory required")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory backing this store.
func (s *Store) Dir() string { return s.dir }

// Load deserializes the record stored under key into v. It never returns an
// error: absence and corruption both leave v untouched and are reported
// through the returned Status.
func (s *Store) Load(key string, v any) Status {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			logging.StateWarn("read %q failed: %v", key, err)
		}
		return Missing
	}
	if err := json.Unmarshal(data, v); err != nil {
		logging.StateWarn("record %q is corrupt, discarding: %v", key, err)
		return Corrupt
	}
	logging.State("restored record %q (%d bytes)", key, len(data))
	return Restored
}

// Save serializes v under key. A failed save leaves the in-memory state as
// the source of truth; callers log the error and carry on.
func (s *Store) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal record %q: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), data, 0644); err != nil {
		return fmt.Errorf("failed to write record %q: %w", key, err)
	}
	logging.State("saved record %q (%d bytes)", key, len(data))
	return nil
}

// Delete removes the record stored under key. Removing an absent key is a
// no-op.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete record %q: %w", key, err)
	}
	return nil
}

// path maps a record key to its file. Keys are flat identifiers like
// "shopping-cart"; any path separators are flattened to underscores.
func (s *Store) path(key string) string {
	safe := strings.NewReplacer("/", "_", string(filepath.Separator), "_").Replace(key)
	return filepath.Join(s.dir, safe+".json")
}
