package atlas

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

func init() {
	// Costs persist as plain JSON numbers, matching the original data files.
	decimal.MarshalJSONWithoutQuotes = true
}

// LoadStore reads the collection file <dir>/<name>.json into a store. A
// missing file yields an empty store. A corrupt file also yields an empty
// store with a logged warning: startup must never fail because of a bad
// local blob (last write wins on the next mutation).
func LoadStore[T Record[T]](dir, name string) *Store[T] {
	s := NewStore[T](name)
	s.path = filepath.Join(dir, name+".json")

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return s
	}
	if err != nil {
		log.Printf("warning: could not read %s store %q, starting empty: %v", name, s.path, err)
		return s
	}
	if err := json.Unmarshal(data, &s.records); err != nil {
		log.Printf("warning: corrupt %s store %q, starting empty: %v", name, s.path, err)
		s.records = nil
	}
	return s
}

// Save serializes the whole collection to the store's file. An in-memory
// store (no path) skips persistence.
func (s *Store[T]) Save() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("could not create data directory for %q: %w", s.path, err)
	}
	records := s.records
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode %s store: %w", s.name, err)
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("could not write %s store %q: %w", s.name, s.path, err)
	}
	return nil
}

// LoadFriends opens the friend store under the data directory.
func LoadFriends(dir string) *Store[Friend] { return LoadStore[Friend](dir, "friends") }

// LoadProperties opens the property store under the data directory.
func LoadProperties(dir string) *Store[Property] { return LoadStore[Property](dir, "properties") }
