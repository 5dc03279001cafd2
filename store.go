package atlas

import (
	"fmt"
	"iter"
	"slices"

	"github.com/google/uuid"
)

// Record is what a store can hold: anything with a stable identity, a way to
// copy itself under a fresh identity, and a duplicate-detection key for
// imports.
type Record[T any] interface {
	RecordID() string
	WithID(id string) T
	MergeKey() string
}

// Store is an ordered in-memory collection of records backed by a single
// JSON file. It is the only owner of its collection: every mutation goes
// through it and persists the full collection before returning, so the file
// always reflects the last completed operation.
type Store[T Record[T]] struct {
	name    string
	path    string // empty for an in-memory store (tests)
	records []T
}

// NewStore creates an empty in-memory store. Use LoadStore to attach one to
// a data directory.
func NewStore[T Record[T]](name string) *Store[T] {
	return &Store[T]{name: name}
}

// Name returns the collection name ("friends", "properties").
func (s *Store[T]) Name() string { return s.name }

// Len returns the number of records.
func (s *Store[T]) Len() int { return len(s.records) }

// Slice returns a copy of the collection in insertion order. Reports take
// this copy as input so they stay pure.
func (s *Store[T]) Slice() []T { return slices.Clone(s.records) }

// All iterates over records in insertion order.
func (s *Store[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, rec := range s.records {
			if !yield(rec) {
				return
			}
		}
	}
}

// Find returns the record with the given id.
func (s *Store[T]) Find(id string) (T, bool) {
	for _, rec := range s.records {
		if rec.RecordID() == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// freshID generates an id that does not collide with any record already in
// the collection, including records appended by a just-completed import.
func (s *Store[T]) freshID() string {
	for {
		id := uuid.NewString()
		if _, exists := s.Find(id); !exists {
			return id
		}
	}
}

// Add assigns a fresh unique id to the record, appends it, and persists the
// collection. It returns the stored record.
func (s *Store[T]) Add(rec T) (T, error) {
	rec = rec.WithID(s.freshID())
	s.records = append(s.records, rec)
	if err := s.Save(); err != nil {
		return rec, fmt.Errorf("could not persist %s after add: %w", s.name, err)
	}
	return rec, nil
}

// Remove filters the id out of the collection and persists. Removing an
// absent id is a silent no-op, not an error.
func (s *Store[T]) Remove(id string) error {
	kept := s.records[:0]
	for _, rec := range s.records {
		if rec.RecordID() != id {
			kept = append(kept, rec)
		}
	}
	s.records = kept
	if err := s.Save(); err != nil {
		return fmt.Errorf("could not persist %s after remove: %w", s.name, err)
	}
	return nil
}

// Update mutates the record with the given id in place and persists. An
// absent id is a silent no-op.
func (s *Store[T]) Update(id string, mutate func(*T)) error {
	for i := range s.records {
		if s.records[i].RecordID() == id {
			mutate(&s.records[i])
			if err := s.Save(); err != nil {
				return fmt.Errorf("could not persist %s after update: %w", s.name, err)
			}
			return nil
		}
	}
	return nil
}

// UpdateAll mutates every record the predicate accepts and persists once.
// It returns the number of records touched.
func (s *Store[T]) UpdateAll(accept func(T) bool, mutate func(*T)) (int, error) {
	touched := 0
	for i := range s.records {
		if accept(s.records[i]) {
			mutate(&s.records[i])
			touched++
		}
	}
	if touched == 0 {
		return 0, nil
	}
	if err := s.Save(); err != nil {
		return touched, fmt.Errorf("could not persist %s after bulk update: %w", s.name, err)
	}
	return touched, nil
}

// BulkMerge appends every incoming record that is not a duplicate of an
// existing one (case-insensitive name and location), assigning fresh ids,
// and persists once at the end. It returns how many records were added and
// how many were skipped as duplicates.
func (s *Store[T]) BulkMerge(incoming []T) (added, skipped int, err error) {
	existing := make(map[string]struct{}, len(s.records))
	for _, rec := range s.records {
		existing[rec.MergeKey()] = struct{}{}
	}
	for _, rec := range incoming {
		if _, dup := existing[rec.MergeKey()]; dup {
			skipped++
			continue
		}
		rec = rec.WithID(s.freshID())
		s.records = append(s.records, rec)
		existing[rec.MergeKey()] = struct{}{}
		added++
	}
	if added > 0 {
		if err := s.Save(); err != nil {
			return added, skipped, fmt.Errorf("could not persist %s after merge: %w", s.name, err)
		}
	}
	return added, skipped, nil
}
