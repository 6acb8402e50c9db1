// Package timeline holds the canonical, ordered collection of entries and
// keeps the persistence slot in step with it.
package timeline

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"tableflip.dev/timeline/pkg/entry"
	"tableflip.dev/timeline/pkg/store"
)

// ErrDuplicateID is returned by Add when the id is already in the store.
var ErrDuplicateID = errors.New("timeline: duplicate entry id")

// Store is the single source of truth for entries. It is not safe for
// concurrent use; the host drives it from one goroutine.
type Store struct {
	p       store.Persistence
	log     *zap.SugaredLogger
	entries []entry.Entry
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report swallowed persistence failures.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// New returns an empty store bound to p. Call Load to read the slot.
func New(p store.Persistence, opts ...Option) *Store {
	s := &Store{p: p, log: zap.NewNop().Sugar(), entries: []entry.Entry{}}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load replaces the in-memory collection with the slot contents.
func (s *Store) Load(ctx context.Context) {
	if s.p == nil {
		s.entries = []entry.Entry{}
		return
	}
	loaded := s.p.Load(ctx)
	s.entries = uniqueByID(loaded)
	if dropped := len(loaded) - len(s.entries); dropped > 0 {
		s.log.Warnw("slot repeats entry ids, keeping the first of each", "dropped", dropped, "path", s.p.Path())
	}
	s.log.Debugw("loaded entries", "count", len(s.entries), "path", s.p.Path())
}

// All returns a copy of the entries in store order.
func (s *Store) All() []entry.Entry {
	out := make([]entry.Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Clone()
	}
	return out
}

// Len reports the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Get resolves id against the store.
func (s *Store) Get(id string) (entry.Entry, bool) {
	if i := s.index(id); i >= 0 {
		return s.entries[i].Clone(), true
	}
	return entry.Entry{}, false
}

// Contains reports whether id is in the store.
func (s *Store) Contains(id string) bool {
	return s.index(id) >= 0
}

// Add appends e. Ids stay unique: an id already present is rejected.
func (s *Store) Add(e entry.Entry) error {
	if s.Contains(e.ID) {
		return ErrDuplicateID
	}
	s.entries = append(s.entries, e.Clone())
	s.persist("add", e.ID)
	return nil
}

// Update replaces the entry with the same id wholesale. It reports false and
// does nothing when the id is absent.
func (s *Store) Update(e entry.Entry) bool {
	i := s.index(e.ID)
	if i < 0 {
		return false
	}
	s.entries[i] = e.Clone()
	s.persist("update", e.ID)
	return true
}

// Remove deletes the entry with id, reporting whether one was found.
func (s *Store) Remove(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	s.persist("remove", id)
	return true
}

// Replace swaps in a whole new collection, as an import does. Later records
// sharing an id with an earlier one are dropped to keep ids unique.
func (s *Store) Replace(entries []entry.Entry) {
	s.entries = uniqueByID(entries)
	s.persist("replace", "")
}

// uniqueByID copies entries, keeping only the first record for each id.
func uniqueByID(entries []entry.Entry) []entry.Entry {
	seen := make(map[string]struct{}, len(entries))
	out := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.ID]; dup {
			continue
		}
		seen[e.ID] = struct{}{}
		out = append(out, e.Clone())
	}
	return out
}

func (s *Store) index(id string) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}

// persist writes the whole collection. The mutation has already happened, so
// a failed write is logged and otherwise ignored.
func (s *Store) persist(op, id string) {
	if s.p == nil {
		return
	}
	if err := s.p.Save(s.entries); err != nil {
		s.log.Warnw("persisting entries failed", "op", op, "id", id, "count", len(s.entries), "error", err)
	}
}
