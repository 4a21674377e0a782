// Package history keeps archived test results for the lifetime of the
// process. Nothing is persisted: the store is rebuilt empty on every start.
package history

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prateeks/prepdeck/internal/quiz"
)

// ErrNotFound is returned when no entry exists for a given id.
var ErrNotFound = errors.New("history entry not found")

// Entry is one archived test: the computed result plus the originating
// session, retained so the attempt can be reviewed later. Never mutated
// after creation.
type Entry struct {
	ID        string
	Title     string
	CreatedAt time.Time
	Result    *quiz.Result
	Session   *quiz.Session
}

// Store is an insertion-ordered, newest-first collection of archived tests.
// Safe for concurrent use, though the UI drives it from a single goroutine.
type Store struct {
	mu      sync.RWMutex
	entries []*Entry
	byID    map[string]*Entry

	lastStamp int64
	counter   int

	now func() time.Time // overridable for tests
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		byID: make(map[string]*Entry),
		now:  time.Now,
	}
}

// Archive creates an Entry for the given session and result and prepends it
// to the store. The returned entry is owned by the store; callers must not
// mutate it.
func (s *Store) Archive(session *quiz.Session, result *quiz.Result, title string) *Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry := &Entry{
		ID:        s.nextID(now),
		Title:     title,
		CreatedAt: now,
		Result:    result,
		Session:   session,
	}

	s.entries = append([]*Entry{entry}, s.entries...)
	s.byID[entry.ID] = entry
	return entry
}

// List returns the archived entries, newest first. The slice is a copy; the
// entries themselves are shared and must be treated as read-only.
func (s *Store) List() []*Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Get returns the entry with the given id, or ErrNotFound.
func (s *Store) Get(id string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return entry, nil
}

// Len returns the number of archived entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// nextID generates a millisecond-timestamp id with a counter suffix when two
// entries land in the same millisecond. Caller holds s.mu.
func (s *Store) nextID(now time.Time) string {
	ms := now.UnixMilli()
	if ms == s.lastStamp {
		s.counter++
		return fmt.Sprintf("h%d-%d", ms, s.counter)
	}
	s.lastStamp = ms
	s.counter = 0
	return fmt.Sprintf("h%d", ms)
}
