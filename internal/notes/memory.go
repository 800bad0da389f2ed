package notes

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps notes for the lifetime of the process.
type MemoryStore struct {
	notes []Note // oldest first
	ids   map[string]struct{}
	now   func() time.Time
	newID func() string
}

// Option configures a MemoryStore.
type Option func(*MemoryStore)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) { s.now = now }
}

// WithIDs replaces the uuid generator.
func WithIDs(newID func() string) Option {
	return func(s *MemoryStore) { s.newID = newID }
}

func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		ids:   map[string]struct{}{},
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) Add(_ context.Context, text string) (Note, error) {
	trimmed, err := Normalize(text)
	if err != nil {
		return Note{}, err
	}
	id := s.newID()
	if _, taken := s.ids[id]; taken {
		return Note{}, ErrDuplicateID
	}
	n := Note{ID: id, Text: trimmed, CreatedAt: s.now()}
	s.ids[id] = struct{}{}
	s.notes = append(s.notes, n)
	return n, nil
}

func (s *MemoryStore) List(_ context.Context) ([]Note, error) {
	out := make([]Note, len(s.notes))
	for i, n := range s.notes {
		out[len(s.notes)-1-i] = n
	}
	return out, nil
}

func (s *MemoryStore) Len(_ context.Context) (int, error) {
	return len(s.notes), nil
}
