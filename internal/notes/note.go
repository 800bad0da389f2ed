// Package notes defines the note model, the Store contract and the in-memory
// store.
package notes

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrEmptyNote is wrapped by the ValidationError returned for blank text.
var ErrEmptyNote = errors.New("note text is empty")

// ErrDuplicateID means an ID generator produced an identifier already in use.
var ErrDuplicateID = errors.New("duplicate note id")

// Note is immutable once created.
type Note struct {
	ID        string
	Text      string
	CreatedAt time.Time
}

// ValidationError rejects input that fails a note precondition.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return "Note can't be empty." }

func (e *ValidationError) Unwrap() error { return e.Err }

// Store is an ordered, insert-only collection of notes, newest first.
type Store interface {
	// Add trims text and prepends a new note. Blank text fails with a
	// *ValidationError and leaves the store unchanged.
	Add(ctx context.Context, text string) (Note, error)
	// List returns a point-in-time copy, newest first.
	List(ctx context.Context) ([]Note, error)
	Len(ctx context.Context) (int, error)
}

// Normalize trims surrounding whitespace, newlines included.
func Normalize(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", &ValidationError{Err: ErrEmptyNote}
	}
	return trimmed, nil
}

// IsValidation reports whether err is a note ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
