package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jask/bestnotes/internal/database"
	"github.com/jask/bestnotes/internal/notes"
)

// NoteRepo stores notes in sqlite. It satisfies notes.Store.
type NoteRepo struct {
	db    *sql.DB
	now   func() time.Time
	newID func() string
}

var _ notes.Store = (*NoteRepo)(nil)

func NewNoteRepo(db *sql.DB) *NoteRepo {
	return &NoteRepo{db: db, now: database.Now, newID: uuid.NewString}
}

// WithClock returns a copy of r using now for CreatedAt.
func (r *NoteRepo) WithClock(now func() time.Time) *NoteRepo {
	cp := *r
	cp.now = now
	return &cp
}

func (r *NoteRepo) Add(ctx context.Context, text string) (notes.Note, error) {
	trimmed, err := notes.Normalize(text)
	if err != nil {
		return notes.Note{}, err
	}
	n := notes.Note{ID: r.newID(), Text: trimmed, CreatedAt: r.now().UTC()}
	_, err = r.db.ExecContext(ctx, `
	INSERT INTO notes(id, text, created_at) VALUES (?, ?, ?);
	`, n.ID, n.Text, n.CreatedAt.UnixNano())
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return notes.Note{}, notes.ErrDuplicateID
		}
		return notes.Note{}, fmt.Errorf("insert note: %w", err)
	}
	return n, nil
}

// List orders by insertion sequence, so notes created in the same instant
// still come back newest first.
func (r *NoteRepo) List(ctx context.Context) ([]notes.Note, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, text, created_at FROM notes ORDER BY seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()
	out := []notes.Note{}
	for rows.Next() {
		var (
			n  notes.Note
			ns int64
		)
		if err := rows.Scan(&n.ID, &n.Text, &ns); err != nil {
			return nil, err
		}
		n.CreatedAt = time.Unix(0, ns).UTC()
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *NoteRepo) Len(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notes`).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return n, err
}
