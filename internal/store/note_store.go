package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dkostenko/aide/internal/model"
)

// AddNote inserts a new note with a fresh ID and returns it.
func (s *SQLiteStore) AddNote(ctx context.Context, body string) (*model.Note, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("note body must not be empty: %w", ErrInvalid)
	}

	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO notes (body, created_at) VALUES (?, ?)",
		body, now,
	)
	if err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading new note id: %w", err)
	}

	return &model.Note{ID: id, Body: body, CreatedAt: now}, nil
}

// RemoveNote deletes a note by ID.
func (s *SQLiteStore) RemoveNote(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting note %d: %w", id, err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("note %d: %w", id, ErrNotFound)
	}
	return nil
}

// ListNotes retrieves all notes in insertion order.
func (s *SQLiteStore) ListNotes(ctx context.Context) ([]model.Note, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT id, body, created_at FROM notes ORDER BY id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		var (
			note      model.Note
			createdAt time.Time
		)
		if err := rows.Scan(&note.ID, &note.Body, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning note row: %w", err)
		}
		note.CreatedAt = createdAt
		notes = append(notes, note)
	}

	return notes, rows.Err()
}
