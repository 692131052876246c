package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dkostenko/aide/internal/model"
)

// AddReminder inserts a new reminder with a fresh ID and returns it.
// A due time in the past is accepted; the reminder is immediately due.
func (s *SQLiteStore) AddReminder(
	ctx context.Context,
	message string,
	dueAt time.Time,
) (*model.Reminder, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("reminder message must not be empty: %w", ErrInvalid)
	}
	if dueAt.IsZero() {
		return nil, fmt.Errorf("reminder due time must be set: %w", ErrInvalid)
	}

	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO reminders (message, due_at, fired, created_at) VALUES (?, ?, 0, ?)",
		message, dueAt.UTC(), now,
	)
	if err != nil {
		return nil, fmt.Errorf("creating reminder: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading new reminder id: %w", err)
	}

	return &model.Reminder{
		ID:        id,
		Message:   message,
		DueAt:     dueAt.UTC(),
		Fired:     false,
		CreatedAt: now,
	}, nil
}

// RemoveReminder deletes a reminder by ID.
func (s *SQLiteStore) RemoveReminder(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM reminders WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting reminder %d: %w", id, err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("reminder %d: %w", id, ErrNotFound)
	}
	return nil
}

// ListReminders retrieves all reminders ordered by due time, then ID.
func (s *SQLiteStore) ListReminders(ctx context.Context) ([]model.Reminder, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, message, due_at, fired, created_at
		FROM reminders ORDER BY due_at ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying reminders: %w", err)
	}
	defer rows.Close()

	return scanReminders(rows)
}

// DueReminders retrieves unfired reminders whose due time is at or before
// now, ordered by due time ascending, ties broken by ID ascending.
func (s *SQLiteStore) DueReminders(
	ctx context.Context,
	now time.Time,
) ([]model.Reminder, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, message, due_at, fired, created_at
		FROM reminders
		WHERE fired = 0 AND due_at <= ?
		ORDER BY due_at ASC, id ASC`,
		now.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("querying due reminders: %w", err)
	}
	defer rows.Close()

	return scanReminders(rows)
}

// MarkFired sets the fired flag on a reminder so it is not reported again.
func (s *SQLiteStore) MarkFired(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE reminders SET fired = 1 WHERE id = ?", id,
	)
	if err != nil {
		return fmt.Errorf("marking reminder %d fired: %w", id, err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("reminder %d: %w", id, ErrNotFound)
	}
	return nil
}

// PruneFired deletes all fired reminders and returns how many were removed.
func (s *SQLiteStore) PruneFired(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM reminders WHERE fired = 1")
	if err != nil {
		return 0, fmt.Errorf("pruning fired reminders: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting pruned reminders: %w", err)
	}
	return rows, nil
}

// scanReminders drains a reminder result set.
func scanReminders(rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}) ([]model.Reminder, error) {
	var reminders []model.Reminder
	for rows.Next() {
		var (
			r        model.Reminder
			firedInt int
			dueAt    time.Time
			created  time.Time
		)
		if err := rows.Scan(&r.ID, &r.Message, &dueAt, &firedInt, &created); err != nil {
			return nil, fmt.Errorf("scanning reminder row: %w", err)
		}
		r.DueAt = dueAt
		r.Fired = firedInt != 0
		r.CreatedAt = created
		reminders = append(reminders, r)
	}

	return reminders, rows.Err()
}
