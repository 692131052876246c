package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dkostenko/aide/internal/model"
)

// LogCommand appends a handled input line to the command audit log.
// If the entry has no ID, a new UUID is generated.
func (s *SQLiteStore) LogCommand(ctx context.Context, entry model.CommandEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO command_log (id, session_id, input, intent, ok, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.SessionID, entry.Input, entry.Intent,
		boolToInt(entry.OK), entry.Message, entry.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("logging command: %w", err)
	}

	return nil
}

// RecentCommands retrieves the most recent audit log entries,
// newest first.
func (s *SQLiteStore) RecentCommands(
	ctx context.Context,
	limit int,
) ([]model.CommandEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, session_id, input, intent, ok, message, created_at
		FROM command_log
		ORDER BY created_at DESC, id DESC
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying command log: %w", err)
	}
	defer rows.Close()

	var entries []model.CommandEntry
	for rows.Next() {
		var (
			e         model.CommandEntry
			okInt     int
			createdAt time.Time
		)
		if err := rows.Scan(
			&e.ID, &e.SessionID, &e.Input, &e.Intent,
			&okInt, &e.Message, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scanning command log row: %w", err)
		}
		e.OK = okInt != 0
		e.CreatedAt = createdAt
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
