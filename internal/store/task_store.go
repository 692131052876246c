package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dkostenko/aide/internal/model"
)

// AddTask inserts a new task with a fresh ID and returns it.
func (s *SQLiteStore) AddTask(ctx context.Context, text string) (*model.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("task description must not be empty: %w", ErrInvalid)
	}

	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO tasks (description, completed, created_at) VALUES (?, 0, ?)",
		text, now,
	)
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading new task id: %w", err)
	}

	return &model.Task{
		ID:          id,
		Description: text,
		Completed:   false,
		CreatedAt:   now,
	}, nil
}

// CompleteTask sets the completion flag on a task and returns the updated
// task. Completing an already-completed task is not an error.
func (s *SQLiteStore) CompleteTask(ctx context.Context, id int64) (*model.Task, error) {
	result, err := s.db.ExecContext(ctx,
		"UPDATE tasks SET completed = 1 WHERE id = ?", id,
	)
	if err != nil {
		return nil, fmt.Errorf("completing task %d: %w", id, err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return nil, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}

	return s.GetTaskByID(ctx, id)
}

// RemoveTask deletes a task by ID. The ID is never reused.
func (s *SQLiteStore) RemoveTask(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting task %d: %w", id, err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return nil
}

// GetTaskByID retrieves a single task by its ID.
func (s *SQLiteStore) GetTaskByID(ctx context.Context, id int64) (*model.Task, error) {
	row := s.db.QueryRowxContext(ctx,
		"SELECT id, description, completed, created_at FROM tasks WHERE id = ?", id,
	)

	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting task %d: %w", id, err)
	}

	return &task, nil
}

// ListTasks retrieves tasks in insertion order, optionally filtered by
// completion state. An empty filter means all.
func (s *SQLiteStore) ListTasks(ctx context.Context, filter string) ([]model.Task, error) {
	query := "SELECT id, description, completed, created_at FROM tasks"

	switch filter {
	case "", model.FilterAll:
	case model.FilterPending:
		query += " WHERE completed = 0"
	case model.FilterCompleted:
		query += " WHERE completed = 1"
	default:
		return nil, fmt.Errorf("unknown task filter %q: %w", filter, ErrInvalid)
	}

	query += " ORDER BY id ASC"

	rows, err := s.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// scanTask scans a task row from anything with a Scan method.
func scanTask(row interface{ Scan(dest ...interface{}) error }) (model.Task, error) {
	var (
		task         model.Task
		completedInt int
		createdAt    time.Time
	)

	err := row.Scan(&task.ID, &task.Description, &completedInt, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, err
		}
		return model.Task{}, fmt.Errorf("scanning task row: %w", err)
	}

	task.Completed = completedInt != 0
	task.CreatedAt = createdAt

	return task, nil
}
