package store

import (
	"context"
	"time"

	"github.com/dkostenko/aide/internal/model"
)

// Store defines the persistence interface for tasks, notes, reminders,
// and the command audit log. Every mutating operation is write-through:
// once it returns without error, the change is durable.
type Store interface {
	// === Tasks ===

	AddTask(ctx context.Context, text string) (*model.Task, error)
	CompleteTask(ctx context.Context, id int64) (*model.Task, error)
	RemoveTask(ctx context.Context, id int64) error
	GetTaskByID(ctx context.Context, id int64) (*model.Task, error)
	ListTasks(ctx context.Context, filter string) ([]model.Task, error)

	// === Notes ===

	AddNote(ctx context.Context, body string) (*model.Note, error)
	RemoveNote(ctx context.Context, id int64) error
	ListNotes(ctx context.Context) ([]model.Note, error)

	// === Reminders ===

	AddReminder(ctx context.Context, message string, dueAt time.Time) (*model.Reminder, error)
	RemoveReminder(ctx context.Context, id int64) error
	ListReminders(ctx context.Context) ([]model.Reminder, error)
	DueReminders(ctx context.Context, now time.Time) ([]model.Reminder, error)
	MarkFired(ctx context.Context, id int64) error
	PruneFired(ctx context.Context) (int64, error)

	// === Command audit log ===

	LogCommand(ctx context.Context, entry model.CommandEntry) error
	RecentCommands(ctx context.Context, limit int) ([]model.CommandEntry, error)
}
