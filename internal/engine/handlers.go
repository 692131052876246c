package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dkostenko/aide/internal/intent"
	"github.com/dkostenko/aide/internal/store"
)

func (e *Engine) handleAddTask(ctx context.Context, in intent.Intent) Result {
	if in.ExtractErr != nil {
		return invalid(in.ExtractErr)
	}

	if _, err := e.store.AddTask(ctx, in.Args); err != nil {
		return failure(err)
	}
	return Result{OK: true, Message: "Task added."}
}

func (e *Engine) handleCompleteTask(ctx context.Context, in intent.Intent) Result {
	if in.ExtractErr != nil {
		return invalid(in.ExtractErr)
	}

	if _, err := e.store.CompleteTask(ctx, in.ID); err != nil {
		return failure(err)
	}
	return Result{OK: true, Message: "Task completed."}
}

func (e *Engine) handleRemoveTask(ctx context.Context, in intent.Intent) Result {
	if in.ExtractErr != nil {
		return invalid(in.ExtractErr)
	}

	if err := e.store.RemoveTask(ctx, in.ID); err != nil {
		return failure(err)
	}
	return Result{OK: true, Message: "Task removed."}
}

func (e *Engine) handleListTasks(ctx context.Context, in intent.Intent) Result {
	if in.ExtractErr != nil {
		return invalid(in.ExtractErr)
	}

	tasks, err := e.store.ListTasks(ctx, in.Filter)
	if err != nil {
		return failure(err)
	}
	if len(tasks) == 0 {
		return Result{OK: true, Message: "No tasks."}
	}

	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, fmt.Sprintf("%d. %s %s", t.ID, t.Description, t.Checkbox()))
	}
	return Result{OK: true, Message: strings.Join(lines, "\n")}
}

func (e *Engine) handleAddNote(ctx context.Context, in intent.Intent) Result {
	if in.ExtractErr != nil {
		return invalid(in.ExtractErr)
	}

	if _, err := e.store.AddNote(ctx, in.Args); err != nil {
		return failure(err)
	}
	return Result{OK: true, Message: "Note added."}
}

func (e *Engine) handleListNotes(ctx context.Context, in intent.Intent) Result {
	notes, err := e.store.ListNotes(ctx)
	if err != nil {
		return failure(err)
	}
	if len(notes) == 0 {
		return Result{OK: true, Message: "No notes."}
	}

	lines := make([]string, 0, len(notes))
	for _, n := range notes {
		lines = append(lines, fmt.Sprintf("%d. %s", n.ID, n.Body))
	}
	return Result{OK: true, Message: strings.Join(lines, "\n")}
}

func (e *Engine) handleRemoveNote(ctx context.Context, in intent.Intent) Result {
	if in.ExtractErr != nil {
		return invalid(in.ExtractErr)
	}

	if err := e.store.RemoveNote(ctx, in.ID); err != nil {
		return failure(err)
	}
	return Result{OK: true, Message: "Note removed."}
}

func (e *Engine) handleSetReminder(ctx context.Context, in intent.Intent) Result {
	if in.ExtractErr != nil {
		return invalid(in.ExtractErr)
	}

	now := e.clock()
	dueAt, err := intent.ParseDueSpec(in.DueSpec, now)
	if err != nil {
		return invalid(err)
	}

	if e.cfg.Reminders.RejectPastDue && dueAt.Before(now) {
		return invalid(fmt.Errorf("due time %s is in the past", dueAt.Format("2006-01-02 15:04")))
	}

	r, err := e.store.AddReminder(ctx, in.Message, dueAt)
	if err != nil {
		return failure(err)
	}
	return Result{OK: true, Message: fmt.Sprintf(
		"Reminder set for %s.", r.DueAt.Local().Format("2006-01-02 15:04"),
	)}
}

func (e *Engine) handleCheckReminders(ctx context.Context, in intent.Intent) Result {
	messages, err := e.CheckReminders(ctx, e.clock())
	if err != nil {
		return failure(err)
	}
	if len(messages) == 0 {
		return Result{OK: true, Message: "No reminders due."}
	}
	return Result{OK: true, Message: strings.Join(messages, "\n")}
}

func (e *Engine) handleUnknown(ctx context.Context, in intent.Intent) Result {
	if in.Raw == "" {
		return Result{OK: false, Message: "Please enter a command."}
	}
	return Result{OK: false, Message: fmt.Sprintf("I don't know how to %q.", in.Raw)}
}

// invalid converts a parameter extraction or validation error into a
// negative result.
func invalid(err error) Result {
	return Result{OK: false, Message: upperFirst(err.Error()) + "."}
}

// failure translates a store error into a negative result. Anything that
// is neither a validation nor a not-found error is a persistence failure,
// and the user is warned the change may not have been saved.
func failure(err error) Result {
	if errors.Is(err, store.ErrInvalid) || errors.Is(err, store.ErrNotFound) {
		return Result{OK: false, Message: upperFirst(err.Error()) + "."}
	}
	return Result{OK: false, Message: fmt.Sprintf(
		"Storage error: %v. Your change may not have been saved.", err,
	)}
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
