// Package engine turns classified input lines into store operations and
// human-readable results. It is the single error-translation boundary of
// the assistant: no store error propagates past a handler.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dkostenko/aide/internal/intent"
	"github.com/dkostenko/aide/internal/model"
	"github.com/dkostenko/aide/internal/sched"
	"github.com/dkostenko/aide/internal/store"
)

// Result is the outcome of one handled command.
type Result struct {
	OK      bool
	Message string
}

// handlerFunc executes one intent against the store.
type handlerFunc func(ctx context.Context, in intent.Intent) Result

// Engine dispatches classified intents to their handlers. It is stateless
// across calls; all state lives in the store.
type Engine struct {
	store     store.Store
	cfg       *model.AppConfig
	sched     *sched.Scheduler
	clock     func() time.Time
	sessionID string
	handlers  map[intent.Kind]handlerFunc
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source, used by tests.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

// New creates an Engine bound to the given store and configuration.
func New(s store.Store, cfg *model.AppConfig, opts ...Option) *Engine {
	e := &Engine{
		store:     s,
		cfg:       cfg,
		sched:     sched.New(s, cfg.Reminders.PruneFired),
		clock:     time.Now,
		sessionID: uuid.New().String(),
	}

	for _, opt := range opts {
		opt(e)
	}

	// Every intent kind has exactly one handler, Unknown included.
	e.handlers = map[intent.Kind]handlerFunc{
		intent.AddTask:        e.handleAddTask,
		intent.CompleteTask:   e.handleCompleteTask,
		intent.RemoveTask:     e.handleRemoveTask,
		intent.ListTasks:      e.handleListTasks,
		intent.AddNote:        e.handleAddNote,
		intent.ListNotes:      e.handleListNotes,
		intent.RemoveNote:     e.handleRemoveNote,
		intent.SetReminder:    e.handleSetReminder,
		intent.CheckReminders: e.handleCheckReminders,
		intent.Unknown:        e.handleUnknown,
	}

	return e
}

// HandleLine classifies one line of input, dispatches it, and returns the
// result. This is the core's main entry point.
func (e *Engine) HandleLine(ctx context.Context, line string) Result {
	in := intent.Classify(line)

	handler, ok := e.handlers[in.Kind]
	if !ok {
		handler = e.handleUnknown
	}

	res := handler(ctx, in)
	e.logCommand(ctx, line, in, res)
	return res
}

// CheckReminders returns one message per reminder due at the given time,
// marking each as fired once collected. Safe to call at session start or
// periodically.
func (e *Engine) CheckReminders(ctx context.Context, now time.Time) ([]string, error) {
	due, err := e.sched.CheckDue(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("checking due reminders: %w", err)
	}
	if len(due) == 0 {
		return nil, nil
	}

	messages := make([]string, 0, len(due))
	for _, r := range due {
		messages = append(messages, fmt.Sprintf(
			"Reminder: %s (due %s)",
			r.Message, r.DueAt.Local().Format("2006-01-02 15:04"),
		))
	}

	if err := e.sched.FireAndPrune(ctx, due); err != nil {
		return messages, err
	}
	return messages, nil
}

// logCommand appends the handled line to the audit log. Best-effort: a
// logging failure never fails the command.
func (e *Engine) logCommand(ctx context.Context, line string, in intent.Intent, res Result) {
	if e.cfg == nil || !e.cfg.History.Enabled {
		return
	}

	_ = e.store.LogCommand(ctx, model.CommandEntry{
		SessionID: e.sessionID,
		Input:     line,
		Intent:    string(in.Kind),
		OK:        res.OK,
		Message:   res.Message,
		CreatedAt: e.clock().UTC(),
	})
}
