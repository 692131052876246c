// Package sched decides which reminders are due and retires them once
// they have been reported to the user.
package sched

import (
	"context"
	"fmt"
	"time"

	"github.com/dkostenko/aide/internal/model"
	"github.com/dkostenko/aide/internal/store"
)

// Scheduler is a passive query layer over the store. It never fires
// reminders on its own; the caller checks for due reminders, notifies the
// user, and then asks the scheduler to mark them as seen.
type Scheduler struct {
	store      store.Store
	pruneFired bool
}

// New creates a Scheduler. When pruneFired is set, reminders are deleted
// right after being marked fired instead of being retained.
func New(s store.Store, pruneFired bool) *Scheduler {
	return &Scheduler{store: s, pruneFired: pruneFired}
}

// CheckDue returns the reminders due at the given time, ordered by due
// time ascending with ties broken by ID. The read is idempotent: calling
// it again without marking anything fired returns the same reminders.
func (s *Scheduler) CheckDue(ctx context.Context, now time.Time) ([]model.Reminder, error) {
	return s.store.DueReminders(ctx, now)
}

// FireAndPrune marks each reported reminder as fired so it is not
// surfaced twice, then prunes fired reminders if the policy asks for it.
func (s *Scheduler) FireAndPrune(ctx context.Context, reminders []model.Reminder) error {
	for _, r := range reminders {
		if err := s.store.MarkFired(ctx, r.ID); err != nil {
			return fmt.Errorf("retiring reminder %d: %w", r.ID, err)
		}
	}

	if s.pruneFired && len(reminders) > 0 {
		if _, err := s.store.PruneFired(ctx); err != nil {
			return fmt.Errorf("pruning fired reminders: %w", err)
		}
	}

	return nil
}
