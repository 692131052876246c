package model

import "time"

// Reminder is a message scheduled to be surfaced at a due time.
type Reminder struct {
	// ID is the unique identifier for this reminder.
	ID int64 `json:"id" db:"id"`

	// Message is the text reported to the user when the reminder is due.
	Message string `json:"message" db:"message"`

	// DueAt is when the reminder becomes due.
	DueAt time.Time `json:"due_at" db:"due_at"`

	// Fired indicates the reminder has already been reported to the user.
	// Fired reminders are excluded from due-checks.
	Fired bool `json:"fired" db:"fired"`

	// CreatedAt is when this reminder was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Due reports whether the reminder should be surfaced at the given time.
func (r Reminder) Due(now time.Time) bool {
	return !r.Fired && !r.DueAt.After(now)
}
