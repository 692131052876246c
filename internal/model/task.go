package model

import "time"

// Task status filter values accepted by list queries.
const (
	FilterAll       = "all"
	FilterPending   = "pending"
	FilterCompleted = "completed"
)

// Task is a single to-do item created and managed by the user.
type Task struct {
	ID          int64     `json:"id" db:"id"`
	Description string    `json:"description" db:"description"`
	Completed   bool      `json:"completed" db:"completed"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Checkbox renders the completion marker used in list output.
func (t Task) Checkbox() string {
	if t.Completed {
		return "[x]"
	}
	return "[ ]"
}
