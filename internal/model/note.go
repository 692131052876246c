package model

import "time"

// Note is a free-form text entry. Notes are immutable after creation
// except for deletion.
type Note struct {
	ID        int64     `json:"id" db:"id"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
