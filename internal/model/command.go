package model

import "time"

// CommandEntry is one handled input line recorded in the command audit log.
type CommandEntry struct {
	ID        string    `json:"id" db:"id"`
	SessionID string    `json:"session_id" db:"session_id"`
	Input     string    `json:"input" db:"input"`
	Intent    string    `json:"intent" db:"intent"`
	OK        bool      `json:"ok" db:"ok"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
