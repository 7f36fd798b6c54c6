package model

import (
	"time"

	"github.com/google/uuid"
)

// Assignment status values. Deadline classification stops once an
// assignment reaches a terminal state.
const (
	AssignmentStatusOpen      = "open"
	AssignmentStatusCompleted = "completed"
	AssignmentStatusCancelled = "cancelled"
)

// Assignment binds a user to a task in a given role with a due timestamp.
// Channel and To capture the user's outbound contact at assignment time so
// deadline sweeps can deliver without a directory lookup.
type Assignment struct {
	ID        uuid.UUID `json:"id"`
	TaskID    uuid.UUID `json:"task_id"`
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	StartAt   time.Time `json:"start_at"`
	DueAt     time.Time `json:"due_at"`
	Status    string    `json:"status"`  // "open", "completed", "cancelled"
	Channel   string    `json:"channel"` // outbound delivery method, e.g. "email", "sms"
	To        string    `json:"to"`      // recipient address for the outbound channel
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
