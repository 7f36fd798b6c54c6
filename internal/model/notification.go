package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NotificationType enumerates the kinds of notifications the system emits.
type NotificationType string

const (
	TypeDeadlineWarning  NotificationType = "DEADLINE_WARNING"
	TypeDeadlineOverdue  NotificationType = "DEADLINE_OVERDUE"
	TypeNewAssignment    NotificationType = "NEW_ASSIGNMENT"
	TypeStatusChange     NotificationType = "STATUS_CHANGE"
	TypeRoleReassignment NotificationType = "ROLE_REASSIGNMENT"
)

// Notification status values. Transitions are monotonic:
// pending -> sent -> read, with pending -> read permitted (read implies
// delivered). Regressions are rejected by the repository.
const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusRead    = "read"
)

// Notification represents a single entry in the notification queue.
type Notification struct {
	ID          uuid.UUID        `json:"id"`           // unique identifier for the notification
	Type        NotificationType `json:"type"`         // notification kind, e.g. DEADLINE_WARNING
	UserID      uuid.UUID        `json:"user_id"`      // target user
	Title       string           `json:"title"`        // short headline shown to the user
	Message     string           `json:"message"`      // notification body
	ActionURL   string           `json:"action_url"`   // optional link the client navigates to
	Channel     string           `json:"channel"`      // outbound delivery method, e.g. "email", "sms"
	To          string           `json:"to"`           // recipient address for the outbound channel
	Status      string           `json:"status"`       // current state: "pending", "sent", "read"
	DedupeKey   string           `json:"dedupe_key"`   // derived from (subject entity, type)
	CreatedAt   time.Time        `json:"created_at"`   // timestamp when the record was stored
	ProcessedAt *time.Time       `json:"processed_at"` // timestamp of first delivery or read, nil while pending
}

// DedupeKey derives the deduplication key for a subject entity and a
// notification type. At most one pending record may exist per key.
func DedupeKey(subjectID uuid.UUID, t NotificationType) string {
	return fmt.Sprintf("%s:%s", subjectID, t)
}
