// Package dto holds the JSON request bodies accepted by the HTTP API.
package dto

// CheckAvailabilityRequest asks whether a talent is free for a date range.
type CheckAvailabilityRequest struct {
	TalentID  string `json:"talent_id" validate:"required,uuid"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

// CreateBookingRequest creates a booking. Override must be set to proceed
// despite conflicts.
type CreateBookingRequest struct {
	TalentID   string `json:"talent_id" validate:"required,uuid"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date" validate:"required"`
	ResourceID string `json:"resource_id"`
	Override   bool   `json:"override"`
}

// CreateAssignmentRequest creates a (task, role, user) assignment.
type CreateAssignmentRequest struct {
	TaskID  string `json:"task_id" validate:"required,uuid"`
	UserID  string `json:"user_id" validate:"required,uuid"`
	Role    string `json:"role" validate:"required"`
	StartAt string `json:"start_at" validate:"required"`
	DueAt   string `json:"due_at" validate:"required"`
	Channel string `json:"channel" validate:"required,oneof=email sms"`
	To      string `json:"to" validate:"required"`
}

// UpdateAssignmentStatusRequest moves an assignment to a new status.
type UpdateAssignmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open completed cancelled"`
}

// UpdateAssignmentRoleRequest reassigns the role on an assignment.
type UpdateAssignmentRoleRequest struct {
	Role string `json:"role" validate:"required"`
}
