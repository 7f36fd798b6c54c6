// Package deadline classifies assignment due dates into urgency states.
// Classification is a pure function of (dueAt, now); transition history is
// tracked only through the notifications it causes to be enqueued.
package deadline

import (
	"math"
	"time"
)

// State is the urgency state of an assignment deadline.
type State string

const (
	StateOK      State = "ok"
	StateWarning State = "warning"
	StateOverdue State = "overdue"
)

// DefaultWarningThresholdDays is the number of days before a due date at
// which an assignment enters the warning state.
const DefaultWarningThresholdDays = 3

// Classifier maps a due timestamp and the current time to a State.
type Classifier struct {
	warningThresholdDays int
}

// NewClassifier creates a Classifier with the given warning threshold in
// days. Non-positive values fall back to DefaultWarningThresholdDays.
func NewClassifier(warningThresholdDays int) Classifier {
	if warningThresholdDays <= 0 {
		warningThresholdDays = DefaultWarningThresholdDays
	}

	return Classifier{warningThresholdDays: warningThresholdDays}
}

// DaysRemaining returns ceil((dueAt - now) / 1 day). Due "today" yields 0.
func DaysRemaining(dueAt, now time.Time) int {
	return int(math.Ceil(dueAt.Sub(now).Hours() / 24))
}

// Classify returns the urgency state for a due timestamp at the given
// moment. Any instant past the deadline is overdue; a remaining span of
// zero up to the threshold (in whole days, rounded up) warns.
func (c Classifier) Classify(dueAt, now time.Time) State {
	if dueAt.Before(now) {
		return StateOverdue
	}

	if DaysRemaining(dueAt, now) <= c.warningThresholdDays {
		return StateWarning
	}

	return StateOK
}
