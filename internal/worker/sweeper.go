package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/rufomartins/talent-nexus-notifier/internal/deadline"
	"github.com/rufomartins/talent-nexus-notifier/internal/model"
	notifrepo "github.com/rufomartins/talent-nexus-notifier/internal/repository/notification"
)

//go:generate mockgen -source=sweeper.go -destination=../mocks/worker/sweeper_mock.go -package=mocks

type assignmentSource interface {
	ListOpen(context.Context) ([]model.Assignment, error)
}

type sweepService interface {
	HasRecord(ctx context.Context, dedupeKey string) (bool, error)
	Enqueue(ctx context.Context, strategy retry.Strategy, n model.Notification) (uuid.UUID, error)
	RepublishStale(ctx context.Context, strategy retry.Strategy, olderThan time.Duration) (int, error)
}

// Sweeper periodically classifies open assignments and enqueues deadline
// notifications. Zero or more sweeps may run overlapping in time:
// correctness never depends on mutual exclusion between runs, only on the
// queue's dedupe-key uniqueness.
type Sweeper struct {
	assignments assignmentSource
	service     sweepService
	classifier  deadline.Classifier

	interval   time.Duration
	staleAfter time.Duration
	strategy   retry.Strategy
}

func NewSweeper(
	assignments assignmentSource,
	service sweepService,
	classifier deadline.Classifier,
	interval, staleAfter time.Duration,
	strategy retry.Strategy,
) *Sweeper {
	return &Sweeper{
		assignments: assignments,
		service:     service,
		classifier:  classifier,
		interval:    interval,
		staleAfter:  staleAfter,
		strategy:    strategy,
	}
}

// Run sweeps once immediately, then on every tick until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	if err := s.Sweep(ctx); err != nil {
		zlog.Logger.Error().Err(err).Msg("deadline sweep failed")
	}

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Print("sweeper stopped")
			return
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				zlog.Logger.Error().Err(err).Msg("deadline sweep failed")
			}
		}
	}
}

// Sweep classifies every open assignment against the current time and
// enqueues a DEADLINE_WARNING or DEADLINE_OVERDUE record where one does
// not already exist for the (assignment, type) pair, then re-publishes
// stale pending records for delivery.
func (s *Sweeper) Sweep(ctx context.Context) error {
	assignments, err := s.assignments.ListOpen(ctx)
	if err != nil {
		return fmt.Errorf("list open assignments: %w", err)
	}

	now := time.Now()
	enqueued := 0

	for _, a := range assignments {
		state := s.classifier.Classify(a.DueAt, now)
		if state == deadline.StateOK {
			continue
		}

		n := s.buildDeadlineNotification(a, state, now)

		exists, err := s.service.HasRecord(ctx, n.DedupeKey)
		if err != nil {
			zlog.Logger.Error().Err(err).Str("dedupe_key", n.DedupeKey).Msg("failed to check dedupe key")
			continue
		}

		if exists {
			continue
		}

		// A sweep running concurrently may have enqueued between the check
		// and here; the queue's uniqueness turns that into ErrAlreadyPending.
		if _, err := s.service.Enqueue(ctx, s.strategy, n); err != nil {
			if errors.Is(err, notifrepo.ErrAlreadyPending) {
				zlog.Logger.Debug().Str("dedupe_key", n.DedupeKey).Msg("notification already pending, skipping")
				continue
			}

			zlog.Logger.Error().Err(err).Str("dedupe_key", n.DedupeKey).Msg("failed to enqueue deadline notification")
			continue
		}

		enqueued++
	}

	republished, err := s.service.RepublishStale(ctx, s.strategy, s.staleAfter)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to republish stale notifications")
	}

	zlog.Logger.Info().
		Int("assignments", len(assignments)).
		Int("enqueued", enqueued).
		Int("republished", republished).
		Msg("deadline sweep finished")

	return nil
}

func (s *Sweeper) buildDeadlineNotification(a model.Assignment, state deadline.State, now time.Time) model.Notification {
	var (
		typ     model.NotificationType
		title   string
		message string
	)

	switch state {
	case deadline.StateOverdue:
		typ = model.TypeDeadlineOverdue
		title = "Assignment overdue"
		message = fmt.Sprintf("Your %s assignment was due %s.", a.Role, a.DueAt.Format("2006-01-02 15:04"))
	default:
		typ = model.TypeDeadlineWarning
		title = "Assignment due soon"

		days := deadline.DaysRemaining(a.DueAt, now)
		if days <= 0 {
			message = fmt.Sprintf("Your %s assignment is due today.", a.Role)
		} else {
			message = fmt.Sprintf("Your %s assignment is due in %d day(s).", a.Role, days)
		}
	}

	return model.Notification{
		Type:      typ,
		UserID:    a.UserID,
		Title:     title,
		Message:   message,
		Channel:   a.Channel,
		To:        a.To,
		DedupeKey: model.DedupeKey(a.ID, typ),
	}
}
