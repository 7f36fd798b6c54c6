package assignment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/rufomartins/talent-nexus-notifier/internal/model"
	notifrepo "github.com/rufomartins/talent-nexus-notifier/internal/repository/notification"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/assignment/mock.go -package=mocks

type assignmentRepository interface {
	CreateAssignment(context.Context, model.Assignment) (uuid.UUID, error)
	GetByID(context.Context, uuid.UUID) (model.Assignment, error)
	UpdateStatus(context.Context, uuid.UUID, string) error
	UpdateRole(context.Context, uuid.UUID, string) error
}

type notificationEnqueuer interface {
	Enqueue(context.Context, retry.Strategy, model.Notification) (uuid.UUID, error)
}

// Service implements assignment operations and the notifications they
// cause: NEW_ASSIGNMENT on create, STATUS_CHANGE and ROLE_REASSIGNMENT on
// updates. Outbound contact details are captured on the assignment itself.
type Service struct {
	repo          assignmentRepository
	notifications notificationEnqueuer
}

func NewService(repo assignmentRepository, notifications notificationEnqueuer) *Service {
	return &Service{repo: repo, notifications: notifications}
}

// Create stores an assignment and enqueues a NEW_ASSIGNMENT notification
// for the assigned user.
func (s *Service) Create(ctx context.Context, strategy retry.Strategy, a model.Assignment) (uuid.UUID, error) {
	id, err := s.repo.CreateAssignment(ctx, a)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create assignment: %w", err)
	}

	s.enqueue(ctx, strategy, model.Notification{
		Type:      model.TypeNewAssignment,
		UserID:    a.UserID,
		Title:     "New assignment",
		Message:   fmt.Sprintf("You have been assigned as %s, due %s.", a.Role, a.DueAt.Format("2006-01-02 15:04")),
		Channel:   a.Channel,
		To:        a.To,
		DedupeKey: model.DedupeKey(id, model.TypeNewAssignment),
	})

	return id, nil
}

// SetStatus updates the assignment status and enqueues a STATUS_CHANGE
// notification. Terminal states also stop the deadline sweep from
// classifying the assignment.
func (s *Service) SetStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID, status string) error {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update assignment status: %w", err)
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get assignment: %w", err)
	}

	s.enqueue(ctx, strategy, model.Notification{
		Type:      model.TypeStatusChange,
		UserID:    a.UserID,
		Title:     "Assignment status changed",
		Message:   fmt.Sprintf("Your assignment is now %s.", status),
		Channel:   a.Channel,
		To:        a.To,
		DedupeKey: model.DedupeKey(id, model.TypeStatusChange),
	})

	return nil
}

// Reassign updates the assignment role and enqueues a ROLE_REASSIGNMENT
// notification.
func (s *Service) Reassign(ctx context.Context, strategy retry.Strategy, id uuid.UUID, role string) error {
	if err := s.repo.UpdateRole(ctx, id, role); err != nil {
		return fmt.Errorf("update assignment role: %w", err)
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get assignment: %w", err)
	}

	s.enqueue(ctx, strategy, model.Notification{
		Type:      model.TypeRoleReassignment,
		UserID:    a.UserID,
		Title:     "Role reassigned",
		Message:   fmt.Sprintf("Your role has changed to %s.", role),
		Channel:   a.Channel,
		To:        a.To,
		DedupeKey: model.DedupeKey(id, model.TypeRoleReassignment),
	})

	return nil
}

// enqueue pushes a notification, treating an already-pending duplicate as
// a skip rather than a failure.
func (s *Service) enqueue(ctx context.Context, strategy retry.Strategy, n model.Notification) {
	if _, err := s.notifications.Enqueue(ctx, strategy, n); err != nil {
		if errors.Is(err, notifrepo.ErrAlreadyPending) {
			zlog.Logger.Debug().Str("dedupe_key", n.DedupeKey).Msg("notification already pending, skipping")
			return
		}

		zlog.Logger.Error().Err(err).Str("dedupe_key", n.DedupeKey).Msg("failed to enqueue notification")
	}
}
