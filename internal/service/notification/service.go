package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/rufomartins/talent-nexus-notifier/internal/model"
	"github.com/rufomartins/talent-nexus-notifier/internal/rabbitmq/queue"
	notifrepo "github.com/rufomartins/talent-nexus-notifier/internal/repository/notification"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

type notificationRepository interface {
	Enqueue(context.Context, model.Notification) (uuid.UUID, error)
	HasRecord(context.Context, string) (bool, error)
	MarkSent(context.Context, uuid.UUID) error
	MarkRead(context.Context, uuid.UUID) error
	GetStatusByID(context.Context, uuid.UUID) (string, error)
	GetByID(context.Context, uuid.UUID) (model.Notification, error)
	ListPending(context.Context, uuid.UUID) ([]model.Notification, error)
	ListStalePending(context.Context, time.Duration) ([]model.Notification, error)
}

type deliveryPublisher interface {
	Publish(msg queue.DeliveryMessage, strategy retry.Strategy) error
}

type changePublisher interface {
	Publish(ev queue.ChangeEvent, strategy retry.Strategy) error
}

// Notifier is an outbound send capability for one channel.
type Notifier interface {
	Send(to, subject, msg string) error
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service owns the notification queue lifecycle. All enqueue and status
// mutations go through it, so the dedupe and monotonicity checks of the
// repository are never bypassed, and every committed mutation is fanned
// out as a change event.
type Service struct {
	repo      notificationRepository
	delivery  deliveryPublisher
	changes   changePublisher
	notifiers map[string]Notifier
	cache     cache
}

func NewService(
	repo notificationRepository,
	delivery deliveryPublisher,
	changes changePublisher,
	notifiers map[string]Notifier,
	cache cache,
) *Service {
	return &Service{repo: repo, delivery: delivery, changes: changes, notifiers: notifiers, cache: cache}
}

// Enqueue stores a pending notification, then publishes a delivery message
// and an insert change event. ErrAlreadyPending passes through untouched so
// callers can skip without treating it as a failure. Publish failures after
// a committed insert are logged, not returned: the record is durable and
// the next sweep re-publishes stale pending records.
func (s *Service) Enqueue(ctx context.Context, strategy retry.Strategy, n model.Notification) (uuid.UUID, error) {
	id, err := s.repo.Enqueue(ctx, n)
	if err != nil {
		if errors.Is(err, notifrepo.ErrAlreadyPending) {
			return uuid.Nil, err
		}

		return uuid.Nil, fmt.Errorf("enqueue notification: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, strategy, id.String(), model.StatusPending); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache notification status")
	}

	msg := queue.DeliveryMessage{
		ID:      id,
		Type:    n.Type,
		Title:   n.Title,
		Message: n.Message,
		To:      n.To,
		Channel: n.Channel,
	}

	if err := s.delivery.Publish(msg, strategy); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to publish delivery message")
	}

	s.publishChange(ctx, queue.OpInsert, id)

	return id, nil
}

// HasRecord reports whether any record exists for the dedupe key.
func (s *Service) HasRecord(ctx context.Context, dedupeKey string) (bool, error) {
	exists, err := s.repo.HasRecord(ctx, dedupeKey)
	if err != nil {
		return false, fmt.Errorf("check dedupe key: %w", err)
	}

	return exists, nil
}

// GetStatusByID returns the record status, read through the cache.
func (s *Service) GetStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (string, error) {
	status, err := s.cache.GetWithRetry(ctx, strategy, id.String())
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get notification status from cache")
	}

	if errors.Is(err, redis.Nil) {
		status, err = s.repo.GetStatusByID(ctx, id)
		if err != nil {
			return "", fmt.Errorf("get notification status: %w", err)
		}

		if err := s.cache.SetWithRetry(ctx, strategy, id.String(), status); err != nil {
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache notification status")
		}
	}

	return status, nil
}

// MarkSent records a successful outbound delivery.
func (s *Service) MarkSent(ctx context.Context, strategy retry.Strategy, id uuid.UUID) error {
	if err := s.repo.MarkSent(ctx, id); err != nil {
		return fmt.Errorf("mark notification sent: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, strategy, id.String(), model.StatusSent); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache notification status")
	}

	s.publishChange(ctx, queue.OpUpdate, id)

	return nil
}

// MarkRead records a user read acknowledgement.
func (s *Service) MarkRead(ctx context.Context, strategy retry.Strategy, id uuid.UUID) error {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, strategy, id.String(), model.StatusRead); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache notification status")
	}

	s.publishChange(ctx, queue.OpUpdate, id)

	return nil
}

// ListPending returns the user's unread records, newest first.
func (s *Service) ListPending(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	notifications, err := s.repo.ListPending(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list pending notifications: %w", err)
	}

	return notifications, nil
}

// RepublishStale re-publishes delivery messages for pending records older
// than the given age. Records whose delivery retries were exhausted stay
// pending until a later sweep picks them up here.
func (s *Service) RepublishStale(ctx context.Context, strategy retry.Strategy, olderThan time.Duration) (int, error) {
	stale, err := s.repo.ListStalePending(ctx, olderThan)
	if err != nil {
		return 0, fmt.Errorf("list stale pending: %w", err)
	}

	republished := 0
	for _, n := range stale {
		msg := queue.DeliveryMessage{
			ID:      n.ID,
			Type:    n.Type,
			Title:   n.Title,
			Message: n.Message,
			To:      n.To,
			Channel: n.Channel,
		}

		if err := s.delivery.Publish(msg, strategy); err != nil {
			zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to republish stale notification")
			continue
		}

		republished++
	}

	return republished, nil
}

// Send delivers a message through the named outbound channel.
func (s *Service) Send(to, subject, message, channel string) error {
	notifier, ok := s.notifiers[channel]
	if !ok {
		return fmt.Errorf("unknown channel %s", channel)
	}

	if err := notifier.Send(to, subject, message); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	return nil
}

// publishChange fans out the record's current state. Best-effort: observers
// that miss an event resynchronize via ListPending on reconnect.
func (s *Service) publishChange(ctx context.Context, op queue.ChangeOp, id uuid.UUID) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to load record for change event")
		return
	}

	ev := queue.ChangeEvent{Op: op, Table: "notifications", Record: record}

	if err := s.changes.Publish(ev, retry.Strategy{Attempts: 1}); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to publish change event")
	}
}
