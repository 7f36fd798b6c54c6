package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/rufomartins/talent-nexus-notifier/internal/rabbitmq/queue"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/notification/mock.go -package=mocks
type notificationService interface {
	Send(to, subject, message, channel string) error
	MarkSent(ctx context.Context, strategy retry.Strategy, id uuid.UUID) error
}

// Handler processes one delivery message from the queue.
type Handler struct {
	service notificationService
}

func NewHandler(svc notificationService) *Handler {
	return &Handler{
		service: svc,
	}
}

// HandleMessage attempts outbound delivery with bounded retry. Success is
// recorded via MarkSent. On exhausted retries the record is left pending;
// the next sweep re-publishes it, so nothing is silently discarded.
func (h *Handler) HandleMessage(ctx context.Context, msg queue.DeliveryMessage, strategy retry.Strategy) {
	zlog.Logger.Info().
		Str("id", msg.ID.String()).
		Str("channel", msg.Channel).
		Msg("delivering notification")

	err := retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return h.service.Send(msg.To, msg.Title, msg.Message, msg.Channel)
		}
	}, strategy)

	if err != nil {
		zlog.Logger.Error().Err(err).
			Str("id", msg.ID.String()).
			Msg("delivery failed, record stays pending for next sweep")
		return
	}

	if err := h.service.MarkSent(ctx, strategy, msg.ID); err != nil {
		zlog.Logger.Error().Err(err).
			Str("id", msg.ID.String()).
			Msg("failed to mark notification sent")
		return
	}

	zlog.Logger.Info().Str("id", msg.ID.String()).Msg("notification sent")
}
