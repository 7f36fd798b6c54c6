package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/rufomartins/talent-nexus-notifier/internal/api/respond"
	"github.com/rufomartins/talent-nexus-notifier/internal/broker"
	"github.com/rufomartins/talent-nexus-notifier/internal/config"
	"github.com/rufomartins/talent-nexus-notifier/internal/model"
	notifrepo "github.com/rufomartins/talent-nexus-notifier/internal/repository/notification"
)

// notificationService defines the queue operations the handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks
type notificationService interface {
	ListPending(context.Context, uuid.UUID) ([]model.Notification, error)
	MarkRead(ctx context.Context, strategy retry.Strategy, id uuid.UUID) error
}

type subscriptionBroker interface {
	Subscribe(userID uuid.UUID) *broker.Subscription
}

// Handler serves the notification read API: list pending, mark as read,
// and a server-sent-events stream of queue changes.
type Handler struct {
	service notificationService
	broker  subscriptionBroker
	cfg     *config.Config
}

func NewHandler(s notificationService, b subscriptionBroker, cfg *config.Config) *Handler {
	return &Handler{service: s, broker: b, cfg: cfg}
}

// ListPending handles GET requests for a user's unread notifications.
func (h *Handler) ListPending(c *ginext.Context) {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to parse user id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid user id"))
		return
	}

	notifications, err := h.service.ListPending(c.Request.Context(), userID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list pending notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, notifications)
}

// MarkRead handles PUT requests acknowledging a notification as read.
func (h *Handler) MarkRead(c *ginext.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to parse notification id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	err = h.service.MarkRead(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		switch {
		case errors.Is(err, notifrepo.ErrRecordNotFound):
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
		case errors.Is(err, notifrepo.ErrInvalidTransition):
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("invalid status transition")
			respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("invalid status transition"))
		default:
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to mark notification read")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.OK(c.Writer, "notification read")
}

// Stream handles GET requests for a server-sent-events subscription to the
// user's notification changes. The first event is a full snapshot of
// pending records; clients that reconnect after an error rely on that
// snapshot instead of catch-up delivery.
func (h *Handler) Stream(c *ginext.Context) {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to parse user id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid user id"))
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("streaming unsupported"))
		return
	}

	sub := h.broker.Subscribe(userID)
	defer sub.Close()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)

	pending, err := h.service.ListPending(c.Request.Context(), userID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to load snapshot for stream")
		return
	}

	writeSSE(c.Writer, "snapshot", pending)
	flusher.Flush()

	ctx := c.Request.Context()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, open := <-sub.Events():
			if !open {
				// Broker lost the change feed; ending the stream makes the
				// client reconnect and rehydrate from the snapshot.
				return
			}

			writeSSE(c.Writer, "change", ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w io.Writer, event string, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to marshal SSE payload")
		return
	}

	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, body)
}
