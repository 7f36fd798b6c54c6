package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/rufomartins/talent-nexus-notifier/internal/mocks/service/notification"
	"github.com/rufomartins/talent-nexus-notifier/internal/model"
	"github.com/rufomartins/talent-nexus-notifier/internal/rabbitmq/queue"
	notifrepo "github.com/rufomartins/talent-nexus-notifier/internal/repository/notification"
)

type serviceMocks struct {
	repo     *mocks.MocknotificationRepository
	delivery *mocks.MockdeliveryPublisher
	changes  *mocks.MockchangePublisher
	notifier *mocks.MockNotifier
	cache    *mocks.Mockcache
}

func setupService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		repo:     mocks.NewMocknotificationRepository(ctrl),
		delivery: mocks.NewMockdeliveryPublisher(ctrl),
		changes:  mocks.NewMockchangePublisher(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
		cache:    mocks.NewMockcache(ctrl),
	}

	svc := NewService(m.repo, m.delivery, m.changes, map[string]Notifier{"email": m.notifier}, m.cache)

	return svc, m
}

func TestService_Enqueue(t *testing.T) {
	svc, m := setupService(t)

	id := uuid.New()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	n := model.Notification{
		Type:      model.TypeDeadlineWarning,
		UserID:    uuid.New(),
		Title:     "Assignment due soon",
		Message:   "due in 2 day(s)",
		Channel:   "email",
		To:        "user@example.com",
		DedupeKey: "a1:DEADLINE_WARNING",
	}
	stored := n
	stored.ID = id
	stored.Status = model.StatusPending

	m.repo.EXPECT().Enqueue(gomock.Any(), n).Return(id, nil)
	m.cache.EXPECT().SetWithRetry(gomock.Any(), strategy, id.String(), model.StatusPending).Return(nil)
	m.delivery.EXPECT().
		Publish(queue.DeliveryMessage{
			ID:      id,
			Type:    n.Type,
			Title:   n.Title,
			Message: n.Message,
			To:      n.To,
			Channel: n.Channel,
		}, strategy).
		Return(nil)
	m.repo.EXPECT().GetByID(gomock.Any(), id).Return(stored, nil)
	m.changes.EXPECT().
		Publish(queue.ChangeEvent{Op: queue.OpInsert, Table: "notifications", Record: stored}, gomock.Any()).
		Return(nil)

	gotID, err := svc.Enqueue(context.Background(), strategy, n)
	assert.NoError(t, err)
	assert.Equal(t, id, gotID)
}

func TestService_Enqueue_AlreadyPendingPassesThrough(t *testing.T) {
	svc, m := setupService(t)

	strategy := retry.Strategy{Attempts: 1}
	n := model.Notification{DedupeKey: "a1:DEADLINE_WARNING"}

	// No delivery message and no change event for a duplicate.
	m.repo.EXPECT().Enqueue(gomock.Any(), n).Return(uuid.Nil, notifrepo.ErrAlreadyPending)

	_, err := svc.Enqueue(context.Background(), strategy, n)
	assert.ErrorIs(t, err, notifrepo.ErrAlreadyPending)
}

func TestService_Enqueue_PublishFailureStillSucceeds(t *testing.T) {
	svc, m := setupService(t)

	id := uuid.New()
	strategy := retry.Strategy{Attempts: 1}
	n := model.Notification{DedupeKey: "a1:DEADLINE_WARNING"}
	stored := n
	stored.ID = id
	stored.Status = model.StatusPending

	m.repo.EXPECT().Enqueue(gomock.Any(), n).Return(id, nil)
	m.cache.EXPECT().SetWithRetry(gomock.Any(), strategy, id.String(), model.StatusPending).Return(nil)
	m.delivery.EXPECT().Publish(gomock.Any(), strategy).Return(errors.New("broker down"))
	m.repo.EXPECT().GetByID(gomock.Any(), id).Return(stored, nil)
	m.changes.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	// The record is committed; a publish failure is recovered by the sweep.
	gotID, err := svc.Enqueue(context.Background(), strategy, n)
	assert.NoError(t, err)
	assert.Equal(t, id, gotID)
}

func TestService_GetStatusByID_CacheHit(t *testing.T) {
	svc, m := setupService(t)

	id := uuid.New()
	strategy := retry.Strategy{Attempts: 1}

	m.cache.EXPECT().GetWithRetry(gomock.Any(), strategy, id.String()).Return(model.StatusSent, nil)

	status, err := svc.GetStatusByID(context.Background(), strategy, id)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusSent, status)
}

func TestService_GetStatusByID_CacheMissFallsBack(t *testing.T) {
	svc, m := setupService(t)

	id := uuid.New()
	strategy := retry.Strategy{Attempts: 1}

	m.cache.EXPECT().GetWithRetry(gomock.Any(), strategy, id.String()).Return("", redis.Nil)
	m.repo.EXPECT().GetStatusByID(gomock.Any(), id).Return(model.StatusPending, nil)
	m.cache.EXPECT().SetWithRetry(gomock.Any(), strategy, id.String(), model.StatusPending).Return(nil)

	status, err := svc.GetStatusByID(context.Background(), strategy, id)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusPending, status)
}

func TestService_MarkSent(t *testing.T) {
	svc, m := setupService(t)

	id := uuid.New()
	strategy := retry.Strategy{Attempts: 1}
	stored := model.Notification{ID: id, Status: model.StatusSent}

	m.repo.EXPECT().MarkSent(gomock.Any(), id).Return(nil)
	m.cache.EXPECT().SetWithRetry(gomock.Any(), strategy, id.String(), model.StatusSent).Return(nil)
	m.repo.EXPECT().GetByID(gomock.Any(), id).Return(stored, nil)
	m.changes.EXPECT().
		Publish(queue.ChangeEvent{Op: queue.OpUpdate, Table: "notifications", Record: stored}, gomock.Any()).
		Return(nil)

	err := svc.MarkSent(context.Background(), strategy, id)
	assert.NoError(t, err)
}

func TestService_MarkRead_InvalidTransition(t *testing.T) {
	svc, m := setupService(t)

	id := uuid.New()
	strategy := retry.Strategy{Attempts: 1}

	m.repo.EXPECT().MarkRead(gomock.Any(), id).Return(notifrepo.ErrInvalidTransition)

	err := svc.MarkRead(context.Background(), strategy, id)
	assert.ErrorIs(t, err, notifrepo.ErrInvalidTransition)
}

func TestService_RepublishStale(t *testing.T) {
	svc, m := setupService(t)

	strategy := retry.Strategy{Attempts: 1}
	stale := []model.Notification{
		{ID: uuid.New(), Type: model.TypeDeadlineOverdue, Channel: "email", To: "a@example.com"},
		{ID: uuid.New(), Type: model.TypeDeadlineWarning, Channel: "sms", To: "+15550100"},
	}

	m.repo.EXPECT().ListStalePending(gomock.Any(), 15*time.Minute).Return(stale, nil)
	m.delivery.EXPECT().Publish(gomock.Any(), strategy).Return(nil)
	m.delivery.EXPECT().Publish(gomock.Any(), strategy).Return(errors.New("broker down"))

	republished, err := svc.RepublishStale(context.Background(), strategy, 15*time.Minute)
	assert.NoError(t, err)
	assert.Equal(t, 1, republished)
}

func TestService_Send_UnknownChannel(t *testing.T) {
	svc, _ := setupService(t)

	err := svc.Send("to", "subject", "message", "pigeon")
	assert.Error(t, err)
}

func TestService_Send(t *testing.T) {
	svc, m := setupService(t)

	m.notifier.EXPECT().Send("user@example.com", "Assignment due soon", "due in 2 day(s)").Return(nil)

	err := svc.Send("user@example.com", "Assignment due soon", "due in 2 day(s)", "email")
	assert.NoError(t, err)
}
