package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/rufomartins/talent-nexus-notifier/internal/mocks/worker"
	"github.com/rufomartins/talent-nexus-notifier/internal/model"
	"github.com/rufomartins/talent-nexus-notifier/internal/rabbitmq/queue"
)

func TestNotifier_Run_HandleMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockdeliveryConsumer(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)
	mockService := mocks.NewMocknotifierService(ctrl)

	n := NewNotifier(mockConsumer, mockHandler, mockService)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	msg := queue.DeliveryMessage{
		ID:      uuid.New(),
		Type:    model.TypeDeadlineWarning,
		Title:   "Assignment due soon",
		Message: "due in 2 day(s)",
		To:      "test@example.com",
		Channel: "email",
	}

	mockConsumer.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(_ context.Context, out chan<- queue.DeliveryMessage, _ retry.Strategy) error {
			out <- msg
			return nil
		},
	)

	mockService.EXPECT().GetStatusByID(gomock.Any(), strategy, msg.ID).Return(model.StatusPending, nil)
	mockHandler.EXPECT().HandleMessage(gomock.Any(), msg, strategy)

	go n.Run(ctx, strategy, 1)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
}

func TestNotifier_Run_SkipsNonPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockdeliveryConsumer(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)
	mockService := mocks.NewMocknotifierService(ctrl)

	n := NewNotifier(mockConsumer, mockHandler, mockService)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	msg := queue.DeliveryMessage{ID: uuid.New()}

	mockConsumer.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(_ context.Context, out chan<- queue.DeliveryMessage, _ retry.Strategy) error {
			out <- msg
			return nil
		},
	)

	// A duplicate queue message for an already sent record is dropped.
	mockService.EXPECT().GetStatusByID(gomock.Any(), strategy, msg.ID).Return(model.StatusSent, nil)

	go n.Run(ctx, strategy, 1)
	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
}

func TestNotifier_Run_GetStatusError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockdeliveryConsumer(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)
	mockService := mocks.NewMocknotifierService(ctrl)

	n := NewNotifier(mockConsumer, mockHandler, mockService)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	msg := queue.DeliveryMessage{ID: uuid.New()}

	mockConsumer.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(_ context.Context, out chan<- queue.DeliveryMessage, _ retry.Strategy) error {
			out <- msg
			return nil
		},
	)

	mockService.EXPECT().GetStatusByID(gomock.Any(), strategy, msg.ID).Return("", errors.New("db error"))

	go n.Run(ctx, strategy, 1)
	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
}

func TestNotifier_Run_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockdeliveryConsumer(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)
	mockService := mocks.NewMocknotifierService(ctrl)

	n := NewNotifier(mockConsumer, mockHandler, mockService)

	ctx, cancel := context.WithCancel(context.Background())

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockConsumer.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(ctx context.Context, out chan<- queue.DeliveryMessage, _ retry.Strategy) error {
			<-ctx.Done()
			return nil
		},
	)

	done := make(chan struct{})
	go func() {
		n.Run(ctx, strategy, 2)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notifier did not stop after context cancellation")
	}
}
