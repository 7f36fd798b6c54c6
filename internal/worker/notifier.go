package worker

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/rufomartins/talent-nexus-notifier/internal/model"
	"github.com/rufomartins/talent-nexus-notifier/internal/rabbitmq/queue"
)

//go:generate mockgen -source=notifier.go -destination=../mocks/worker/mock.go -package=mocks

type deliveryConsumer interface {
	Consume(ctx context.Context, out chan<- queue.DeliveryMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.DeliveryMessage, strategy retry.Strategy)
}

type notifierService interface {
	GetStatusByID(context.Context, retry.Strategy, uuid.UUID) (string, error)
}

// Notifier runs the outbound delivery worker pool over the delivery queue.
type Notifier struct {
	queue   deliveryConsumer
	handler messageHandler
	service notifierService
}

func NewNotifier(q deliveryConsumer, h messageHandler, s notifierService) *Notifier {
	return &Notifier{
		queue:   q,
		handler: h,
		service: s,
	}
}

// Run consumes delivery messages with workerCount goroutines until ctx is
// cancelled. Records no longer pending (already sent, or read before
// delivery) are skipped; duplicate queue messages are therefore harmless.
func (n *Notifier) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	var wg sync.WaitGroup
	msgChan := make(chan queue.DeliveryMessage, workerCount*10)

	go func() {
		if err := n.queue.Consume(ctx, msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume delivery messages")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("delivery worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("delivery worker-%d shutting down", id)
					return
				case msg, ok := <-msgChan:
					if !ok {
						zlog.Logger.Printf("delivery worker-%d channel closed, shutting down", id)
						return
					}

					status, err := n.service.GetStatusByID(ctx, strategy, msg.ID)
					if err != nil {
						zlog.Logger.Printf("failed to get status for %s: %v", msg.ID, err)
						continue
					}

					if status != model.StatusPending {
						zlog.Logger.Printf("notification %s is %s, skipping delivery", msg.ID, status)
						continue
					}

					n.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("notifier stopped")
}
