package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/rufomartins/talent-nexus-notifier/internal/model"
)

const ChangesExchangeName = "notify-changes"

// ChangeOp is the kind of row-level change carried by a ChangeEvent.
type ChangeOp string

const (
	OpInsert ChangeOp = "insert"
	OpUpdate ChangeOp = "update"
)

// ChangeEvent describes a row-level change in the notification queue.
// Delivery to observers is best-effort and unordered across rows;
// consumers must treat each event as an independent upsert keyed by
// Record.ID, not as an ordered log.
type ChangeEvent struct {
	Op     ChangeOp           `json:"op"`
	Table  string             `json:"table"`
	Record model.Notification `json:"record"`
}

// ChangesFeed is the fanout channel carrying ChangeEvents to broker
// instances. Each feed binds its own transient queue to the fanout
// exchange, so every running broker observes every event.
type ChangesFeed struct {
	publisher *rabbitmq.Publisher
	consumer  *rabbitmq.Consumer
}

// NewChangesFeed declares the fanout exchange and a per-instance queue
// bound to it.
func NewChangesFeed(ch *rabbitmq.Channel) (*ChangesFeed, error) {
	exchange := rabbitmq.NewExchange(ChangesExchangeName, "fanout")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to changes exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	queueName := fmt.Sprintf("%s.%s", ChangesExchangeName, uuid.NewString())

	q, err := qm.DeclareQueue(queueName, rabbitmq.QueueConfig{Durable: false})
	if err != nil {
		return nil, fmt.Errorf("failed to declare changes queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, "", exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind changes queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(q.Name))

	return &ChangesFeed{publisher: pub, consumer: cons}, nil
}

// Publish fans out a change event to all bound queues.
func (f *ChangesFeed) Publish(ev ChangeEvent, strategy retry.Strategy) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	return f.publisher.PublishWithRetry(body, "", "application/json", strategy)
}

// Consume decodes change events onto out until the consumer stops.
func (f *ChangesFeed) Consume(ctx context.Context, out chan<- ChangeEvent, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for m := range msgChan {
			var ev ChangeEvent
			if err := json.Unmarshal(m, &ev); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal change event")
				continue
			}

			select {
			case <-ctx.Done():
				return
			case out <- ev:
			}
		}
	}()

	return f.consumer.ConsumeWithRetry(msgChan, strategy)
}
