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

const (
	ExchangeName   = "notify-exchange"
	MainQueueName  = "notify-queue"
	RetryQueueName = "notify-retry"
	DLQName        = "notify-dlq"
	RoutingKey     = "notify"
)

// DeliveryMessage is the payload carried on the delivery queue for one
// outbound notification.
type DeliveryMessage struct {
	ID      uuid.UUID              `json:"id"`
	Type    model.NotificationType `json:"type"`
	Title   string                 `json:"title"`
	Message string                 `json:"message"`
	To      string                 `json:"to"`
	Channel string                 `json:"channel"`
}

// DeliveryQueue wraps the durable RabbitMQ topology for outbound delivery:
// a direct exchange, the main queue dead-lettering into the DLQ, and a
// retry queue that TTL-expires back onto the main queue.
type DeliveryQueue struct {
	Publisher *rabbitmq.Publisher
	Consumer  *rabbitmq.Consumer
}

// NewDeliveryQueue declares the exchange and queues and binds them.
func NewDeliveryQueue(ch *rabbitmq.Channel) (*DeliveryQueue, error) {
	exchange := rabbitmq.NewExchange(ExchangeName, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(DLQName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": MainQueueName,
		"x-message-ttl":             int32(5000),
	}

	_, err = qm.DeclareQueue(RetryQueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare retry queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": DLQName,
	}

	mainQ, err := qm.DeclareQueue(MainQueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &DeliveryQueue{Publisher: pub, Consumer: cons}, nil
}

// Publish enqueues a delivery message with retry.
func (q *DeliveryQueue) Publish(msg DeliveryMessage, strategy retry.Strategy) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, RoutingKey, "application/json", strategy)
}

// Consume decodes delivery messages onto out until the consumer stops.
func (q *DeliveryQueue) Consume(ctx context.Context, out chan<- DeliveryMessage, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for m := range msgChan {
			var msg DeliveryMessage
			if err := json.Unmarshal(m, &msg); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal delivery message")
				continue
			}

			select {
			case <-ctx.Done():
				return
			case out <- msg:
			}
		}
	}()

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}
