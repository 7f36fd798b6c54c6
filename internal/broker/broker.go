// Package broker fans row-change events out to per-user subscriptions.
// A Broker instance owns its subscription registry explicitly; there is no
// ambient module state. Delivery is best-effort, at-most-once: a dropped
// feed never replays history, so consumers resynchronize from ListPending
// after resubscribing.
package broker

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/rufomartins/talent-nexus-notifier/internal/rabbitmq/queue"
)

// SubscriptionState is the lifecycle state of one subscription:
// connecting -> subscribed -> (error | closed).
type SubscriptionState string

const (
	StateConnecting SubscriptionState = "connecting"
	StateSubscribed SubscriptionState = "subscribed"
	StateError      SubscriptionState = "error"
	StateClosed     SubscriptionState = "closed"
)

var errFeedClosed = errors.New("change feed closed")

type changeConsumer interface {
	Consume(ctx context.Context, out chan<- queue.ChangeEvent, strategy retry.Strategy) error
}

// Subscription is one observer's handle on the change feed. Its event
// channel closes when the subscription ends, either by Close or by a feed
// error; no callbacks fire after that.
type Subscription struct {
	ID     uuid.UUID
	UserID uuid.UUID

	events chan queue.ChangeEvent
	broker *Broker

	mu    sync.Mutex
	state SubscriptionState
	once  sync.Once
}

// Events returns the subscription's event channel. It is closed on
// teardown.
func (s *Subscription) Events() <-chan queue.ChangeEvent {
	return s.events
}

// State returns the current lifecycle state.
func (s *Subscription) State() SubscriptionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *Subscription) setState(state SubscriptionState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Close tears the subscription down: it is removed from the broker,
// further delivery stops, and the event channel is closed.
func (s *Subscription) Close() {
	s.broker.unsubscribe(s)
	s.finish(StateClosed)
}

func (s *Subscription) finish(state SubscriptionState) {
	s.once.Do(func() {
		s.setState(state)
		close(s.events)
	})
}

// Broker consumes the change feed and delivers matching events to
// registered subscriptions.
type Broker struct {
	consumer changeConsumer
	strategy retry.Strategy

	mu   sync.RWMutex
	subs map[uuid.UUID]*Subscription
}

// New creates a Broker over a change feed consumer. The strategy bounds
// the resubscribe backoff after feed errors.
func New(consumer changeConsumer, strategy retry.Strategy) *Broker {
	return &Broker{
		consumer: consumer,
		strategy: strategy,
		subs:     make(map[uuid.UUID]*Subscription),
	}
}

// Subscribe registers an observer for the user's notification changes.
func (b *Broker) Subscribe(userID uuid.UUID) *Subscription {
	sub := &Subscription{
		ID:     uuid.New(),
		UserID: userID,
		events: make(chan queue.ChangeEvent, 16),
		broker: b,
		state:  StateConnecting,
	}

	b.mu.Lock()
	b.subs[sub.ID] = sub
	b.mu.Unlock()

	sub.setState(StateSubscribed)

	return sub
}

func (b *Broker) unsubscribe(sub *Subscription) {
	b.mu.Lock()
	delete(b.subs, sub.ID)
	b.mu.Unlock()
}

// Run consumes the change feed until ctx is cancelled, resubscribing with
// bounded backoff after errors. Every feed failure fails all current
// subscriptions: their channels close, and reconnecting clients rehydrate
// from ListPending instead of relying on catch-up delivery.
func (b *Broker) Run(ctx context.Context) {
	for ctx.Err() == nil {
		err := retry.Do(func() error {
			return b.consume(ctx)
		}, b.strategy)

		if ctx.Err() != nil {
			return
		}

		if err != nil {
			zlog.Logger.Error().Err(err).Msg("change feed unavailable, retrying")
		}
	}
}

func (b *Broker) consume(ctx context.Context) error {
	events := make(chan queue.ChangeEvent, 64)
	errCh := make(chan error, 1)

	consumeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		errCh <- b.consumer.Consume(consumeCtx, events, b.strategy)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			b.fanOut(ev)
		case err := <-errCh:
			b.failAll()

			if err != nil {
				return err
			}

			return errFeedClosed
		}
	}
}

// fanOut delivers an event to every subscription whose user matches.
// Slow subscribers are skipped rather than blocking the feed.
func (b *Broker) fanOut(ev queue.ChangeEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs {
		if sub.UserID != ev.Record.UserID {
			continue
		}

		select {
		case sub.events <- ev:
		default:
			zlog.Logger.Warn().
				Str("subscription", sub.ID.String()).
				Str("record", ev.Record.ID.String()).
				Msg("subscriber too slow, dropping change event")
		}
	}
}

func (b *Broker) failAll() {
	b.mu.Lock()
	subs := b.subs
	b.subs = make(map[uuid.UUID]*Subscription)
	b.mu.Unlock()

	for _, sub := range subs {
		sub.finish(StateError)
	}
}
