// Package cache holds a client's in-memory projection of unread
// notifications. The projection never originates state changes; it only
// mirrors queue events it observes, and is discarded wholesale on
// reconnect in favor of a fresh ListPending read.
package cache

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/rufomartins/talent-nexus-notifier/internal/model"
	"github.com/rufomartins/talent-nexus-notifier/internal/rabbitmq/queue"
)

// Unread is an ordered set of unread notification records, newest first.
// Safe for concurrent use.
type Unread struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]model.Notification
	order []uuid.UUID
}

func NewUnread() *Unread {
	return &Unread{byID: make(map[uuid.UUID]model.Notification)}
}

// Apply merges one change event. Events arrive in no guaranteed order
// across rows, so each is treated as an independent upsert keyed by record
// id: inserts prepend if unseen, updates replace in place, and a record
// marked read is removed whatever the op.
func (u *Unread) Apply(ev queue.ChangeEvent) {
	u.mu.Lock()
	defer u.mu.Unlock()

	record := ev.Record

	if record.Status == model.StatusRead {
		u.remove(record.ID)
		return
	}

	if _, ok := u.byID[record.ID]; ok {
		u.byID[record.ID] = record
		return
	}

	u.byID[record.ID] = record
	u.order = append([]uuid.UUID{record.ID}, u.order...)
}

// Follow applies events from a subscription until ctx is cancelled or the
// channel closes.
func (u *Unread) Follow(ctx context.Context, events <-chan queue.ChangeEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}

			u.Apply(ev)
		}
	}
}

// Rehydrate discards the local set and replaces it with a fresh
// ListPending result, in the order given.
func (u *Unread) Rehydrate(records []model.Notification) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.byID = make(map[uuid.UUID]model.Notification, len(records))
	u.order = u.order[:0]

	for _, r := range records {
		if r.Status == model.StatusRead {
			continue
		}

		if _, ok := u.byID[r.ID]; ok {
			continue
		}

		u.byID[r.ID] = r
		u.order = append(u.order, r.ID)
	}
}

// Snapshot returns the unread records, newest first.
func (u *Unread) Snapshot() []model.Notification {
	u.mu.Lock()
	defer u.mu.Unlock()

	out := make([]model.Notification, 0, len(u.order))
	for _, id := range u.order {
		out = append(out, u.byID[id])
	}

	return out
}

// Len returns the number of unread records.
func (u *Unread) Len() int {
	u.mu.Lock()
	defer u.mu.Unlock()

	return len(u.order)
}

func (u *Unread) remove(id uuid.UUID) {
	if _, ok := u.byID[id]; !ok {
		return
	}

	delete(u.byID, id)

	for i, existing := range u.order {
		if existing == id {
			u.order = append(u.order[:i], u.order[i+1:]...)
			break
		}
	}
}
