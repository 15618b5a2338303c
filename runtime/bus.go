package runtime

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"harmony/contract"
	"harmony/domain/event"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Bus delivers notifications to UI consumers without ever blocking the
// producing account listeners.
//
// Every subscription owns a bounded queue drained by a dedicated
// goroutine. When a queue is full the oldest queued notification is
// shed, so a stalled consumer degrades by losing history, never by
// stalling producers or other consumers. Within one subscription,
// notifications for a fixed (account, room) pair arrive in publish
// order; there is no ordering across accounts or rooms.
type Bus struct {
	mu        sync.RWMutex
	log       *slog.Logger
	queueSize int
	subs      map[uuid.UUID]*subscription
}

type subscription struct {
	id      uuid.UUID
	kinds   map[event.Kind]struct{} // empty means every kind
	queue   chan event.Notification
	done    chan struct{}
	sink    contract.NotificationSink
	dropped atomic.Uint64
}

func NewBus(log *slog.Logger, queueSize int) *Bus {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Bus{
		log:       log,
		queueSize: queueSize,
		subs:      make(map[uuid.UUID]*subscription),
	}
}

// Subscribe registers a sink for the given kinds (none means all) and
// starts its delivery goroutine. The returned handle has no identity
// beyond Unsubscribe.
func (b *Bus) Subscribe(sink contract.NotificationSink, kinds ...event.Kind) uuid.UUID {
	sub := &subscription{
		id:    uuid.New(),
		kinds: lo.SliceToMap(kinds, func(k event.Kind) (event.Kind, struct{}) { return k, struct{}{} }),
		queue: make(chan event.Notification, b.queueSize),
		done:  make(chan struct{}),
		sink:  sink,
	}

	b.mu.Lock()
	b.subs[sub.id] = sub
	b.mu.Unlock()

	go b.deliver(sub)
	return sub.id
}

// Unsubscribe stops delivery for the handle. Unknown handles are a
// no-op. Notifications already queued are discarded.
func (b *Bus) Unsubscribe(id uuid.UUID) {
	b.mu.Lock()
	sub, ok := b.subs[id]
	if ok {
		delete(b.subs, id)
	}
	b.mu.Unlock()

	if ok {
		close(sub.done)
	}
}

// Publish enqueues the notification for every matching subscription.
// It never blocks: full queues shed their oldest entry, and the shed
// count is surfaced in the log.
func (b *Bus) Publish(n event.Notification) {
	b.mu.RLock()
	subs := lo.Values(b.subs)
	b.mu.RUnlock()

	for _, sub := range subs {
		if !sub.wants(n.Kind()) {
			continue
		}
		sub.enqueue(n)
		if shed := sub.dropped.Swap(0); shed > 0 {
			b.log.Warn("Slow subscriber, oldest notifications shed",
				"subscription", sub.id.String(), "shed", shed)
		}
	}
}

// QueueDepths reports the live queue length per subscription, for
// telemetry.
func (b *Bus) QueueDepths() map[uuid.UUID]int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	depths := make(map[uuid.UUID]int, len(b.subs))
	for id, sub := range b.subs {
		depths[id] = len(sub.queue)
	}
	return depths
}

func (b *Bus) deliver(sub *subscription) {
	for {
		select {
		case <-sub.done:
			return
		case n := <-sub.queue:
			b.consume(sub, n)
		}
	}
}

// consume shields the bus from subscriber failures: an error is logged,
// a panic is recovered, and delivery moves on to the next notification.
func (b *Bus) consume(sub *subscription, n event.Notification) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("Subscriber panicked",
				"subscription", sub.id.String(), "kind", string(n.Kind()), "panic", r)
		}
	}()

	if err := sub.sink.Consume(context.Background(), n); err != nil {
		b.log.Warn("Subscriber rejected notification",
			"subscription", sub.id.String(), "kind", string(n.Kind()), "error", err)
	}
}

func (s *subscription) wants(k event.Kind) bool {
	if len(s.kinds) == 0 {
		return true
	}
	_, ok := s.kinds[k]
	return ok
}

// enqueue is the drop-oldest policy: on a full queue, drain one entry
// and retry until the send lands.
func (s *subscription) enqueue(n event.Notification) {
	for {
		select {
		case s.queue <- n:
			return
		default:
		}

		select {
		case <-s.queue:
			s.dropped.Add(1)
		default:
		}
	}
}
