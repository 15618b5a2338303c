//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"harmony/domain"
	"harmony/domain/event"

	"github.com/google/uuid"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself: panics and errors are the
// supervisor's problem.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes, avoiding the need
// for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Transport is the per-account protocol collaborator. It owns the
// network layer (long polling, reconnects, retries); once
// StartListening succeeds, delivery is treated as reliable. Callbacks
// for one account are invoked in delivery order.
type Transport interface {
	AddEventListener(fn func(raw domain.RawEvent))
	AddPresenceListener(fn func(raw domain.RawEvent))
	AddEphemeralListener(fn func(raw domain.RawEvent))
	AddInviteListener(fn func(room domain.RoomID, state domain.InviteState))
	AddLeaveListener(fn func(room domain.RoomID))

	// StartListening blocks, dispatching events to the registered
	// callbacks until the context is canceled or the listening loop
	// fails.
	StartListening(ctx context.Context) error

	// JoinedRooms returns a snapshot of the rooms the account is
	// currently joined to, for the periodic sweep.
	JoinedRooms() []domain.RoomID
}

// NotificationSink consumes published notifications. Implementations
// must be fast or offload their work: delivery for one subscription is
// sequential.
type NotificationSink interface {
	Consume(ctx context.Context, n event.Notification) error
}

type IBus interface {
	Publish(n event.Notification)
	Subscribe(sink NotificationSink, kinds ...event.Kind) uuid.UUID
	Unsubscribe(id uuid.UUID)
}

// ITracker is the seen-rooms table: which (account, room) pairs the UI
// has already been told about.
type ITracker interface {
	Register(user domain.UserID)
	Drop(user domain.UserID)
	Observe(user domain.UserID, room domain.RoomID, ts int64) bool
	Forget(user domain.UserID, room domain.RoomID)
}

// AccountDirectory answers whether a user id belongs to a locally
// logged-in account.
type AccountDirectory interface {
	IsLocalAccount(user domain.UserID) bool
}

// RoomSweepSource feeds the joined-rooms sweep worker.
type RoomSweepSource interface {
	SnapshotJoinedRooms() map[domain.UserID][]domain.RoomID
	AnnounceJoined(user domain.UserID, room domain.RoomID, ts int64)
}

// QueueDepthReporter exposes per-subscription queue lengths for
// telemetry.
type QueueDepthReporter interface {
	QueueDepths() map[uuid.UUID]int
}
