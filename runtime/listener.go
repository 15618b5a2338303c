package runtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"harmony/contract"
	"harmony/domain"
	"harmony/domain/event"
	"harmony/normalize"
)

// ListenerState tracks one account's listener lifecycle.
type ListenerState int

const (
	StateStopped ListenerState = iota
	StateStarting
	StateRunning
)

// accountListener owns the transport callbacks for one account. The
// account id is a struct field, never a captured loop variable, so an
// event cannot be attributed to the wrong account by construction.
//
// Its mutex is the unit of mutual exclusion: it guards the lifecycle
// state together with every tracker mutation and publish, serializing
// one account's events against each other and against stop() without
// sharing anything across accounts. Once stop() returns, no further
// notification is published for this account.
type accountListener struct {
	user      domain.UserID
	transport contract.Transport

	mu    sync.Mutex
	state ListenerState

	log        *slog.Logger
	tracker    contract.ITracker
	bus        contract.IBus
	normalizer *normalize.Normalizer
	diag       *Diagnostics
}

func newAccountListener(
	log *slog.Logger,
	user domain.UserID,
	transport contract.Transport,
	tracker contract.ITracker,
	bus contract.IBus,
	normalizer *normalize.Normalizer,
	diag *Diagnostics,
) *accountListener {
	return &accountListener{
		user:       user,
		transport:  transport,
		log:        log,
		tracker:    tracker,
		bus:        bus,
		normalizer: normalizer,
		diag:       diag,
	}
}

// start registers the transport callbacks and launches the blocking
// listening loop in its own goroutine. Registration happens in the
// Starting window so no callback can observe a Stopped listener being
// wired up; once the loop goroutine is dispatching, the listener is
// Running. onLoopExit fires when the loop ends on its own, carrying
// the transport failure if there was one.
func (l *accountListener) start(ctx context.Context, onLoopExit func(err error)) {
	l.mu.Lock()
	if l.state != StateStopped {
		l.mu.Unlock()
		return
	}
	l.state = StateStarting
	l.mu.Unlock()

	l.transport.AddEventListener(l.onEvent)
	l.transport.AddPresenceListener(l.onPresence)
	l.transport.AddEphemeralListener(l.onEphemeral)
	l.transport.AddInviteListener(l.onInvite)
	l.transport.AddLeaveListener(l.onLeave)

	go func() {
		onLoopExit(l.transport.StartListening(ctx))
	}()

	l.mu.Lock()
	if l.state == StateStarting {
		l.state = StateRunning
	}
	l.mu.Unlock()
}

// stop tears the listener down. Idempotent: only the call that actually
// transitions to Stopped reports true. Safe from any goroutine; an
// in-flight callback that already holds the lock finishes publishing
// first, then stop's caller may assume silence.
func (l *accountListener) stop() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == StateStopped {
		return false
	}
	l.state = StateStopped
	return true
}

// onEvent handles message and state events from the account's sync
// loop: first-sighting announcement, then the event's own
// notifications.
func (l *accountListener) onEvent(raw domain.RawEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == StateStopped {
		return
	}

	ref, ts, err := raw.Ref(l.user)
	if err != nil {
		l.log.Warn("Dropping malformed event",
			"account", string(l.user), "type", raw.Type(), "error", err)
		return
	}

	if l.tracker.Observe(l.user, ref.Room, ts) {
		l.bus.Publish(event.NewRoom{User: l.user, Room: ref.Room, AddedAt: ts})
	}

	notifs, err := l.normalizer.Normalize(l.user, raw)
	if err != nil {
		l.log.Warn("Dropping malformed event",
			"account", string(l.user), "type", raw.Type(), "error", err)
		return
	}
	if len(notifs) == 0 {
		l.diag.Unhandled(l.user, raw)
		return
	}

	for _, n := range notifs {
		l.bus.Publish(n)
	}
}

func (l *accountListener) onPresence(raw domain.RawEvent) {
	l.diag.Presence(l.user, raw)
}

func (l *accountListener) onEphemeral(raw domain.RawEvent) {
	l.diag.Ephemeral(l.user, raw)
}

// onInvite summarizes the invite's partial state into a display name.
// The invite itself announces the room: it is marked seen so accepting
// it does not raise a duplicate NewRoom.
func (l *accountListener) onInvite(room domain.RoomID, state domain.InviteState) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == StateStopped {
		return
	}

	summary, err := normalize.SummarizeInvite(l.user, state)
	if err != nil {
		l.log.Warn("Dropping malformed invite",
			"account", string(l.user), "room", string(room), "error", err)
		return
	}

	l.tracker.Observe(l.user, room, time.Now().UnixMilli())

	l.bus.Publish(event.NewInvite{
		User:           l.user,
		Room:           room,
		InvitedBy:      summary.InvitedBy,
		DisplayName:    summary.DisplayName,
		ExplicitName:   summary.ExplicitName,
		CanonicalAlias: summary.CanonicalAlias,
	})
}

// onLeave forgets the room before announcing the departure, so a
// rejoin is treated as a brand new room.
func (l *accountListener) onLeave(room domain.RoomID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == StateStopped {
		return
	}

	l.tracker.Forget(l.user, room)
	l.bus.Publish(event.LeftRoom{User: l.user, Room: room})
}

// announceIfNew is the sweep path into the same dedup: both it and
// onEvent agree on seen-state through the tracker, so running the
// polling sweep next to the event path never double-announces.
func (l *accountListener) announceIfNew(room domain.RoomID, ts int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != StateRunning {
		return
	}

	if l.tracker.Observe(l.user, room, ts) {
		l.bus.Publish(event.NewRoom{User: l.user, Room: room, AddedAt: ts})
	}
}
