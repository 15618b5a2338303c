package runtime

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"

	"harmony/contract"
	"harmony/domain"
	"harmony/domain/event"
	"harmony/errors"
	"harmony/normalize"
)

// Manager is the account lifecycle boundary: one listener per logged-in
// account, started on login, stopped on logout or transport failure.
// It doubles as the AccountDirectory the normalizer cross-references
// when spotting our own profile changes.
type Manager struct {
	mu        sync.Mutex
	log       *slog.Logger
	bus       contract.IBus
	tracker   contract.ITracker
	diag      *Diagnostics
	listeners map[domain.UserID]*accountListener
}

func NewManager(log *slog.Logger, bus contract.IBus, tracker contract.ITracker, diag *Diagnostics) *Manager {
	return &Manager{
		log:       log,
		bus:       bus,
		tracker:   tracker,
		diag:      diag,
		listeners: make(map[domain.UserID]*accountListener),
	}
}

// IsLocalAccount reports whether the user id belongs to a currently
// logged-in account.
func (m *Manager) IsLocalAccount(user domain.UserID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.listeners[user]
	return ok
}

// OnLogin starts ingestion for a freshly authenticated account. Must be
// called exactly once per successful login; the listener is running
// when it returns, and consumers hear AccountOnline before any of the
// account's room notifications.
func (m *Manager) OnLogin(ctx context.Context, user domain.UserID, transport contract.Transport) error {
	listener := newAccountListener(
		m.log, user, transport, m.tracker, m.bus, normalize.New(m), m.diag)

	m.mu.Lock()
	if _, ok := m.listeners[user]; ok {
		m.mu.Unlock()
		return fmt.Errorf("%w: %s", errors.ErrAlreadyStarted, user)
	}
	m.listeners[user] = listener
	m.mu.Unlock()

	m.tracker.Register(user)
	m.bus.Publish(event.AccountOnline{User: user})

	listener.start(ctx, func(err error) { m.onListenerExit(user, err) })

	m.log.Info("Account listener started", "account", string(user))
	return nil
}

// OnLogout stops the account's listener and forgets its rooms.
// Idempotent: only the call that actually stops the listener publishes
// AccountOffline; stopping an unknown or already stopped account is a
// no-op.
func (m *Manager) OnLogout(user domain.UserID) {
	m.release(user, nil)
}

// onListenerExit handles the transport loop ending on its own. A clean
// exit (context canceled) is a shutdown; anything else degrades the
// account to stopped and tells consumers it is offline. Retrying the
// login is the caller's decision, not ours.
func (m *Manager) onListenerExit(user domain.UserID, err error) {
	if err != nil && !stderrors.Is(err, context.Canceled) {
		m.log.Error("Transport listening loop failed",
			"account", string(user), "error", err)
	}
	m.release(user, err)
}

func (m *Manager) release(user domain.UserID, cause error) {
	m.mu.Lock()
	listener, ok := m.listeners[user]
	if ok {
		delete(m.listeners, user)
	}
	m.mu.Unlock()
	if !ok {
		return
	}

	if listener.stop() {
		m.bus.Publish(event.AccountOffline{User: user})
		m.log.Info("Account listener stopped", "account", string(user), "cause", cause)
	}
	m.tracker.Drop(user)
}

// SnapshotJoinedRooms asks every listener's transport for its current
// joined rooms. No account lock is held while asking: the sweep must
// never stall ingestion.
func (m *Manager) SnapshotJoinedRooms() map[domain.UserID][]domain.RoomID {
	m.mu.Lock()
	listeners := make(map[domain.UserID]*accountListener, len(m.listeners))
	for user, l := range m.listeners {
		listeners[user] = l
	}
	m.mu.Unlock()

	out := make(map[domain.UserID][]domain.RoomID, len(listeners))
	for user, l := range listeners {
		out[user] = l.transport.JoinedRooms()
	}
	return out
}

// AnnounceJoined runs one swept room through the NewRoom dedup.
func (m *Manager) AnnounceJoined(user domain.UserID, room domain.RoomID, ts int64) {
	m.mu.Lock()
	listener, ok := m.listeners[user]
	m.mu.Unlock()

	if ok {
		listener.announceIfNew(room, ts)
	}
}
