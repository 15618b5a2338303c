// Package runtime wires ingestion together: the seen-rooms tracker, the
// notification bus, and the per-account listeners. It orchestrates the
// pipeline without containing classification rules.
package runtime

import (
	"sync"

	"harmony/domain"
)

// Tracker is the seen-rooms table: for each account, the rooms the UI
// has already been told about, with the timestamp they were first seen.
// Locking is account-scoped so one account's listener never contends
// with another's; the sweep and invite paths go through the same locks
// and therefore agree on seen-state with the event path.
type Tracker struct {
	mu       sync.RWMutex
	accounts map[domain.UserID]*accountRooms
}

type accountRooms struct {
	mu    sync.Mutex
	rooms map[domain.RoomID]int64
}

func NewTracker() *Tracker {
	return &Tracker{accounts: make(map[domain.UserID]*accountRooms)}
}

// Register creates the account's room set. Called on login; registering
// an already known account keeps its existing set.
func (t *Tracker) Register(user domain.UserID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.accounts[user]; !ok {
		t.accounts[user] = &accountRooms{rooms: make(map[domain.RoomID]int64)}
	}
}

// Drop discards the account's room set. Called on logout; a later
// re-login starts from an empty set, so every room is new again.
func (t *Tracker) Drop(user domain.UserID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.accounts, user)
}

// Observe records the pair as seen and reports whether this is the
// first sighting since login or since the last Forget. Unknown
// accounts observe as false: an event racing a logout is dropped, not
// announced.
func (t *Tracker) Observe(user domain.UserID, room domain.RoomID, ts int64) bool {
	acc := t.lookup(user)
	if acc == nil {
		return false
	}

	acc.mu.Lock()
	defer acc.mu.Unlock()
	if _, ok := acc.rooms[room]; ok {
		return false
	}
	acc.rooms[room] = ts
	return true
}

// Forget removes the pair so a future rejoin is announced again.
func (t *Tracker) Forget(user domain.UserID, room domain.RoomID) {
	acc := t.lookup(user)
	if acc == nil {
		return
	}

	acc.mu.Lock()
	defer acc.mu.Unlock()
	delete(acc.rooms, room)
}

func (t *Tracker) lookup(user domain.UserID) *accountRooms {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.accounts[user]
}
