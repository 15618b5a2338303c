package runtime

import (
	"sync"
	"sync/atomic"
	"testing"

	"harmony/domain"

	"github.com/stretchr/testify/require"
)

const (
	alice = domain.UserID("@alice:example.org")
	bob   = domain.UserID("@bob:example.org")
	roomA = domain.RoomID("!a:example.org")
	roomB = domain.RoomID("!b:example.org")
)

func TestTracker_ObserveOnce(t *testing.T) {
	req := require.New(t)
	tracker := NewTracker()
	tracker.Register(alice)

	// Then only the first sighting reports true
	req.True(tracker.Observe(alice, roomA, 1))
	req.False(tracker.Observe(alice, roomA, 2))
	req.False(tracker.Observe(alice, roomA, 3))
}

func TestTracker_AccountsAreIndependent(t *testing.T) {
	req := require.New(t)
	tracker := NewTracker()
	tracker.Register(alice)
	tracker.Register(bob)

	req.True(tracker.Observe(alice, roomA, 1))

	// Then the same room is still new for the other account
	req.True(tracker.Observe(bob, roomA, 1))
}

func TestTracker_ForgetMakesRejoinNew(t *testing.T) {
	req := require.New(t)
	tracker := NewTracker()
	tracker.Register(alice)

	req.True(tracker.Observe(alice, roomA, 1))

	// When the account leaves the room
	tracker.Forget(alice, roomA)

	// Then a rejoin is announced again, other rooms untouched
	req.True(tracker.Observe(alice, roomA, 2))
	req.True(tracker.Observe(alice, roomB, 2))
	req.False(tracker.Observe(alice, roomB, 3))
}

func TestTracker_UnknownAccountObservesFalse(t *testing.T) {
	req := require.New(t)
	tracker := NewTracker()

	// Given the account was never registered (or already dropped)
	req.False(tracker.Observe(alice, roomA, 1))

	tracker.Register(alice)
	req.True(tracker.Observe(alice, roomA, 1))
	tracker.Drop(alice)

	// Then events racing the logout are not announced
	req.False(tracker.Observe(alice, roomA, 2))
}

func TestTracker_DropResetsSeenState(t *testing.T) {
	req := require.New(t)
	tracker := NewTracker()
	tracker.Register(alice)
	req.True(tracker.Observe(alice, roomA, 1))

	// When the account logs out and back in
	tracker.Drop(alice)
	tracker.Register(alice)

	// Then every room is new again
	req.True(tracker.Observe(alice, roomA, 2))
}

func TestTracker_ConcurrentObserveAnnouncesOnce(t *testing.T) {
	req := require.New(t)
	tracker := NewTracker()
	tracker.Register(alice)

	// Given the event path, the invite path and the sweep racing on
	// the same pair
	var announced atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if tracker.Observe(alice, roomA, 1) {
				announced.Add(1)
			}
		}()
	}
	wg.Wait()

	// Then exactly one of them wins the announcement
	req.Equal(int64(1), announced.Load())
}
