package e2e

import (
	"errors"
	"testing"
	"time"

	"harmony/domain"
	"harmony/domain/event"

	"github.com/stretchr/testify/suite"
)

var errSyncBroken = errors.New("sync stream broken")

type testSessionSuite struct {
	BasePipelineSuite
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, &testSessionSuite{})
}

const (
	alice = domain.UserID("@alice:e2e.local")
	bob   = domain.UserID("@bob:e2e.local")

	lobby = domain.RoomID("!lobby:e2e.local")
	side  = domain.RoomID("!side:e2e.local")
)

func message(room domain.RoomID, sender, body string) domain.RawEvent {
	return domain.RawEvent{
		"type":             domain.TypeMessage,
		"room_id":          string(room),
		"origin_server_ts": time.Now().UnixMilli(),
		"sender":           sender,
		"content":          map[string]any{"msgtype": "m.text", "body": body},
	}
}

func (s *testSessionSuite) TestFullSessionFlow() {
	all := s.Collect()

	var transport *drivenTransport

	// --- STEP 0: LOGIN ---
	s.Run("Step 0: Login publishes AccountOnline first", func() {
		transport = s.Login(alice)

		n := all.Next(&s.BasePipelineSuite)
		s.Require().Equal(event.AccountOnlineKind, n.Kind())
		s.Require().Equal(alice, n.Account())
	})

	// --- STEP 1: FIRST SIGHT OF A ROOM ---
	s.Run("Step 1: First event in a room announces the room before the message", func() {
		transport.Emit(message(lobby, "@carol:e2e.local", "hello"))

		first := all.Next(&s.BasePipelineSuite)
		s.Require().Equal(event.NewRoomKind, first.Kind())
		s.Require().Equal(lobby, first.(event.NewRoom).Room)

		second := all.Next(&s.BasePipelineSuite)
		s.Require().Equal(event.NewMessageKind, second.Kind())
		s.Require().Equal(lobby, second.(event.NewMessage).Room)
	})

	// --- STEP 2: KNOWN ROOM STAYS QUIET ---
	s.Run("Step 2: Later events reuse the seen room", func() {
		transport.Emit(message(lobby, "@carol:e2e.local", "again"))

		n := all.Next(&s.BasePipelineSuite)
		s.Require().Equal(event.NewMessageKind, n.Kind())
	})

	// --- STEP 3: RENAME ---
	s.Run("Step 3: A name change raises RoomRenamed only", func() {
		transport.Emit(domain.RawEvent{
			"type":             domain.TypeName,
			"room_id":          string(lobby),
			"origin_server_ts": time.Now().UnixMilli(),
			"content":          map[string]any{"name": "The Lobby"},
		})

		n := all.Next(&s.BasePipelineSuite)
		s.Require().Equal(event.RoomRenamedKind, n.Kind())
		s.Require().Equal(lobby, n.(event.RoomRenamed).Room)
	})

	// --- STEP 4: INVITE ---
	s.Run("Step 4: An invite summarizes the room and pre-seeds the dedup", func() {
		transport.EmitInvite(side, domain.InviteState{Events: []domain.RawEvent{
			{
				"type":      domain.TypeMember,
				"state_key": "@carol:e2e.local",
				"sender":    "@carol:e2e.local",
				"content":   map[string]any{"displayname": "Carol", "membership": "invite"},
			},
		}})

		n := all.Next(&s.BasePipelineSuite)
		s.Require().Equal(event.NewInviteKind, n.Kind())
		invite := n.(event.NewInvite)
		s.Require().Equal(side, invite.Room)
		s.Require().Equal("Carol", invite.DisplayName)
		s.Require().Equal(domain.UserID("@carol:e2e.local"), invite.InvitedBy)

		// Joining the invited room must not announce it again
		transport.Emit(message(side, "@carol:e2e.local", "welcome"))
		joined := all.Next(&s.BasePipelineSuite)
		s.Require().Equal(event.NewMessageKind, joined.Kind())
	})

	// --- STEP 5: LEAVE AND REJOIN ---
	s.Run("Step 5: Leaving forgets the room, rejoining re-announces it", func() {
		transport.EmitLeave(lobby)

		left := all.Next(&s.BasePipelineSuite)
		s.Require().Equal(event.LeftRoomKind, left.Kind())
		s.Require().Equal(lobby, left.(event.LeftRoom).Room)

		transport.Emit(message(lobby, "@carol:e2e.local", "back again"))
		s.Require().Equal(event.NewRoomKind, all.Next(&s.BasePipelineSuite).Kind())
		s.Require().Equal(event.NewMessageKind, all.Next(&s.BasePipelineSuite).Kind())
	})

	// --- STEP 6: SECOND ACCOUNT IS INDEPENDENT ---
	s.Run("Step 6: Another account sees the same room as new", func() {
		bobTransport := s.Login(bob)

		s.Require().Equal(event.AccountOnlineKind, all.Next(&s.BasePipelineSuite).Kind())

		bobTransport.Emit(message(lobby, "@carol:e2e.local", "hi bob"))
		first := all.Next(&s.BasePipelineSuite)
		s.Require().Equal(event.NewRoomKind, first.Kind())
		s.Require().Equal(bob, first.Account())
		s.Require().Equal(event.NewMessageKind, all.Next(&s.BasePipelineSuite).Kind())
	})

	// --- STEP 7: LOGOUT ---
	s.Run("Step 7: Logout publishes AccountOffline exactly once", func() {
		s.manager.OnLogout(alice)

		n := all.Next(&s.BasePipelineSuite)
		s.Require().Equal(event.AccountOfflineKind, n.Kind())
		s.Require().Equal(alice, n.Account())

		s.manager.OnLogout(alice)
		transport.Emit(message(lobby, "@carol:e2e.local", "too late"))
		all.ExpectNothing(&s.BasePipelineSuite)
	})
}

func (s *testSessionSuite) TestKindFilteredSubscription() {
	messagesOnly := s.Collect(event.NewMessageKind)

	transport := s.Login(alice)
	transport.Emit(message(lobby, "@carol:e2e.local", "filtered"))

	// AccountOnline and NewRoom are skipped, only the message lands
	n := messagesOnly.Next(&s.BasePipelineSuite)
	s.Require().Equal(event.NewMessageKind, n.Kind())
	messagesOnly.ExpectNothing(&s.BasePipelineSuite)
}

func (s *testSessionSuite) TestTransportFailureTakesAccountOffline() {
	all := s.Collect()

	transport := s.Login(alice)
	s.Require().Equal(event.AccountOnlineKind, all.Next(&s.BasePipelineSuite).Kind())

	transport.FailLoop(errSyncBroken)

	n := all.Next(&s.BasePipelineSuite)
	s.Require().Equal(event.AccountOfflineKind, n.Kind())
	s.Require().Equal(alice, n.Account())

	s.Require().Eventually(func() bool {
		return !s.manager.IsLocalAccount(alice)
	}, s.Config.ScenarioTimeout, 10*time.Millisecond)
}
