// Package event defines the typed notifications this core publishes to
// UI consumers. Notifications are immutable value objects: once
// published they are never mutated.
package event

import "harmony/domain"

type Kind string

const (
	NewRoomKind               Kind = "NEW_ROOM"
	RoomRenamedKind           Kind = "ROOM_RENAMED"
	LeftRoomKind              Kind = "LEFT_ROOM"
	NewMessageKind            Kind = "NEW_MESSAGE"
	AccountDisplayChangedKind Kind = "ACCOUNT_DISPLAY_CHANGED"
	NewInviteKind             Kind = "NEW_INVITE"
	AccountOnlineKind         Kind = "ACCOUNT_ONLINE"
	AccountOfflineKind        Kind = "ACCOUNT_OFFLINE"
)

// Notification is the closed set of events published by the core.
type Notification interface {
	Kind() Kind
	Account() domain.UserID
}

// NewRoom announces a (account, room) pair the UI has never been told
// about. Emitted at most once between a login (or rejoin) and the next
// leave.
type NewRoom struct {
	User    domain.UserID
	Room    domain.RoomID
	AddedAt int64
}

func (n NewRoom) Kind() Kind             { return NewRoomKind }
func (n NewRoom) Account() domain.UserID { return n.User }

// RoomRenamed is a hint that the room's derived display name may have
// changed. It deliberately carries no name: consumers re-derive it.
// Any membership change raises it, not just actual renames.
type RoomRenamed struct {
	User domain.UserID
	Room domain.RoomID
}

func (n RoomRenamed) Kind() Kind             { return RoomRenamedKind }
func (n RoomRenamed) Account() domain.UserID { return n.User }

type LeftRoom struct {
	User domain.UserID
	Room domain.RoomID
}

func (n LeftRoom) Kind() Kind             { return LeftRoomKind }
func (n LeftRoom) Account() domain.UserID { return n.User }

// NewMessage carries the raw message event untouched; rendering is the
// consumer's concern.
type NewMessage struct {
	User domain.UserID
	Room domain.RoomID
	Raw  domain.RawEvent
}

func (n NewMessage) Kind() Kind             { return NewMessageKind }
func (n NewMessage) Account() domain.UserID { return n.User }

// AccountDisplayChanged reports that one of the locally logged-in
// accounts changed its profile in a room. User is the account whose
// profile changed, not the account that received the event.
type AccountDisplayChanged struct {
	User        domain.UserID
	Room        domain.RoomID
	DisplayName string
	AvatarURL   string
}

func (n AccountDisplayChanged) Kind() Kind             { return AccountDisplayChangedKind }
func (n AccountDisplayChanged) Account() domain.UserID { return n.User }

// NewInvite announces a pending invitation with a display name derived
// from the invite's partial state.
type NewInvite struct {
	User           domain.UserID
	Room           domain.RoomID
	InvitedBy      domain.UserID
	DisplayName    string
	ExplicitName   string
	CanonicalAlias string
}

func (n NewInvite) Kind() Kind             { return NewInviteKind }
func (n NewInvite) Account() domain.UserID { return n.User }

type AccountOnline struct {
	User domain.UserID
}

func (n AccountOnline) Kind() Kind             { return AccountOnlineKind }
func (n AccountOnline) Account() domain.UserID { return n.User }

type AccountOffline struct {
	User domain.UserID
}

func (n AccountOffline) Kind() Kind             { return AccountOfflineKind }
func (n AccountOffline) Account() domain.UserID { return n.User }
