// Package normalize turns raw protocol events into typed notifications.
// Pure classification: no locking, no publishing, no I/O. NewRoom
// announcements are not its concern; callers consult the tracker first.
package normalize

import (
	"reflect"

	"harmony/contract"
	"harmony/domain"
	"harmony/domain/event"
)

type Normalizer struct {
	accounts contract.AccountDirectory
}

func New(accounts contract.AccountDirectory) *Normalizer {
	return &Normalizer{accounts: accounts}
}

// Normalize classifies one routed event for the receiving account.
// It returns zero notifications for recognized-but-uninteresting types
// (receipts, stickers) and an error for malformed events. A single raw
// event may produce two notifications: a membership change carries both
// the display change (when it is one) and the rename hint, in that
// order.
func (n *Normalizer) Normalize(receiver domain.UserID, raw domain.RawEvent) ([]event.Notification, error) {
	ref, _, err := raw.Ref(receiver)
	if err != nil {
		return nil, err
	}

	var out []event.Notification

	switch raw.Type() {
	case domain.TypeMessage:
		out = append(out, event.NewMessage{User: receiver, Room: ref.Room, Raw: raw})
	case domain.TypeMember:
		if changed, ok := n.displayChange(ref.Room, raw); ok {
			out = append(out, changed)
		}
	}

	switch raw.Type() {
	case domain.TypeName, domain.TypeCanonicalAlias, domain.TypeMember:
		// Coarse invalidation: any membership change may affect the
		// derived room name, so consumers re-derive it.
		out = append(out, event.RoomRenamed{User: receiver, Room: ref.Room})
	}

	return out, nil
}

// displayChange detects one of our own accounts changing its profile in
// a room. This is the only classification that cross-references the set
// of logged-in accounts: a stranger renaming themselves is just a
// membership change.
func (n *Normalizer) displayChange(room domain.RoomID, raw domain.RawEvent) (event.AccountDisplayChanged, bool) {
	if raw.StringField("membership") != "join" {
		return event.AccountDisplayChanged{}, false
	}

	stateKey := raw.StringField("state_key")
	if stateKey == "" || !n.accounts.IsLocalAccount(domain.UserID(stateKey)) {
		return event.AccountDisplayChanged{}, false
	}

	prev := raw.Child("unsigned").Child("prev_content")
	next := raw.Child("content")
	if prev == nil || next == nil || reflect.DeepEqual(prev, next) {
		return event.AccountDisplayChanged{}, false
	}

	name := next.StringField("displayname")
	if name == "" {
		name = stateKey
	}

	return event.AccountDisplayChanged{
		User:        domain.UserID(stateKey),
		Room:        room,
		DisplayName: name,
		AvatarURL:   next.StringField("avatar_url"),
	}, true
}
