package domain

import (
	"fmt"

	"harmony/errors"
)

// Event types this core recognizes. Everything else is dropped after a
// diagnostic dump.
const (
	TypeMessage        = "m.room.message"
	TypeMember         = "m.room.member"
	TypeName           = "m.room.name"
	TypeCanonicalAlias = "m.room.canonical_alias"
)

// RawEvent is one loosely typed protocol event exactly as the transport
// delivered it. Accessors never mutate the underlying map; absent or
// mistyped fields read as zero values.
type RawEvent map[string]any

func (e RawEvent) Type() string {
	s, _ := e["type"].(string)
	return s
}

// Ref extracts the routing triple every dispatched event must carry.
// An event without a type or room_id is malformed and must be dropped
// by the caller, never propagated.
func (e RawEvent) Ref(receiver UserID) (RoomRef, int64, error) {
	if e.Type() == "" {
		return RoomRef{}, 0, fmt.Errorf("%w: type", errors.ErrMissingField)
	}
	room := e.StringField("room_id")
	if room == "" {
		return RoomRef{}, 0, fmt.Errorf("%w: room_id", errors.ErrMissingField)
	}
	return RoomRef{User: receiver, Room: RoomID(room)}, e.Timestamp(), nil
}

// Timestamp returns origin_server_ts in milliseconds, tolerating the
// numeric types JSON decoding may produce.
func (e RawEvent) Timestamp() int64 {
	switch ts := e["origin_server_ts"].(type) {
	case int64:
		return ts
	case int:
		return int64(ts)
	case float64:
		return int64(ts)
	}
	return 0
}

// StringField returns the string under key, or "" when absent, null or
// not a string.
func (e RawEvent) StringField(key string) string {
	s, _ := e[key].(string)
	return s
}

// Child returns the nested object under key, or nil. Safe to chain:
// reading from a nil RawEvent yields zero values.
func (e RawEvent) Child(key string) RawEvent {
	switch m := e[key].(type) {
	case map[string]any:
		return RawEvent(m)
	case RawEvent:
		return m
	}
	return nil
}
