// Package domain contains core concepts of the ingestion core.
// This file defines account and room identities.
// No runtime, network, or UI logic should be added here.
package domain

// UserID is one authenticated protocol session, identified by its
// opaque protocol user id.
type UserID string

// RoomID is an opaque protocol room id.
type RoomID string

// RoomRef identifies a room as seen by one account. The protocol is
// federated: two local accounts joined to the same room each track it
// under their own reference.
type RoomRef struct {
	User UserID
	Room RoomID
}
