package domain

// InviteState is the partial room state delivered alongside a pending
// invitation. It is consumed once to derive a display name for the
// invite, then discarded; nothing here is retained as room state.
type InviteState struct {
	Events []RawEvent
}
