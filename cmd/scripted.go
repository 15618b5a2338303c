package main

import (
	"context"
	"io"
	"sort"
	"strconv"
	"sync"
	"time"

	"harmony/domain"
	"harmony/domain/event"

	"github.com/olekukonko/tablewriter"
)

// scriptedAccount pairs a user id with a canned transport session.
type scriptedAccount struct {
	user      domain.UserID
	transport *scriptedTransport
}

// scriptedAccounts builds two accounts replaying a small federated
// session: messages, a rename, an invite and a leave/rejoin cycle.
func scriptedAccounts() []scriptedAccount {
	roomLobby := domain.RoomID("!lobby:smoke.local")
	roomSide := domain.RoomID("!side:smoke.local")

	alice := newScriptedTransport([]scriptStep{
		{after: 100 * time.Millisecond, event: rawMessage(roomLobby, "@bob:smoke.local", "hello from bob")},
		{after: 200 * time.Millisecond, event: domain.RawEvent{
			"type":             domain.TypeName,
			"room_id":          string(roomLobby),
			"origin_server_ts": time.Now().UnixMilli(),
			"content":          map[string]any{"name": "The Lobby"},
		}},
		{after: 300 * time.Millisecond, invite: &scriptInvite{
			room: roomSide,
			state: domain.InviteState{Events: []domain.RawEvent{
				{
					"type":      domain.TypeMember,
					"state_key": "@carol:smoke.local",
					"sender":    "@carol:smoke.local",
					"content":   map[string]any{"displayname": "Carol", "membership": "invite"},
				},
			}},
		}},
		{after: 400 * time.Millisecond, leave: &roomLobby},
		{after: 500 * time.Millisecond, event: rawMessage(roomLobby, "@bob:smoke.local", "welcome back")},
	})
	alice.rooms = []domain.RoomID{roomLobby}

	bob := newScriptedTransport([]scriptStep{
		{after: 150 * time.Millisecond, event: rawMessage(roomLobby, "@alice:smoke.local", "hi bob")},
	})
	bob.rooms = []domain.RoomID{roomLobby}

	return []scriptedAccount{
		{user: "@alice:smoke.local", transport: alice},
		{user: "@bob:smoke.local", transport: bob},
	}
}

func rawMessage(room domain.RoomID, sender, body string) domain.RawEvent {
	return domain.RawEvent{
		"type":             domain.TypeMessage,
		"room_id":          string(room),
		"origin_server_ts": time.Now().UnixMilli(),
		"sender":           sender,
		"content":          map[string]any{"msgtype": "m.text", "body": body},
	}
}

type scriptInvite struct {
	room  domain.RoomID
	state domain.InviteState
}

// scriptStep fires one callback after a delay from the previous step.
type scriptStep struct {
	after  time.Duration
	event  domain.RawEvent
	invite *scriptInvite
	leave  *domain.RoomID
}

// scriptedTransport is an in-process Transport replaying a canned
// session, so the pipeline can be exercised without a homeserver.
type scriptedTransport struct {
	mu          sync.Mutex
	onEvent     func(domain.RawEvent)
	onPresence  func(domain.RawEvent)
	onEphemeral func(domain.RawEvent)
	onInvite    func(domain.RoomID, domain.InviteState)
	onLeave     func(domain.RoomID)

	steps []scriptStep
	rooms []domain.RoomID
}

func newScriptedTransport(steps []scriptStep) *scriptedTransport {
	return &scriptedTransport{steps: steps}
}

func (t *scriptedTransport) AddEventListener(fn func(domain.RawEvent)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onEvent = fn
}

func (t *scriptedTransport) AddPresenceListener(fn func(domain.RawEvent)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onPresence = fn
}

func (t *scriptedTransport) AddEphemeralListener(fn func(domain.RawEvent)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onEphemeral = fn
}

func (t *scriptedTransport) AddInviteListener(fn func(domain.RoomID, domain.InviteState)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onInvite = fn
}

func (t *scriptedTransport) AddLeaveListener(fn func(domain.RoomID)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onLeave = fn
}

func (t *scriptedTransport) JoinedRooms() []domain.RoomID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]domain.RoomID(nil), t.rooms...)
}

// StartListening replays the script in delivery order, then idles until
// canceled, like a sync loop with nothing new to report.
func (t *scriptedTransport) StartListening(ctx context.Context) error {
	for _, step := range t.steps {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(step.after):
		}
		t.fire(step)
	}

	<-ctx.Done()
	return ctx.Err()
}

func (t *scriptedTransport) fire(step scriptStep) {
	t.mu.Lock()
	onEvent, onInvite, onLeave := t.onEvent, t.onInvite, t.onLeave
	t.mu.Unlock()

	switch {
	case step.event != nil && onEvent != nil:
		onEvent(step.event)
	case step.invite != nil && onInvite != nil:
		onInvite(step.invite.room, step.invite.state)
	case step.leave != nil && onLeave != nil:
		onLeave(*step.leave)
	}
}

// countingSink tallies notifications per kind and account for the
// shutdown summary.
type countingSink struct {
	mu     sync.Mutex
	counts map[event.Kind]map[domain.UserID]int
}

func newCountingSink() *countingSink {
	return &countingSink{counts: make(map[event.Kind]map[domain.UserID]int)}
}

func (c *countingSink) Consume(_ context.Context, n event.Notification) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counts[n.Kind()] == nil {
		c.counts[n.Kind()] = make(map[domain.UserID]int)
	}
	c.counts[n.Kind()][n.Account()]++
	return nil
}

func (c *countingSink) renderSummary(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Kind", "Account", "Count"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	kinds := make([]string, 0, len(c.counts))
	for kind := range c.counts {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)

	for _, kind := range kinds {
		perAccount := c.counts[event.Kind(kind)]
		accounts := make([]string, 0, len(perAccount))
		for account := range perAccount {
			accounts = append(accounts, string(account))
		}
		sort.Strings(accounts)

		for _, account := range accounts {
			table.Append([]string{kind, account, strconv.Itoa(perAccount[domain.UserID(account)])})
		}
	}
	table.Render()
}
