package e2e

import (
	"context"
	"sync"
	"time"

	"harmony/contract"
	"harmony/domain"
	"harmony/domain/event"
	"harmony/runtime"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

// BasePipelineSuite wires a complete in-process pipeline per test:
// real tracker, real bus, real manager, driven transports. No network,
// no homeserver.
type BasePipelineSuite struct {
	suite.Suite
	Config Config

	ctx     context.Context
	cancel  context.CancelFunc
	tracker *runtime.Tracker
	bus     *runtime.Bus
	manager *runtime.Manager
}

// SetupSuite loads the environment configuration before running tests
func (s *BasePipelineSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

func (s *BasePipelineSuite) SetupTest() {
	log := logs.GetLoggerFromString("DEBUG")
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.tracker = runtime.NewTracker()
	s.bus = runtime.NewBus(log, s.Config.BusQueueSize)
	diag := runtime.NewDiagnostics(log, s.Config.VerboseEvents)
	s.manager = runtime.NewManager(log, s.bus, s.tracker, diag)
}

func (s *BasePipelineSuite) TearDownTest() {
	s.cancel()
}

// Login starts ingestion for the account and returns the transport the
// test drives to replay the session.
func (s *BasePipelineSuite) Login(user domain.UserID) *drivenTransport {
	transport := newDrivenTransport()
	s.Require().NoError(s.manager.OnLogin(s.ctx, user, transport))
	return transport
}

// Collect subscribes a recording sink for the given kinds (none means
// every kind).
func (s *BasePipelineSuite) Collect(kinds ...event.Kind) *collector {
	c := &collector{received: make(chan event.Notification, 256)}
	s.bus.Subscribe(c, kinds...)
	return c
}

// collector is a NotificationSink buffering everything it hears.
type collector struct {
	received chan event.Notification
}

func (c *collector) Consume(_ context.Context, n event.Notification) error {
	c.received <- n
	return nil
}

// Next blocks until the next notification or the scenario timeout.
func (c *collector) Next(s *BasePipelineSuite) event.Notification {
	select {
	case n := <-c.received:
		return n
	case <-time.After(s.Config.ScenarioTimeout):
		s.Require().Fail("Timed out waiting for a notification")
		return nil
	}
}

// ExpectNothing asserts the collector stays quiet for a short window.
func (c *collector) ExpectNothing(s *BasePipelineSuite) {
	select {
	case n := <-c.received:
		s.Require().Failf("Unexpected notification", "%s for %s", n.Kind(), n.Account())
	case <-time.After(100 * time.Millisecond):
	}
}

// drivenTransport is a Transport the test fires by hand, standing in
// for a homeserver sync loop.
type drivenTransport struct {
	mu          sync.Mutex
	onEvent     func(domain.RawEvent)
	onPresence  func(domain.RawEvent)
	onEphemeral func(domain.RawEvent)
	onInvite    func(domain.RoomID, domain.InviteState)
	onLeave     func(domain.RoomID)
	rooms       []domain.RoomID
	loopErr     chan error
}

var _ contract.Transport = (*drivenTransport)(nil)

func newDrivenTransport() *drivenTransport {
	return &drivenTransport{loopErr: make(chan error, 1)}
}

func (t *drivenTransport) AddEventListener(fn func(domain.RawEvent)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onEvent = fn
}

func (t *drivenTransport) AddPresenceListener(fn func(domain.RawEvent)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onPresence = fn
}

func (t *drivenTransport) AddEphemeralListener(fn func(domain.RawEvent)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onEphemeral = fn
}

func (t *drivenTransport) AddInviteListener(fn func(domain.RoomID, domain.InviteState)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onInvite = fn
}

func (t *drivenTransport) AddLeaveListener(fn func(domain.RoomID)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onLeave = fn
}

func (t *drivenTransport) StartListening(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-t.loopErr:
		return err
	}
}

func (t *drivenTransport) JoinedRooms() []domain.RoomID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]domain.RoomID(nil), t.rooms...)
}

func (t *drivenTransport) SetJoinedRooms(rooms ...domain.RoomID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rooms = rooms
}

func (t *drivenTransport) Emit(raw domain.RawEvent) {
	t.mu.Lock()
	fn := t.onEvent
	t.mu.Unlock()
	fn(raw)
}

func (t *drivenTransport) EmitInvite(room domain.RoomID, state domain.InviteState) {
	t.mu.Lock()
	fn := t.onInvite
	t.mu.Unlock()
	fn(room, state)
}

func (t *drivenTransport) EmitLeave(room domain.RoomID) {
	t.mu.Lock()
	fn := t.onLeave
	t.mu.Unlock()
	fn(room)
}

func (t *drivenTransport) FailLoop(err error) {
	t.loopErr <- err
}
