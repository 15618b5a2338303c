package workers

import (
	"context"
	"log/slog"
	"time"

	"harmony/contract"
)

// RoomSweepWorker periodically polls each account's joined-room
// snapshot and runs every room through the NewRoom dedup. It is the
// fallback for transports without an explicit join confirmation; the
// event path and this sweep share the tracker, so running both never
// double-announces a room.
type RoomSweepWorker struct {
	log      *slog.Logger
	source   contract.RoomSweepSource
	interval time.Duration
}

func NewRoomSweepWorker(log *slog.Logger, source contract.RoomSweepSource, interval time.Duration) *RoomSweepWorker {
	return &RoomSweepWorker{log: log, source: source, interval: interval}
}

// Run sweeps until the context is canceled. Each cycle works on a
// snapshot: no account lock is held across a whole sweep, so a large
// room list on one account cannot delay another account's ingestion.
func (w *RoomSweepWorker) Run(ctx context.Context) error {
	w.log.Info("Starting joined-rooms sweep", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *RoomSweepWorker) sweep() {
	now := time.Now().UnixMilli()
	for user, rooms := range w.source.SnapshotJoinedRooms() {
		for _, room := range rooms {
			w.source.AnnounceJoined(user, room, now)
		}
	}
}
