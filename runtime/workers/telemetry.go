package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"harmony/contract"

	"github.com/shirou/gopsutil/process"
)

// TelemetryWorker periodically logs the client's own resource usage
// and the bus queue depths. Diagnostics only: it reads snapshots and
// never touches the ingestion path.
type TelemetryWorker struct {
	log      *slog.Logger
	depths   contract.QueueDepthReporter
	interval time.Duration
}

func NewTelemetryWorker(log *slog.Logger, depths contract.QueueDepthReporter, interval time.Duration) *TelemetryWorker {
	return &TelemetryWorker{log: log, depths: depths, interval: interval}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.report(p)
		}
	}
}

func (w *TelemetryWorker) report(p *process.Process) {
	mem, err := p.MemoryInfo()
	if err != nil {
		w.log.Warn("Failed to collect memory stats", "error", err)
		return
	}
	cpu, err := p.CPUPercent()
	if err != nil {
		w.log.Warn("Failed to collect cpu stats", "error", err)
		return
	}

	depths := w.depths.QueueDepths()
	deepest := 0
	for _, depth := range depths {
		if depth > deepest {
			deepest = depth
		}
	}

	w.log.Debug("Client telemetry",
		"rss", mem.RSS, "cpu_percent", cpu,
		"subscriptions", len(depths), "deepest_queue", deepest)
}
