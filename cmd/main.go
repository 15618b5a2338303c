package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"harmony/runtime"
	"harmony/runtime/workers"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the ingestion core against scripted transports and keeps it
// alive until interrupted. This binary is a smoke harness: a real
// client embeds runtime.Manager and subscribes its own panels.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(&config); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Core pipeline
	tracker := runtime.NewTracker()
	bus := runtime.NewBus(log, config.BusQueueSize)
	diag := runtime.NewDiagnostics(log, config.VerboseEvents)
	manager := runtime.NewManager(log, bus, tracker, diag)

	// 3. Consumers
	counter := newCountingSink()
	bus.Subscribe(counter)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Background workers under supervision
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		workers.NewRoomSweepWorker(log, manager, config.SweepInterval),
		workers.NewTelemetryWorker(log, bus, config.TelemetryInterval),
	)

	supDone := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(supDone)
	}()

	// 6. Scripted accounts driving the pipeline
	accounts := scriptedAccounts()
	for _, account := range accounts {
		if err := manager.OnLogin(ctx, account.user, account.transport); err != nil {
			return fmt.Errorf("login %s: %w", account.user, err)
		}
	}

	<-ctx.Done()
	log.Info("Shutting down")

	for _, account := range accounts {
		manager.OnLogout(account.user)
	}
	sup.Stop()
	<-supDone

	counter.renderSummary(os.Stdout)
	return nil
}
