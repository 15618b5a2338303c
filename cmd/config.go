package main

import "time"

type Config struct {
	BusQueueSize      int           `env:"BUS_QUEUE_SIZE,default=64" validate:"min=1"`
	SweepInterval     time.Duration `env:"SWEEP_INTERVAL,default=200ms" validate:"gt=0"`
	TelemetryInterval time.Duration `env:"TELEMETRY_INTERVAL,default=5s" validate:"gt=0"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO"`
	VerboseEvents     bool          `env:"VERBOSE_EVENTS,default=false"`
}
