package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BusQueueSize int `envconfig:"E2E_BUS_QUEUE_SIZE" default:"64"`
	// E2E_SCENARIO_TIMEOUT bounds how long a scenario waits for each notification
	ScenarioTimeout time.Duration `envconfig:"E2E_SCENARIO_TIMEOUT" default:"5s"`
	SweepInterval   time.Duration `envconfig:"E2E_SWEEP_INTERVAL" default:"20ms"`
	// E2E_VERBOSE_EVENTS dumps presence/ephemeral/unhandled payloads to the logs
	VerboseEvents bool `envconfig:"E2E_VERBOSE_EVENTS" default:"false"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
