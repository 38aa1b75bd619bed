package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"adbudget/internal/config/configs"
)

// Config aggregates all configuration sections for the budget daemon. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the optional PostgreSQL snapshot store. Environment
	// variables prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Scheduler configures the periodic resets and status checks.
	Scheduler configs.Scheduler `envPrefix:"SCHEDULER_"`

	Metrics configs.Metrics `envPrefix:"METRICS_"`

	Seed configs.Seed `envPrefix:"SEED_"`
}

// Load reads configuration from environment variables into a Config. All
// fields are loaded with their specified defaults when no environment
// variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Scheduler.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
