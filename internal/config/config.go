// Package config resolves gofunge's runtime settings from environment
// variables, the same way nenuphar's command layer promotes
// github.com/caarlos0/env/v6 to a direct dependency for its own
// environment-driven configuration.
package config

import "github.com/caarlos0/env/v6"

// Config holds settings that apply regardless of which command is run.
// CLI flags (handled in internal/maincmd) take precedence over these when
// both are present; Config supplies the defaults.
type Config struct {
	// Sandbox disables file I/O, subprocess execution, and any fingerprint
	// with external effects.
	Sandbox bool `env:"GOFUNGE_SANDBOX" envDefault:"false"`

	// Warnings controls whether runtime warnings (such as an unknown
	// instruction) are printed to stderr.
	Warnings bool `env:"GOFUNGE_WARNINGS" envDefault:"true"`

	// IOMode is either "text" or "binary"; see envrt.IOMode.
	IOMode string `env:"GOFUNGE_IOMODE" envDefault:"text"`

	// MaxSteps caps the total instructions executed across all IPs before
	// the run is aborted as runaway; 0 means unlimited.
	MaxSteps int `env:"GOFUNGE_MAX_STEPS" envDefault:"0"`
}

// Load reads Config from the process environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
