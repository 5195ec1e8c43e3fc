package config

import (
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ClientConfig configures the terminal client.
type ClientConfig struct {
	// Seed fixes the match seed; empty means a fresh random seed.
	Seed         string `env:"NZSC_SEED"`
	Persona      int    `env:"NZSC_PERSONA" envDefault:"0"`
	PersonasPath string `env:"NZSC_PERSONAS" envDefault:"data/personas.json"`
}

// FixedSeed parses Seed. ok is false when no seed was configured.
func (c ClientConfig) FixedSeed() (seed uint32, ok bool, err error) {
	if c.Seed == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseUint(c.Seed, 10, 32)
	if err != nil {
		return 0, false, fmt.Errorf("invalid NZSC_SEED %q: %w", c.Seed, err)
	}
	return uint32(v), true, nil
}
