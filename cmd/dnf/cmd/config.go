package cmd

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the defaults of the command line flags.
type Config struct {
	Rule    string `env:"DNF_RULE" envDefault:"string"`
	Verbose bool   `env:"DNF_VERBOSE" envDefault:"false"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
