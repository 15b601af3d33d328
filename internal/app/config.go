package app

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"coursereg/internal/logging"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Catalog   string `env:"COURSEREG_CATALOG"`                         // YAML seed file; empty uses the built-in catalog
	LogLevel  string `env:"COURSEREG_LOG_LEVEL" envDefault:"warn"`     // debug, info, warn, error or disabled
	LogFormat string `env:"COURSEREG_LOG_FORMAT" envDefault:"console"` // console or json
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate rejects unknown log levels and formats.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return err
	}
	return nil
}
