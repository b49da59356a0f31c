package config

import (
	"fmt"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the runtime options for a report run. All values have
// environment defaults; command flags may override them.
type Config struct {
	// TargetMinutes is the expected worked minutes per day.
	TargetMinutes int `env:"BAKI_TARGET_MINUTES" envDefault:"480"`
	// Home overrides the directory holding the log file.
	Home string `env:"BAKI_HOME"`
}

// Load reads configuration from the environment, honoring a .env file in the
// working directory when present.
func Load() (Config, error) {
	if err := godotenv.Load(); err == nil {
		logrus.Debug("loaded .env file")
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.TargetMinutes <= 0 {
		return Config{}, fmt.Errorf("target minutes must be positive, got %d", cfg.TargetMinutes)
	}
	return cfg, nil
}
