package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config is read from the environment. Command line flags take precedence.
type Config struct {
	Goroutines int           `env:"ADVERSARIAL_GOROUTINES" envDefault:"1"`
	LogLevel   string        `env:"ADVERSARIAL_LOG_LEVEL"  envDefault:"info"`
	Addr       string        `env:"ADVERSARIAL_ADDR"       envDefault:":8080"`
	MaxPlies   int           `env:"ADVERSARIAL_MAX_PLIES"  envDefault:"9"`
	ServerURL  string        `env:"ADVERSARIAL_SERVER_URL" envDefault:"http://localhost:8080"`
	Timeout    time.Duration `env:"ADVERSARIAL_TIMEOUT"    envDefault:"30s"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Goroutines < 1 {
		return Config{}, fmt.Errorf("ADVERSARIAL_GOROUTINES must be positive, got %d", cfg.Goroutines)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("ADVERSARIAL_LOG_LEVEL: %w", err)
	}
	return level, nil
}
