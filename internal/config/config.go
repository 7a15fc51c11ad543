// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the server.
type Config struct {
	Addr            string        `env:"PUZZLETRACK_ADDR" envDefault:":8080"`
	DatabaseDSN     string        `env:"PUZZLETRACK_DATABASE_DSN,required,notEmpty"`
	JWTKey          string        `env:"PUZZLETRACK_JWT_KEY,required,notEmpty"`
	ShutdownTimeout time.Duration `env:"PUZZLETRACK_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
