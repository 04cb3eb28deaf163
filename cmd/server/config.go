package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port        string        `env:"PORT" envDefault:"8080"`
	TickPeriod  time.Duration `env:"LADDERS_TICK" envDefault:"10ms"`
	LayoutFile  string        `env:"LADDERS_LAYOUT_FILE"`
	MaxConsoles int           `env:"LADDERS_MAX_CONSOLES" envDefault:"16"`
	Seed        int64         `env:"LADDERS_SEED"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TickPeriod <= 0 {
		return cfg, fmt.Errorf("LADDERS_TICK must be positive, got %s", cfg.TickPeriod)
	}
	return cfg, nil
}
