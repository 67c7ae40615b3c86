package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	APIURL    string        `env:"API_URL" envDefault:"http://localhost:8080/api"`
	Rate      int           `env:"TRADES_PER_SEC" envDefault:"1"`
	StayAlive bool          `env:"TRADEGEN_STAY_ALIVE" envDefault:"false"`
	TTL       time.Duration `env:"TRADEGEN_TTL" envDefault:"1m"`
	Timeout   time.Duration `env:"TRADEGEN_HTTP_TIMEOUT" envDefault:"5s"`

	// Fraction of trades deliberately built to be rejected by the API.
	InvalidRatio float64 `env:"TRADEGEN_INVALID_RATIO" envDefault:"0"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Rate <= 0 || cfg.Rate > 50 {
		return Config{}, fmt.Errorf("TRADES_PER_SEC must be in 1..50, got %d", cfg.Rate)
	}
	if cfg.InvalidRatio < 0 || cfg.InvalidRatio > 1 {
		return Config{}, fmt.Errorf("TRADEGEN_INVALID_RATIO must be in 0..1, got %v", cfg.InvalidRatio)
	}
	return cfg, nil
}
