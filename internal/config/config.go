package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	BasePath        string        `env:"API_BASE_PATH" envDefault:"/api"`
	CORSOrigin      string        `env:"CORS_ORIGIN" envDefault:"*"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// Empty means the fixtures embedded in the binary.
	FixturesDir string `env:"FIXTURES_DIR"`

	// Events are only published when brokers are configured.
	KafkaBrokers string `env:"KAFKA_BROKERS"`
	KafkaTopic   string `env:"KAFKA_TOPIC" envDefault:"market-events"`

	Log Log `envPrefix:"LOG_"`
}

type Log struct {
	Level      string `env:"LEVEL" envDefault:"info"`
	File       string `env:"FILE"`
	MaxSizeMB  int    `env:"MAX_SIZE_MB" envDefault:"10"`
	MaxBackups int    `env:"MAX_BACKUPS" envDefault:"3"`
	MaxAgeDays int    `env:"MAX_AGE_DAYS" envDefault:"28"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
