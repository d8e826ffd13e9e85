package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	DBDriver   string `env:"DB_DRIVER" envDefault:"sqlite"`
	PostgreSQL string `env:"PostgreSQL"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"users.db"`

	RateLimitRPS          float64       `env:"RATE_LIMIT_RPS" envDefault:"100"`
	RateLimitBurst        int           `env:"RATE_LIMIT_BURST" envDefault:"50"`
	MaxConcurrentRequests int32         `env:"MAX_CONCURRENT_REQUESTS" envDefault:"1000"`
	RequestTimeout        time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout       time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	NATSURL string `env:"NATS_URL"`

	OTelEndpoint    string `env:"OTEL_ENDPOINT"`
	OTelServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"user-management-service"`
}

// Load reads an optional .env file from the working directory and then the
// process environment. Variables already set in the environment win.
func Load() (*Config, error) {
	return LoadFiles(".env")
}

func LoadFiles(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DatabaseDSN returns the connection string for the selected driver.
func (c *Config) DatabaseDSN() string {
	if c.DBDriver == "postgres" {
		return c.PostgreSQL
	}
	return c.SQLitePath
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "sqlite":
	case "postgres":
		if c.PostgreSQL == "" {
			return errors.New("DB_DRIVER=postgres requires the PostgreSQL connection string")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if c.MaxConcurrentRequests <= 0 {
		return errors.New("MAX_CONCURRENT_REQUESTS must be positive")
	}
	return nil
}
