package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the service reads from the environment.
type Config struct {
	// SMS gateway.
	Server string `env:"SERVER,required,notEmpty"`
	APIKey string `env:"API_KEY,required,notEmpty"`

	// Domain suffix interpolated into the auto-reply text.
	SecondMessageLink string `env:"SECOND_MESSAGE_LINK,required,notEmpty"`

	// Shared store and job queue.
	RedisURL string `env:"REDIS_URL,required,notEmpty"`
	QueueKey string `env:"QUEUE_KEY" envDefault:"incoming_messages"`

	// Directory lookup. The SQL source is used only when DBHost is set;
	// the HTTP fallback only when DirectoryURL is set.
	DBHost       string `env:"DB_HOST"`
	DBPort       int    `env:"DB_PORT" envDefault:"5432"`
	DBUser       string `env:"DB_USER"`
	DBPassword   string `env:"DB_PASSWORD"`
	DBName       string `env:"DB_NAME"`
	DirectoryURL string `env:"DIRECTORY_URL"`

	Workers       int    `env:"WORKERS" envDefault:"4"`
	ReconcileCron string `env:"RECONCILE_CRON" envDefault:"*/5 * * * *"`
}

// Load parses configuration from the process environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// HasDB reports whether the SQL directory source is configured.
func (c *Config) HasDB() bool {
	return c.DBHost != "" && c.DBName != ""
}

// DSN builds the Postgres connection string for the directory source.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}
