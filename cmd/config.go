package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	HTTPPort      string        `env:"HTTP_PORT"      envDefault:"8080"`
	DeliveryDelay time.Duration `env:"DELIVERY_DELAY" envDefault:"2s"`
	StoreDriver   string        `env:"STORE_DRIVER"   envDefault:"memory"`

	DBHost     string `env:"DB_HOST"     envDefault:"localhost"`
	DBPort     string `env:"DB_PORT"     envDefault:"5432"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"`
	DBSslMode  string `env:"DB_SSLMODE"  envDefault:"disable"`

	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFile  string     `env:"LOG_FILE"`

	StatsSchedule string `env:"STATS_SCHEDULE" envDefault:"@every 1m"`
	OtelEndpoint  string `env:"OTEL_ENDPOINT"`
}

// LoadConfig reads the given .env files, if they exist, and then parses the
// process environment. Variables already set in the environment win over
// the files.
func LoadConfig(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errList []error
	switch c.StoreDriver {
	case StoreDriverMemory, StoreDriverPostgres:
	default:
		errList = append(errList, fmt.Errorf("STORE_DRIVER %q must be %s or %s",
			c.StoreDriver, StoreDriverMemory, StoreDriverPostgres))
	}
	if c.DeliveryDelay < 0 {
		errList = append(errList, fmt.Errorf("DELIVERY_DELAY %s must not be negative", c.DeliveryDelay))
	}
	return errors.Join(errList...)
}

// DSN is the postgres connection string built from the DB_* keys.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
