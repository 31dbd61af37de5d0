package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	Env                string
	Port               string
	DBDriver           string
	DBDSN              string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	OutboxBatchSize    int
	OutboxPollInterval time.Duration
}

// Load reads .env when present, then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults for optional keys.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Env:                valueOr(getenv("APP_ENV"), EnvDevelopment),
		Port:               valueOr(getenv("APP_PORT"), "8080"),
		DBDriver:           valueOr(getenv("DB_DRIVER"), DriverMySQL),
		DBDSN:              getenv("DB_DSN"),
		RedisAddr:          getenv("REDIS_ADDR"),
		RedisPassword:      getenv("REDIS_PASSWORD"),
		OutboxBatchSize:    100,
		OutboxPollInterval: time.Second,
	}

	if cfg.DBDSN == "" {
		return Config{}, errors.New("DB_DSN is not set")
	}
	if cfg.DBDriver != DriverMySQL && cfg.DBDriver != DriverSQLite {
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	var err error
	if cfg.RedisDB, err = intOr(getenv("REDIS_DB"), 0); err != nil {
		return Config{}, fmt.Errorf("REDIS_DB: %w", err)
	}
	if cfg.OutboxBatchSize, err = intOr(getenv("OUTBOX_BATCH_SIZE"), cfg.OutboxBatchSize); err != nil {
		return Config{}, fmt.Errorf("OUTBOX_BATCH_SIZE: %w", err)
	}
	if cfg.OutboxBatchSize <= 0 {
		return Config{}, errors.New("OUTBOX_BATCH_SIZE must be positive")
	}
	if raw := getenv("OUTBOX_POLL_INTERVAL"); raw != "" {
		if cfg.OutboxPollInterval, err = time.ParseDuration(raw); err != nil {
			return Config{}, fmt.Errorf("OUTBOX_POLL_INTERVAL: %w", err)
		}
	}
	return cfg, nil
}

func valueOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func intOr(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
