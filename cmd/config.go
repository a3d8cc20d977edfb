package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Scope lock modes selected by ORDERING_LOCK.
const (
	LockAdvisory = "advisory"
	LockRedis    = "redis"
	LockNone     = "none"
)

const defaultRedisLockTTL = 10 * time.Second

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// OrderingLock is one of LockAdvisory, LockRedis, LockNone.
	OrderingLock string
	RedisURL     string
	RedisLockTTL time.Duration

	PositionAuditCron string

	LogLevel slog.Level
	// LogFile, when set, receives a rotated copy of the JSON log.
	LogFile string
}

// LoadConfig reads the configuration through getenv and applies defaults.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:          withDefault(getenv("HTTP_PORT"), "8080"),
		DBHost:            getenv("DB_HOST"),
		DBPort:            withDefault(getenv("DB_PORT"), "5432"),
		DBUser:            getenv("DB_USER"),
		DBPassword:        getenv("DB_PASSWORD"),
		DBName:            getenv("DB_NAME"),
		DBSslMode:         withDefault(getenv("DB_SSLMODE"), "disable"),
		OrderingLock:      strings.ToLower(withDefault(getenv("ORDERING_LOCK"), LockAdvisory)),
		RedisURL:          getenv("REDIS_URL"),
		RedisLockTTL:      defaultRedisLockTTL,
		PositionAuditCron: getenv("POSITION_AUDIT_CRON"),
		LogFile:           getenv("LOG_FILE"),
	}

	var errList []error

	if v := getenv("REDIS_LOCK_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl <= 0 {
			errList = append(errList, fmt.Errorf("REDIS_LOCK_TTL: %q is not a positive duration", v))
		} else {
			cfg.RedisLockTTL = ttl
		}
	}

	if v := getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			errList = append(errList, fmt.Errorf("LOG_LEVEL: %w", err))
		}
	}

	switch cfg.OrderingLock {
	case LockAdvisory, LockNone:
	case LockRedis:
		if cfg.RedisURL == "" {
			errList = append(errList, errors.New("REDIS_URL is required when ORDERING_LOCK=redis"))
		}
	default:
		errList = append(errList, fmt.Errorf("ORDERING_LOCK: unknown mode %q", cfg.OrderingLock))
	}

	if cfg.DBHost == "" {
		errList = append(errList, errors.New("DB_HOST is required"))
	}
	if cfg.DBName == "" {
		errList = append(errList, errors.New("DB_NAME is required"))
	}

	if err := errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN is the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
