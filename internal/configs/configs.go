package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	RateLimitMemory = "memory"
	RateLimitRedis  = "redis"
)

type Config struct {
	AppURL                 string `toml:"app_url"`
	DatabaseDriver         string `toml:"database_driver"`
	DatabaseDSN            string `toml:"database_dsn"`
	RateLimit              int    `toml:"rate_limit_per_minute"`
	RateLimitBackend       string `toml:"rate_limit_backend"`
	RedisAddr              string `toml:"redis_addr"`
	RedisKeyPrefix         string `toml:"redis_key_prefix"`
	ShutdownTimeoutSeconds int    `toml:"shutdown_timeout_seconds"`
	LogLevel               string `toml:"log_level"`
	LogFormat              string `toml:"log_format"`
}

func Defaults() Config {
	return Config{
		AppURL:                 "127.0.0.1:8080",
		DatabaseDriver:         DriverSQLite,
		DatabaseDSN:            "tasks.db",
		RateLimit:              120,
		RateLimitBackend:       RateLimitMemory,
		RedisAddr:              "127.0.0.1:6379",
		RedisKeyPrefix:         "task_list:ratelimit:",
		ShutdownTimeoutSeconds: 20,
		LogLevel:               "info",
		LogFormat:              "text",
	}
}

// Load layers the TOML file at path (if any) and then the environment over
// the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	appURL, err := overrideHostPort(cfg.AppURL, "APP_HOST", "APP_PORT")
	if err != nil {
		return err
	}
	cfg.AppURL = appURL

	redisAddr, err := overrideHostPort(cfg.RedisAddr, "REDIS_HOST", "REDIS_PORT")
	if err != nil {
		return err
	}
	cfg.RedisAddr = redisAddr

	cfg.DatabaseDriver = strings.ToLower(getEnv("DATABASE_DRIVER", cfg.DatabaseDriver))
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", cfg.DatabaseDSN)
	cfg.RateLimitBackend = strings.ToLower(getEnv("RATE_LIMIT_BACKEND", cfg.RateLimitBackend))
	cfg.RedisKeyPrefix = getEnv("REDIS_KEY_PREFIX", cfg.RedisKeyPrefix)
	cfg.LogLevel = strings.ToLower(getEnv("LOG_LEVEL", cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(getEnv("LOG_FORMAT", cfg.LogFormat))

	if cfg.RateLimit, err = getEnvAsInt("RATE_LIMIT_PER_MINUTE", cfg.RateLimit); err != nil {
		return err
	}
	if cfg.ShutdownTimeoutSeconds, err = getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", cfg.ShutdownTimeoutSeconds); err != nil {
		return err
	}
	return nil
}

// overrideHostPort replaces either half of addr when the matching env var is set.
func overrideHostPort(addr, hostKey, portKey string) (string, error) {
	hostVal, portVal := os.Getenv(hostKey), os.Getenv(portKey)
	if hostVal == "" && portVal == "" {
		return addr, nil
	}

	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "", fmt.Errorf("invalid address %q: %w", addr, err)
	}
	if hostVal != "" {
		host = hostVal
	}
	if portVal != "" {
		port = portVal
	}
	return net.JoinHostPort(host, port), nil
}

func validate(cfg Config) error {
	if cfg.AppURL == "" {
		return fmt.Errorf("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	switch cfg.DatabaseDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("DATABASE_DRIVER must be %q or %q, got %q", DriverSQLite, DriverPostgres, cfg.DatabaseDriver)
	}
	if cfg.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	switch cfg.RateLimitBackend {
	case RateLimitMemory:
	case RateLimitRedis:
		if cfg.RedisAddr == "" {
			return fmt.Errorf("REDIS_HOST/REDIS_PORT must be set when RATE_LIMIT_BACKEND is redis")
		}
	default:
		return fmt.Errorf("RATE_LIMIT_BACKEND must be %q or %q, got %q", RateLimitMemory, RateLimitRedis, cfg.RateLimitBackend)
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s", key)
		}
		return i, nil
	}
	return defaultVal, nil
}
