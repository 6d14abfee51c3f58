package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	AppURL                 string
	Database               DatabaseConfig
	RateLimit              int
	RedisAddr              string
	RedisRateLimitKey      string
	Slack                  SlackConfig
	Log                    LogConfig
	ShutdownTimeoutSeconds int
}

type DatabaseConfig struct {
	Driver string
	DSN    string
	Debug  bool
}

type SlackConfig struct {
	APIURL  string
	Token   string
	Channel string
	Timeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
	Output string
	File   string
}

func Load() (Config, error) {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "")
	redisPort := getEnv("REDIS_PORT", "6379")

	ints := intReader{}
	cfg := Config{
		AppURL: fmt.Sprintf("%s:%s", appHost, appPort),
		Database: DatabaseConfig{
			Driver: getEnv("DB_DRIVER", DriverSQLite),
			DSN:    getEnv("DATABASE_DSN", "goals.db"),
		},
		RateLimit:         ints.get("RATE_LIMIT_PER_MINUTE", 120),
		RedisRateLimitKey: getEnv("REDIS_RATE_LIMIT_KEY", "goal_tracker_rate_limit"),
		Slack: SlackConfig{
			APIURL:  getEnv("SLACK_API_URL", "https://slack.com/api/"),
			Token:   getEnv("SLACK_BOT_TOKEN", ""),
			Channel: getEnv("SLACK_CHANNEL", "task-notifications"),
			Timeout: time.Duration(ints.get("SLACK_TIMEOUT_SECONDS", 5)) * time.Second,
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
			Output: getEnv("LOG_OUTPUT", "stdout"),
			File:   getEnv("LOG_FILE", "logs/app.log"),
		},
		ShutdownTimeoutSeconds: ints.get("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}
	if redisHost != "" {
		cfg.RedisAddr = fmt.Sprintf("%s:%s", redisHost, redisPort)
	}
	cfg.Database.Debug = cfg.Log.Level == "debug"

	if ints.err != nil {
		return Config{}, ints.err
	}
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.AppURL == "" {
		return errors.New("APP_HOST/APP_PORT must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.Database.Driver != DriverSQLite && cfg.Database.Driver != DriverPostgres {
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverSQLite, DriverPostgres, cfg.Database.Driver)
	}
	if cfg.Database.DSN == "" {
		return errors.New("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.Slack.Timeout <= 0 {
		return errors.New("SLACK_TIMEOUT_SECONDS must be greater than 0")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

// intReader keeps the first parse failure so Load can report it once.
type intReader struct {
	err error
}

func (r *intReader) get(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		if r.err == nil {
			r.err = fmt.Errorf("invalid integer value for %s: %q", key, v)
		}
		return defaultVal
	}
	return i
}
