package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_HOST", "APP_PORT", "DB_DRIVER", "DATABASE_DSN", "RATE_LIMIT_PER_MINUTE",
		"REDIS_HOST", "SLACK_BOT_TOKEN", "SLACK_TIMEOUT_SECONDS", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AppURL != "127.0.0.1:8080" {
		t.Errorf("AppURL = %q", cfg.AppURL)
	}
	if cfg.Database.Driver != DriverSQLite || cfg.Database.DSN != "goals.db" {
		t.Errorf("Database = %+v", cfg.Database)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr = %q, want empty when REDIS_HOST is unset", cfg.RedisAddr)
	}
	if cfg.Slack.Timeout != 5*time.Second {
		t.Errorf("Slack.Timeout = %v", cfg.Slack.Timeout)
	}
	if cfg.Slack.Channel != "task-notifications" {
		t.Errorf("Slack.Channel = %q", cfg.Slack.Channel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_DSN", "host=db user=app dbname=goals")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AppURL != "127.0.0.1:9090" {
		t.Errorf("AppURL = %q", cfg.AppURL)
	}
	if cfg.RedisAddr != "redis:6379" {
		t.Errorf("RedisAddr = %q", cfg.RedisAddr)
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("Driver = %q", cfg.Database.Driver)
	}
	if !cfg.Database.Debug {
		t.Error("Database.Debug should follow LOG_LEVEL=debug")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-integer rate limit", "RATE_LIMIT_PER_MINUTE", "lots"},
		{"zero rate limit", "RATE_LIMIT_PER_MINUTE", "0"},
		{"unknown driver", "DB_DRIVER", "mysql"},
		{"negative slack timeout", "SLACK_TIMEOUT_SECONDS", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%q should fail", tt.key, tt.value)
			}
		})
	}
}

func TestNewDatabaseClient_SQLiteInMemory(t *testing.T) {
	db, err := NewDatabaseClient(DatabaseConfig{Driver: DriverSQLite, DSN: ":memory:"})
	if err != nil {
		t.Fatalf("NewDatabaseClient() error = %v", err)
	}

	for _, table := range []string{"goals", "tasks"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("table %s was not migrated", table)
		}
	}

	var fk int
	if err := db.Raw("PRAGMA foreign_keys").Scan(&fk).Error; err != nil {
		t.Fatalf("read pragma: %v", err)
	}
	if fk != 1 {
		t.Errorf("foreign_keys = %d, want 1", fk)
	}
}

func TestNewDatabaseClient_UnknownDriver(t *testing.T) {
	if _, err := NewDatabaseClient(DatabaseConfig{Driver: "oracle", DSN: "x"}); err == nil {
		t.Error("expected error for unsupported driver")
	}
}
