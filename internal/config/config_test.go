package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATA_BACKEND", "")
	t.Setenv("SQLITE_DB_PATH", "")
	t.Setenv("DATA_DIR", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()
	if cfg.DataBackend != "memory" {
		t.Fatalf("expected default backend memory, got %q", cfg.DataBackend)
	}
	if cfg.DataDir != "./data" {
		t.Fatalf("expected default data dir ./data, got %q", cfg.DataDir)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATA_BACKEND", "sqlite")
	t.Setenv("SQLITE_DB_PATH", t.TempDir()+"/expenzo.db")

	cfg := Load()
	if cfg.DataBackend != "sqlite" {
		t.Fatalf("expected sqlite, got %q", cfg.DataBackend)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*Config)
		want string
	}{
		{"unknown backend", func(c *Config) { c.DataBackend = "redis" }, "invalid data backend"},
		{"empty sqlite path", func(c *Config) { c.DataBackend = "sqlite"; c.SQLiteDBPath = "" }, "database path"},
		{"empty data dir", func(c *Config) { c.DataBackend = "file"; c.DataDir = "" }, "data directory"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{
				DataBackend:  "memory",
				SQLiteDBPath: "./data/expenzo.db",
				DataDir:      "./data",
				LogLevel:     "info",
			}
			tc.mod(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}
