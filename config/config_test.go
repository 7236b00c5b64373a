package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 9095 || cfg.RoundRobinTimeQuantum != 2 || cfg.MaxProcesses != 1000 || cfg.MaxSegments != 100000 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if !cfg.CacheEnabled || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`port: 8080
scheduler:
  round_robin:
    time_quantum: 4
  max_processes: 50
cache:
  enabled: false
log:
  level: debug
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SCHEDSIM_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "1.5")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 8080 || cfg.MaxProcesses != 50 || cfg.CacheEnabled || cfg.LogLevel != "debug" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.RoundRobinTimeQuantum != 1.5 {
		t.Fatalf("env override not applied, quantum = %v", cfg.RoundRobinTimeQuantum)
	}
	if cfg.MaxSegments != 100000 {
		t.Fatalf("missing keys should keep defaults, max segments = %v", cfg.MaxSegments)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("an explicit config path that does not exist must fail")
	}
}

func TestNewLogger(t *testing.T) {
	cfg := &SchedulerConfig{LogLevel: "debug", LogDevelopment: true}
	logger, err := cfg.NewLogger()
	if err != nil {
		t.Fatal(err)
	}
	if !logger.Core().Enabled(-1) {
		t.Fatal("debug level should be enabled")
	}

	cfg.LogLevel = "loud"
	if _, err := cfg.NewLogger(); err == nil {
		t.Fatal("unknown log level must be rejected")
	}
}
