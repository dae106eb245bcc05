package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
scan:
  root: /var/data
  extensions: [".json", ".xml"]
  workers: 8
storage:
  backend: sqlite
  path: /tmp/fp.db
  driver: sqlite
watch:
  debounce_interval: "500ms"
schedule:
  cron: "0 3 * * *"
logging:
  level: debug
  format: text
metrics:
  enabled: true
  listen: "127.0.0.1:9999"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Scan.Root != "/var/data" {
		t.Errorf("Scan.Root = %q", cfg.Scan.Root)
	}
	if len(cfg.Scan.Extensions) != 2 {
		t.Errorf("Scan.Extensions = %v", cfg.Scan.Extensions)
	}
	if cfg.Scan.Workers != 8 {
		t.Errorf("Scan.Workers = %d", cfg.Scan.Workers)
	}
	if cfg.Storage.Driver != "sqlite" {
		t.Errorf("Storage.Driver = %q", cfg.Storage.Driver)
	}
	if cfg.Watch.DebounceInterval != 500*time.Millisecond {
		t.Errorf("Watch.DebounceInterval = %v", cfg.Watch.DebounceInterval)
	}
	if cfg.Schedule.Cron != "0 3 * * *" {
		t.Errorf("Schedule.Cron = %q", cfg.Schedule.Cron)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Listen != "127.0.0.1:9999" {
		t.Errorf("Metrics = %+v", cfg.Metrics)
	}
}

func TestLoadConfig_DefaultsPreserved(t *testing.T) {
	// A minimal file keeps defaults for everything it omits.
	path := writeConfigFile(t, "scan:\n  root: /data\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Storage.Backend != DefaultStorageBackend {
		t.Errorf("Storage.Backend = %q, want default", cfg.Storage.Backend)
	}
	if cfg.Storage.Driver != DefaultStorageDriver {
		t.Errorf("Storage.Driver = %q, want default", cfg.Storage.Driver)
	}
	if !cfg.Storage.WALMode {
		t.Error("Storage.WALMode should default to true")
	}
	if cfg.Scan.Workers != DefaultScanWorkers {
		t.Errorf("Scan.Workers = %d, want default", cfg.Scan.Workers)
	}
	if cfg.Logging.Level != DefaultLoggingLevel {
		t.Errorf("Logging.Level = %q, want default", cfg.Logging.Level)
	}
	if cfg.Metrics.Namespace != DefaultMetricsNamespace {
		t.Errorf("Metrics.Namespace = %q, want default", cfg.Metrics.Namespace)
	}
}

func TestLoadConfig_ExplicitFalseRespected(t *testing.T) {
	path := writeConfigFile(t, `
scan:
  skip_hidden: false
storage:
  wal_mode: false
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Scan.SkipHidden {
		t.Error("explicit skip_hidden: false was overridden by default")
	}
	if cfg.Storage.WALMode {
		t.Error("explicit wal_mode: false was overridden by default")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig("/no/such/file.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "scan: [not a mapping")
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadConfigWithEnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
scan:
  root: /from/file
storage:
  path: /from/file.db
`)

	t.Setenv("IMPRINT_SCAN_ROOT", "/from/env")
	t.Setenv("IMPRINT_STORAGE_PATH", "/from/env.db")
	t.Setenv("IMPRINT_SCAN_WORKERS", "16")
	t.Setenv("IMPRINT_WATCH_DEBOUNCE_INTERVAL", "2s")
	t.Setenv("IMPRINT_METRICS_ENABLED", "true")
	t.Setenv("IMPRINT_SCAN_EXTENSIONS", ".json, .yaml")

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides failed: %v", err)
	}

	if cfg.Scan.Root != "/from/env" {
		t.Errorf("Scan.Root = %q, want env override", cfg.Scan.Root)
	}
	if cfg.Storage.Path != "/from/env.db" {
		t.Errorf("Storage.Path = %q, want env override", cfg.Storage.Path)
	}
	if cfg.Scan.Workers != 16 {
		t.Errorf("Scan.Workers = %d, want 16", cfg.Scan.Workers)
	}
	if cfg.Watch.DebounceInterval != 2*time.Second {
		t.Errorf("Watch.DebounceInterval = %v, want 2s", cfg.Watch.DebounceInterval)
	}
	if !cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled not overridden")
	}
	if len(cfg.Scan.Extensions) != 2 || cfg.Scan.Extensions[0] != ".json" {
		t.Errorf("Scan.Extensions = %v", cfg.Scan.Extensions)
	}
}

func TestLoadConfigWithEnvOverrides_InvalidOverride(t *testing.T) {
	path := writeConfigFile(t, "scan:\n  root: /data\n")

	t.Setenv("IMPRINT_STORAGE_BACKEND", "cassandra")

	if _, err := LoadConfigWithEnvOverrides(path); err == nil {
		t.Error("expected validation failure for bad env override")
	}
}
