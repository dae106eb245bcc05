package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// The file is unmarshaled over the defaults, so omitted fields keep their
// default values and explicit false/zero values are respected. The result
// is validated before being returned.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// IMPRINT_* environment variable overrides (e.g. IMPRINT_STORAGE_PATH).
// Environment variables always take precedence over file values. The final
// configuration is re-validated after overrides.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies IMPRINT_SECTION_FIELD environment overrides.
func applyEnvOverrides(cfg *Config) {
	// Scan overrides
	if val := os.Getenv("IMPRINT_SCAN_ROOT"); val != "" {
		cfg.Scan.Root = val
	}
	if val := os.Getenv("IMPRINT_SCAN_EXTENSIONS"); val != "" {
		cfg.Scan.Extensions = splitCSV(val)
	}
	if val := os.Getenv("IMPRINT_SCAN_SKIP_HIDDEN"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Scan.SkipHidden = b
		}
	}
	if val := os.Getenv("IMPRINT_SCAN_MAX_FILE_SIZE"); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.Scan.MaxFileSize = i
		}
	}
	if val := os.Getenv("IMPRINT_SCAN_WORKERS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Scan.Workers = i
		}
	}

	// Storage overrides
	if val := os.Getenv("IMPRINT_STORAGE_BACKEND"); val != "" {
		cfg.Storage.Backend = val
	}
	if val := os.Getenv("IMPRINT_STORAGE_PATH"); val != "" {
		cfg.Storage.Path = val
	}
	if val := os.Getenv("IMPRINT_STORAGE_DRIVER"); val != "" {
		cfg.Storage.Driver = val
	}
	if val := os.Getenv("IMPRINT_STORAGE_BUSY_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Storage.BusyTimeout = d
		}
	}

	// Watch overrides
	if val := os.Getenv("IMPRINT_WATCH_DEBOUNCE_INTERVAL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Watch.DebounceInterval = d
		}
	}
	if val := os.Getenv("IMPRINT_WATCH_EXTENSIONS"); val != "" {
		cfg.Watch.Extensions = splitCSV(val)
	}

	// Schedule overrides
	if val := os.Getenv("IMPRINT_SCHEDULE_CRON"); val != "" {
		cfg.Schedule.Cron = val
	}

	// Logging overrides
	if val := os.Getenv("IMPRINT_LOGGING_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("IMPRINT_LOGGING_FORMAT"); val != "" {
		cfg.Logging.Format = val
	}

	// Metrics overrides
	if val := os.Getenv("IMPRINT_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Metrics.Enabled = b
		}
	}
	if val := os.Getenv("IMPRINT_METRICS_LISTEN"); val != "" {
		cfg.Metrics.Listen = val
	}
	if val := os.Getenv("IMPRINT_METRICS_PATH"); val != "" {
		cfg.Metrics.Path = val
	}
}

func splitCSV(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
