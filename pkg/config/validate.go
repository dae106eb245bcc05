package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// Validate checks the configuration for inconsistent or unusable values.
func Validate(cfg *Config) error {
	if err := validateScan(&cfg.Scan); err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	if err := validateStorage(&cfg.Storage); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := validateWatch(&cfg.Watch); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	if err := validateSchedule(&cfg.Schedule); err != nil {
		return fmt.Errorf("schedule: %w", err)
	}
	if err := validateLogging(&cfg.Logging); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := validateMetrics(&cfg.Metrics); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	return nil
}

func validateScan(cfg *ScanConfig) error {
	if cfg.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	if cfg.MaxFileSize < 0 {
		return fmt.Errorf("max_file_size must not be negative, got %d", cfg.MaxFileSize)
	}
	for _, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	return nil
}

func validateStorage(cfg *StorageConfig) error {
	switch cfg.Backend {
	case "sqlite", "memory":
	default:
		return fmt.Errorf("unknown backend %q (want \"sqlite\" or \"memory\")", cfg.Backend)
	}
	if cfg.Backend == "sqlite" {
		if cfg.Path == "" {
			return fmt.Errorf("path is required for the sqlite backend")
		}
		switch cfg.Driver {
		case "sqlite3", "sqlite":
		default:
			return fmt.Errorf("unknown driver %q (want \"sqlite3\" or \"sqlite\")", cfg.Driver)
		}
	}
	if cfg.MaxOpenConns < 0 || cfg.MaxIdleConns < 0 {
		return fmt.Errorf("connection limits must not be negative")
	}
	if cfg.BusyTimeout < 0 {
		return fmt.Errorf("busy_timeout must not be negative")
	}
	return nil
}

func validateWatch(cfg *WatchConfig) error {
	if cfg.DebounceInterval < 0 {
		return fmt.Errorf("debounce_interval must not be negative")
	}
	for _, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	return nil
}

func validateSchedule(cfg *ScheduleConfig) error {
	if cfg.Cron == "" {
		return nil
	}
	if _, err := cron.ParseStandard(cfg.Cron); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", cfg.Cron, err)
	}
	return nil
}

func validateLogging(cfg *LoggingConfig) error {
	switch strings.ToLower(cfg.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown level %q", cfg.Level)
	}
	switch strings.ToLower(cfg.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("unknown format %q", cfg.Format)
	}
	return nil
}

func validateMetrics(cfg *MetricsConfig) error {
	if !cfg.Enabled {
		return nil
	}
	if cfg.Listen == "" {
		return fmt.Errorf("listen address is required when metrics are enabled")
	}
	if !strings.HasPrefix(cfg.Path, "/") {
		return fmt.Errorf("path %q must start with /", cfg.Path)
	}
	return nil
}
