package config

import "time"

// Default values for configuration fields.
const (
	// Scan defaults
	DefaultScanSkipHidden = true
	DefaultScanWorkers    = 4

	// Storage defaults
	DefaultStorageBackend      = "sqlite"
	DefaultStoragePath         = "data/fingerprints.db"
	DefaultStorageDriver       = "sqlite3"
	DefaultStorageMaxOpenConns = 10
	DefaultStorageMaxIdleConns = 5
	DefaultStorageWALMode      = true
	DefaultStorageBusyTimeout  = 5 * time.Second

	// Watch defaults
	DefaultWatchDebounceInterval = 250 * time.Millisecond
	DefaultWatchSkipHidden       = true

	// Logging defaults
	DefaultLoggingLevel  = "info"
	DefaultLoggingFormat = "json"

	// Metrics defaults
	DefaultMetricsEnabled   = false
	DefaultMetricsNamespace = "imprint"
	DefaultMetricsListen    = "127.0.0.1:9410"
	DefaultMetricsPath      = "/metrics"
)

// DefaultConfig returns a fully defaulted configuration. LoadConfig
// unmarshals YAML over this, so explicit false/zero values in the file are
// respected.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			SkipHidden: DefaultScanSkipHidden,
			Workers:    DefaultScanWorkers,
		},
		Storage: StorageConfig{
			Backend:      DefaultStorageBackend,
			Path:         DefaultStoragePath,
			Driver:       DefaultStorageDriver,
			MaxOpenConns: DefaultStorageMaxOpenConns,
			MaxIdleConns: DefaultStorageMaxIdleConns,
			WALMode:      DefaultStorageWALMode,
			BusyTimeout:  DefaultStorageBusyTimeout,
		},
		Watch: WatchConfig{
			DebounceInterval: DefaultWatchDebounceInterval,
			SkipHidden:       DefaultWatchSkipHidden,
		},
		Logging: LoggingConfig{
			Level:  DefaultLoggingLevel,
			Format: DefaultLoggingFormat,
		},
		Metrics: MetricsConfig{
			Enabled:   DefaultMetricsEnabled,
			Namespace: DefaultMetricsNamespace,
			Listen:    DefaultMetricsListen,
			Path:      DefaultMetricsPath,
		},
	}
}

// ApplyDefaults fills empty fields with defaults. It is used when a config
// is built programmatically rather than through LoadConfig.
func ApplyDefaults(cfg *Config) {
	if cfg.Scan.Workers == 0 {
		cfg.Scan.Workers = DefaultScanWorkers
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = DefaultStorageBackend
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = DefaultStoragePath
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = DefaultStorageDriver
	}
	if cfg.Storage.MaxOpenConns == 0 {
		cfg.Storage.MaxOpenConns = DefaultStorageMaxOpenConns
	}
	if cfg.Storage.MaxIdleConns == 0 {
		cfg.Storage.MaxIdleConns = DefaultStorageMaxIdleConns
	}
	if cfg.Storage.BusyTimeout == 0 {
		cfg.Storage.BusyTimeout = DefaultStorageBusyTimeout
	}
	if cfg.Watch.DebounceInterval == 0 {
		cfg.Watch.DebounceInterval = DefaultWatchDebounceInterval
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLoggingFormat
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Metrics.Listen == "" {
		cfg.Metrics.Listen = DefaultMetricsListen
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = DefaultMetricsPath
	}
}
