package config

import "time"

// Config is the root configuration for imprint.
type Config struct {
	// Scan configures directory scanning.
	Scan ScanConfig `yaml:"scan"`

	// Storage configures fingerprint persistence.
	Storage StorageConfig `yaml:"storage"`

	// Watch configures live file watching.
	Watch WatchConfig `yaml:"watch"`

	// Schedule configures periodic rescans.
	Schedule ScheduleConfig `yaml:"schedule"`

	// Logging configures structured logging.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics configures the Prometheus endpoint.
	Metrics MetricsConfig `yaml:"metrics"`
}

// ScanConfig configures directory scanning.
type ScanConfig struct {
	// Root is the directory to scan.
	Root string `yaml:"root"`

	// Extensions restricts scanning to files with these extensions
	// (e.g. ".json", ".log"). Empty means all files.
	Extensions []string `yaml:"extensions"`

	// SkipHidden skips dot-files and dot-directories.
	SkipHidden bool `yaml:"skip_hidden"`

	// MaxFileSize skips files larger than this many bytes. 0 means no
	// limit.
	MaxFileSize int64 `yaml:"max_file_size"`

	// Workers is the number of concurrent fingerprinting workers.
	Workers int `yaml:"workers"`
}

// StorageConfig configures fingerprint persistence.
type StorageConfig struct {
	// Backend selects the store: "sqlite" or "memory".
	Backend string `yaml:"backend"`

	// Path is the SQLite database file path.
	Path string `yaml:"path"`

	// Driver selects the SQLite driver: "sqlite3" (cgo) or "sqlite"
	// (pure Go).
	Driver string `yaml:"driver"`

	// MaxOpenConns is the maximum number of open database connections.
	MaxOpenConns int `yaml:"max_open_conns"`

	// MaxIdleConns is the maximum number of idle database connections.
	MaxIdleConns int `yaml:"max_idle_conns"`

	// WALMode enables SQLite Write-Ahead Logging.
	WALMode bool `yaml:"wal_mode"`

	// BusyTimeout is how long to wait when the database is locked.
	BusyTimeout time.Duration `yaml:"busy_timeout"`
}

// WatchConfig configures live file watching.
type WatchConfig struct {
	// DebounceInterval is the quiet period before a changed file is
	// re-fingerprinted.
	DebounceInterval time.Duration `yaml:"debounce_interval"`

	// Extensions restricts watching to these file extensions. Empty
	// means all files.
	Extensions []string `yaml:"extensions"`

	// SkipHidden skips dot-files and dot-directories.
	SkipHidden bool `yaml:"skip_hidden"`
}

// ScheduleConfig configures periodic full rescans.
type ScheduleConfig struct {
	// Cron is a standard 5-field cron expression. Empty disables
	// scheduled rescans.
	Cron string `yaml:"cron"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is the output format: json or text.
	Format string `yaml:"format"`
}

// MetricsConfig configures the Prometheus metrics endpoint.
type MetricsConfig struct {
	// Enabled turns the metrics endpoint on.
	Enabled bool `yaml:"enabled"`

	// Namespace is the metric name prefix.
	Namespace string `yaml:"namespace"`

	// Listen is the address the metrics HTTP server binds to.
	Listen string `yaml:"listen"`

	// Path is the HTTP path the metrics are served on.
	Path string `yaml:"path"`
}
