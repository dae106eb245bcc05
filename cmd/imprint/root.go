package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"imprint-hq/imprint/pkg/config"
	"imprint-hq/imprint/pkg/fingerprint/storage"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "imprint",
	Short: "Imprint - content fingerprinting and classification",
	Long: `Imprint computes SHA-256 fingerprints of file content and classifies its
likely shape (JSON, XML/HTML, plain text, or binary) without parsing it.

It can fingerprint single files, whole directory trees into an SQLite
catalog, and watch trees to keep the catalog current as files change.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadConfig loads the configuration file if one was given, or the defaults
// otherwise. The --verbose flag lowers the log level to debug either way.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	if cfgFile != "" {
		loaded, err := config.LoadConfigWithEnvOverrides(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.DefaultConfig()
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// openStore builds the configured fingerprint store.
func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "sqlite":
		return storage.NewSQLiteStore(&storage.SQLiteConfig{
			Path:         cfg.Storage.Path,
			Driver:       cfg.Storage.Driver,
			MaxOpenConns: cfg.Storage.MaxOpenConns,
			MaxIdleConns: cfg.Storage.MaxIdleConns,
			WALMode:      cfg.Storage.WALMode,
			BusyTimeout:  cfg.Storage.BusyTimeout,
		})
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
