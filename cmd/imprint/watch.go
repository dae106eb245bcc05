package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"imprint-hq/imprint/pkg/fingerprint/scanner"
	"imprint-hq/imprint/pkg/scheduler"
	"imprint-hq/imprint/pkg/telemetry/logging"
	"imprint-hq/imprint/pkg/telemetry/metrics"
	"imprint-hq/imprint/pkg/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [root]",
	Short: "Watch a directory tree and keep fingerprints current",
	Long: `Perform an initial scan of the directory tree, then watch it for
changes and re-fingerprint files as they are created, modified, or renamed.
Deleted files have their records removed. If schedule.cron is configured, a
full rescan also runs on that schedule. Runs until interrupted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Scan.Root = args[0]
	}
	if cfg.Scan.Root == "" {
		return fmt.Errorf("no root directory: pass one as an argument or set scan.root")
	}

	logger, err := logging.Setup(&cfg.Logging)
	if err != nil {
		return err
	}
	logger = logger.With("component", "cmd.watch")

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var collector *metrics.Collector
	var metricsSrv *http.Server
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(&cfg.Metrics, nil)
		mux := http.NewServeMux()
		mux.Handle(cfg.Metrics.Path, collector.Handler())
		metricsSrv = &http.Server{Addr: cfg.Metrics.Listen, Handler: mux}
		go func() {
			logger.Info("metrics endpoint listening",
				"addr", cfg.Metrics.Listen, "path", cfg.Metrics.Path)
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics endpoint failed", "error", err)
			}
		}()
	}

	sc := scanner.New(&cfg.Scan, store, collector)

	summary, err := sc.Scan(ctx)
	if err != nil {
		return fmt.Errorf("initial scan: %w", err)
	}
	logger.Info("initial scan complete",
		"scan_id", summary.ScanID,
		"files", summary.Files,
		"errors", summary.Errors,
		"duration", summary.Duration)

	sched := scheduler.New()
	if cfg.Schedule.Cron != "" {
		rescan := func(ctx context.Context) error {
			s, err := sc.Scan(ctx)
			if err != nil {
				return err
			}
			logger.Info("scheduled rescan complete",
				"scan_id", s.ScanID, "files", s.Files, "errors", s.Errors)
			return nil
		}
		if err := sched.Start(ctx, cfg.Schedule.Cron, rescan); err != nil {
			return fmt.Errorf("start scheduler: %w", err)
		}
		defer sched.Stop()
	}

	w, err := watcher.New(&cfg.Watch, collector)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	onChange := func(paths []string) {
		for _, path := range paths {
			if _, statErr := os.Stat(path); statErr != nil {
				if os.IsNotExist(statErr) {
					if delErr := store.Delete(ctx, path); delErr != nil {
						logger.Warn("failed to remove record", "path", path, "error", delErr)
					} else {
						logger.Info("record removed", "path", path)
					}
					continue
				}
				logger.Warn("failed to stat changed file", "path", path, "error", statErr)
				continue
			}
			rec, scanErr := sc.ScanPath(ctx, path)
			if scanErr != nil {
				logger.Warn("failed to re-fingerprint file", "path", path, "error", scanErr)
				continue
			}
			logger.Info("fingerprint updated",
				"path", rec.Path, "kind", rec.Kind, "digest", rec.Digest)
		}
	}

	if err := w.Watch(ctx, cfg.Scan.Root, onChange); err != nil {
		return fmt.Errorf("watch %q: %w", cfg.Scan.Root, err)
	}

	if metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
	return nil
}
