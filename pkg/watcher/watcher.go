package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"imprint-hq/imprint/pkg/config"
	"imprint-hq/imprint/pkg/telemetry/metrics"
)

// Watcher watches a directory tree and delivers debounced batches of
// changed paths.
type Watcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	config   *config.WatchConfig
	metrics  *metrics.Collector // optional
	debounce *Debouncer

	mu      sync.RWMutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates a watcher. The metrics collector may be nil.
func New(cfg *config.WatchConfig, collector *metrics.Collector) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	interval := cfg.DebounceInterval
	if interval <= 0 {
		interval = config.DefaultWatchDebounceInterval
	}

	return &Watcher{
		watcher:  fsw,
		logger:   slog.Default().With("component", "watcher"),
		config:   cfg,
		metrics:  collector,
		debounce: NewDebouncer(interval),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Watch starts watching root and blocks until the context is cancelled or
// Stop is called. Each settled batch of changed paths is passed to onChange
// from the debounce timer's goroutine.
func (w *Watcher) Watch(ctx context.Context, root string, onChange func(paths []string)) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(w.doneCh)
	}()

	if err := w.addTree(root); err != nil {
		return fmt.Errorf("failed to watch path: %w", err)
	}

	w.logger.Info("watcher started",
		"root", root,
		"debounce_ms", w.debounce.interval.Milliseconds(),
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watcher stopped (context cancelled)")
			return nil

		case <-w.stopCh:
			w.logger.Info("watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// New directories join the watch immediately so files
			// created inside them are seen.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if w.config.SkipHidden && isHidden(filepath.Base(event.Name)) {
						continue
					}
					if err := w.addTree(event.Name); err != nil {
						w.logger.Warn("failed to watch new directory",
							"path", event.Name, "error", err)
					}
					continue
				}
			}

			if !w.shouldProcessEvent(event) {
				continue
			}

			w.logger.Debug("file event", "path", event.Name, "op", event.Op.String())
			if w.metrics != nil {
				w.metrics.RecordWatchEvent(opLabel(event.Op))
			}

			w.debounce.Add(event.Name, onChange)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("watcher error", "error", err)
			// Keep watching despite errors.
		}
	}
}

// Stop stops the watcher and waits for Watch to return.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	w.debounce.Stop()

	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}
	return nil
}

// addTree adds a directory and all subdirectories to the watch.
func (w *Watcher) addTree(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if w.config.SkipHidden && isHidden(filepath.Base(path)) && path != root {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			if err := w.watcher.Add(path); err != nil {
				return fmt.Errorf("failed to watch directory %q: %w", path, err)
			}
			w.logger.Debug("watching directory", "path", path)
		}
		return nil
	})
}

// shouldProcessEvent filters events down to the file changes we care about.
func (w *Watcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op&fsnotify.Chmod == fsnotify.Chmod {
		return false
	}
	if w.config.SkipHidden && isHidden(filepath.Base(event.Name)) {
		return false
	}
	if len(w.config.Extensions) > 0 {
		ext := strings.ToLower(filepath.Ext(event.Name))
		if !w.hasValidExtension(ext) {
			return false
		}
	}
	return true
}

func (w *Watcher) hasValidExtension(ext string) bool {
	for _, validExt := range w.config.Extensions {
		if ext == strings.ToLower(validExt) {
			return true
		}
	}
	return false
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func opLabel(op fsnotify.Op) string {
	switch {
	case op.Has(fsnotify.Create):
		return "create"
	case op.Has(fsnotify.Write):
		return "write"
	case op.Has(fsnotify.Remove):
		return "remove"
	case op.Has(fsnotify.Rename):
		return "rename"
	default:
		return "other"
	}
}

// Debouncer coalesces changed paths and fires the callback once per quiet
// period, with every path seen since the last flush.
type Debouncer struct {
	interval time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	pending  map[string]struct{}
	stopCh   chan struct{}
}

// NewDebouncer creates a new debouncer.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{
		interval: interval,
		pending:  make(map[string]struct{}),
		stopCh:   make(chan struct{}),
	}
}

// Add records a changed path and (re)arms the quiet-period timer. When the
// timer fires, callback receives all pending paths in one batch.
func (d *Debouncer) Add(path string, callback func(paths []string)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[path] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() {
		select {
		case <-d.stopCh:
			return
		default:
		}

		d.mu.Lock()
		paths := make([]string, 0, len(d.pending))
		for p := range d.pending {
			paths = append(paths, p)
		}
		d.pending = make(map[string]struct{})
		d.mu.Unlock()

		if len(paths) > 0 {
			callback(paths)
		}
	})
}

// Stop cancels any pending flush.
func (d *Debouncer) Stop() {
	close(d.stopCh)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = make(map[string]struct{})
}
