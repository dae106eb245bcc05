package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"imprint-hq/imprint/pkg/config"
	"imprint-hq/imprint/pkg/fingerprint"
	"imprint-hq/imprint/pkg/fingerprint/storage"
	"imprint-hq/imprint/pkg/sniff"
	"imprint-hq/imprint/pkg/telemetry/metrics"
)

// ScanSummary describes one completed directory scan.
type ScanSummary struct {
	// ScanID uniquely identifies this run.
	ScanID string

	// Root is the scanned directory.
	Root string

	// Files is the number of files fingerprinted.
	Files int

	// Bytes is the total content size fingerprinted.
	Bytes int64

	// ByKind counts fingerprinted files per content kind.
	ByKind map[sniff.ContentKind]int

	// Skipped counts files excluded by the walk rules.
	Skipped int

	// Errors counts files that failed to fingerprint.
	Errors int

	// Duration is the wall-clock scan time.
	Duration time.Duration
}

// Scanner fingerprints every file under a root directory.
type Scanner struct {
	config  *config.ScanConfig
	store   storage.Store
	metrics *metrics.Collector // optional
	logger  *slog.Logger
}

// New creates a scanner. The metrics collector may be nil.
func New(cfg *config.ScanConfig, store storage.Store, collector *metrics.Collector) *Scanner {
	return &Scanner{
		config:  cfg,
		store:   store,
		metrics: collector,
		logger:  slog.Default().With("component", "fingerprint.scanner"),
	}
}

// Scan walks the configured root, fingerprints each regular file that
// passes the walk rules, and upserts a record per file. Per-file failures
// are counted and logged, not fatal; the walk itself failing is.
func (s *Scanner) Scan(ctx context.Context) (*ScanSummary, error) {
	root := s.config.Root
	if root == "" {
		return nil, fmt.Errorf("scan root is not configured")
	}

	workers := s.config.Workers
	if workers <= 0 {
		workers = 1
	}

	summary := &ScanSummary{
		ScanID: uuid.New().String(),
		Root:   root,
		ByKind: make(map[sniff.ContentKind]int),
	}
	start := time.Now()

	s.logger.Info("scan started", "scan_id", summary.ScanID, "root", root, "workers", workers)

	paths := make(chan string)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range paths {
				s.scanFile(ctx, path, summary, &mu)
			}
		}()
	}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if d.IsDir() {
			if s.config.SkipHidden && isHidden(d.Name()) && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		if skip, reason := s.shouldSkip(path, d); skip {
			mu.Lock()
			summary.Skipped++
			mu.Unlock()
			s.logger.Debug("file skipped", "path", path, "reason", reason)
			return nil
		}

		select {
		case paths <- path:
		case <-ctx.Done():
			return ctx.Err()
		}
		return nil
	})

	close(paths)
	wg.Wait()

	summary.Duration = time.Since(start)
	if s.metrics != nil {
		s.metrics.RecordScan(summary.Duration.Seconds())
	}

	if walkErr != nil {
		return summary, fmt.Errorf("walk %q: %w", root, walkErr)
	}

	s.logger.Info("scan complete",
		"scan_id", summary.ScanID,
		"files", summary.Files,
		"bytes", summary.Bytes,
		"skipped", summary.Skipped,
		"errors", summary.Errors,
		"duration_ms", summary.Duration.Milliseconds(),
	)
	return summary, nil
}

// ScanPath fingerprints a single file and upserts its record. It applies no
// walk rules; the caller has already decided the file matters.
func (s *Scanner) ScanPath(ctx context.Context, path string) (*fingerprint.Record, error) {
	rec, err := fingerprint.File(path)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordScanError("fingerprint")
		}
		return nil, err
	}
	if err := s.store.Upsert(ctx, rec); err != nil {
		if s.metrics != nil {
			s.metrics.RecordScanError("store")
		}
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.RecordFile(rec.Kind.String(), rec.Size)
	}
	return rec, nil
}

func (s *Scanner) scanFile(ctx context.Context, path string, summary *ScanSummary, mu *sync.Mutex) {
	rec, err := fingerprint.File(path)
	if err != nil {
		s.logger.Warn("fingerprint failed", "path", path, "error", err)
		if s.metrics != nil {
			s.metrics.RecordScanError("fingerprint")
		}
		mu.Lock()
		summary.Errors++
		mu.Unlock()
		return
	}

	if err := s.store.Upsert(ctx, rec); err != nil {
		s.logger.Warn("store upsert failed", "path", path, "error", err)
		if s.metrics != nil {
			s.metrics.RecordScanError("store")
		}
		mu.Lock()
		summary.Errors++
		mu.Unlock()
		return
	}

	if s.metrics != nil {
		s.metrics.RecordFile(rec.Kind.String(), rec.Size)
	}

	mu.Lock()
	summary.Files++
	summary.Bytes += rec.Size
	summary.ByKind[rec.Kind]++
	mu.Unlock()
}

// shouldSkip applies the walk rules to a regular file.
func (s *Scanner) shouldSkip(path string, d fs.DirEntry) (bool, string) {
	if s.config.SkipHidden && isHidden(d.Name()) {
		return true, "hidden"
	}
	if len(s.config.Extensions) > 0 && !s.hasValidExtension(path) {
		return true, "extension"
	}
	if s.config.MaxFileSize > 0 {
		info, err := d.Info()
		if err != nil {
			return true, "stat"
		}
		if info.Size() > s.config.MaxFileSize {
			return true, "size"
		}
	}
	return false, ""
}

func (s *Scanner) hasValidExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, validExt := range s.config.Extensions {
		if ext == strings.ToLower(validExt) {
			return true
		}
	}
	return false
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
