// Package metrics exposes Prometheus metrics for imprint.
//
// The Collector owns a private registry and registers the scan and watch
// metrics on it:
//
//   - imprint_files_scanned_total{kind} — files fingerprinted, by content kind
//   - imprint_bytes_hashed_total — bytes fed through SHA-256
//   - imprint_scan_duration_seconds — full-scan duration histogram
//   - imprint_scan_errors_total{reason} — per-file scan failures
//   - imprint_watch_events_total{op} — accepted filesystem events
//
// Handler serves the registry in Prometheus exposition format for the
// watch command's metrics endpoint.
package metrics
