package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"imprint-hq/imprint/pkg/config"
)

// Collector registers and records all imprint metrics. It owns its registry,
// so tests and embedded uses never collide with the global default registry.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	scanMetrics *ScanMetrics
}

// NewCollector creates a metrics collector. If registry is nil a private
// registry is created.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "imprint"
	}

	c := &Collector{
		config:   cfg,
		registry: registry,
	}
	c.scanMetrics = NewScanMetrics(cfg, registry)
	return c
}

// Registry returns the underlying Prometheus registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordFile records one fingerprinted file of the given content kind and
// size.
func (c *Collector) RecordFile(kind string, sizeBytes int64) {
	c.scanMetrics.RecordFile(kind, sizeBytes)
}

// RecordScan records a completed directory scan.
func (c *Collector) RecordScan(durationSeconds float64) {
	c.scanMetrics.RecordScan(durationSeconds)
}

// RecordScanError records a per-file scan failure.
func (c *Collector) RecordScanError(reason string) {
	c.scanMetrics.RecordScanError(reason)
}

// RecordWatchEvent records an accepted filesystem event.
func (c *Collector) RecordWatchEvent(op string) {
	c.scanMetrics.RecordWatchEvent(op)
}
