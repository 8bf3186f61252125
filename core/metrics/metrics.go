package metrics

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the schema engine.
type Metrics struct {
	registry *prometheus.Registry

	// Reconcile outcomes per entity kind (created, updated, unchanged, removed, linked)
	EntitiesTotal *prometheus.CounterVec

	// Engine operations
	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec

	// Bulk sync
	SyncDocumentsTotal *prometheus.CounterVec
}

// New creates the collectors on a dedicated registry, alongside the Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		EntitiesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "schema_engine_entities_total",
				Help: "Entities processed by the reconcile engine, by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		OperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "schema_engine_operations_total",
				Help: "Reconcile engine operations, by operation and status",
			},
			[]string{"operation", "status"},
		),
		OperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "schema_engine_operation_duration_seconds",
				Help:    "Duration of reconcile engine operations in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"operation"},
		),
		SyncDocumentsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "schema_engine_sync_documents_total",
				Help: "Schema documents processed by bulk sync, by status",
			},
			[]string{"status"},
		),
	}
}

// RecordEntity counts one entity outcome.
func (m *Metrics) RecordEntity(kind, outcome string) {
	m.EntitiesTotal.WithLabelValues(kind, outcome).Inc()
}

// RecordOperation counts an engine operation and observes its duration.
func (m *Metrics) RecordOperation(operation string, err error, elapsed time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.OperationsTotal.WithLabelValues(operation, status).Inc()
	m.OperationDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// RecordSyncDocument counts a bulk sync document by status (synced, failed, skipped).
func (m *Metrics) RecordSyncDocument(status string) {
	m.SyncDocumentsTotal.WithLabelValues(status).Inc()
}

// Registry returns the registry backing the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
