// Package metrics exposes Prometheus metrics for the schema engine.
//
// The reconcile engine reports entity outcomes and operation timings through
// RecordEntity and RecordOperation, bulk sync reports documents through
// RecordSyncDocument. Handler mounts the registry on the Fiber app at /metrics.
package metrics
