// Package metrics exposes configuration load statistics as Prometheus metrics.
//
// Metrics implements loader.Observer; pass it with loader.WithObserver.
package metrics
