package metrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/0xalexb/hjarta-config/loader"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "hjarta_config"

// Load outcomes used as the "result" label.
const (
	ResultSuccess              = "success"
	ResultNoConfiguration      = "no_configuration"
	ResultExtensionRequired    = "extension_required"
	ResultUnsupportedExtension = "unsupported_extension"
	ResultIO                   = "io"
	ResultParse                = "parse"
	ResultCanceled             = "canceled"
	ResultError                = "error"
)

// Metrics holds the loader metrics.
type Metrics struct {
	FilesLoaded  *prometheus.CounterVec
	Loads        *prometheus.CounterVec
	LoadDuration prometheus.Histogram
}

// New creates the loader metrics and registers them with registerer.
func New(registerer prometheus.Registerer) (*Metrics, error) {
	metrics := &Metrics{
		FilesLoaded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "loader",
				Name:      "files_loaded_total",
				Help:      "Total number of configuration files parsed and merged",
			},
			[]string{"extension"},
		),
		Loads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "loader",
				Name:      "loads_total",
				Help:      "Total number of load calls by result",
			},
			[]string{"result"},
		),
		LoadDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Subsystem: "loader",
				Name:      "load_duration_seconds",
				Help:      "Duration of load calls",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
			},
		),
	}

	for _, collector := range []prometheus.Collector{metrics.FilesLoaded, metrics.Loads, metrics.LoadDuration} {
		err := registerer.Register(collector)
		if err != nil {
			return nil, fmt.Errorf("registering loader metrics: %w", err)
		}
	}

	return metrics, nil
}

// FileLoaded counts a merged file.
func (m *Metrics) FileLoaded(_, ext string) {
	m.FilesLoaded.WithLabelValues(ext).Inc()
}

// LoadFinished records the outcome and duration of a load call.
func (m *Metrics) LoadFinished(elapsed time.Duration, err error) {
	m.Loads.WithLabelValues(Result(err)).Inc()
	m.LoadDuration.Observe(elapsed.Seconds())
}

// Result maps a load error to its "result" label value.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, loader.ErrNoConfigurationFound):
		return ResultNoConfiguration
	case errors.Is(err, loader.ErrExtensionRequired):
		return ResultExtensionRequired
	case errors.Is(err, loader.ErrUnsupportedExtension):
		return ResultUnsupportedExtension
	case errors.Is(err, loader.ErrIO):
		return ResultIO
	case errors.Is(err, loader.ErrParse):
		return ResultParse
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ResultCanceled
	default:
		return ResultError
	}
}
