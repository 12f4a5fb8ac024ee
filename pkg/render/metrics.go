package render

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the Prometheus collectors of a Renderer.
type metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderBytes    *prometheus.HistogramVec
	renderDuration *prometheus.HistogramVec
}

func newMetrics(config Config) (*metrics, error) {
	rendersTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   config.Namespace,
		Subsystem:   config.Subsystem,
		Name:        "renders_total",
		Help:        "Total number of renders by name and status",
		ConstLabels: config.ConstLabels,
	}, []string{"name", "status"})

	renderBytes := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   config.Namespace,
		Subsystem:   config.Subsystem,
		Name:        "render_bytes",
		Help:        "Size of rendered output in bytes",
		ConstLabels: config.ConstLabels,
		Buckets:     prometheus.ExponentialBuckets(64, 4, 8), // 64B to 1MB
	}, []string{"name"})

	renderDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   config.Namespace,
		Subsystem:   config.Subsystem,
		Name:        "render_duration_seconds",
		Help:        "Render duration in seconds",
		ConstLabels: config.ConstLabels,
		Buckets:     config.Buckets,
	}, []string{"name"})

	if config.Registerer == nil {
		return &metrics{rendersTotal, renderBytes, renderDuration}, nil
	}

	var err error
	if rendersTotal, err = register(config.Registerer, rendersTotal); err != nil {
		return nil, err
	}
	if renderBytes, err = register(config.Registerer, renderBytes); err != nil {
		return nil, err
	}
	if renderDuration, err = register(config.Registerer, renderDuration); err != nil {
		return nil, err
	}
	return &metrics{rendersTotal, renderBytes, renderDuration}, nil
}

// register adds c to reg, returning the already registered collector when
// an identical one exists.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *metrics) observe(name string, bytes int64, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.rendersTotal.WithLabelValues(name, status).Inc()
	m.renderDuration.WithLabelValues(name).Observe(elapsed.Seconds())
	if err == nil {
		m.renderBytes.WithLabelValues(name).Observe(float64(bytes))
	}
}
