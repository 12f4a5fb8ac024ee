package render

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer and metrics namespace.
const defaultNamespace = "mirror"

// Config configures a Renderer.
type Config struct {
	// Namespace is the metrics namespace (default: "mirror").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registerer receives the renderer's collectors. A nil Registerer
	// keeps the metrics private to the Renderer.
	// Default: prometheus.DefaultRegisterer
	Registerer prometheus.Registerer

	// TracerProvider creates the tracer. Default: the global provider.
	TracerProvider trace.TracerProvider

	// TracerName is the name of the tracer (default: "mirror").
	TracerName string

	// Logger receives a debug record per render and an error record per
	// failed render. Default: discards everything.
	Logger *slog.Logger
}

// Option configures a Renderer.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the duration histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegisterer sets the Prometheus registerer.
func WithRegisterer(registerer prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registerer = registerer
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(c *Config) {
		c.TracerProvider = provider
	}
}

// WithTracerName sets the tracer name.
func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

func defaultConfig() Config {
	return Config{
		Namespace:  defaultNamespace,
		Buckets:    prometheus.DefBuckets,
		Registerer: prometheus.DefaultRegisterer,
		TracerName: defaultNamespace,
	}
}

// Renderer renders trees for a caller context, recording Prometheus
// metrics, an OpenTelemetry span and a log record per call.
type Renderer struct {
	metrics *metrics
	tracer  trace.Tracer
	logger  *slog.Logger
}

// NewRenderer creates a Renderer. Collectors already registered under the
// same names are reused, so several renderers may share one registry.
func NewRenderer(opts ...Option) (*Renderer, error) {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	m, err := newMetrics(config)
	if err != nil {
		return nil, err
	}

	provider := config.TracerProvider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Renderer{
		metrics: m,
		tracer:  provider.Tracer(config.TracerName),
		logger:  logger,
	}, nil
}

// Render renders r to a string. On failure the partial output is dropped.
func (r *Renderer) Render(ctx context.Context, name string, n Renderable) (string, error) {
	var b strings.Builder
	if err := r.RenderTo(ctx, &b, name, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderTo writes n to w, streaming when n is a Streamer.
// A panicking lazy producer is not recovered.
func (r *Renderer) RenderTo(ctx context.Context, w io.Writer, name string, n Renderable) error {
	if n == nil {
		return errors.New("render: nil renderable")
	}

	ctx, span := r.tracer.Start(ctx, "render "+name,
		trace.WithAttributes(attribute.String("mirror.render.name", name)))
	defer span.End()

	start := time.Now()
	cw := &countingWriter{w: w}

	var err error
	if s, ok := n.(Streamer); ok {
		err = s.RenderTo(cw)
	} else {
		_, err = io.WriteString(cw, n.Render())
	}
	elapsed := time.Since(start)

	span.SetAttributes(attribute.Int64("mirror.render.bytes", cw.n))
	r.metrics.observe(name, cw.n, elapsed, err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.ErrorContext(ctx, "render failed",
			slog.String("name", name),
			slog.Int64("bytes", cw.n),
			slog.Any("error", err))
		return err
	}

	r.logger.DebugContext(ctx, "rendered",
		slog.String("name", name),
		slog.Int64("bytes", cw.n),
		slog.Duration("duration", elapsed))
	return nil
}

// countingWriter counts bytes written through it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
