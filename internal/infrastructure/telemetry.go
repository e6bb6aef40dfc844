package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.28.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/ShwetaPawar0705/IRIS/internal/config"
)

const (
	// ServiceName is reported as service.name
	ServiceName = "iris"
	// MeterName scopes the tracer and meter
	MeterName = "iris"
)

// OTelConfig selects which signals are exported
type OTelConfig struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	// TraceExporter is config.TraceExporterStdout or config.TraceExporterNone
	TraceExporter string
	EnableMetrics bool
	EnableTracing bool
	SampleRatio   float64
}

// OTelProviders bundles what InitializeOTel set up. A disabled signal leaves
// its provider nil and Tracer or Meter falls back to a no-op.
type OTelProviders struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
	Tracer         trace.Tracer
	Meter          metric.Meter
	// PrometheusHTTP serves /metrics; nil when metrics are off
	PrometheusHTTP http.Handler
	Logger         *slog.Logger
}

// OTelConfigFrom maps the telemetry section of the application config
func OTelConfigFrom(cfg config.TelemetryConfig) *OTelConfig {
	return &OTelConfig{
		ServiceName:    ServiceName,
		ServiceVersion: config.AppVersion,
		Environment:    cfg.Environment,
		TraceExporter:  cfg.TraceExporter,
		EnableMetrics:  cfg.EnableMetrics,
		EnableTracing:  cfg.EnableTracing,
		SampleRatio:    cfg.SampleRatio,
	}
}

// InitializeOTel builds the tracer and meter providers described by cfg and
// installs them, with W3C trace context propagation, as the otel globals
func InitializeOTel(cfg *OTelConfig, logger *slog.Logger) (*OTelProviders, error) {
	if cfg == nil {
		cfg = OTelConfigFrom(config.Default().Telemetry)
	}
	logger = WithComponent(logger, "telemetry")

	res := resource.NewWithAttributes(semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
		semconv.DeploymentEnvironmentName(cfg.Environment),
		semconv.ServiceInstanceID(instanceID()),
	)

	p := &OTelProviders{
		Tracer: otel.Tracer(MeterName),
		Meter:  noop.NewMeterProvider().Meter(MeterName),
		Logger: logger,
	}

	if cfg.EnableTracing {
		tp, err := newTracerProvider(cfg, res)
		if err != nil {
			return nil, fmt.Errorf("tracing: %w", err)
		}
		if tp != nil {
			p.TracerProvider = tp
			p.Tracer = tp.Tracer(MeterName, trace.WithInstrumentationVersion(cfg.ServiceVersion))
			otel.SetTracerProvider(tp)
		}
	}

	if cfg.EnableMetrics {
		mp, handler, err := newMeterProvider(res)
		if err != nil {
			return nil, fmt.Errorf("metrics: %w", err)
		}
		p.MeterProvider = mp
		p.Meter = mp.Meter(MeterName, metric.WithInstrumentationVersion(cfg.ServiceVersion))
		p.PrometheusHTTP = handler
		otel.SetMeterProvider(mp)
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{}))

	logger.Info("telemetry ready",
		slog.String("environment", cfg.Environment),
		slog.Bool("tracing", p.TracerProvider != nil),
		slog.Bool("metrics", p.MeterProvider != nil))

	return p, nil
}

// newTracerProvider returns nil, nil for the "none" exporter
func newTracerProvider(cfg *OTelConfig, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	switch cfg.TraceExporter {
	case config.TraceExporterNone, "":
		return nil, nil
	case config.TraceExporterStdout:
	default:
		return nil, fmt.Errorf("unsupported trace exporter %q", cfg.TraceExporter)
	}

	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	), nil
}

// newMeterProvider exports through Prometheus on a private registry, so
// tests can initialise telemetry more than once per process
func newMeterProvider(res *resource.Resource) (*sdkmetric.MeterProvider, http.Handler, error) {
	registry := promclient.NewRegistry()
	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return nil, nil, err
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithResource(res), sdkmetric.WithReader(exporter))
	return mp, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), nil
}

// Shutdown flushes pending spans and stops both providers
func (p *OTelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if p.TracerProvider != nil {
		errs = append(errs, p.TracerProvider.Shutdown(ctx))
	}
	if p.MeterProvider != nil {
		errs = append(errs, p.MeterProvider.Shutdown(ctx))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("telemetry shutdown: %w", err)
	}
	p.Logger.DebugContext(ctx, "telemetry stopped")
	return nil
}

func instanceID() string {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return host + "-" + strconv.Itoa(os.Getpid())
}

// TraceIDFromContext returns the hex trace id of the span in ctx, or ""
func TraceIDFromContext(ctx context.Context) string {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		return sc.TraceID().String()
	}
	return ""
}

// RecordError marks the span in ctx as failed with err
func RecordError(ctx context.Context, err error, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if err == nil || !span.IsRecording() {
		return
	}
	span.RecordError(err, trace.WithAttributes(attrs...))
	span.SetStatus(codes.Error, err.Error())
}
