package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.28.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/ShwetaPawar0705/IRIS/internal/infrastructure"
)

// OTelMiddleware wraps each request in a server span and feeds the HTTP
// instruments of BusinessMetrics
type OTelMiddleware struct {
	tracer  trace.Tracer
	metrics *infrastructure.BusinessMetrics
}

// NewOTelMiddleware uses metrics when given, otherwise registers a fresh set
// on the providers' meter
func NewOTelMiddleware(providers *infrastructure.OTelProviders, metrics *infrastructure.BusinessMetrics) (*OTelMiddleware, error) {
	if metrics == nil {
		m, err := infrastructure.CreateBusinessMetrics(providers.Meter)
		if err != nil {
			return nil, fmt.Errorf("http metrics: %w", err)
		}
		metrics = m
	}
	return &OTelMiddleware{tracer: providers.Tracer, metrics: metrics}, nil
}

func (m *OTelMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parent := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		ctx, span := m.tracer.Start(parent, r.Method+" "+r.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(requestAttributes(r)...))
		defer span.End()

		m.metrics.HTTPActiveRequests.Add(ctx, 1)
		defer m.metrics.HTTPActiveRequests.Add(ctx, -1)

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r.WithContext(ctx))
		elapsed := time.Since(start)

		// chi fills the route pattern while routing, so read it afterwards
		route := routePattern(r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		labels := metric.WithAttributes(
			attribute.String("method", r.Method),
			attribute.String("route", route),
			attribute.Int("status_code", status))
		m.metrics.HTTPRequestsTotal.Add(ctx, 1, labels)
		m.metrics.HTTPRequestDuration.Record(ctx, elapsed.Seconds(), labels)

		span.SetName(r.Method + " " + route)
		span.SetAttributes(
			semconv.HTTPRouteKey.String(route),
			semconv.HTTPResponseStatusCodeKey.Int(status),
			semconv.HTTPResponseBodySizeKey.Int(ww.BytesWritten()))
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	})
}

func requestAttributes(r *http.Request) []attribute.KeyValue {
	return []attribute.KeyValue{
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.URLPathKey.String(r.URL.Path),
		semconv.ServerAddressKey.String(r.Host),
		semconv.ClientAddressKey.String(r.RemoteAddr),
		semconv.UserAgentOriginalKey.String(r.UserAgent()),
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
