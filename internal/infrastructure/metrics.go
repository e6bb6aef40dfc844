package infrastructure

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// BusinessMetrics holds the HTTP and table engine instruments
type BusinessMetrics struct {
	HTTPRequestsTotal   metric.Int64Counter
	HTTPRequestDuration metric.Float64Histogram
	HTTPActiveRequests  metric.Int64UpDownCounter

	WorkbookLoadDuration     metric.Float64Histogram
	WorkbookTablesDiscovered metric.Int64Gauge

	TableQueriesTotal metric.Int64Counter
}

// instruments creates instruments on one meter and keeps the first error
type instruments struct {
	meter metric.Meter
	err   error
}

func (in *instruments) keep(err error) {
	if in.err == nil {
		in.err = err
	}
}

func (in *instruments) counter(name, desc string) metric.Int64Counter {
	c, err := in.meter.Int64Counter(name, metric.WithDescription(desc))
	in.keep(err)
	return c
}

func (in *instruments) upDown(name, desc string) metric.Int64UpDownCounter {
	c, err := in.meter.Int64UpDownCounter(name, metric.WithDescription(desc))
	in.keep(err)
	return c
}

func (in *instruments) seconds(name, desc string) metric.Float64Histogram {
	h, err := in.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	in.keep(err)
	return h
}

func (in *instruments) gauge(name, desc string) metric.Int64Gauge {
	g, err := in.meter.Int64Gauge(name, metric.WithDescription(desc))
	in.keep(err)
	return g
}

// CreateBusinessMetrics registers the service instruments on meter
func CreateBusinessMetrics(meter metric.Meter) (*BusinessMetrics, error) {
	in := &instruments{meter: meter}
	m := &BusinessMetrics{
		HTTPRequestsTotal:        in.counter("http_requests_total", "HTTP requests by method, route and status"),
		HTTPRequestDuration:      in.seconds("http_request_duration_seconds", "HTTP request latency"),
		HTTPActiveRequests:       in.upDown("http_active_requests", "Requests currently being served"),
		WorkbookLoadDuration:     in.seconds("workbook_load_duration_seconds", "Time spent decoding and segmenting the workbook"),
		WorkbookTablesDiscovered: in.gauge("workbook_tables_discovered", "Tables in the loaded registry"),
		TableQueriesTotal:        in.counter("table_queries_total", "Table queries by operation and outcome"),
	}
	if in.err != nil {
		return nil, in.err
	}
	return m, nil
}

// RecordWorkbookLoad records how long a load took and, when it succeeded,
// how many tables it produced
func RecordWorkbookLoad(ctx context.Context, m *BusinessMetrics, path string, took time.Duration, tables int, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "failure"
	}
	pathAttr := attribute.String("workbook.path", path)
	m.WorkbookLoadDuration.Record(ctx, took.Seconds(),
		metric.WithAttributes(pathAttr, attribute.String("status", status)))
	if err == nil {
		m.WorkbookTablesDiscovered.Record(ctx, int64(tables), metric.WithAttributes(pathAttr))
	}
}

// RecordTableQuery counts one table query
func RecordTableQuery(ctx context.Context, m *BusinessMetrics, operation, outcome string) {
	if m == nil {
		return
	}
	m.TableQueriesTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome)))
}
