package infrastructure

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// SystemMetrics observes Go runtime and process state on every collection
type SystemMetrics struct {
	startTime    time.Time
	registration metric.Registration
}

// RegisterSystemMetrics registers runtime gauges on meter. The values are
// read from the runtime when the meter is collected, not on a timer.
func RegisterSystemMetrics(meter metric.Meter, startTime time.Time) (*SystemMetrics, error) {
	goRoutines, err := meter.Int64ObservableGauge(
		"system_goroutines",
		metric.WithDescription("Number of active goroutines"),
	)
	if err != nil {
		return nil, fmt.Errorf("system_goroutines: %w", err)
	}

	heapAlloc, err := meter.Int64ObservableGauge(
		"system_memory_usage_bytes",
		metric.WithDescription("Heap bytes allocated and in use"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, fmt.Errorf("system_memory_usage_bytes: %w", err)
	}

	memorySystem, err := meter.Int64ObservableGauge(
		"system_memory_system_bytes",
		metric.WithDescription("Memory obtained from the OS in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, fmt.Errorf("system_memory_system_bytes: %w", err)
	}

	gcCount, err := meter.Int64ObservableCounter(
		"system_gc_count_total",
		metric.WithDescription("Total number of garbage collections"),
	)
	if err != nil {
		return nil, fmt.Errorf("system_gc_count_total: %w", err)
	}

	uptime, err := meter.Float64ObservableGauge(
		"system_process_uptime_seconds",
		metric.WithDescription("Process uptime in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("system_process_uptime_seconds: %w", err)
	}

	sm := &SystemMetrics{startTime: startTime}
	sm.registration, err = meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		o.ObserveInt64(goRoutines, int64(runtime.NumGoroutine()))
		o.ObserveInt64(heapAlloc, int64(memStats.HeapAlloc))
		o.ObserveInt64(memorySystem, int64(memStats.Sys))
		o.ObserveInt64(gcCount, int64(memStats.NumGC))
		o.ObserveFloat64(uptime, time.Since(sm.startTime).Seconds())
		return nil
	}, goRoutines, heapAlloc, memorySystem, gcCount, uptime)
	if err != nil {
		return nil, fmt.Errorf("failed to register system metrics callback: %w", err)
	}

	return sm, nil
}

// Unregister stops observing the runtime
func (sm *SystemMetrics) Unregister() error {
	if sm == nil || sm.registration == nil {
		return nil
	}
	return sm.registration.Unregister()
}
