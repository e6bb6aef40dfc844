package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/ShwetaPawar0705/IRIS/internal/infrastructure"
)

// HealthStatus is the liveness response
type HealthStatus struct {
	Status               string `json:"status"`
	ProcessorInitialized bool   `json:"processor_initialized"`
}

// HealthService reports liveness and whether the workbook was loaded
type HealthService struct {
	tables    *TableService
	startTime time.Time
	logger    *slog.Logger
}

// NewHealthService creates a health service reporting on tableService
func NewHealthService(tableService *TableService, logger *slog.Logger) *HealthService {
	return &HealthService{
		tables:    tableService,
		startTime: time.Now(),
		logger:    infrastructure.WithComponent(logger, "health_service"),
	}
}

// HealthCheck always reports healthy while the process serves requests;
// processor_initialized tells whether queries can succeed
func (hs *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:               "healthy",
		ProcessorInitialized: hs.tables != nil && hs.tables.Initialized(),
	}

	hs.logger.DebugContext(ctx, "health check",
		slog.Bool("processor_initialized", status.ProcessorInitialized),
		slog.Duration("uptime", time.Since(hs.startTime)))

	return status
}

// Uptime is the time since the service was created
func (hs *HealthService) Uptime() time.Duration {
	return time.Since(hs.startTime)
}
