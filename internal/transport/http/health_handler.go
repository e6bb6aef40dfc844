package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/ShwetaPawar0705/IRIS/internal/config"
	"github.com/ShwetaPawar0705/IRIS/internal/infrastructure"
)

// HealthHandler handles health-related HTTP requests
type HealthHandler struct {
	service HealthServiceInterface
	logger  *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(service HealthServiceInterface, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		service: service,
		logger:  infrastructure.WithComponent(logger, "health_handler"),
	}
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.service.HealthCheck(r.Context()))
}

// ServiceInfo describes the API and its query endpoints
type ServiceInfo struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Info handles GET /
func (h *HealthHandler) Info(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, ServiceInfo{
		Message: "Excel Processing API",
		Version: config.AppVersion,
		Endpoints: map[string]string{
			"list_tables":       config.ListTablesEndpoint,
			"get_table_details": config.TableDetailsEndpoint + "?table_name=<table_name>",
			"row_sum":           config.RowSumEndpoint + "?table_name=<table_name>&row_name=<row_name>",
		},
	})
}
