package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/ShwetaPawar0705/IRIS/internal/config"
	apierrors "github.com/ShwetaPawar0705/IRIS/internal/errors"
	"github.com/ShwetaPawar0705/IRIS/internal/infrastructure"
	"github.com/ShwetaPawar0705/IRIS/internal/middleware"
)

// tableDetailsQuery is the query string of GET /get_table_details
type tableDetailsQuery struct {
	TableName *string `form:"table_name" validate:"required"`
}

// rowSumQuery is the query string of GET /row_sum
type rowSumQuery struct {
	TableName *string `form:"table_name" validate:"required"`
	RowName   *string `form:"row_name" validate:"required"`
}

// TableHandler handles the table query endpoints with RFC 7807 errors
type TableHandler struct {
	service      TableServiceInterface
	validator    *middleware.QueryValidator
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewTableHandler creates a new table handler
func NewTableHandler(service TableServiceInterface, validator *middleware.QueryValidator, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *TableHandler {
	return &TableHandler{
		service:      service,
		validator:    validator,
		logger:       infrastructure.WithComponent(logger, "table_handler"),
		errorHandler: errorHandler,
	}
}

// Register mounts the table routes on r
func (h *TableHandler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Get(config.ListTablesEndpoint, h.ListTables)
		r.Get(config.TableDetailsEndpoint, h.GetTableDetails)
		r.Get(config.RowSumEndpoint, h.RowSum)
	})
}

// ListTables handles GET /list_tables
func (h *TableHandler) ListTables(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListTables(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, list)
}

// GetTableDetails handles GET /get_table_details?table_name=
func (h *TableHandler) GetTableDetails(w http.ResponseWriter, r *http.Request) {
	var q tableDetailsQuery
	if err := h.validator.BindQuery(r, &q); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	details, err := h.service.TableDetails(r.Context(), *q.TableName)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, details)
}

// RowSum handles GET /row_sum?table_name=&row_name=
func (h *TableHandler) RowSum(w http.ResponseWriter, r *http.Request) {
	var q rowSumQuery
	if err := h.validator.BindQuery(r, &q); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	sum, err := h.service.RowSum(r.Context(), *q.TableName, *q.RowName)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	h.logger.DebugContext(r.Context(), "row summed",
		slog.String("table", sum.TableName),
		slog.String("row", sum.RowName),
		slog.Float64("sum", sum.Sum))
	render.JSON(w, r, sum)
}
