package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ShwetaPawar0705/IRIS/internal/infrastructure"
	"github.com/ShwetaPawar0705/IRIS/internal/tables"
)

// Query operations as reported in metrics and spans
const (
	OpListTables   = "list_tables"
	OpTableDetails = "get_table_details"
	OpRowSum       = "row_sum"
)

// TableStore is the read side of a loaded table registry
type TableStore interface {
	Names() []string
	ListRowLabels(table string) ([]string, error)
	SumRow(table, row string) (float64, error)
}

// TableList is the response of a table listing
type TableList struct {
	Tables []string `json:"tables"`
}

// TableDetails lists the row labels of one table
type TableDetails struct {
	TableName string   `json:"table_name"`
	RowNames  []string `json:"row_names"`
}

// RowSum is the sum of the numeric cells of one row
type RowSum struct {
	TableName string  `json:"table_name"`
	RowName   string  `json:"row_name"`
	Sum       float64 `json:"sum"`
}

// TableService answers table queries against the registry loaded at startup.
// A service built without a store reports tables.ErrServiceUnavailable for
// every query.
type TableService struct {
	store   TableStore
	metrics *infrastructure.BusinessMetrics
	tracer  trace.Tracer
	logger  *slog.Logger
}

// NewTableService creates a table service. store may be nil when the
// workbook failed to load; metrics may be nil to skip recording.
func NewTableService(store TableStore, metrics *infrastructure.BusinessMetrics, logger *slog.Logger) *TableService {
	if reg, ok := store.(*tables.Registry); ok && reg == nil {
		store = nil
	}
	return &TableService{
		store:   store,
		metrics: metrics,
		tracer:  otel.Tracer(infrastructure.ServiceName),
		logger:  infrastructure.WithComponent(logger, "table_service"),
	}
}

// Initialized reports whether a registry is available
func (s *TableService) Initialized() bool {
	return s.store != nil
}

// ListTables returns every table name in registry order
func (s *TableService) ListTables(ctx context.Context) (*TableList, error) {
	var names []string
	err := s.run(ctx, OpListTables, nil, func(store TableStore) error {
		names = store.Names()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return &TableList{Tables: names}, nil
}

// TableDetails returns the row labels of the named table
func (s *TableService) TableDetails(ctx context.Context, table string) (*TableDetails, error) {
	var labels []string
	err := s.run(ctx, OpTableDetails, []attribute.KeyValue{attribute.String("table.name", table)},
		func(store TableStore) error {
			var err error
			labels, err = store.ListRowLabels(table)
			return err
		})
	if err != nil {
		return nil, err
	}
	return &TableDetails{TableName: table, RowNames: labels}, nil
}

// RowSum sums the numeric cells of the first row labelled row in table
func (s *TableService) RowSum(ctx context.Context, table, row string) (*RowSum, error) {
	var sum float64
	attrs := []attribute.KeyValue{
		attribute.String("table.name", table),
		attribute.String("row.name", row),
	}
	err := s.run(ctx, OpRowSum, attrs, func(store TableStore) error {
		var err error
		sum, err = store.SumRow(table, row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &RowSum{TableName: table, RowName: row, Sum: sum}, nil
}

// run evaluates one query inside a span, converting panics into
// tables.ErrInternal and counting the outcome
func (s *TableService) run(ctx context.Context, op string, attrs []attribute.KeyValue, query func(TableStore) error) (err error) {
	ctx, span := s.tracer.Start(ctx, "tables."+op, trace.WithAttributes(attrs...))
	defer span.End()

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %s: %v", tables.ErrInternal, op, rec)
		}

		outcome := outcomeOf(err)
		infrastructure.RecordTableQuery(ctx, s.metrics, op, outcome)
		span.SetAttributes(attribute.String("query.outcome", outcome))

		switch outcome {
		case "ok":
		case "not_found":
			s.logger.DebugContext(ctx, "lookup missed",
				slog.String("operation", op),
				slog.String("error", err.Error()))
		default:
			infrastructure.RecordError(ctx, err, attribute.String("query.operation", op))
			s.logger.ErrorContext(ctx, "table query failed",
				slog.String("operation", op),
				slog.String("outcome", outcome),
				slog.String("error", err.Error()))
		}
	}()

	if s.store == nil {
		return tables.ErrServiceUnavailable
	}
	return query(s.store)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, tables.ErrNotFound):
		return "not_found"
	case errors.Is(err, tables.ErrServiceUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
