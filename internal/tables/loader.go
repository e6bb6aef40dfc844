package tables

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/ShwetaPawar0705/IRIS/internal/sheets"
)

const tracerName = "iris.tables"

// LoadOptions controls Load
type LoadOptions struct {
	Sheets   []string
	Detector HeaderDetector
	Logger   *slog.Logger
}

// LoadOption mutates LoadOptions
type LoadOption func(*LoadOptions)

// OnlySheets restricts segmentation to the named sheets
func OnlySheets(names ...string) LoadOption {
	return func(o *LoadOptions) {
		o.Sheets = append(o.Sheets, names...)
	}
}

// UsingDetector overrides the header heuristic
func UsingDetector(d HeaderDetector) LoadOption {
	return func(o *LoadOptions) {
		o.Detector = d
	}
}

// LoadLogger sets the logger for decoding and segmentation
func LoadLogger(logger *slog.Logger) LoadOption {
	return func(o *LoadOptions) {
		o.Logger = logger
	}
}

// Load decodes the workbook at path and segments every sheet into a frozen
// registry. Any failure to read the file is a *LoadError matching
// ErrResourceUnavailable; no partial registry is returned.
func Load(ctx context.Context, path string, opts ...LoadOption) (*Registry, error) {
	o := LoadOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	logger := o.Logger.With(slog.String("component", "table_loader"))

	ctx, span := otel.Tracer(tracerName).Start(ctx, "tables.load",
		trace.WithAttributes(attribute.String("workbook.path", path)))
	defer span.End()

	start := time.Now()
	wb, err := sheets.Open(path, sheets.WithSheets(o.Sheets...), sheets.WithLogger(o.Logger))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "workbook unavailable")
		return nil, &LoadError{Path: path, Err: err}
	}

	seg := NewSegmenter(WithHeaderDetector(o.Detector), WithSegmenterLogger(o.Logger))
	reg, err := Build(ctx, wb, seg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "segmentation failed")
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("workbook.sheets", reg.SheetCount()),
		attribute.Int("workbook.tables", reg.Len()),
	)
	logger.InfoContext(ctx, "workbook loaded",
		slog.String("path", path),
		slog.Int("sheets", reg.SheetCount()),
		slog.Int("tables", reg.Len()),
		slog.Duration("duration", time.Since(start)))

	return reg, nil
}

// Build segments the sheets of wb concurrently and merges the results in
// workbook order, so a name found on a later sheet replaces the table of an
// earlier sheet while keeping the earlier position.
func Build(ctx context.Context, wb *sheets.Workbook, seg *Segmenter) (*Registry, error) {
	if seg == nil {
		seg = NewSegmenter()
	}

	results := make([][]*Table, len(wb.Sheets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range wb.Sheets {
		g.Go(func() (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					err = internalError("segmenting sheet %q: %v", wb.Sheets[i].Name, rec)
				}
			}()
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = seg.Segment(wb.Sheets[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("build registry from %s: %w", wb.Path, err)
	}

	b := newRegistryBuilder(wb.Path)
	for _, found := range results {
		for _, t := range found {
			b.put(t)
		}
	}
	return b.build(len(wb.Sheets)), nil
}
