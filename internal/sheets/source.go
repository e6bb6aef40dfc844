package sheets

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Format is the container format of a workbook file
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
	FormatCSV  Format = "csv"
)

// Decoder converts one workbook file into named sheet grids
type Decoder interface {
	Decode(path string) ([]Sheet, error)
}

// DecoderFunc adapts a function to Decoder
type DecoderFunc func(path string) ([]Sheet, error)

// Decode calls f(path)
func (f DecoderFunc) Decode(path string) ([]Sheet, error) {
	return f(path)
}

// Options controls how a workbook is opened
type Options struct {
	// Sheets restricts decoding to the named sheets; empty means all
	Sheets []string
	Logger *slog.Logger
}

// Option mutates Options
type Option func(*Options)

// WithSheets keeps only the named sheets
func WithSheets(names ...string) Option {
	return func(o *Options) {
		o.Sheets = append(o.Sheets, names...)
	}
}

// WithLogger sets the logger used while decoding
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

var decoders = map[Format]Decoder{
	FormatXLSX: DecoderFunc(decodeXLSX),
	FormatXLS:  DecoderFunc(decodeXLS),
	FormatCSV:  DecoderFunc(decodeCSV),
}

// DetectFormat maps a file extension to a Format
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return FormatXLSX, nil
	case ".xls":
		return FormatXLS, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Open decodes the workbook at path into sheet grids in workbook order
func Open(path string, opts ...Option) (*Workbook, error) {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	logger := o.Logger.With(slog.String("component", "sheet_source"), slog.String("path", path))

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("stat workbook %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrFileNotFound, path)
	}

	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	sheets, err := decoders[format].Decode(path)
	if err != nil {
		return nil, err
	}

	if len(o.Sheets) > 0 {
		sheets = slices.DeleteFunc(sheets, func(s Sheet) bool {
			return !slices.Contains(o.Sheets, s.Name)
		})
	}

	for _, s := range sheets {
		if s.Unreadable > 0 {
			logger.Warn("cells without a readable value treated as empty",
				slog.String("sheet", s.Name),
				slog.Int("cells", s.Unreadable))
		}
	}

	logger.Info("workbook decoded",
		slog.String("format", string(format)),
		slog.Int("sheets", len(sheets)),
		slog.Int64("size_bytes", info.Size()))

	return &Workbook{Path: path, Format: format, Sheets: sheets}, nil
}
