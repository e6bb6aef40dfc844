package infrastructure

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/ShwetaPawar0705/IRIS/internal/config"
)

// requestIDKey carries the request id through a context
type requestIDKey struct{}

// logState is the process-wide logger installed by InitializeLogger
var logState struct {
	sync.Mutex
	logger *slog.Logger
	file   *os.File
}

// InitializeLogger builds the process logger from cfg and installs it as the
// slog default. Once a logger is installed later calls return it unchanged.
func InitializeLogger(cfg config.LoggingConfig) (*slog.Logger, error) {
	logState.Lock()
	defer logState.Unlock()

	if logState.logger != nil {
		return logState.logger, nil
	}

	w, file, err := logDestination(cfg)
	if err != nil {
		return slog.Default(), err
	}
	logState.file = file
	logState.logger = NewLogger(cfg, w)
	slog.SetDefault(logState.logger)
	return logState.logger, nil
}

// GetLogger returns the installed logger, or slog.Default before
// InitializeLogger has run
func GetLogger() *slog.Logger {
	logState.Lock()
	defer logState.Unlock()
	if logState.logger == nil {
		return slog.Default()
	}
	return logState.logger
}

// NewLogger returns a JSON logger on w. Records logged with a context carry
// the request id and, inside a sampled span, the OpenTelemetry trace id.
func NewLogger(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	level := parseLogLevel(cfg.Level)
	return slog.New(contextHandler{slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	})})
}

// WithComponent tags logger with the subsystem that owns it
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = GetLogger()
	}
	return logger.With(slog.String("component", component))
}

type contextHandler struct {
	slog.Handler
}

func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := GetTraceID(ctx); id != "" {
		r.AddAttrs(slog.String("trace_id", id))
	}
	if id := TraceIDFromContext(ctx); id != "" {
		r.AddAttrs(slog.String("otel_trace_id", id))
	}
	return h.Handler.Handle(ctx, r)
}

func (h contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return contextHandler{h.Handler.WithAttrs(attrs)}
}

func (h contextHandler) WithGroup(name string) slog.Handler {
	return contextHandler{h.Handler.WithGroup(name)}
}

func parseLogLevel(level string) slog.Level {
	if strings.EqualFold(level, "warning") {
		return slog.LevelWarn
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// logDestination opens the writer named by cfg.Output. The returned file,
// if any, is closed by CloseLogFile.
func logDestination(cfg config.LoggingConfig) (io.Writer, *os.File, error) {
	output := strings.ToLower(cfg.Output)
	if output != "file" && output != "both" {
		return os.Stdout, nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory for %s: %w", cfg.FilePath, err)
	}
	file, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	if output == "both" {
		return io.MultiWriter(os.Stdout, file), file, nil
	}
	return file, file, nil
}

// CloseLogFile closes the log file opened by InitializeLogger, if any
func CloseLogFile() error {
	logState.Lock()
	defer logState.Unlock()

	if logState.file == nil {
		return nil
	}
	err := logState.file.Close()
	logState.file = nil
	return err
}

// ResetLoggerForTesting forgets the installed logger so tests can install
// another one
func ResetLoggerForTesting() {
	_ = CloseLogFile()
	logState.Lock()
	logState.logger = nil
	logState.Unlock()
}

// WithTraceID stores a request id in ctx
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, traceID)
}

// GetTraceID returns the request id stored in ctx, or ""
func GetTraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// EnsureTraceID returns ctx unchanged when it already carries a request id
// and otherwise a child holding a fresh UUID
func EnsureTraceID(ctx context.Context) context.Context {
	if GetTraceID(ctx) != "" {
		return ctx
	}
	return WithTraceID(ctx, uuid.NewString())
}
