package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/ShwetaPawar0705/IRIS/internal/config"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestInitializeLogger_FileOutput(t *testing.T) {
	ResetLoggerForTesting()
	defer ResetLoggerForTesting()

	logFile := filepath.Join(t.TempDir(), "nested", "iris.log")
	logger, err := InitializeLogger(config.LoggingConfig{
		Level:    "info",
		Output:   "file",
		FilePath: logFile,
	})
	require.NoError(t, err)
	require.NotNil(t, logger)

	logger.Info("workbook loaded", "tables", 3)
	require.NoError(t, CloseLogFile())

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(content, &entry))
	assert.Equal(t, "workbook loaded", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, float64(3), entry["tables"])
}

func TestInitializeLogger_OnlyOnce(t *testing.T) {
	ResetLoggerForTesting()
	defer ResetLoggerForTesting()

	first, err := InitializeLogger(config.LoggingConfig{Level: "info", Output: "console"})
	require.NoError(t, err)
	second, err := InitializeLogger(config.LoggingConfig{Level: "debug", Output: "console"})
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Same(t, first, GetLogger())
}

func TestNewLogger_InjectsTraceID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(config.LoggingConfig{Level: "info"}, &buf)

	ctx := WithTraceID(context.Background(), "trace-123")
	logger.InfoContext(ctx, "with trace")
	logger.With("component", "test").InfoContext(ctx, "derived logger")
	logger.Info("without trace")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 3)
	assert.Equal(t, "trace-123", entries[0]["trace_id"])
	assert.Equal(t, "trace-123", entries[1]["trace_id"])
	assert.Equal(t, "test", entries[1]["component"])
	assert.NotContains(t, entries[2], "trace_id")
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(config.LoggingConfig{Level: "warn"}, &buf)

	logger.Info("dropped")
	logger.Warn("kept")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0]["msg"])
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", "DEBUG"},
		{"INFO", "INFO"},
		{"warning", "WARN"},
		{"error", "ERROR"},
		{"bogus", "INFO"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.in).String())
		})
	}
}

func TestEnsureTraceID(t *testing.T) {
	ctx := EnsureTraceID(context.Background())
	id := GetTraceID(ctx)
	assert.Len(t, id, 36)

	assert.Equal(t, id, GetTraceID(EnsureTraceID(ctx)))
	assert.Empty(t, GetTraceID(context.Background()))
}

func TestNewLogger_AddsSpanTraceID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(config.LoggingConfig{Level: "info"}, &buf)

	tp := sdktrace.NewTracerProvider()
	defer tp.Shutdown(context.Background())

	ctx, span := tp.Tracer("test").Start(WithTraceID(context.Background(), "req-1"), "row_sum")
	logger.InfoContext(ctx, "inside span")
	span.End()
	logger.InfoContext(context.Background(), "outside span")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "req-1", entries[0]["trace_id"])
	assert.Equal(t, span.SpanContext().TraceID().String(), entries[0]["otel_trace_id"])
	assert.NotContains(t, entries[1], "otel_trace_id")
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	WithComponent(NewLogger(config.LoggingConfig{Level: "info"}, &buf), "table_handler").Info("ready")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "table_handler", entries[0]["component"])
}
