package infrastructure

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterSystemMetrics(t *testing.T) {
	providers, err := InitializeOTel(&OTelConfig{ServiceName: ServiceName, EnableMetrics: true}, quietLogger())
	require.NoError(t, err)
	defer providers.Shutdown(context.Background())

	sm, err := RegisterSystemMetrics(providers.Meter, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	providers.PrometheusHTTP.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, "system_goroutines")
	assert.Contains(t, body, "system_process_uptime_seconds")

	assert.NoError(t, sm.Unregister())
}

func TestSystemMetrics_NilUnregister(t *testing.T) {
	var sm *SystemMetrics
	assert.NoError(t, sm.Unregister())
}
