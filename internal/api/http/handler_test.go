package apiHttp

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmahub/backend/internal/config"
	"github.com/pharmahub/backend/internal/metrics"
	"github.com/pharmahub/backend/internal/service"
)

func newTestRouter(t *testing.T, reg *prometheus.Registry, origins ...string) (http.Handler, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		HttpServer: config.HttpServer{AllowedOrigins: origins},
		Limiter:    config.Limiter{RPS: 100, Burst: 100, TTL: time.Minute},
		Storage:    config.StorageConfig{Dir: dir},
	}
	return NewHandlers(&service.Services{}, cfg, reg).Init(cfg), dir
}

func TestPing(t *testing.T) {
	router, _ := newTestRouter(t, prometheus.NewRegistry())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.SessionOpened()

	router, _ := newTestRouter(t, reg)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pharmahub_wizard_sessions_opened_total 1")
}

func TestUploadsAreServed(t *testing.T) {
	router, dir := newTestRouter(t, prometheus.NewRegistry())
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "businessLogo"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "businessLogo", "logo.txt"), []byte("logo"), 0o644))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/businessLogo/logo.txt", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "logo", w.Body.String())
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    string
	}{
		{name: "listed origin", allowed: []string{"https://app.pharmahub.com"}, origin: "https://app.pharmahub.com", want: "https://app.pharmahub.com"},
		{name: "other origin", allowed: []string{"https://app.pharmahub.com"}, origin: "https://evil.example", want: ""},
		{name: "wildcard", allowed: []string{"*"}, origin: "https://evil.example", want: "https://evil.example"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t, prometheus.NewRegistry(), tt.allowed...)

			req := httptest.NewRequest(http.MethodOptions, "/api/v1/signup/steps", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
