package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/cidr-viewer/internal/config"
	"github.com/MKhiriev/cidr-viewer/internal/logger"
	"github.com/MKhiriev/cidr-viewer/internal/service"
	"github.com/MKhiriev/cidr-viewer/models"
	"github.com/stretchr/testify/require"
)

// stubAppInfoService implements service.AppInfoService for tests that do not
// need call expectations.
type stubAppInfoService struct {
	version string
}

func (s *stubAppInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}

func (s *stubAppInfoService) GetAppInfo(_ context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo(s.version, "N/A", "N/A")
}

func testServerConfig() config.Server {
	return config.Server{
		HTTPAddress:      ":8080",
		PublicAPIBaseURL: "http://api.example.test/api",
		PublicAPITimeout: 15 * time.Second,
	}
}

// newRealHandler wires the handler to the real CIDR services.
func newRealHandler(t *testing.T) *Handler {
	t.Helper()

	var cfg config.StructuredConfig
	cfg.Analysis.MaxCIDRs = 5
	cfg.Analysis.MaxComparisons = 100

	services, err := service.NewServices(cfg, models.NewAppBuildInfo("1.0.0", "N/A", "N/A"), logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, testServerConfig(), logger.Nop())
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func newPreflight(method, path string) *http.Request {
	req := httptest.NewRequest(http.MethodOptions, path, nil)
	req.Header.Set("Origin", "http://ui.example.test")
	req.Header.Set("Access-Control-Request-Method", method)
	return req
}

func serve(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}
