package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/cidr-viewer/internal/logger"
	"github.com/MKhiriev/cidr-viewer/internal/mock"
	"github.com/MKhiriev/cidr-viewer/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	h := NewHandler(&service.Services{AppInfoService: appInfo}, testServerConfig(), logger.Nop())

	rec := doRequest(t, h.Init(), http.MethodGet, "/api/version", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rec.Body.String())
}

func TestGetServerVersion_Empty(t *testing.T) {
	h := NewHandler(&service.Services{AppInfoService: &stubAppInfoService{}}, testServerConfig(), logger.Nop())

	rec := doRequest(t, h.Init(), http.MethodGet, "/api/version", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
