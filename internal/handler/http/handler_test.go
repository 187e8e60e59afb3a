package http

import (
	"testing"
	"time"

	"github.com/MKhiriev/cidr-viewer/internal/config"
	"github.com/MKhiriev/cidr-viewer/internal/logger"
	"github.com/MKhiriev/cidr-viewer/internal/service"
	"github.com/MKhiriev/cidr-viewer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, testServerConfig(), log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.NotNil(t, h.metrics)
	assert.NotNil(t, h.traceIDs)
	assert.Equal(t, models.AppConfigDocument{
		APIBaseURL: "http://api.example.test/api",
		APITimeout: 15000,
	}, h.appConfig)
}

func TestNewHandler_IndependentMetricRegistries(t *testing.T) {
	h1 := NewHandler(&service.Services{}, config.Server{PublicAPITimeout: time.Second}, logger.Nop())
	h2 := NewHandler(&service.Services{}, config.Server{PublicAPITimeout: time.Second}, logger.Nop())

	assert.NotSame(t, h1.metrics.registry, h2.metrics.registry)
}
