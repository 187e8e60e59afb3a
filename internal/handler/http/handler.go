package http

import (
	"github.com/MKhiriev/cidr-viewer/internal/config"
	"github.com/MKhiriev/cidr-viewer/internal/logger"
	"github.com/MKhiriev/cidr-viewer/internal/service"
	"github.com/MKhiriev/cidr-viewer/internal/utils"
	"github.com/MKhiriev/cidr-viewer/models"
)

type Handler struct {
	services *service.Services

	// appConfig is the document published at /app-config.json.
	appConfig models.AppConfigDocument

	metrics  *requestMetrics
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		appConfig: models.AppConfigDocument{
			APIBaseURL: cfg.PublicAPIBaseURL,
			APITimeout: cfg.PublicAPITimeout.Milliseconds(),
		},
		metrics:  newRequestMetrics(),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
