package service

import (
	"fmt"

	"github.com/MKhiriev/cidr-viewer/internal/config"
	"github.com/MKhiriev/cidr-viewer/internal/logger"
	"github.com/MKhiriev/cidr-viewer/models"
)

type Services struct {
	CIDRService    CIDRService
	AppInfoService AppInfoService
}

// NewServices wires the server services. The CIDR service is wrapped by the
// request validator configured from cfg.Analysis.
func NewServices(cfg config.StructuredConfig, info models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	validation, err := NewCIDRValidationService(cfg.Analysis.MaxCIDRs)
	if err != nil {
		return nil, fmt.Errorf("error creating CIDR validation service: %w", err)
	}

	appInfo, err := NewAppInfoService(info, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		CIDRService:    validation.Wrap(NewCIDRService(cfg.Analysis.MaxComparisons, logger)),
		AppInfoService: appInfo,
	}, nil
}
