package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cidr-viewer/internal/validators"
	"github.com/MKhiriev/cidr-viewer/models"
)

// CIDRValidationService rejects requests of the wrong shape before they
// reach the wrapped CIDRService.
type CIDRValidationService struct {
	inner     CIDRService
	validator validators.Validator
}

// NewCIDRValidationService returns a wrapper allowing at most maxCIDRs
// strings per analysis.
func NewCIDRValidationService(maxCIDRs int) (CIDRServiceWrapper, error) {
	validator, err := validators.NewCIDRRequestValidator(maxCIDRs)
	if err != nil {
		return nil, fmt.Errorf("error creating CIDR request validator: %w", err)
	}

	return &CIDRValidationService{validator: validator}, nil
}

func (v *CIDRValidationService) Analyze(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AnalysisResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Analyze(ctx, req)
}

func (v *CIDRValidationService) Validate(ctx context.Context, cidr string) (models.CIDRRange, error) {
	if err := v.validator.Validate(ctx, models.ValidationRequest{CIDR: cidr}); err != nil {
		return models.CIDRRange{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Validate(ctx, cidr)
}

func (v *CIDRValidationService) Health(ctx context.Context) models.HealthResponse {
	return v.inner.Health(ctx)
}

func (v *CIDRValidationService) Wrap(wrapped CIDRService) CIDRService {
	v.inner = wrapped
	return v
}
