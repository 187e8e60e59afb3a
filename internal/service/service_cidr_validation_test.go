package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/cidr-viewer/internal/validators"
	"github.com/MKhiriev/cidr-viewer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCIDRService struct {
	analyzed  []models.AnalysisRequest
	validated []string
	health    int
}

func (r *recordingCIDRService) Analyze(_ context.Context, req models.AnalysisRequest) (models.AnalysisResponse, error) {
	r.analyzed = append(r.analyzed, req)
	return models.AnalysisResponse{Summary: models.Summary{TotalIPs: 42}}, nil
}

func (r *recordingCIDRService) Validate(_ context.Context, cidr string) (models.CIDRRange, error) {
	r.validated = append(r.validated, cidr)
	return models.CIDRRange{Original: cidr, Valid: true}, nil
}

func (r *recordingCIDRService) Health(_ context.Context) models.HealthResponse {
	r.health++
	return models.HealthResponse{Status: models.StatusHealthy}
}

func newWrappedService(t *testing.T, maxCIDRs int) (CIDRService, *recordingCIDRService) {
	t.Helper()
	wrapper, err := NewCIDRValidationService(maxCIDRs)
	require.NoError(t, err)

	inner := &recordingCIDRService{}
	return wrapper.Wrap(inner), inner
}

func TestNewCIDRValidationService_InvalidLimit(t *testing.T) {
	wrapper, err := NewCIDRValidationService(0)

	assert.Nil(t, wrapper)
	assert.ErrorIs(t, err, validators.ErrInvalidMaxCIDRs)
}

func TestCIDRValidationService_Analyze_PassesThrough(t *testing.T) {
	svc, inner := newWrappedService(t, 3)
	req := models.AnalysisRequest{CIDRs: []string{"10.0.0.0/24"}, VPCCIDRs: []string{"10.0.0.0/16"}}

	resp, err := svc.Analyze(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 42, resp.Summary.TotalIPs)
	require.Len(t, inner.analyzed, 1)
	assert.Equal(t, req, inner.analyzed[0])
}

func TestCIDRValidationService_Analyze_TooMany(t *testing.T) {
	svc, inner := newWrappedService(t, 2)

	_, err := svc.Analyze(context.Background(), models.AnalysisRequest{
		CIDRs:    []string{"10.0.0.0/24", "10.0.1.0/24"},
		VPCCIDRs: []string{"10.0.0.0/16"},
	})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrTooManyCIDRs)
	assert.Empty(t, inner.analyzed)
}

func TestCIDRValidationService_Validate(t *testing.T) {
	svc, inner := newWrappedService(t, 10)

	r, err := svc.Validate(context.Background(), "10.0.0.0/8")
	require.NoError(t, err)
	assert.True(t, r.Valid)
	assert.Equal(t, []string{"10.0.0.0/8"}, inner.validated)

	_, err = svc.Validate(context.Background(), strings.Repeat("1", validators.MaxCIDRLength+1))
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrCIDRTooLong)
	assert.Len(t, inner.validated, 1)
}

func TestCIDRValidationService_Health(t *testing.T) {
	svc, inner := newWrappedService(t, 10)

	resp := svc.Health(context.Background())

	assert.Equal(t, models.StatusHealthy, resp.Status)
	assert.Equal(t, 1, inner.health)
}
