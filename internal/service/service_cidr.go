package service

import (
	"context"
	"time"

	"github.com/MKhiriev/cidr-viewer/internal/cidr"
	"github.com/MKhiriev/cidr-viewer/internal/logger"
	"github.com/MKhiriev/cidr-viewer/models"
)

type cidrService struct {
	maxComparisons int
	now            func() time.Time

	logger *logger.Logger
}

// NewCIDRService returns a CIDRService whose overlap detection checks at
// most maxComparisons pairs per analysis (cidr.DefaultMaxComparisons when
// non-positive).
func NewCIDRService(maxComparisons int, logger *logger.Logger) CIDRService {
	if maxComparisons <= 0 {
		maxComparisons = cidr.DefaultMaxComparisons
	}

	return &cidrService{
		maxComparisons: maxComparisons,
		now:            time.Now,
		logger:         logger,
	}
}

// Analyze implements CIDRService. VPC ranges come first, then subnet ranges,
// then legacy entries not already listed in either categorized list. Every
// slice of the response is non-nil.
func (s *cidrService) Analyze(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResponse, error) {
	log := logger.FromContext(ctx)
	log.Debug().
		Strs("cidrs", req.CIDRs).
		Strs("vpc_cidrs", req.VPCCIDRs).
		Strs("subnet_cidrs", req.SubnetCIDRs).
		Msg("analysis requested")

	valid := make([]models.CIDRRange, 0, req.Len())
	invalid := make([]models.CIDRRange, 0)

	add := func(raw, category string) {
		r := cidr.ParseCIDR(raw)
		r.Category = category
		if r.Valid {
			valid = append(valid, r)
		} else {
			invalid = append(invalid, r)
		}
	}

	categorized := make(map[string]struct{}, len(req.VPCCIDRs)+len(req.SubnetCIDRs))
	for _, raw := range req.VPCCIDRs {
		add(raw, models.CategoryVPC)
		categorized[raw] = struct{}{}
	}
	for _, raw := range req.SubnetCIDRs {
		add(raw, models.CategorySubnet)
		categorized[raw] = struct{}{}
	}
	for _, raw := range req.CIDRs {
		if _, seen := categorized[raw]; seen {
			continue
		}
		add(raw, "")
	}

	if err := ctx.Err(); err != nil {
		return models.AnalysisResponse{}, err
	}

	gaps := cidr.FindGaps(valid)
	overlaps := cidr.FindOverlaps(valid, s.maxComparisons)
	summary := cidr.CalculateSummary(valid, gaps, overlaps)

	log.Debug().
		Int("valid", len(valid)).
		Int("invalid", len(invalid)).
		Int("gaps", summary.GapCount).
		Int("overlaps", summary.OverlapCount).
		Msg("analysis finished")

	return models.AnalysisResponse{
		ValidCIDRs:   valid,
		InvalidCIDRs: invalid,
		Gaps:         gaps,
		Overlaps:     overlaps,
		Summary:      summary,
	}, nil
}

// Validate implements CIDRService.
func (s *cidrService) Validate(ctx context.Context, raw string) (models.CIDRRange, error) {
	return cidr.ParseCIDR(raw), nil
}

// Health implements CIDRService.
func (s *cidrService) Health(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{
		Status:    models.StatusHealthy,
		Timestamp: s.now().UTC().Format(time.RFC3339),
	}
}
