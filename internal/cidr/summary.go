package cidr

import "github.com/MKhiriev/cidr-viewer/models"

// CalculateSummary totals an analysis. Allocated space counts every valid
// block in full, so overlapping blocks are counted more than once.
func CalculateSummary(ranges []models.CIDRRange, gaps []models.Gap, overlaps []models.Overlap) models.Summary {
	var allocated, available int

	for _, r := range ranges {
		if r.Valid {
			allocated += r.TotalIPs
		}
	}
	for _, g := range gaps {
		available += g.Size
	}

	return models.Summary{
		TotalIPs:     allocated + available,
		AllocatedIPs: allocated,
		AvailableIPs: available,
		GapCount:     len(gaps),
		OverlapCount: len(overlaps),
	}
}
