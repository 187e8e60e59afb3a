package cidr

import (
	"github.com/MKhiriev/cidr-viewer/models"
)

// DefaultMaxComparisons is the pairwise comparison budget used when
// FindOverlaps is given a non-positive one.
const DefaultMaxComparisons = 1000

// FindOverlaps compares valid ranges pairwise, in input order, and stops once
// maxComparisons pairs have been checked.
//
// Blocks sharing the same network address overlap completely, whatever their
// prefix lengths, and the first block is reported as the intersection.
// Otherwise one block contains the other and the contained, smaller block is
// reported as the intersection.
func FindOverlaps(ranges []models.CIDRRange, maxComparisons int) []models.Overlap {
	if maxComparisons <= 0 {
		maxComparisons = DefaultMaxComparisons
	}

	overlaps := []models.Overlap{}
	comparisons := 0

	for i := 0; i < len(ranges) && comparisons < maxComparisons; i++ {
		for j := i + 1; j < len(ranges) && comparisons < maxComparisons; j++ {
			comparisons++
			if overlap, ok := checkOverlap(ranges[i], ranges[j]); ok {
				overlaps = append(overlaps, overlap)
			}
		}
	}

	return overlaps
}

func checkOverlap(a, b models.CIDRRange) (models.Overlap, bool) {
	pa, okA := prefixOf(a)
	pb, okB := prefixOf(b)
	if !okA || !okB || !pa.Overlaps(pb) {
		return models.Overlap{}, false
	}

	overlap := models.Overlap{
		CIDR1:        a.Original,
		CIDR2:        b.Original,
		Intersection: a.Original,
		Type:         models.OverlapPartial,
	}

	switch {
	case pa.Addr() == pb.Addr():
		overlap.Type = models.OverlapComplete
	case pb.Bits() > pa.Bits():
		overlap.Intersection = b.Original
	}

	return overlap, true
}
