package cidr

import (
	"fmt"
	"math/bits"
	"slices"

	"github.com/MKhiriev/cidr-viewer/models"
)

// span is an inclusive address interval. uint64 keeps end+1 and start-1
// from wrapping at the edges of the address space.
type span struct {
	start, end uint64
}

// FindGaps merges the valid ranges (overlapping or adjacent blocks become one
// span) and reports every hole between consecutive spans. Space before the
// first and after the last block is not a gap.
func FindGaps(ranges []models.CIDRRange) []models.Gap {
	gaps := []models.Gap{}

	merged := mergeSpans(ranges)
	for i := 0; i+1 < len(merged); i++ {
		start := merged[i].end + 1
		end := merged[i+1].start - 1
		if start > end {
			continue
		}

		gaps = append(gaps, models.Gap{
			StartIP:       uint32ToAddr(uint32(start)).String(),
			EndIP:         uint32ToAddr(uint32(end)).String(),
			Size:          int(end - start + 1),
			SuggestedCIDR: SuggestCIDR(uint32(start), uint32(end)),
		})
	}

	return gaps
}

func mergeSpans(ranges []models.CIDRRange) []span {
	spans := make([]span, 0, len(ranges))
	for _, r := range ranges {
		prefix, ok := prefixOf(r)
		if !ok {
			continue
		}
		start, end := bounds(prefix)
		spans = append(spans, span{start: uint64(start), end: uint64(end)})
	}

	slices.SortFunc(spans, func(a, b span) int {
		switch {
		case a.start < b.start:
			return -1
		case a.start > b.start:
			return 1
		default:
			return 0
		}
	})

	merged := make([]span, 0, len(spans))
	for _, s := range spans {
		last := len(merged) - 1
		if last < 0 || merged[last].end+1 < s.start {
			merged = append(merged, s)
			continue
		}
		if merged[last].end < s.end {
			merged[last].end = s.end
		}
	}

	return merged
}

// SuggestCIDR returns the smallest block whose size is a power of two not
// below the gap size, with its network address aligned down from start.
// The block may therefore reach outside the gap.
func SuggestCIDR(start, end uint32) string {
	if end < start {
		start, end = end, start
	}

	size := uint64(end) - uint64(start) + 1
	ones := 32 - bits.Len64(size-1)

	return fmt.Sprintf("%s/%d", uint32ToAddr(start&maskBits(ones)), ones)
}
