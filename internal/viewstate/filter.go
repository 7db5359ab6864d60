package viewstate

import (
	"strings"

	"github.com/alexisbeaulieu97/atlas/internal/country"
)

// MatchesName reports whether the record's name contains term, ignoring case.
// An empty term matches every record.
func MatchesName(r country.Record, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), strings.ToLower(term))
}

// MatchesRegion reports whether the record belongs to region. The empty
// region is the "all regions" sentinel.
func MatchesRegion(r country.Record, region string) bool {
	return region == "" || r.Region == region
}

// Visible returns the records of all that satisfy both criteria, in dataset
// order. The result never aliases all.
func Visible(all []country.Record, term, region string) []country.Record {
	lowered := strings.ToLower(term)
	out := make([]country.Record, 0, len(all))
	for _, r := range all {
		if !MatchesRegion(r, region) {
			continue
		}
		if lowered != "" && !strings.Contains(strings.ToLower(r.Name), lowered) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// DistinctRegions returns the unique regions of all in first-seen order.
func DistinctRegions(all []country.Record) []string {
	seen := make(map[string]struct{})
	regions := make([]string, 0, 8)
	for _, r := range all {
		if _, ok := seen[r.Region]; ok {
			continue
		}
		seen[r.Region] = struct{}{}
		regions = append(regions, r.Region)
	}
	return regions
}

// RegionCounts returns how many records of all fall in each region.
func RegionCounts(all []country.Record) map[string]int {
	counts := make(map[string]int)
	for _, r := range all {
		counts[r.Region]++
	}
	return counts
}
