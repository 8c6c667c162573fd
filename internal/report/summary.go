// Package report builds the aggregate summary over enriched results.
package report

import (
	"math"

	"github.com/ava-retail/outlet-insight/internal/category"
	"github.com/ava-retail/outlet-insight/internal/model"
)

// CategorySummary is one category's aggregate.
type CategorySummary struct {
	Display    string  `json:"display"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Summary aggregates a full result set.
type Summary struct {
	TotalOutlets     int                              `json:"total_outlets"`
	ErrorRecords     int                              `json:"error_records"`
	PerCategory      map[category.Key]CategorySummary `json:"per_category"`
	MaxFacilityCount int                              `json:"max_facility_count"`
	BestOutlets      []string                         `json:"best_outlets"`
}

// Build computes the summary. Error records count toward the total but
// never toward category counts; BestOutlets lists every outlet achieving
// the maximum facility count, ties included, in result order. When no
// outlet has any facility BestOutlets is empty.
func Build(results []model.OutletResult) Summary {
	s := Summary{
		TotalOutlets: len(results),
		PerCategory:  make(map[category.Key]CategorySummary, len(category.All())),
	}

	counts := make(map[category.Key]int)
	for _, r := range results {
		if r.Err != "" {
			s.ErrorRecords++
			continue
		}
		for k, present := range r.Facilities {
			if present {
				counts[k]++
			}
		}
	}

	for _, c := range category.All() {
		var pct float64
		if s.TotalOutlets > 0 {
			pct = math.Round(float64(counts[c.Key])/float64(s.TotalOutlets)*100*100) / 100
		}
		s.PerCategory[c.Key] = CategorySummary{
			Display:    c.Display,
			Count:      counts[c.Key],
			Percentage: pct,
		}
	}

	for _, r := range results {
		if r.Err != "" {
			continue
		}
		n := facilityCount(r.Facilities)
		if n > s.MaxFacilityCount {
			s.MaxFacilityCount = n
		}
	}
	if s.MaxFacilityCount > 0 {
		for _, r := range results {
			if r.Err == "" && facilityCount(r.Facilities) == s.MaxFacilityCount {
				s.BestOutlets = append(s.BestOutlets, r.Name)
			}
		}
	}
	return s
}

func facilityCount(facilities map[category.Key]bool) int {
	var n int
	for _, present := range facilities {
		if present {
			n++
		}
	}
	return n
}
