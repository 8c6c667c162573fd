package competitor

import (
	"math"
	"sort"

	"github.com/ava-retail/outlet-insight/internal/model"
)

// Competition level thresholds on the share of outlets with a competitor
// nearby.
const (
	highCompetitionShare   = 0.7
	mediumCompetitionShare = 0.4
)

// saturatedStoreCount is the per-area store count above which an area
// counts as over-saturated.
const saturatedStoreCount = 3

// AreaStats aggregates one administrative area (kecamatan).
type AreaStats struct {
	Outlets               int `json:"outlets"`
	Stores                int `json:"stores"`
	OutletsWithCompetitor int `json:"outlets_with_competitor"`
}

// RankedArea is an area with its store count, for the top-areas list.
type RankedArea struct {
	Kecamatan string `json:"kecamatan"`
	Stores    int    `json:"stores"`
}

// Insights is the three-tier business read of the distribution.
type Insights struct {
	// CompetitionLevel is HIGH, MEDIUM or LOW based on the share of
	// outlets with a competitor nearby.
	CompetitionLevel string `json:"competition_level"`

	// OpportunityAreas have outlets but no competitor stores at all.
	OpportunityAreas []string `json:"opportunity_areas"`

	// SaturatedAreas hold more competitor stores than the saturation
	// threshold.
	SaturatedAreas []string `json:"saturated_areas"`
}

// Report is the network-wide competition report.
type Report struct {
	TotalOutlets           int                  `json:"total_outlets"`
	TotalStores            int                  `json:"total_stores"`
	OutletsWithCompetitor  int                  `json:"outlets_with_competitor"`
	CompetitorPercentage   float64              `json:"competitor_percentage"`
	PerArea                map[string]AreaStats `json:"per_area"`
	TopAreas               []RankedArea         `json:"top_areas"`
	AreasWithoutCompetitor []string             `json:"areas_without_competitor"`
	Insights               Insights             `json:"insights"`
}

// BuildReport aggregates enriched results and the store dataset by
// administrative area. Results must already be competitor-enriched.
func BuildReport(results []model.OutletResult, stores []model.CompetitorStore) Report {
	perArea := make(map[string]AreaStats)

	for _, st := range stores {
		a := perArea[st.Kecamatan]
		a.Stores++
		perArea[st.Kecamatan] = a
	}

	var withCompetitor int
	for _, r := range results {
		if r.HasCompetitor {
			withCompetitor++
		}
		if r.Kecamatan == "" {
			continue
		}
		a := perArea[r.Kecamatan]
		a.Outlets++
		if r.HasCompetitor {
			a.OutletsWithCompetitor++
		}
		perArea[r.Kecamatan] = a
	}

	var percentage float64
	if len(results) > 0 {
		percentage = math.Round(float64(withCompetitor)/float64(len(results))*100*100) / 100
	}

	return Report{
		TotalOutlets:           len(results),
		TotalStores:            len(stores),
		OutletsWithCompetitor:  withCompetitor,
		CompetitorPercentage:   percentage,
		PerArea:                perArea,
		TopAreas:               topAreas(perArea, 5),
		AreasWithoutCompetitor: opportunityAreas(perArea),
		Insights: Insights{
			CompetitionLevel: competitionLevel(withCompetitor, len(results)),
			OpportunityAreas: opportunityAreas(perArea),
			SaturatedAreas:   saturatedAreas(perArea),
		},
	}
}

func competitionLevel(withCompetitor, total int) string {
	if total == 0 {
		return "LOW"
	}
	share := float64(withCompetitor) / float64(total)
	switch {
	case share > highCompetitionShare:
		return "HIGH"
	case share > mediumCompetitionShare:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// topAreas ranks areas by store count descending, ties broken by name so
// the output is deterministic.
func topAreas(perArea map[string]AreaStats, n int) []RankedArea {
	ranked := make([]RankedArea, 0, len(perArea))
	for k, a := range perArea {
		if a.Stores > 0 {
			ranked = append(ranked, RankedArea{Kecamatan: k, Stores: a.Stores})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Stores != ranked[j].Stores {
			return ranked[i].Stores > ranked[j].Stores
		}
		return ranked[i].Kecamatan < ranked[j].Kecamatan
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// opportunityAreas are areas with outlets but zero competitor stores.
func opportunityAreas(perArea map[string]AreaStats) []string {
	var out []string
	for k, a := range perArea {
		if a.Outlets > 0 && a.Stores == 0 {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func saturatedAreas(perArea map[string]AreaStats) []string {
	var out []string
	for k, a := range perArea {
		if a.Stores > saturatedStoreCount {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
