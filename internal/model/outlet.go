package model

import "github.com/ava-retail/outlet-insight/internal/category"

// Outlet is one input row: a store name and the raw coordinate cell as it
// appeared in the source. Parsing is deferred to the pipeline so malformed
// cells still produce an addressable error record.
type Outlet struct {
	Name           string `json:"name"`
	CoordinateText string `json:"coordinate"`
	Kecamatan      string `json:"kecamatan,omitempty"`
}

// DetailedPlace is a single classified feature near an outlet, produced by
// the per-category detail pass.
type DetailedPlace struct {
	Name    string            `json:"name"`
	Subtype string            `json:"subtype"`
	Lat     float64           `json:"lat"`
	Lon     float64           `json:"lon"`
	Tags    map[string]string `json:"tags,omitempty"`
}

// CompetitorStore is one entry of the competitor dataset.
type CompetitorStore struct {
	Store     string  `json:"store"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Kecamatan string  `json:"kecamatan"`
}

// NearbyStore is a competitor store annotated with its distance from the
// outlet under analysis, in kilometers rounded to three decimals.
type NearbyStore struct {
	CompetitorStore
	DistanceKM float64 `json:"distance_km"`
}

// OutletResult is the enrichment outcome for one outlet. Err is non-empty
// for error records (malformed coordinates, exhausted retries); such
// records carry an all-false facility vector and keep their input position.
type OutletResult struct {
	Name           string                           `json:"name"`
	CoordinateText string                           `json:"coordinate"`
	Kecamatan      string                           `json:"kecamatan,omitempty"`
	Latitude       float64                          `json:"latitude"`
	Longitude      float64                          `json:"longitude"`
	Facilities     map[category.Key]bool            `json:"facilities"`
	Detailed       map[category.Key][]DetailedPlace `json:"detailed,omitempty"`
	SearchRadiusM  int                              `json:"search_radius_m"`
	HasCompetitor  bool                             `json:"has_competitor"`
	CompetitorNear []NearbyStore                    `json:"competitors_nearby,omitempty"`
	Err            string                           `json:"error,omitempty"`
}

// EmptyFacilities returns an all-false presence vector covering every
// registered category.
func EmptyFacilities() map[category.Key]bool {
	out := make(map[category.Key]bool)
	for _, k := range category.Keys() {
		out[k] = false
	}
	return out
}

// ErrorRecord builds the placeholder result used when an outlet cannot be
// enriched. The facility vector is present but all false so downstream
// consumers never hit a nil map.
func ErrorRecord(o Outlet, reason string) OutletResult {
	return OutletResult{
		Name:           o.Name,
		CoordinateText: o.CoordinateText,
		Kecamatan:      o.Kecamatan,
		Facilities:     EmptyFacilities(),
		Err:            reason,
	}
}

// AllAbsent reports whether every category in the vector is false. Used to
// pick escalation candidates.
func AllAbsent(facilities map[category.Key]bool) bool {
	for _, present := range facilities {
		if present {
			return false
		}
	}
	return true
}
