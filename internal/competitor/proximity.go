package competitor

import (
	"math"
	"sort"

	"github.com/ava-retail/outlet-insight/internal/model"
)

// DefaultRadiusKM is the proximity threshold for competitor matching.
const DefaultRadiusKM = 0.5

// Nearby returns the stores within radiusKm of the point, sorted by
// ascending distance. Distances are rounded to three decimals.
func Nearby(lat, lon float64, stores []model.CompetitorStore, radiusKm float64) []model.NearbyStore {
	var out []model.NearbyStore
	for _, st := range stores {
		d := haversine(lat, lon, st.Latitude, st.Longitude)
		if d <= radiusKm {
			out = append(out, model.NearbyStore{
				CompetitorStore: st,
				DistanceKM:      math.Round(d*1000) / 1000,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DistanceKM < out[j].DistanceKM
	})
	return out
}

// Enrich annotates results with competitor proximity in place. Error
// records and results without coordinates are skipped.
func Enrich(results []model.OutletResult, stores []model.CompetitorStore, radiusKm float64) {
	for i := range results {
		r := &results[i]
		if r.Err != "" || (r.Latitude == 0 && r.Longitude == 0) {
			continue
		}
		near := Nearby(r.Latitude, r.Longitude, stores, radiusKm)
		r.CompetitorNear = near
		r.HasCompetitor = len(near) > 0
	}
}

// haversine returns the great-circle distance between two points in km.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKM = 6371
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKM * c
}
