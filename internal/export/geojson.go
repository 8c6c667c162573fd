package export

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"

	"github.com/ava-retail/outlet-insight/internal/category"
	"github.com/ava-retail/outlet-insight/internal/model"
)

// WriteGeoJSON writes a FeatureCollection of outlet points and, when the
// detail pass ran, their classified surrounding places. Marker colors and
// icons come from the category registry so map tooling renders the same
// legend everywhere. Error records carry no coordinates and are skipped.
func WriteGeoJSON(path string, results []model.OutletResult) error {
	fc := &geojson.FeatureCollection{}

	for _, r := range results {
		if r.Err != "" {
			continue
		}
		fc.Features = append(fc.Features, &geojson.Feature{
			Geometry: geom.NewPointFlat(geom.XY, []float64{r.Longitude, r.Latitude}),
			Properties: map[string]any{
				"kind":             "outlet",
				"name":             r.Name,
				"kecamatan":        r.Kecamatan,
				"has_competitor":   r.HasCompetitor,
				"competitor_count": len(r.CompetitorNear),
			},
		})

		for key, places := range r.Detailed {
			cat, ok := category.ByKey(key)
			if !ok {
				continue
			}
			for _, p := range places {
				fc.Features = append(fc.Features, &geojson.Feature{
					Geometry: geom.NewPointFlat(geom.XY, []float64{p.Lon, p.Lat}),
					Properties: map[string]any{
						"kind":     "facility",
						"name":     p.Name,
						"category": string(key),
						"subtype":  p.Subtype,
						"color":    cat.Marker.Color,
						"icon":     cat.Marker.Icon,
					},
				})
			}
		}
	}

	data, err := json.Marshal(fc)
	if err != nil {
		return eris.Wrap(err, "export: marshal geojson")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrap(err, "export: write geojson")
	}
	zap.L().Info("wrote geojson artifact", zap.String("path", path), zap.Int("features", len(fc.Features)))
	return nil
}
