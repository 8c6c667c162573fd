// Package competitor loads the competitor store dataset and computes
// outlet proximity and per-area competition reports.
package competitor

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/ava-retail/outlet-insight/internal/model"
)

// requiredFields are the JSON keys every competitor record must carry.
var requiredFields = []string{"Store", "Latitude", "Longitude", "Kecamatan"}

// Load reads the competitor dataset from a JSON file. The first record is
// schema-checked against the required fields; records with coordinates
// that cannot be coerced to numbers are skipped with a warning.
func Load(path string) ([]model.CompetitorStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "competitor: read dataset")
	}

	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, eris.Wrap(err, "competitor: parse dataset")
	}
	if len(raw) == 0 {
		return nil, nil
	}

	for _, field := range requiredFields {
		if _, ok := raw[0][field]; !ok {
			return nil, eris.Errorf("competitor: dataset missing required field %q", field)
		}
	}

	stores := make([]model.CompetitorStore, 0, len(raw))
	for i, rec := range raw {
		lat, latOK := coerceFloat(rec["Latitude"])
		lon, lonOK := coerceFloat(rec["Longitude"])
		if !latOK || !lonOK {
			zap.L().Warn("competitor: skipping record with invalid coordinates",
				zap.Int("index", i),
				zap.Any("store", rec["Store"]),
			)
			continue
		}
		stores = append(stores, model.CompetitorStore{
			Store:     coerceString(rec["Store"]),
			Latitude:  lat,
			Longitude: lon,
			Kecamatan: coerceString(rec["Kecamatan"]),
		})
	}
	return stores, nil
}

// Statistics summarizes the dataset: total store count and stores per
// kecamatan.
type Statistics struct {
	TotalStores  int            `json:"total_stores"`
	PerKecamatan map[string]int `json:"per_kecamatan"`
}

// Stats computes dataset statistics.
func Stats(stores []model.CompetitorStore) Statistics {
	s := Statistics{
		TotalStores:  len(stores),
		PerKecamatan: make(map[string]int),
	}
	for _, st := range stores {
		s.PerKecamatan[st.Kecamatan]++
	}
	return s
}

func coerceFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func coerceString(v any) string {
	s, _ := v.(string)
	return s
}
