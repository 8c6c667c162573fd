package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/ava-retail/outlet-insight/internal/category"
	"github.com/ava-retail/outlet-insight/internal/model"
)

func TestWriteGeoJSON(t *testing.T) {
	results := sampleResults()
	results[0].Detailed = map[category.Key][]model.DetailedPlace{
		category.Culinary: {
			{Name: "Warung Bu Tutik", Subtype: "Warung", Lat: -6.201, Lon: 106.801},
		},
	}

	path := filepath.Join(t.TempDir(), "out.geojson")
	require.NoError(t, WriteGeoJSON(path, results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var fc geojson.FeatureCollection
	require.NoError(t, json.Unmarshal(data, &fc))

	// One outlet point plus one facility point; the error record is skipped.
	require.Len(t, fc.Features, 2)

	outlet := fc.Features[0]
	assert.Equal(t, "outlet", outlet.Properties["kind"])
	assert.Equal(t, "Toko Maju", outlet.Properties["name"])
	assert.Equal(t, true, outlet.Properties["has_competitor"])
	assert.Equal(t, []float64{106.8, -6.2}, outlet.Geometry.FlatCoords())

	facility := fc.Features[1]
	assert.Equal(t, "facility", facility.Properties["kind"])
	assert.Equal(t, "Warung Bu Tutik", facility.Properties["name"])
	assert.Equal(t, "Warung", facility.Properties["subtype"])
	cat, _ := category.ByKey(category.Culinary)
	assert.Equal(t, cat.Marker.Color, facility.Properties["color"])
	assert.Equal(t, cat.Marker.Icon, facility.Properties["icon"])
}

func TestWriteGeoJSON_EmptyResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.geojson")
	require.NoError(t, WriteGeoJSON(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var fc geojson.FeatureCollection
	require.NoError(t, json.Unmarshal(data, &fc))
	assert.Empty(t, fc.Features)
}
