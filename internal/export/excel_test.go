package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ava-retail/outlet-insight/internal/category"
	"github.com/ava-retail/outlet-insight/internal/model"
	"github.com/ava-retail/outlet-insight/internal/report"
)

func sampleResults() []model.OutletResult {
	good := model.OutletResult{
		Name:           "Toko Maju",
		CoordinateText: "-6.2, 106.8",
		Kecamatan:      "MENTENG",
		Latitude:       -6.2,
		Longitude:      106.8,
		Facilities:     model.EmptyFacilities(),
		SearchRadiusM:  100,
		HasCompetitor:  true,
		CompetitorNear: []model.NearbyStore{
			{CompetitorStore: model.CompetitorStore{Store: "Toko Sari", Kecamatan: "MENTENG"}, DistanceKM: 0.111},
		},
	}
	good.Facilities[category.Culinary] = true

	bad := model.ErrorRecord(model.Outlet{Name: "Toko Rusak", CoordinateText: "??"}, "empty")
	return []model.OutletResult{good, bad}
}

func TestWriteExcel(t *testing.T) {
	results := sampleResults()
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteExcel(path, results, report.Build(results)))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	assert.ElementsMatch(t, []string{resultSheet, summarySheet}, f.GetSheetList())

	rows, err := f.GetRows(resultSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two outlets")

	header := rows[0]
	assert.Equal(t, []string{"No", "Store", "Coordinate", "Kecamatan"}, header[:4])
	assert.Contains(t, header, "Culinary")
	assert.Contains(t, header, "Competitor Nearby")

	// First data row: the enriched outlet.
	assert.Equal(t, "Toko Maju", rows[1][1])
	assert.Contains(t, rows[1], presentMark)
	assert.Contains(t, rows[1], "0.111")

	// Second data row: the error record.
	assert.Equal(t, "Toko Rusak", rows[2][1])
	assert.Equal(t, "empty", rows[2][len(header)-1])
}

func TestWriteExcel_SummarySheet(t *testing.T) {
	results := sampleResults()
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteExcel(path, results, report.Build(results)))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	total, err := f.GetCellValue(summarySheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "2", total)

	errs, err := f.GetCellValue(summarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "1", errs)

	firstCategory, err := f.GetCellValue(summarySheet, "A5")
	require.NoError(t, err)
	assert.Equal(t, category.All()[0].Display, firstCategory)
}

func TestMark(t *testing.T) {
	assert.Equal(t, presentMark, mark(true))
	assert.Equal(t, absentMark, mark(false))
}

func TestNearestDistance(t *testing.T) {
	assert.Equal(t, "", nearestDistance(model.OutletResult{}))

	r := model.OutletResult{CompetitorNear: []model.NearbyStore{{DistanceKM: 0.25}}}
	assert.Equal(t, 0.25, nearestDistance(r))
}
