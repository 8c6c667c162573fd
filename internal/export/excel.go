// Package export renders enriched results to shareable artifacts: an
// Excel workbook and a GeoJSON overlay for map tooling.
package export

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ava-retail/outlet-insight/internal/category"
	"github.com/ava-retail/outlet-insight/internal/model"
	"github.com/ava-retail/outlet-insight/internal/report"
)

const (
	resultSheet  = "Outlets"
	summarySheet = "Summary"

	presentMark = "✓"
	absentMark  = "✗"
)

// WriteExcel writes the result workbook: an outlet sheet with one ✓/✗
// column per category plus competitor columns, and a summary sheet.
func WriteExcel(path string, results []model.OutletResult, summary report.Summary) error {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	if err := writeResultSheet(f, results); err != nil {
		return err
	}
	if err := writeSummarySheet(f, summary); err != nil {
		return err
	}

	// The workbook is created with a default "Sheet1"; drop it.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return eris.Wrap(err, "export: delete default sheet")
	}

	if err := f.SaveAs(path); err != nil {
		return eris.Wrap(err, "export: save workbook")
	}
	zap.L().Info("wrote excel artifact", zap.String("path", path), zap.Int("outlets", len(results)))
	return nil
}

func writeResultSheet(f *excelize.File, results []model.OutletResult) error {
	if _, err := f.NewSheet(resultSheet); err != nil {
		return eris.Wrap(err, "export: create result sheet")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return eris.Wrap(err, "export: header style")
	}

	header := []string{"No", "Store", "Coordinate", "Kecamatan"}
	header = append(header, category.Displays()...)
	header = append(header, "Competitor Nearby", "Competitor Count", "Nearest Competitor (km)", "Error")

	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return eris.Wrap(err, "export: header cell name")
		}
		if err := f.SetCellValue(resultSheet, cell, title); err != nil {
			return eris.Wrap(err, "export: write header")
		}
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return eris.Wrap(err, "export: last column name")
	}
	if err := f.SetCellStyle(resultSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return eris.Wrap(err, "export: style header")
	}

	for i, r := range results {
		row := i + 2
		values := []any{i + 1, r.Name, r.CoordinateText, r.Kecamatan}
		for _, k := range category.Keys() {
			values = append(values, mark(r.Facilities[k]))
		}
		values = append(values, mark(r.HasCompetitor), len(r.CompetitorNear), nearestDistance(r), r.Err)

		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return eris.Wrap(err, "export: cell name")
			}
			if err := f.SetCellValue(resultSheet, cell, v); err != nil {
				return eris.Wrapf(err, "export: write row %d", row)
			}
		}
	}

	if err := f.SetColWidth(resultSheet, "B", "B", 32); err != nil {
		return eris.Wrap(err, "export: set column width")
	}
	if err := f.SetColWidth(resultSheet, "C", "C", 24); err != nil {
		return eris.Wrap(err, "export: set column width")
	}
	return nil
}

func writeSummarySheet(f *excelize.File, summary report.Summary) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return eris.Wrap(err, "export: create summary sheet")
	}

	set := func(cell string, v any) error {
		return f.SetCellValue(summarySheet, cell, v)
	}

	if err := set("A1", "Total Outlets"); err != nil {
		return eris.Wrap(err, "export: summary header")
	}
	if err := set("B1", summary.TotalOutlets); err != nil {
		return eris.Wrap(err, "export: summary total")
	}
	if err := set("A2", "Error Records"); err != nil {
		return eris.Wrap(err, "export: summary header")
	}
	if err := set("B2", summary.ErrorRecords); err != nil {
		return eris.Wrap(err, "export: summary errors")
	}

	if err := set("A4", "Category"); err != nil {
		return eris.Wrap(err, "export: summary header")
	}
	if err := set("B4", "Count"); err != nil {
		return eris.Wrap(err, "export: summary header")
	}
	if err := set("C4", "Percentage"); err != nil {
		return eris.Wrap(err, "export: summary header")
	}

	row := 5
	for _, c := range category.All() {
		cs := summary.PerCategory[c.Key]
		if err := set(fmt.Sprintf("A%d", row), c.Display); err != nil {
			return eris.Wrap(err, "export: summary category")
		}
		if err := set(fmt.Sprintf("B%d", row), cs.Count); err != nil {
			return eris.Wrap(err, "export: summary count")
		}
		if err := set(fmt.Sprintf("C%d", row), cs.Percentage); err != nil {
			return eris.Wrap(err, "export: summary percentage")
		}
		row++
	}

	row++
	if err := set(fmt.Sprintf("A%d", row), "Max Facility Count"); err != nil {
		return eris.Wrap(err, "export: summary header")
	}
	if err := set(fmt.Sprintf("B%d", row), summary.MaxFacilityCount); err != nil {
		return eris.Wrap(err, "export: summary max")
	}
	row++
	if err := set(fmt.Sprintf("A%d", row), "Best Outlets"); err != nil {
		return eris.Wrap(err, "export: summary header")
	}
	for i, name := range summary.BestOutlets {
		if err := set(fmt.Sprintf("B%d", row+i), name); err != nil {
			return eris.Wrap(err, "export: summary best outlet")
		}
	}
	return nil
}

func mark(present bool) string {
	if present {
		return presentMark
	}
	return absentMark
}

func nearestDistance(r model.OutletResult) any {
	if len(r.CompetitorNear) == 0 {
		return ""
	}
	return r.CompetitorNear[0].DistanceKM
}
