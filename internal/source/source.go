// Package source loads outlet lists from spreadsheet and CSV files with
// header auto-detection.
package source

import (
	"strings"

	"github.com/ava-retail/outlet-insight/internal/model"
)

// Columns names the source columns. Empty fields are auto-detected from
// the header row; Kecamatan is optional and stays empty when the source
// has no such column.
type Columns struct {
	Name       string
	Coordinate string
	Kecamatan  string
}

// Header names recognized during auto-detection, lowercased.
var (
	nameHeaders       = []string{"nama toko", "nama", "store", "outlet"}
	coordinateHeaders = []string{"maps", "koordinat", "coordinate", "coordinates"}
	kecamatanHeaders  = []string{"kecamatan", "district"}
)

// detectColumns resolves column indices from a header row. Explicit names
// in cols win over auto-detection. Returns -1 for columns not found.
func detectColumns(header []string, cols Columns) (nameIdx, coordIdx, kecIdx int) {
	nameIdx, coordIdx, kecIdx = -1, -1, -1
	for i, cell := range header {
		h := strings.ToLower(strings.TrimSpace(cell))
		switch {
		case cols.Name != "" && h == strings.ToLower(cols.Name):
			nameIdx = i
		case cols.Coordinate != "" && h == strings.ToLower(cols.Coordinate):
			coordIdx = i
		case cols.Kecamatan != "" && h == strings.ToLower(cols.Kecamatan):
			kecIdx = i
		case cols.Name == "" && nameIdx < 0 && matchesAny(h, nameHeaders):
			nameIdx = i
		case cols.Coordinate == "" && coordIdx < 0 && matchesAny(h, coordinateHeaders):
			coordIdx = i
		case cols.Kecamatan == "" && kecIdx < 0 && matchesAny(h, kecamatanHeaders):
			kecIdx = i
		}
	}
	return nameIdx, coordIdx, kecIdx
}

func matchesAny(h string, candidates []string) bool {
	for _, c := range candidates {
		if h == c {
			return true
		}
	}
	return false
}

// rowsToOutlets converts data rows to outlets, skipping rows with a blank
// name or coordinate cell.
func rowsToOutlets(rows [][]string, nameIdx, coordIdx, kecIdx int) []model.Outlet {
	var outlets []model.Outlet
	for _, row := range rows {
		name := cellAt(row, nameIdx)
		coord := cellAt(row, coordIdx)
		if name == "" || coord == "" {
			continue
		}
		outlets = append(outlets, model.Outlet{
			Name:           name,
			CoordinateText: coord,
			Kecamatan:      cellAt(row, kecIdx),
		})
	}
	return outlets
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
