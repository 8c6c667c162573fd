package source

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func writeWorkbook(t *testing.T, sheetName string, rows [][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(sheetName)
	require.NoError(t, err)
	for _, cells := range rows {
		row := sheet.AddRow()
		for _, v := range cells {
			row.AddCell().Value = v
		}
	}
	path := filepath.Join(t.TempDir(), "outlets.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func TestLoadXLSX(t *testing.T) {
	path := writeWorkbook(t, "Data", [][]string{
		{"NO", "NAMA TOKO", "MAPS", "KECAMATAN"},
		{"1", "Toko Maju", "-6.2, 106.8", "MENTENG"},
		{"2", "", "-6.3, 106.9", "TEBET"},
		{"3", "Toko Jaya", "-6.4, 107.0", ""},
	})

	outlets, err := LoadXLSX(path, XLSXOptions{})
	require.NoError(t, err)
	require.Len(t, outlets, 2)

	assert.Equal(t, "Toko Maju", outlets[0].Name)
	assert.Equal(t, "-6.2, 106.8", outlets[0].CoordinateText)
	assert.Equal(t, "MENTENG", outlets[0].Kecamatan)

	assert.Equal(t, "Toko Jaya", outlets[1].Name)
	assert.Empty(t, outlets[1].Kecamatan)
}

func TestLoadXLSX_SheetByName(t *testing.T) {
	path := writeWorkbook(t, "Outlet List", [][]string{
		{"NAMA TOKO", "MAPS"},
		{"Toko Maju", "-6.2, 106.8"},
	})

	outlets, err := LoadXLSX(path, XLSXOptions{SheetName: "Outlet List"})
	require.NoError(t, err)
	assert.Len(t, outlets, 1)

	_, err = LoadXLSX(path, XLSXOptions{SheetName: "Missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `sheet "Missing" not found`)
}

func TestLoadXLSX_SheetIndexOutOfRange(t *testing.T) {
	path := writeWorkbook(t, "Data", [][]string{
		{"NAMA TOKO", "MAPS"},
	})

	_, err := LoadXLSX(path, XLSXOptions{SheetIndex: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestLoadXLSX_ExplicitColumns(t *testing.T) {
	path := writeWorkbook(t, "Data", [][]string{
		{"Warung", "Titik GPS"},
		{"Toko Maju", "-6.2, 106.8"},
	})

	outlets, err := LoadXLSX(path, XLSXOptions{
		Columns: Columns{Name: "Warung", Coordinate: "Titik GPS"},
	})
	require.NoError(t, err)
	require.Len(t, outlets, 1)
	assert.Equal(t, "Toko Maju", outlets[0].Name)
}

func TestLoadXLSX_MissingFile(t *testing.T) {
	_, err := LoadXLSX(filepath.Join(t.TempDir(), "nope.xlsx"), XLSXOptions{})
	require.Error(t, err)
}
