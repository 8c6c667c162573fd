package source

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/ava-retail/outlet-insight/internal/model"
)

// XLSXOptions configures the XLSX outlet provider.
type XLSXOptions struct {
	SheetIndex int    // default 0
	SheetName  string // if set, overrides SheetIndex
	Columns    Columns
}

// LoadXLSX reads outlets from a spreadsheet. The first row is treated as
// the header and auto-detected ("NAMA TOKO" / "MAPS" / "KECAMATAN" style
// headers) unless explicit column names are given.
func LoadXLSX(path string, opts XLSXOptions) ([]model.Outlet, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "source: open xlsx")
	}

	sheet, err := getSheet(f, opts)
	if err != nil {
		return nil, err
	}
	if len(sheet.Rows) == 0 {
		return nil, eris.New("source: xlsx sheet is empty")
	}

	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		rows = append(rows, cells)
	}

	nameIdx, coordIdx, kecIdx := detectColumns(rows[0], opts.Columns)
	if nameIdx < 0 || coordIdx < 0 {
		return nil, eris.Errorf("source: cannot locate name/coordinate columns in header %v", rows[0])
	}

	outlets := rowsToOutlets(rows[1:], nameIdx, coordIdx, kecIdx)
	zap.L().Info("loaded outlets from xlsx",
		zap.String("path", path),
		zap.Int("outlets", len(outlets)),
	)
	return outlets, nil
}

func getSheet(f *xlsx.File, opts XLSXOptions) (*xlsx.Sheet, error) {
	if opts.SheetName != "" {
		sheet, ok := f.Sheet[opts.SheetName]
		if !ok {
			return nil, eris.Errorf("source: sheet %q not found", opts.SheetName)
		}
		return sheet, nil
	}
	if opts.SheetIndex >= len(f.Sheets) {
		return nil, eris.Errorf("source: sheet index %d out of range (file has %d sheets)", opts.SheetIndex, len(f.Sheets))
	}
	return f.Sheets[opts.SheetIndex], nil
}
