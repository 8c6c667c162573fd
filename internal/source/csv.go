package source

import (
	"encoding/csv"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/ava-retail/outlet-insight/internal/model"
)

// LoadCSV reads outlets from a CSV file with the same header detection as
// the XLSX provider.
func LoadCSV(path string, cols Columns) ([]model.Outlet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "source: open csv")
	}
	defer f.Close() //nolint:errcheck

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are tolerated, blank cells skip the row
	rows, err := r.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "source: parse csv")
	}
	if len(rows) == 0 {
		return nil, eris.New("source: csv file is empty")
	}

	nameIdx, coordIdx, kecIdx := detectColumns(rows[0], cols)
	if nameIdx < 0 || coordIdx < 0 {
		return nil, eris.Errorf("source: cannot locate name/coordinate columns in header %v", rows[0])
	}

	outlets := rowsToOutlets(rows[1:], nameIdx, coordIdx, kecIdx)
	zap.L().Info("loaded outlets from csv",
		zap.String("path", path),
		zap.Int("outlets", len(outlets)),
	)
	return outlets, nil
}
