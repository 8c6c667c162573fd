package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/ava-retail/outlet-insight/internal/model"
	"github.com/ava-retail/outlet-insight/internal/pipeline"
	"github.com/ava-retail/outlet-insight/internal/source"
)

// loadOutlets dispatches on the input file extension.
func loadOutlets(path string, sheet string, cols source.Columns) ([]model.Outlet, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return source.LoadCSV(path, cols)
	case ".xlsx":
		return source.LoadXLSX(path, source.XLSXOptions{SheetName: sheet, Columns: cols})
	default:
		return nil, eris.Errorf("unsupported input format %q (want .xlsx or .csv)", filepath.Ext(path))
	}
}

// loadResults reads enriched results from the checkpoint file. The
// post-processing commands (competitors, summary, export) all work off the
// checkpoint left behind by analyze.
func loadResults(path string) ([]model.OutletResult, error) {
	cp, err := pipeline.LoadCheckpoint(path)
	if err != nil {
		return nil, err
	}
	if cp == nil {
		return nil, eris.Errorf("no checkpoint at %s; run analyze first", path)
	}
	return cp.Results, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return eris.Wrapf(err, "marshal %s", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "write %s", path)
	}
	return nil
}

func ensureOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return eris.Wrap(err, "create output dir")
	}
	return nil
}
