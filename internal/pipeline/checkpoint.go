package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"

	"github.com/ava-retail/outlet-insight/internal/model"
)

// Checkpoint is the on-disk snapshot of an analysis run. The full
// accumulated result set is rewritten after every batch, so the file is
// always a consistent prefix of the run.
type Checkpoint struct {
	RunID     string               `json:"run_id"`
	UpdatedAt time.Time            `json:"updated_at"`
	Results   []model.OutletResult `json:"results"`
}

// SaveCheckpoint overwrites the checkpoint file atomically (write to a
// temp file in the same directory, then rename).
func SaveCheckpoint(path string, cp Checkpoint) error {
	data, err := json.MarshalIndent(cp, "", "  ")
	if err != nil {
		return eris.Wrap(err, "pipeline: marshal checkpoint")
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".checkpoint-*.json")
	if err != nil {
		return eris.Wrap(err, "pipeline: create checkpoint temp file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()        //nolint:errcheck
		os.Remove(tmpName) //nolint:errcheck
		return eris.Wrap(err, "pipeline: write checkpoint")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return eris.Wrap(err, "pipeline: close checkpoint temp file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName) //nolint:errcheck
		return eris.Wrap(err, "pipeline: replace checkpoint")
	}
	return nil
}

// LoadCheckpoint reads a checkpoint file. A missing file is not an error:
// it returns nil, meaning a fresh run.
func LoadCheckpoint(path string) (*Checkpoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, eris.Wrap(err, "pipeline: read checkpoint")
	}

	var cp Checkpoint
	if err := json.Unmarshal(data, &cp); err != nil {
		return nil, eris.Wrap(err, "pipeline: parse checkpoint")
	}
	return &cp, nil
}

// Remaining returns the outlets that have no result yet, preserving their
// original relative order. Matching is by outlet name.
func Remaining(outlets []model.Outlet, done []model.OutletResult) []model.Outlet {
	seen := make(map[string]struct{}, len(done))
	for _, r := range done {
		seen[r.Name] = struct{}{}
	}

	var remaining []model.Outlet
	for _, o := range outlets {
		if _, ok := seen[o.Name]; !ok {
			remaining = append(remaining, o)
		}
	}
	return remaining
}
