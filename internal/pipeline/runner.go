// Package pipeline orchestrates batch enrichment: chunking, a bounded
// worker pool, per-outlet retries, checkpointing for resume, and the
// radius escalation pass for outlets with empty surroundings.
package pipeline

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ava-retail/outlet-insight/internal/category"
	"github.com/ava-retail/outlet-insight/internal/model"
	"github.com/ava-retail/outlet-insight/internal/resilience"
)

// Enricher classifies the surroundings of a coordinate.
type Enricher interface {
	Presence(ctx context.Context, lat, lon float64, radiusM int) (map[category.Key]bool, error)
	Details(ctx context.Context, lat, lon float64, radiusM int, flagged map[category.Key]bool) (map[category.Key][]model.DetailedPlace, error)
}

// Config controls a batch run.
type Config struct {
	// BatchSize is the number of outlets per checkpointed batch. Default: 1000.
	BatchSize int

	// Workers bounds concurrent outlet processing. Default: 8.
	Workers int

	// RadiusM is the search radius in meters. Default: 100.
	RadiusM int

	// EscalateRadiusM is the larger radius for re-querying outlets whose
	// first pass found nothing. Zero disables escalation. Default: 200.
	EscalateRadiusM int

	// WithDetails also fetches per-category place listings for each outlet.
	WithDetails bool

	// CheckpointPath is where the accumulated results are written after
	// every batch. Empty disables checkpointing.
	CheckpointPath string

	// Retry is the per-outlet retry policy.
	Retry resilience.RetryConfig
}

// DefaultConfig returns the standard run configuration.
func DefaultConfig() Config {
	return Config{
		BatchSize:       1000,
		Workers:         8,
		RadiusM:         100,
		EscalateRadiusM: 200,
		Retry:           resilience.DefaultRetryConfig(),
	}
}

func (c Config) withDefaults() Config {
	if c.BatchSize <= 0 {
		c.BatchSize = 1000
	}
	if c.Workers <= 0 {
		c.Workers = 8
	}
	if c.RadiusM <= 0 {
		c.RadiusM = 100
	}
	return c
}

// Runner executes enrichment runs. One Runner corresponds to one run ID;
// resumed runs get a fresh ID but keep the prior results.
type Runner struct {
	enricher Enricher
	cfg      Config
	runID    string
}

// NewRunner creates a Runner.
func NewRunner(enricher Enricher, cfg Config) *Runner {
	return &Runner{
		enricher: enricher,
		cfg:      cfg.withDefaults(),
		runID:    uuid.New().String(),
	}
}

// RunID returns the identifier stamped into checkpoints.
func (r *Runner) RunID() string {
	return r.runID
}

// Run enriches outlets in batches. prior holds results carried over from a
// checkpoint; outlets already present there (matched by name) are skipped
// and the new results are appended after them. Every outlet yields exactly
// one result: malformed coordinates and exhausted retries produce error
// records in place, so the output length always equals len(prior) plus the
// number of remaining outlets.
func (r *Runner) Run(ctx context.Context, outlets []model.Outlet, prior []model.OutletResult) ([]model.OutletResult, error) {
	results := make([]model.OutletResult, 0, len(outlets)+len(prior))
	results = append(results, prior...)

	remaining := Remaining(outlets, prior)
	if len(prior) > 0 {
		zap.L().Info("resuming run",
			zap.Int("done", len(prior)),
			zap.Int("remaining", len(remaining)),
		)
	}

	batches := chunk(remaining, r.cfg.BatchSize)
	for bi, batch := range batches {
		zap.L().Info("processing batch",
			zap.String("run_id", r.runID),
			zap.Int("batch", bi+1),
			zap.Int("batches", len(batches)),
			zap.Int("outlets", len(batch)),
		)

		batchResults, err := r.runBatch(ctx, batch, r.cfg.RadiusM)
		if err != nil {
			return results, err
		}
		results = append(results, batchResults...)

		r.checkpoint(results)

		// Pause between batches so the public endpoints get a breather.
		if bi < len(batches)-1 {
			if err := sleepBetweenBatches(ctx); err != nil {
				return results, err
			}
		}
	}

	if r.cfg.EscalateRadiusM > 0 {
		if err := r.Escalate(ctx, results); err != nil {
			return results, err
		}
		r.checkpoint(results)
	}

	return results, nil
}

// Escalate re-runs outlets whose result vector is all-false at the larger
// escalation radius, replacing entries in place. Error records and outlets
// with at least one facility are left untouched.
func (r *Runner) Escalate(ctx context.Context, results []model.OutletResult) error {
	var indices []int
	for i, res := range results {
		if res.Err == "" && model.AllAbsent(res.Facilities) {
			indices = append(indices, i)
		}
	}
	if len(indices) == 0 {
		return nil
	}

	zap.L().Info("escalating empty results",
		zap.Int("outlets", len(indices)),
		zap.Int("radius_m", r.cfg.EscalateRadiusM),
	)

	outlets := make([]model.Outlet, len(indices))
	for i, idx := range indices {
		outlets[i] = model.Outlet{
			Name:           results[idx].Name,
			CoordinateText: results[idx].CoordinateText,
			Kecamatan:      results[idx].Kecamatan,
		}
	}

	escalated, err := r.runBatch(ctx, outlets, r.cfg.EscalateRadiusM)
	if err != nil {
		return err
	}
	for i, idx := range indices {
		results[idx] = escalated[i]
	}
	return nil
}

// runBatch processes one batch through the worker pool. Results are
// index-addressed so output order always matches input order regardless of
// completion order.
func (r *Runner) runBatch(ctx context.Context, batch []model.Outlet, radiusM int) ([]model.OutletResult, error) {
	results := make([]model.OutletResult, len(batch))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i, outlet := range batch {
		g.Go(func() error {
			results[i] = r.processOutlet(gctx, outlet, radiusM)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// processOutlet never fails: any unrecoverable condition becomes an error
// record so the outlet keeps its slot in the output.
func (r *Runner) processOutlet(ctx context.Context, outlet model.Outlet, radiusM int) model.OutletResult {
	lat, lon, err := model.ParseCoordinates(outlet.CoordinateText)
	if err != nil {
		zap.L().Warn("skipping outlet with malformed coordinates",
			zap.String("outlet", outlet.Name),
			zap.String("coordinate", outlet.CoordinateText),
		)
		return model.ErrorRecord(outlet, err.Error())
	}

	retry := r.cfg.Retry
	if retry.OnRetry == nil {
		retry.OnRetry = resilience.RetryLogger("geo", "presence")
	}
	facilities, err := resilience.DoVal(ctx, retry, func(ctx context.Context) (map[category.Key]bool, error) {
		return r.enricher.Presence(ctx, lat, lon, radiusM)
	})
	if err != nil {
		zap.L().Warn("outlet failed after retries",
			zap.String("outlet", outlet.Name),
			zap.Error(err),
		)
		rec := model.ErrorRecord(outlet, err.Error())
		rec.Latitude = lat
		rec.Longitude = lon
		rec.SearchRadiusM = radiusM
		return rec
	}

	result := model.OutletResult{
		Name:           outlet.Name,
		CoordinateText: outlet.CoordinateText,
		Kecamatan:      outlet.Kecamatan,
		Latitude:       lat,
		Longitude:      lon,
		Facilities:     facilities,
		SearchRadiusM:  radiusM,
	}

	if r.cfg.WithDetails {
		details, derr := r.enricher.Details(ctx, lat, lon, radiusM, facilities)
		if derr != nil {
			// Presence succeeded, so keep the result and just log the miss.
			zap.L().Warn("detail fetch failed",
				zap.String("outlet", outlet.Name),
				zap.Error(derr),
			)
		} else {
			result.Detailed = details
		}
	}
	return result
}

func (r *Runner) checkpoint(results []model.OutletResult) {
	if r.cfg.CheckpointPath == "" {
		return
	}
	cp := Checkpoint{
		RunID:     r.runID,
		UpdatedAt: time.Now().UTC(),
		Results:   results,
	}
	if err := SaveCheckpoint(r.cfg.CheckpointPath, cp); err != nil {
		zap.L().Warn("checkpoint write failed", zap.Error(err))
	}
}

func chunk(outlets []model.Outlet, size int) [][]model.Outlet {
	var batches [][]model.Outlet
	for start := 0; start < len(outlets); start += size {
		end := min(start+size, len(outlets))
		batches = append(batches, outlets[start:end])
	}
	return batches
}

// sleepBetweenBatches pauses 0.5-1.5s or until the context is done.
func sleepBetweenBatches(ctx context.Context) error {
	delay := 500*time.Millisecond + time.Duration(rand.Int64N(int64(time.Second)))
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
