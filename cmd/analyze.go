package main

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-retail/outlet-insight/internal/cache"
	"github.com/ava-retail/outlet-insight/internal/category"
	"github.com/ava-retail/outlet-insight/internal/competitor"
	"github.com/ava-retail/outlet-insight/internal/export"
	"github.com/ava-retail/outlet-insight/internal/facility"
	"github.com/ava-retail/outlet-insight/internal/model"
	"github.com/ava-retail/outlet-insight/internal/pipeline"
	"github.com/ava-retail/outlet-insight/internal/report"
	"github.com/ava-retail/outlet-insight/internal/resilience"
	"github.com/ava-retail/outlet-insight/internal/source"
	"github.com/ava-retail/outlet-insight/pkg/overpass"
)

var (
	analyzeInput     string
	analyzeSheet     string
	analyzeNameCol   string
	analyzeCoordCol  string
	analyzeKecCol    string
	analyzeRadius    int
	analyzeDetails   bool
	analyzeNoResume  bool
	analyzeNoCache   bool
	analyzeQueryMode string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Enrich an outlet spreadsheet with surrounding-facility data",
	Long: "Reads outlets from an XLSX or CSV file, classifies the facilities " +
		"around each coordinate, cross-references the competitor dataset when " +
		"configured, and writes the Excel, GeoJSON and JSON artifacts.",
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "outlet spreadsheet (.xlsx or .csv)")
	analyzeCmd.Flags().StringVar(&analyzeSheet, "sheet", "", "sheet name (default: first sheet)")
	analyzeCmd.Flags().StringVar(&analyzeNameCol, "name-col", "", "outlet name column header (default: auto-detect)")
	analyzeCmd.Flags().StringVar(&analyzeCoordCol, "coord-col", "", "coordinate column header (default: auto-detect)")
	analyzeCmd.Flags().StringVar(&analyzeKecCol, "kecamatan-col", "", "kecamatan column header (default: auto-detect)")
	analyzeCmd.Flags().IntVar(&analyzeRadius, "radius", 0, "search radius in meters (default: from config)")
	analyzeCmd.Flags().BoolVar(&analyzeDetails, "details", false, "also fetch per-category place listings")
	analyzeCmd.Flags().BoolVar(&analyzeNoResume, "no-resume", false, "ignore an existing checkpoint and start fresh")
	analyzeCmd.Flags().BoolVar(&analyzeNoCache, "no-cache", false, "disable the query result cache")
	analyzeCmd.Flags().StringVar(&analyzeQueryMode, "query-mode", "", "simplified or comprehensive (default: from config)")
	_ = analyzeCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := zap.L()

	outlets, err := loadOutlets(analyzeInput, analyzeSheet, source.Columns{
		Name:       analyzeNameCol,
		Coordinate: analyzeCoordCol,
		Kecamatan:  analyzeKecCol,
	})
	if err != nil {
		return err
	}
	if len(outlets) == 0 {
		return eris.Errorf("no outlets found in %s", analyzeInput)
	}

	var prior []model.OutletResult
	if !analyzeNoResume {
		if cp, err := pipeline.LoadCheckpoint(cfg.Batch.CheckpointPath); err != nil {
			log.Warn("checkpoint unreadable, starting fresh", zap.Error(err))
		} else if cp != nil {
			prior = cp.Results
		}
	}

	var store *cache.Store
	if cfg.Cache.Enabled && !analyzeNoCache {
		store, err = cache.Open(cfg.Cache.Path)
		if err != nil {
			return err
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Warn("cache close failed", zap.Error(err))
			}
		}()
	}

	client := buildGeoClient()

	mode := cfg.Geo.QueryMode
	if analyzeQueryMode != "" {
		mode = analyzeQueryMode
	}
	checker := facility.NewChecker(client, store, category.ParseQueryMode(mode),
		facility.WithBreaker(resilience.NewCircuitBreaker(
			resilience.FromCircuitConfig(cfg.Circuit.FailureThreshold, cfg.Circuit.ResetTimeoutSecs),
		)),
	)

	runCfg := pipeline.Config{
		BatchSize:       cfg.Batch.Size,
		Workers:         cfg.Batch.Workers,
		RadiusM:         cfg.Geo.RadiusM,
		EscalateRadiusM: cfg.Geo.EscalateRadiusM,
		WithDetails:     analyzeDetails || cfg.Batch.WithDetails,
		CheckpointPath:  cfg.Batch.CheckpointPath,
		Retry:           resilience.FromRetryConfig(cfg.Retry.MaxAttempts, cfg.Retry.InitialBackoffMs, cfg.Retry.Multiplier),
	}
	if analyzeRadius > 0 {
		runCfg.RadiusM = analyzeRadius
	}

	runner := pipeline.NewRunner(checker, runCfg)
	log.Info("starting analysis run",
		zap.String("run_id", runner.RunID()),
		zap.Int("outlets", len(outlets)),
		zap.Int("radius_m", runCfg.RadiusM),
		zap.String("query_mode", category.ParseQueryMode(mode).String()),
	)

	results, err := runner.Run(ctx, outlets, prior)
	if err != nil {
		return err
	}
	if store != nil {
		if err := store.Flush(ctx); err != nil {
			log.Warn("cache flush failed", zap.Error(err))
		}
	}

	return writeArtifacts(results)
}

func buildGeoClient() *overpass.Client {
	var opts []overpass.Option
	if len(cfg.Geo.Endpoints) > 0 {
		opts = append(opts, overpass.WithEndpoints(cfg.Geo.Endpoints))
	}
	if cfg.Geo.RateLimitRPS > 0 {
		opts = append(opts, overpass.WithRateLimit(cfg.Geo.RateLimitRPS))
	}
	if cfg.Geo.UserAgent != "" {
		opts = append(opts, overpass.WithUserAgent(cfg.Geo.UserAgent))
	}
	return overpass.New(opts...)
}

// writeArtifacts cross-references competitors when a dataset is configured,
// then writes the summary, competitor report, workbook and GeoJSON overlay
// into the output directory.
func writeArtifacts(results []model.OutletResult) error {
	log := zap.L()

	var stores []model.CompetitorStore
	if cfg.Competitor.DatasetPath != "" {
		var err error
		stores, err = competitor.Load(cfg.Competitor.DatasetPath)
		if err != nil {
			return err
		}
		competitor.Enrich(results, stores, cfg.Competitor.RadiusKM)
	}

	if err := ensureOutputDir(cfg.Output.Dir); err != nil {
		return err
	}

	summary := report.Build(results)
	if err := writeJSON(filepath.Join(cfg.Output.Dir, cfg.Output.SummaryFile), summary); err != nil {
		return err
	}

	if stores != nil {
		rep := competitor.BuildReport(results, stores)
		if err := writeJSON(filepath.Join(cfg.Output.Dir, cfg.Output.ReportFile), rep); err != nil {
			return err
		}
	}

	if err := export.WriteExcel(filepath.Join(cfg.Output.Dir, cfg.Output.ExcelFile), results, summary); err != nil {
		return err
	}
	if err := export.WriteGeoJSON(filepath.Join(cfg.Output.Dir, cfg.Output.GeoJSONFile), results); err != nil {
		return err
	}

	log.Info("analysis complete",
		zap.Int("outlets", len(results)),
		zap.Int("errors", summary.ErrorRecords),
		zap.String("output_dir", cfg.Output.Dir),
	)
	_, _ = os.Stdout.WriteString("done: artifacts written to " + cfg.Output.Dir + "\n")
	return nil
}
