package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-retail/outlet-insight/internal/competitor"
)

var (
	competitorsDataset   string
	competitorsStatsOnly bool
)

var competitorsCmd = &cobra.Command{
	Use:   "competitors",
	Short: "Cross-reference checkpointed results against the competitor dataset",
	Long: "Loads enriched results from the checkpoint, flags outlets with a " +
		"competitor store within the proximity radius, and writes the per-area " +
		"competition report. With --stats, only prints dataset statistics.",
	RunE: runCompetitors,
}

func init() {
	competitorsCmd.Flags().StringVar(&competitorsDataset, "dataset", "", "competitor dataset JSON (default: from config)")
	competitorsCmd.Flags().BoolVar(&competitorsStatsOnly, "stats", false, "print dataset statistics and exit")
	rootCmd.AddCommand(competitorsCmd)
}

func runCompetitors(cmd *cobra.Command, args []string) error {
	dataset := cfg.Competitor.DatasetPath
	if competitorsDataset != "" {
		dataset = competitorsDataset
	}
	if dataset == "" {
		return eris.New("no competitor dataset configured; set competitor.dataset_path or pass --dataset")
	}

	stores, err := competitor.Load(dataset)
	if err != nil {
		return err
	}

	if competitorsStatsOnly {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(competitor.Stats(stores))
	}

	results, err := loadResults(cfg.Batch.CheckpointPath)
	if err != nil {
		return err
	}

	competitor.Enrich(results, stores, cfg.Competitor.RadiusKM)
	rep := competitor.BuildReport(results, stores)

	if err := ensureOutputDir(cfg.Output.Dir); err != nil {
		return err
	}
	path := filepath.Join(cfg.Output.Dir, cfg.Output.ReportFile)
	if err := writeJSON(path, rep); err != nil {
		return err
	}

	zap.L().Info("wrote competitor report",
		zap.String("path", path),
		zap.Int("outlets", rep.TotalOutlets),
		zap.Int("with_competitor", rep.OutletsWithCompetitor),
		zap.String("competition_level", rep.Insights.CompetitionLevel),
	)
	return nil
}
