package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-retail/outlet-insight/internal/report"
)

var summaryPrint bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Build the facility summary from checkpointed results",
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := loadResults(cfg.Batch.CheckpointPath)
		if err != nil {
			return err
		}

		summary := report.Build(results)
		if summaryPrint {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		}

		if err := ensureOutputDir(cfg.Output.Dir); err != nil {
			return err
		}
		path := filepath.Join(cfg.Output.Dir, cfg.Output.SummaryFile)
		if err := writeJSON(path, summary); err != nil {
			return err
		}
		zap.L().Info("wrote summary",
			zap.String("path", path),
			zap.Int("outlets", summary.TotalOutlets),
			zap.Int("errors", summary.ErrorRecords),
		)
		return nil
	},
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryPrint, "print", false, "print to stdout instead of writing the artifact")
	rootCmd.AddCommand(summaryCmd)
}
