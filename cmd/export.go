package main

import (
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Re-render artifacts from checkpointed results",
	Long: "Rebuilds the Excel workbook, GeoJSON overlay, summary and competitor " +
		"report from the checkpoint without re-querying the geo service. Useful " +
		"after editing output settings or updating the competitor dataset.",
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := loadResults(cfg.Batch.CheckpointPath)
		if err != nil {
			return err
		}
		// Clear any stale proximity data so a changed dataset or radius is
		// reflected rather than layered on top.
		for i := range results {
			results[i].HasCompetitor = false
			results[i].CompetitorNear = nil
		}
		return writeArtifacts(results)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
