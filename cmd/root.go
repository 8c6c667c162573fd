package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-retail/outlet-insight/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "outlet-insight",
	Short: "Outlet surroundings analysis pipeline",
	Long:  "Enriches retail outlet coordinates with surrounding-facility classifications from OSM data, cross-references competitor stores, and emits Excel/GeoJSON/report artifacts.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
