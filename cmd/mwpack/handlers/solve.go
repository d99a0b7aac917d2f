package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/imamik/mwpack/internal/cluster"
	"github.com/imamik/mwpack/internal/config"
	"github.com/imamik/mwpack/internal/logging"
	"github.com/imamik/mwpack/internal/metrics"
	"github.com/imamik/mwpack/internal/ui"
)

// Factory function variables for solve - can be replaced in tests.
var (
	loadClusterConfig = config.LoadClusterConfig
	writeMetrics      = metrics.WriteTextfile
	solveTheme        = func() ui.Theme { return ui.ForFile(os.Stdout) }
)

// Solve sizes the largest cluster that fits the config's IT cap and prints
// the report.
func Solve(ctx context.Context, configPath string, jsonOutput bool, metricsFile string) error {
	log := logging.FromContext(ctx)

	cfg, err := loadClusterConfig(configPath)
	if err != nil {
		return err
	}

	report, err := cluster.SolveMaxNodes(cfg)
	if err != nil {
		return err
	}
	log.V(1).Info("solved", "nodes", report.Nodes, "p_total_w", report.PTotalW, "status", string(report.Status))

	if metricsFile != "" {
		if err := writeMetrics(metricsFile, report); err != nil {
			return err
		}
		log.Info("metrics written", "path", metricsFile)
	}

	if jsonOutput {
		return printJSON(report)
	}
	fmt.Print(renderReport(report, solveTheme()))
	return nil
}
