package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/mwpack/cmd/mwpack/handlers"
)

// Solve returns the command that sizes the largest cluster under the IT cap.
func Solve() *cobra.Command {
	var configPath, metricsFile string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find the largest cluster that fits the IT power cap",
		Long: `Find the largest node count whose nodes, leaf and spine switches and
uplink optics together draw no more than it_cap_w.

Use --metrics-file to also write the result in Prometheus text format for
node_exporter's textfile collector.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireFlag("config", configPath); err != nil {
				return err
			}
			return handlers.Solve(cmd.Context(), configPath, jsonOutput, metricsFile)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a cluster config (required)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write report gauges to this .prom file")

	return cmd
}
