package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/mwpack/cmd/mwpack/handlers"
	"github.com/imamik/mwpack/internal/config"
)

// Init returns the command for interactively creating a cluster config.
//
// Flags:
//
//	--output, -o: Path to output file (default "cluster.yaml"); a .json
//	suffix writes JSON instead of YAML
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a cluster config",
		Long: `Interactively create a cluster config file.

The wizard asks for the IT power cap, the power draw of one compute node
and the leaf-spine fabric layout, then prints the resulting cluster size.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", config.DefaultConfigFilename, "Output file path")

	return cmd
}
