package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/mwpack/cmd/mwpack/handlers"
	"github.com/imamik/mwpack/internal/artifact"
)

// Build returns the command that builds an artifact directory.
//
// Flags:
//
//	--memo: markdown memo (required)
//	--config, -c: cluster config; without it an empty report is written
//	--out, -o: artifact directory (default dist/<name>)
//	--name: artifact name (default derived from the memo file name)
//	--json: print the build summary as JSON
//	--source-date-epoch: recorded in build_summary.json
func Build() *cobra.Command {
	var (
		opts       artifact.Options
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build deterministic artifact directory",
		Long: `Build an artifact directory containing:

  memo.md              the memo with normalized line endings and whitespace
  cluster_report.json  the largest cluster that fits the config's IT cap
  build_summary.json   artifact name, paths, checksums and tool version

The directory is staged next to the output path and swapped in at the end,
so a failed build leaves any previous artifact untouched. Run
"mwpack package --dir <out>" afterwards to create the bundle.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireFlag("memo", opts.MemoPath); err != nil {
				return err
			}
			epoch, err := resolveSourceDateEpoch(cmd)
			if err != nil {
				return err
			}
			opts.SourceDateEpoch = epoch
			opts.ToolVersion = buildToolVersion()
			return handlers.Build(cmd.Context(), opts, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&opts.MemoPath, "memo", "", "Path to the markdown memo (required)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to a cluster config (JSON or YAML)")
	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", "", "Artifact directory (default: dist/<name>)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "Artifact name (default: memo file name)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	addSourceDateEpochFlag(cmd)

	return cmd
}
