package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/mwpack/cmd/mwpack/handlers"
)

// Render returns the command for best-effort HTML and PDF rendering.
func Render() *cobra.Command {
	var memoPath, outDir string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Best-effort rendering",
		Long: `Render the memo to memo.html and memo.pdf with pandoc.

Without pandoc a plain HTML page is written and the command exits with
code 4 after printing its output.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireFlag("memo", memoPath); err != nil {
				return err
			}
			return handlers.Render(cmd.Context(), memoPath, outDir, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&memoPath, "memo", "", "Path to the markdown memo (required)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default: memo directory)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
