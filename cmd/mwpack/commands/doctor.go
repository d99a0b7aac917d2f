package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/mwpack/cmd/mwpack/handlers"
)

// Doctor returns the command that reports optional external tools.
func Doctor() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check for optional external tools",
		Long: `Check whether pandoc (used by render) and git (used for the tool
version in build summaries) are installed.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Doctor(cmd.Context(), jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
