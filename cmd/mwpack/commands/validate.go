package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/mwpack/cmd/mwpack/handlers"
)

// Validate returns the command that checks a memo and an optional config.
func Validate() *cobra.Command {
	var memoPath, configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate memo and optional config",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireFlag("memo", memoPath); err != nil {
				return err
			}
			return handlers.Validate(cmd.Context(), memoPath, configPath)
		},
	}

	cmd.Flags().StringVar(&memoPath, "memo", "", "Path to the markdown memo (required)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a cluster config (JSON or YAML)")

	return cmd
}
