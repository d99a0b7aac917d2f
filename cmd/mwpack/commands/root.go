// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/imamik/mwpack/internal/apperr"
	"github.com/imamik/mwpack/internal/logging"
)

// Root returns the root command for the mwpack CLI.
//
// Errors are not printed by cobra; main prints them and maps them to exit
// codes. Flag parse errors are validation errors.
func Root() *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:           "mwpack",
		Short:         "Size GPU clusters under a power cap and package reproducible memo artifacts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log := logging.New(os.Stderr, verbosity)
			cmd.SetContext(logging.IntoContext(cmd.Context(), log))
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperr.Validation(err)
	})

	cmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "Log verbosity on stderr (0 = errors and summaries, 1 = per-file detail)")

	// Artifact pipeline
	cmd.AddCommand(Validate())
	cmd.AddCommand(Build())
	cmd.AddCommand(Package())
	cmd.AddCommand(Render())

	// Capacity planning
	cmd.AddCommand(Solve())
	cmd.AddCommand(Init())

	// Utility commands
	cmd.AddCommand(Doctor())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}

// requireFlag returns a validation error when a mandatory flag is empty.
func requireFlag(name, value string) error {
	if value == "" {
		return apperr.Validationf("--%s is required", name)
	}
	return nil
}

// validationArgs turns positional argument errors into validation errors.
func validationArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return apperr.Validation(fn(cmd, args))
	}
}

var noArgs = validationArgs(cobra.NoArgs)
