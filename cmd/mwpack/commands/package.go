package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/mwpack/cmd/mwpack/handlers"
	"github.com/imamik/mwpack/internal/bundle"
)

// Package returns the command that writes a reproducible bundle.
func Package() *cobra.Command {
	var opts handlers.PackageOptions

	cmd := &cobra.Command{
		Use:   "package",
		Short: "Package deterministic archive",
		Long: `Package every file under --dir into bundle.zip or bundle.tar.gz.

Entries are sorted by path and carry fixed timestamps, modes and ownership,
followed by MANIFEST.json listing each file's size and SHA-256. Packaging
the same directory contents with the same source date epoch always yields
the same bytes.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireFlag("dir", opts.Dir); err != nil {
				return err
			}
			epoch, err := resolveSourceDateEpoch(cmd)
			if err != nil {
				return err
			}
			opts.SourceDateEpoch = epoch
			return handlers.Package(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Dir, "dir", "", "Artifact directory to package (required)")
	cmd.Flags().StringVar(&opts.Format, "format", string(bundle.FormatZip), "Archive format: zip or tar.gz")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.Verify, "verify", false, "Re-read the bundle and check it against the manifest")
	addSourceDateEpochFlag(cmd)

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(bundle.FormatZip), string(bundle.FormatTarGz)}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
