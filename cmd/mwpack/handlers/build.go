package handlers

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/imamik/mwpack/internal/artifact"
)

// buildArtifact builds the artifact directory - can be replaced in tests.
var buildArtifact = artifact.Build

// Build builds an artifact directory and prints its summary.
func Build(ctx context.Context, opts artifact.Options, jsonOutput bool) error {
	summary, err := buildArtifact(ctx, opts)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(summary)
	}
	fmt.Printf("Built artifact directory: %s\n", filepath.Dir(summary.Paths.Summary))
	return nil
}
