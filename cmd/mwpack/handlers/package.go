package handlers

import (
	"context"
	"fmt"
	"slices"

	"github.com/imamik/mwpack/internal/apperr"
	"github.com/imamik/mwpack/internal/bundle"
	"github.com/imamik/mwpack/internal/logging"
	"github.com/imamik/mwpack/internal/util/naming"
)

// PackageSummary is printed by `package --json`.
type PackageSummary struct {
	Format          string `json:"format"`
	Bundle          string `json:"bundle"`
	SourceDateEpoch int64  `json:"source_date_epoch"`
	SHA256          string `json:"sha256"`
	ManifestSHA256  string `json:"manifest_sha256"`
	Files           int    `json:"files"`
}

// PackageOptions configures Package.
type PackageOptions struct {
	Dir             string
	Format          string
	SourceDateEpoch int64
	JSON            bool

	// Verify re-reads the written archive and checks its entry list
	// against the manifest.
	Verify bool
}

// Package writes a bundle for opts.Dir and prints its checksums.
func Package(ctx context.Context, opts PackageOptions) error {
	format, err := bundle.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	bundlePath, manifest, err := bundle.Create(ctx, opts.Dir, format, opts.SourceDateEpoch)
	if err != nil {
		return err
	}

	if opts.Verify {
		if err := verifyBundle(ctx, bundlePath, manifest); err != nil {
			return err
		}
	}

	bundleSum, err := bundle.ChecksumBundle(bundlePath)
	if err != nil {
		return err
	}
	manifestSum, err := bundle.ChecksumManifest(manifest)
	if err != nil {
		return err
	}

	summary := &PackageSummary{
		Format:          string(format),
		Bundle:          bundlePath,
		SourceDateEpoch: opts.SourceDateEpoch,
		SHA256:          bundleSum,
		ManifestSHA256:  manifestSum,
		Files:           len(manifest.Files),
	}

	if opts.JSON {
		return printJSON(summary)
	}
	fmt.Printf("Packaged bundle: %s\n", bundlePath)
	return nil
}

// verifyBundle checks that the archive holds exactly the manifest paths in
// order, followed by the manifest itself.
func verifyBundle(ctx context.Context, bundlePath string, manifest *bundle.Manifest) error {
	names, err := bundle.ReadEntryNames(bundlePath)
	if err != nil {
		return err
	}

	want := make([]string, 0, len(manifest.Files)+1)
	for _, f := range manifest.Files {
		want = append(want, f.Path)
	}
	want = append(want, naming.Manifest)

	if !slices.Equal(names, want) {
		return apperr.Invariantf("bundle %s entries %v do not match manifest %v", bundlePath, names, want)
	}
	logging.FromContext(ctx).V(1).Info("bundle verified", "entries", len(names))
	return nil
}
