package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/imamik/mwpack/internal/apperr"
	"github.com/imamik/mwpack/internal/cluster"
	"github.com/imamik/mwpack/internal/config"
	"github.com/imamik/mwpack/internal/logging"
	"github.com/imamik/mwpack/internal/normalize"
	"github.com/imamik/mwpack/internal/util/digest"
	"github.com/imamik/mwpack/internal/util/jsonutil"
	"github.com/imamik/mwpack/internal/util/naming"
)

// Options configures Build.
type Options struct {
	// MemoPath is the markdown memo to include. Required.
	MemoPath string

	// ConfigPath is an optional cluster config. Without it the empty report
	// is written.
	ConfigPath string

	// OutDir is the artifact directory. Defaults to dist/<name>.
	OutDir string

	// Name overrides the artifact name derived from the memo file name.
	Name string

	SourceDateEpoch int64

	// ToolVersion overrides the git-derived version.
	ToolVersion string
}

// Build writes the artifact directory and returns its summary.
func Build(ctx context.Context, opts Options) (*Summary, error) {
	log := logging.FromContext(ctx)

	if opts.SourceDateEpoch < 0 {
		return nil, apperr.Validationf("--source-date-epoch must be >= 0")
	}
	if err := config.ValidateMemoPath(opts.MemoPath); err != nil {
		return nil, err
	}

	var cfg *config.ClusterConfig
	if opts.ConfigPath != "" {
		var err error
		if cfg, err = config.LoadClusterConfig(opts.ConfigPath); err != nil {
			return nil, err
		}
	}

	name := naming.ArtifactName(opts.Name, opts.MemoPath)
	outDir := opts.OutDir
	if outDir == "" {
		outDir = naming.DefaultOutputDir(name)
	}
	outDir, err := resolvePath(outDir)
	if err != nil {
		return nil, err
	}

	parent := filepath.Dir(outDir)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", parent, err)
	}
	tmpDir, err := os.MkdirTemp(parent, "."+name+".")
	if err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	moved := false
	defer func() {
		if !moved {
			_ = os.RemoveAll(tmpDir)
		}
	}()

	log.V(1).Info("staging artifact", "name", name, "staging", tmpDir, "out", outDir)

	memoOut := filepath.Join(tmpDir, naming.MemoFile)
	if err := normalize.File(opts.MemoPath, memoOut); err != nil {
		return nil, err
	}

	report := cluster.EmptyReport()
	if cfg != nil {
		if report, err = cluster.SolveMaxNodes(cfg); err != nil {
			return nil, err
		}
	}
	reportOut := filepath.Join(tmpDir, naming.ReportFile)
	if err := writeJSON(reportOut, report); err != nil {
		return nil, err
	}

	memoSum, err := digest.File(memoOut)
	if err != nil {
		return nil, err
	}
	reportSum, err := digest.File(reportOut)
	if err != nil {
		return nil, err
	}

	toolVersion := opts.ToolVersion
	if toolVersion == "" {
		toolVersion = ToolVersion(ctx)
	}

	summary := &Summary{
		ArtifactName:    name,
		SourceDateEpoch: opts.SourceDateEpoch,
		Paths: Paths{
			Memo:    filepath.Join(outDir, naming.MemoFile),
			Report:  filepath.Join(outDir, naming.ReportFile),
			Summary: filepath.Join(outDir, naming.SummaryFile),
			Bundle:  filepath.Join(outDir, naming.ZipBundle),
		},
		SHA256: Digests{
			Memo:   memoSum,
			Report: reportSum,
		},
		ToolVersion: toolVersion,
	}
	if err := writeJSON(filepath.Join(tmpDir, naming.SummaryFile), summary); err != nil {
		return nil, err
	}

	if err := replaceDir(tmpDir, outDir); err != nil {
		return nil, err
	}
	moved = true

	log.Info("artifact built", "dir", outDir, "nodes", report.Nodes, "status", string(report.Status))
	return summary, nil
}

func writeJSON(path string, v any) error {
	data, err := jsonutil.Pretty(v)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
