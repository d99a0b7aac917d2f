package artifact

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/mwpack/internal/apperr"
	"github.com/imamik/mwpack/internal/cluster"
	"github.com/imamik/mwpack/internal/util/digest"
)

const sampleConfig = `{
  "it_cap_w": 5000000,
  "node": {"gpu_count": 8, "gpu_power_w": 700, "cpu_power_w": 350, "baseboard_power_w": 120,
           "nic_power_w": 80, "storage_power_w": 60, "other_power_w": 40},
  "fabric": {"host_ports_per_node": 1, "host_link_gbps": 400, "uplink_gbps": 400,
             "optics_power_w_per_uplink": 8,
             "leaf": {"ports": 64, "host_ports": 32, "uplink_ports": 32, "power_w": 450},
             "spine": {"ports": 64, "power_w": 500}}
}`

func setup(t *testing.T) (memo, cfg, root string) {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	memo = filepath.Join(root, "Capacity Memo.md")
	require.NoError(t, os.WriteFile(memo, []byte("# Capacity  \r\nbody"), 0o600))
	cfg = filepath.Join(root, "cluster.json")
	require.NoError(t, os.WriteFile(cfg, []byte(sampleConfig), 0o600))
	return memo, cfg, root
}

func readSummary(t *testing.T, path string) Summary {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "}\n"))

	var s Summary
	require.NoError(t, json.Unmarshal(data, &s))
	return s
}

func TestBuild_WithoutConfig(t *testing.T) {
	memo, _, root := setup(t)
	out := filepath.Join(root, "out")

	summary, err := Build(context.Background(), Options{
		MemoPath:        memo,
		OutDir:          out,
		SourceDateEpoch: 1_700_000_000,
		ToolVersion:     "v1.0.0",
	})
	require.NoError(t, err)

	assert.Equal(t, "capacity-memo", summary.ArtifactName)
	assert.Equal(t, int64(1_700_000_000), summary.SourceDateEpoch)
	assert.Equal(t, "v1.0.0", summary.ToolVersion)
	assert.Equal(t, Paths{
		Memo:    filepath.Join(out, "memo.md"),
		Report:  filepath.Join(out, "cluster_report.json"),
		Summary: filepath.Join(out, "build_summary.json"),
		Bundle:  filepath.Join(out, "bundle.zip"),
	}, summary.Paths)

	memoData, err := os.ReadFile(summary.Paths.Memo)
	require.NoError(t, err)
	assert.Equal(t, "# Capacity\nbody\n", string(memoData))
	assert.Equal(t, digest.Bytes(memoData), summary.SHA256.Memo)

	reportData, err := os.ReadFile(summary.Paths.Report)
	require.NoError(t, err)
	assert.Equal(t, digest.Bytes(reportData), summary.SHA256.Report)

	var report cluster.Report
	require.NoError(t, json.Unmarshal(reportData, &report))
	assert.Equal(t, *cluster.EmptyReport(), report)

	assert.Equal(t, *summary, readSummary(t, summary.Paths.Summary))

	_, err = os.Stat(summary.Paths.Bundle)
	assert.True(t, os.IsNotExist(err), "build does not package")
}

func TestBuild_WithConfig(t *testing.T) {
	memo, cfg, root := setup(t)

	summary, err := Build(context.Background(), Options{
		MemoPath:    memo,
		ConfigPath:  cfg,
		OutDir:      filepath.Join(root, "out"),
		ToolVersion: "test",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(summary.Paths.Report)
	require.NoError(t, err)

	var report cluster.Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, 796, report.Nodes)
	assert.Equal(t, cluster.StatusOK, report.Status)
	assert.True(t, report.Feasible)
}

func TestBuild_Reproducible(t *testing.T) {
	memo, cfg, root := setup(t)
	opts := Options{MemoPath: memo, ConfigPath: cfg, OutDir: filepath.Join(root, "out"), ToolVersion: "test"}

	first, err := Build(context.Background(), opts)
	require.NoError(t, err)
	firstSummary, err := os.ReadFile(first.Paths.Summary)
	require.NoError(t, err)

	second, err := Build(context.Background(), opts)
	require.NoError(t, err)
	secondSummary, err := os.ReadFile(second.Paths.Summary)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstSummary, secondSummary)
}

func TestBuild_ReplacesExistingOutput(t *testing.T) {
	memo, _, root := setup(t)
	out := filepath.Join(root, "out")
	require.NoError(t, os.MkdirAll(out, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(out, "stale.txt"), []byte("old"), 0o600))

	_, err := Build(context.Background(), Options{MemoPath: memo, OutDir: out, ToolVersion: "test"})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(out, "stale.txt"))
	assert.True(t, os.IsNotExist(err))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), "."), "staging dir %s left behind", e.Name())
	}
}

func TestBuild_RefusesUnsafeOutput(t *testing.T) {
	memo, _, root := setup(t)
	work := filepath.Join(root, "work", "sub")
	require.NoError(t, os.MkdirAll(work, 0o755))
	t.Chdir(work)

	for _, out := range []string{".", "..", filepath.Join(root, "work")} {
		t.Run(out, func(t *testing.T) {
			_, err := Build(context.Background(), Options{MemoPath: memo, OutDir: out, ToolVersion: "test"})
			require.Error(t, err)
			assert.ErrorIs(t, err, apperr.ErrValidation)
			assert.Contains(t, err.Error(), "unsafe output directory")
		})
	}

	_, err := os.Stat(work)
	require.NoError(t, err, "working directory must survive")

	entries, err := os.ReadDir(filepath.Join(root, "work"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "sub", entries[0].Name())
}

func TestBuild_DefaultOutputDir(t *testing.T) {
	memo, _, root := setup(t)
	t.Chdir(root)

	summary, err := Build(context.Background(), Options{MemoPath: memo, Name: "  Q3 Plan!  ", ToolVersion: "test"})
	require.NoError(t, err)

	assert.Equal(t, "q3-plan", summary.ArtifactName)
	assert.Equal(t, filepath.Join(root, "dist", "q3-plan", "memo.md"), summary.Paths.Memo)
}

func TestBuild_Validation(t *testing.T) {
	memo, _, root := setup(t)
	txt := filepath.Join(root, "memo.txt")
	require.NoError(t, os.WriteFile(txt, []byte("x"), 0o600))
	badCfg := filepath.Join(root, "bad.json")
	require.NoError(t, os.WriteFile(badCfg, []byte(`{"it_cap_w": 1}`), 0o600))

	tests := []struct {
		name   string
		opts   Options
		errMsg string
	}{
		{"missing memo", Options{MemoPath: filepath.Join(root, "nope.md")}, "memo does not exist"},
		{"not markdown", Options{MemoPath: txt}, "memo must be markdown"},
		{"negative epoch", Options{MemoPath: memo, SourceDateEpoch: -1}, "--source-date-epoch must be >= 0"},
		{"bad config", Options{MemoPath: memo, ConfigPath: badCfg}, "missing required key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.OutDir = filepath.Join(root, "out")
			_, err := Build(context.Background(), tt.opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperr.ErrValidation)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	_, err := os.Stat(filepath.Join(root, "out"))
	assert.True(t, os.IsNotExist(err))
}

func TestToolVersion(t *testing.T) {
	orig := gitDescribe
	t.Cleanup(func() { gitDescribe = orig })

	tests := []struct {
		name string
		out  string
		err  error
		want string
	}{
		{"tag", "v1.2.3-4-gabcdef\n", nil, "v1.2.3-4-gabcdef"},
		{"dirty", "abcdef-dirty\n", nil, "abcdef-dirty"},
		{"empty output", "  \n", nil, FallbackToolVersion},
		{"git failure", "", errors.New("not a git repository"), FallbackToolVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gitDescribe = func(context.Context) (string, error) { return tt.out, tt.err }
			assert.Equal(t, tt.want, ToolVersion(context.Background()))
		})
	}
}

func TestIsWithin(t *testing.T) {
	sep := string(filepath.Separator)
	root := sep + "a"

	assert.True(t, isWithin(root, root))
	assert.True(t, isWithin(filepath.Join(root, "b", "c"), root))
	assert.False(t, isWithin(sep+"ab", root))
	assert.False(t, isWithin(sep, root))
	assert.False(t, isWithin(filepath.Join(sep, "x", "..a"), root))
}

func TestResolvePath_NonExistingTail(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	got, err := resolvePath(filepath.Join(root, "missing", "child"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "missing", "child"), got)
}
