package naming

import (
	"path/filepath"
	"strings"
	"unicode"
)

// Files written into an artifact directory.
const (
	MemoFile    = "memo.md"
	ReportFile  = "cluster_report.json"
	SummaryFile = "build_summary.json"

	ZipBundle   = "bundle.zip"
	TarGzBundle = "bundle.tar.gz"
	Manifest    = "MANIFEST.json"

	HTMLFile = "memo.html"
	PDFFile  = "memo.pdf"
)

// DefaultArtifactName is used when normalization leaves nothing.
const DefaultArtifactName = "artifact"

// DistDir is the parent of artifact directories when no output is given.
const DistDir = "dist"

// ArtifactName derives the artifact name from an explicit name or, when that
// is empty, from the memo file stem.
func ArtifactName(name, memoPath string) string {
	raw := name
	if raw == "" {
		base := filepath.Base(memoPath)
		raw = strings.TrimSuffix(base, filepath.Ext(base))
	}

	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteByte('-')
	}

	normalized := strings.Trim(b.String(), "-")
	if normalized == "" {
		return DefaultArtifactName
	}
	return normalized
}

// DefaultOutputDir returns the artifact directory used when none is given.
func DefaultOutputDir(name string) string {
	return filepath.Join(DistDir, name)
}

// IsReserved reports whether a file name is produced by packaging and must
// never be packaged itself.
func IsReserved(base string) bool {
	switch base {
	case ZipBundle, TarGzBundle, Manifest:
		return true
	}
	return false
}
