package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/imamik/mwpack/internal/apperr"
)

// MarkdownSuffixes lists the accepted memo file extensions.
var MarkdownSuffixes = []string{".markdown", ".md", ".mdown"}

// ValidateMemoPath checks that path is an existing markdown file.
func ValidateMemoPath(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return apperr.Validationf("memo does not exist: %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(MarkdownSuffixes, ext) {
		return apperr.Validationf("memo must be markdown (%s): %s", strings.Join(MarkdownSuffixes, ", "), path)
	}
	return nil
}
