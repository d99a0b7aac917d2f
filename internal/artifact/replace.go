package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/imamik/mwpack/internal/apperr"
)

// resolvePath returns the absolute form of path with symlinks in its
// existing prefix resolved.
func resolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	// Resolve the deepest existing ancestor and re-attach the rest.
	existing, rest := abs, ""
	for {
		if resolved, err := filepath.EvalSymlinks(existing); err == nil {
			return filepath.Join(resolved, rest), nil
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			return abs, nil
		}
		rest = filepath.Join(filepath.Base(existing), rest)
		existing = parent
	}
}

// isWithin reports whether path equals dir or lies below it.
func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// checkReplaceable refuses output directories whose removal would destroy
// something the user did not ask to replace.
func checkReplaceable(outDir string) error {
	if outDir == filepath.Dir(outDir) {
		return apperr.Validationf("unsafe output directory: %s", outDir)
	}
	if home, err := os.UserHomeDir(); err == nil {
		if resolved, err := resolvePath(home); err == nil && resolved == outDir {
			return apperr.Validationf("unsafe output directory: %s", outDir)
		}
	}
	if cwd, err := os.Getwd(); err == nil {
		if resolved, err := resolvePath(cwd); err == nil && isWithin(resolved, outDir) {
			return apperr.Validationf("unsafe output directory: %s", outDir)
		}
	}
	return nil
}

// replaceDir moves src to dst, removing an existing dst first.
func replaceDir(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		if err := checkReplaceable(dst); err != nil {
			return err
		}
		if err := os.RemoveAll(dst); err != nil {
			return fmt.Errorf("failed to remove existing %s: %w", dst, err)
		}
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to move artifact into %s: %w", dst, err)
	}
	return nil
}
